package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces record ids.
type IDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 record ids.
//
// Thread-safety: UUIDv7Generator is stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate creates a new UUIDv7 and returns it as a hyphenated string.
// Panics if UUID generation fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined ids, for deterministic tests.
// Panics when the ids run out.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator returns a generator yielding ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.idx >= len(g.ids) {
		panic(fmt.Sprintf("FixedGenerator: exhausted after %d ids", len(g.ids)))
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

// hashDomain prefixes request hashes; the version suffix allows a future
// change of encoding without colliding with old hashes.
const hashDomain = "shieldlab/request/v1/"

// RequestHash computes the content identity of a request of the given kind.
// Format: hex(SHA256(domain + kind + 0x00 + json(request))).
func RequestHash(kind Kind, request any) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("RequestHash: failed to marshal: %w", err)
	}
	return hashWithDomain(hashDomain+string(kind), data), nil
}

// hashWithDomain computes SHA-256 with domain separation.
// The null byte separator prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
