// Package store provides SQLite-backed history of saved calculations.
//
// Each saved calculation is a Record: the request that produced it, the
// result, and two identities:
//   - ID: a UUIDv7, time-sortable, assigned on first save
//   - RequestHash: SHA-256 over the canonical request JSON, domain
//     separated by record kind
//
// Saving the same (kind, request) twice returns the existing record rather
// than writing a duplicate. The core calculations are deterministic, so an
// identical request always has an identical result.
//
// Ordering uses the seq column (insertion order), never wall-clock time.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait up to 5s on lock contention
//   - Single open connection: SQLite has one writer
package store
