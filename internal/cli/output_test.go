package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/store"
	"github.com/roach88/shieldlab/internal/structural"
)

func TestOutputFormatter_JSONSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Success(map[string]string{"verdict": "SAFE"})
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatter_JSONError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "json",
		Writer: buf,
	}

	err := formatter.Error(ErrCodeUnknownMaterial, `unknown material "Gold"`, nil)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "E201", resp.Error.Code)
	assert.Equal(t, `unknown material "Gold"`, resp.Error.Message)
}

func TestOutputFormatter_TextSuccess(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format: "text",
		Writer: buf,
	}

	require.NoError(t, formatter.Success(exportView{Path: "r.pdf", Format: "pdf", Materials: []string{"Concrete"}, Bytes: 10}))
	assert.Equal(t, "Wrote pdf report (10 bytes, 1 materials) to r.pdf\n", buf.String())
}

func TestOutputFormatter_TextError(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: false,
	}

	err := formatter.Error("E001", "database locked", map[string]string{"path": "h.db"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Error [E001]: database locked")
	assert.NotContains(t, buf.String(), "Details:")
}

func TestOutputFormatter_TextErrorVerbose(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{
		Format:  "text",
		Writer:  buf,
		Verbose: true,
	}

	err := formatter.Error("E001", "database locked", map[string]string{"path": "h.db"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Details:")
}

func TestOutputFormatter_VerboseLog(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		wantLog bool
	}{
		{"verbose_enabled", true, true},
		{"verbose_disabled", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			errOut := &bytes.Buffer{}
			formatter := &OutputFormatter{
				Format:    "json",
				Writer:    out,
				ErrWriter: errOut,
				Verbose:   tt.verbose,
			}

			formatter.VerboseLog("Comparing %d material(s)", 2)

			assert.Empty(t, out.String(), "diagnostics must not reach stdout")
			if tt.wantLog {
				assert.Contains(t, errOut.String(), "Comparing 2 material(s)")
			} else {
				assert.Empty(t, errOut.String())
			}
		})
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
		wantExit int
	}{
		{"unknown material", &material.UnknownMaterialError{ID: "Gold"}, "E201", ExitFailure},
		{"invalid domain", &attenuation.InvalidDomainError{Index: -1, Message: "empty"}, "E202", ExitFailure},
		{"invalid geometry", &structural.InvalidGeometryError{Dimension: "height", Value: -1}, "E203", ExitFailure},
		{"invalid capacity", &structural.InvalidCapacityError{Value: 0}, "E204", ExitFailure},
		{"invalid target", &attenuation.InvalidTargetError{Target: 2}, "E205", ExitFailure},
		{"invalid material", &material.InvalidMaterialError{ID: "X", Field: "mu", Message: "must be positive"}, "E206", ExitCommandError},
		{"dataset error", &material.DatasetError{Field: "material.X.mu", Message: "conflict"}, "E206", ExitCommandError},
		{"unknown model", fmt.Errorf("config: %w", &attenuation.UnknownModelError{Name: "cubic"}), "E008", ExitCommandError},
		{"invalid flag", fmt.Errorf("%w: format", errInvalidFlag), "E008", ExitCommandError},
		{"record not found", fmt.Errorf("get record x: %w", store.ErrNotFound), "E005", ExitCommandError},
		{"write failed", fmt.Errorf("%w: disk full", errWriteFailed), "E007", ExitCommandError},
		{"other", errors.New("boom"), "E001", ExitCommandError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, exit := classifyError(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantExit, exit)
		})
	}
}

func TestFail_ReportsAndWraps(t *testing.T) {
	buf := &bytes.Buffer{}
	formatter := &OutputFormatter{Format: "text", Writer: buf}

	cause := &structural.InvalidCapacityError{Value: -3}
	err := formatter.Fail(cause)

	assert.Contains(t, buf.String(), "Error [E204]: invalid floor capacity")
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.True(t, structural.IsInvalidCapacity(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad")))
	assert.Equal(t, ExitFailure, GetExitCode(fmt.Errorf("wrapped: %w", NewExitError(ExitFailure, "x"))))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
}
