package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/shieldlab/internal/attenuation"
	"github.com/roach88/shieldlab/internal/material"
	"github.com/roach88/shieldlab/internal/store"
	"github.com/roach88/shieldlab/internal/structural"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Calculation rejected its inputs, or a batch step failed
	ExitCommandError = 2 // Command error (bad flags, unreadable files, database errors)
)

// Error codes reported in text and JSON output.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeNotFound    = "E005" // Path or record not found
	ErrCodeWriteFailed = "E007" // File write error
	ErrCodeConfig      = "E008" // Invalid configuration or flag value

	ErrCodeUnknownMaterial = "E201" // Material id not in the registry
	ErrCodeInvalidDomain   = "E202" // Bad thickness range or sample count
	ErrCodeInvalidGeometry = "E203" // Non-positive wall dimension
	ErrCodeInvalidCapacity = "E204" // Non-positive floor capacity
	ErrCodeInvalidTarget   = "E205" // Target transmission outside (0, 1)
	ErrCodeInvalidMaterial = "E206" // Material dataset violates the schema
)

// Sentinels wrapped by commands to select an error code.
var (
	errInvalidFlag = errors.New("invalid flag")
	errWriteFailed = errors.New("write failed")
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`              // "E001", "E201", etc.
	Message string `json:"message"`           // human-readable message
	Details any    `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
// In text mode data is printed with fmt.Fprintln, so views implement
// fmt.Stringer.
func (f *OutputFormatter) Success(data any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error: &CLIError{
				Code:    code,
				Message: message,
				Details: details,
			},
		})
	}

	// Human-readable error
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	fmt.Fprintf(f.GetErrWriter(), format+"\n", args...)
}

// GetErrWriter returns the appropriate writer for diagnostic output.
// Returns ErrWriter if set, otherwise Writer.
func (f *OutputFormatter) GetErrWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}

// Fail reports err through the formatter and returns the ExitError the
// command should return. Calculation errors map to ExitFailure, everything
// else to ExitCommandError.
func (f *OutputFormatter) Fail(err error) error {
	code, exit := classifyError(err)
	_ = f.Error(code, err.Error(), nil)
	return WrapExitError(exit, code, err)
}

// classifyError maps an error to its reported code and exit code.
func classifyError(err error) (code string, exit int) {
	var (
		exitErr      *ExitError
		datasetErr   *material.DatasetError
		unknownModel *attenuation.UnknownModelError
	)

	switch {
	case material.IsUnknownMaterial(err):
		return ErrCodeUnknownMaterial, ExitFailure
	case attenuation.IsInvalidDomain(err):
		return ErrCodeInvalidDomain, ExitFailure
	case structural.IsInvalidGeometry(err):
		return ErrCodeInvalidGeometry, ExitFailure
	case structural.IsInvalidCapacity(err):
		return ErrCodeInvalidCapacity, ExitFailure
	case attenuation.IsInvalidTarget(err):
		return ErrCodeInvalidTarget, ExitFailure
	case material.IsInvalidMaterial(err), errors.As(err, &datasetErr):
		return ErrCodeInvalidMaterial, ExitCommandError
	case errors.As(err, &unknownModel), errors.Is(err, errInvalidFlag):
		return ErrCodeConfig, ExitCommandError
	case errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound, ExitCommandError
	case errors.Is(err, errWriteFailed):
		return ErrCodeWriteFailed, ExitCommandError
	case errors.As(err, &exitErr):
		return ErrCodeGeneric, exitErr.Code
	default:
		return ErrCodeGeneric, ExitCommandError
	}
}
