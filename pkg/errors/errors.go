// Package errors defines the typed errors returned by the suite loading
// and evaluation layers. Contract violations themselves are verdicts,
// not errors; ViolationError exists for callers that decide a violated
// verdict is fatal in their context.
package errors

import (
	"fmt"

	"github.com/alexisbeaulieu97/vow/pkg/contracts"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SuiteError captures problems with a suite definition: schema
// violations, unknown rule types, or rules that cannot be built.
type SuiteError struct {
	Contract string
	Message  string
	Err      error
}

// NewSuiteError constructs a SuiteError for the given contract ID. An
// empty ID marks a suite-level problem.
func NewSuiteError(contract, message string, err error) error {
	return &SuiteError{Contract: contract, Message: message, Err: err}
}

func (e *SuiteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Contract != "" {
		return fmt.Sprintf("suite error: contract %s: %s", e.Contract, e.Message)
	}
	return fmt.Sprintf("suite error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SuiteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ViolationError escalates a violated verdict into an error for callers
// that treat violations as fatal. The wrapped failure keeps the full
// nested diagnostics.
type ViolationError struct {
	ID      string
	Failure *contracts.Failure
}

// NewViolationError constructs a ViolationError for the given contract ID.
func NewViolationError(id string, failure *contracts.Failure) error {
	return &ViolationError{ID: id, Failure: failure}
}

func (e *ViolationError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("violation [%s]: %v", e.ID, e.Failure)
	}
	return fmt.Sprintf("violation: %v", e.Failure)
}

// Unwrap exposes the underlying failure, which implements error.
func (e *ViolationError) Unwrap() error {
	if e == nil || e.Failure == nil {
		return nil
	}
	return e.Failure
}
