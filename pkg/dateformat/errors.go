package dateformat

import "fmt"

// SpecError represents an invalid format specification detected at compile
// time. Once a spec compiles successfully, no SpecError can occur on later
// Parse or Format calls.
type SpecError struct {
	Spec    string
	Token   string
	Message string
}

func (e *SpecError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("invalid date format spec %q: %s at %q", e.Spec, e.Message, e.Token)
	}
	return fmt.Sprintf("invalid date format spec %q: %s", e.Spec, e.Message)
}

func NewSpecError(spec, token, message string) *SpecError {
	return &SpecError{Spec: spec, Token: token, Message: message}
}

// ParseError represents a failure to parse an input string against a
// compiled format. Position is the byte offset in the input where matching
// failed; for errors detected while assembling the final date value it is
// the input length.
type ParseError struct {
	Input    string
	Spec     string
	Position int
	Reason   string
	Err      error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse %q with format %q: %s at position %d (%v)",
			e.Input, e.Spec, e.Reason, e.Position, e.Err)
	}
	return fmt.Sprintf("cannot parse %q with format %q: %s at position %d",
		e.Input, e.Spec, e.Reason, e.Position)
}

func (e *ParseError) Unwrap() error { return e.Err }

func NewParseError(input, spec string, position int, reason string, err error) *ParseError {
	return &ParseError{Input: input, Spec: spec, Position: position, Reason: reason, Err: err}
}

// FormatError represents a date value that cannot be rendered with a
// compiled format, for example formatting a naive date with an
// offset-bearing spec.
type FormatError struct {
	Spec   string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot format date with %q: %s", e.Spec, e.Reason)
}

func NewFormatError(spec, reason string) *FormatError {
	return &FormatError{Spec: spec, Reason: reason}
}
