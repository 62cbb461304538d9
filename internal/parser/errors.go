package parser

import (
	"errors"
	"fmt"
)

// ErrNoSection indicates a data row appeared before any group header.
var ErrNoSection = errors.New("data row outside of a group section")

// ErrTooManySections indicates more group headers than the table has groups.
var ErrTooManySections = errors.New("too many group sections")

// DecodeError represents a non-numeric value in a recognized data row.
type DecodeError struct {
	Line  int
	Row   string
	Field int // 1-based position after the row label
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: row %q field %d: cannot parse %q: %v", e.Line, e.Row, e.Field, e.Value, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// StructureError reports a structural fault with the line it was found on.
type StructureError struct {
	Line int
	Err  error
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *StructureError) Unwrap() error {
	return e.Err
}
