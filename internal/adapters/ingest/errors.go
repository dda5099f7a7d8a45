package ingest

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrParse       = errors.New("parse failed")
	ErrBadHeader   = errors.New("unrecognized header")
	ErrDuplicateID = errors.New("duplicate player id")
)

// RowError ties a parse failure to its source row. Row is 1-based and
// counts the header.
type RowError struct {
	Row int
	Err error
}

// Error implements the error interface.
func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap exposes the wrapped error to errors.Is/As.
func (e RowError) Unwrap() error { return e.Err }
