// Package scanm reads ScanM header (.smh) files.
package scanm

import (
	"errors"
	"fmt"

	"github.com/robert-malhotra/go-scanm/internal/param"
	"github.com/robert-malhotra/go-scanm/internal/preheader"
	"github.com/robert-malhotra/go-scanm/internal/record"
)

// Common errors
var (
	ErrNoParametersFound  = errors.New("no parameters found")
	ErrMalformedRecord    = record.ErrMalformedRecord
	ErrUnparseableNumber  = record.ErrUnparseableNumber
	ErrKeyNotFound        = param.ErrKeyNotFound
	ErrNoValue            = param.ErrNoValue
	ErrIndexOutOfRange    = param.ErrIndexOutOfRange
	ErrTypeMismatch       = param.ErrTypeMismatch
	ErrTruncatedPreHeader = preheader.ErrTruncated
)

// LineError reports the parameter line a parse failure occurred on.
type LineError struct {
	Line int // 0-based index among non-empty lines
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
