package cleaner

import (
	"errors"
	"fmt"
	"io/fs"

	"surveyclean/internal/csvtable"
	"surveyclean/internal/textenc"
)

// Kind classifies why a run aborted.
type Kind int

const (
	KindUnclassified Kind = iota
	KindResourceNotFound
	KindSchema
	KindEncoding
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindResourceNotFound:
		return "resource_not_found"
	case KindSchema:
		return "schema"
	case KindEncoding:
		return "encoding"
	case KindWrite:
		return "write"
	default:
		return "unclassified"
	}
}

// Error is the only error type Run returns.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
	// Column is the target column for missing-column failures.
	Column string
	// Columns holds a preview of the header for missing-column failures.
	Columns []string
	// Trace is the goroutine stack for recovered panics.
	Trace []byte
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrColumnNotFound is wrapped by schema errors for a missing target column.
var ErrColumnNotFound = errors.New("column not found")

// KindOf returns the Kind of err, or KindUnclassified when err is not an *Error.
func KindOf(err error) Kind {
	var runErr *Error
	if errors.As(err, &runErr) {
		return runErr.Kind
	}
	return KindUnclassified
}

func readError(path string, err error) *Error {
	kind := KindUnclassified
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = KindResourceNotFound
	case errors.Is(err, csvtable.ErrEmptyTable):
		kind = KindSchema
	case errors.Is(err, textenc.ErrUndecodable), errors.Is(err, textenc.ErrUnknownEncoding):
		kind = KindEncoding
	}
	return &Error{Kind: kind, Op: "read", Path: path, Err: err}
}

func writeError(path string, err error) *Error {
	kind := KindWrite
	switch {
	case errors.Is(err, textenc.ErrUnencodable), errors.Is(err, textenc.ErrUnknownEncoding):
		kind = KindEncoding
	}
	return &Error{Kind: kind, Op: "write", Path: path, Err: err}
}
