package upload

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrEmptyFileName is returned when a file part has no name.
	ErrEmptyFileName = errors.New("file name must not be empty")
	// ErrEncodeCancelled indicates the context ended while encoding.
	ErrEncodeCancelled = errors.New("multipart encode cancelled")
)

// DefaultContentType is used for file parts whose type is unknown.
const DefaultContentType = "application/octet-stream"

// File is a single file to be sent as a multipart part.
//
// Size is the number of bytes Body yields, or -1 when unknown; it is
// only used for progress reporting.
type File struct {
	Name        string
	ContentType string
	Body        io.Reader
	Size        int64
}

// Error wraps a sentinel error with the offending part.
type Error struct {
	Part string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: part %q", e.Err, e.Part)
}

func (e *Error) Unwrap() error {
	return e.Err
}
