package upload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"time"
)

// part is either a plain field or a file, never both.
type part struct {
	name  string
	value string
	file  *File
}

// Form is an ordered multipart/form-data body under construction.
// File bodies are consumed by Encode, so a Form holding readers that
// cannot be rewound should be encoded only once.
type Form struct {
	parts []part
}

// NewForm returns an empty Form.
func NewForm() *Form {
	return &Form{}
}

// AddField appends a plain text field.
func (f *Form) AddField(name, value string) *Form {
	f.parts = append(f.parts, part{name: name, value: value})
	return f
}

// AddFile appends a file part under the form field name. Repeating
// name sends multiple files in the same field.
func (f *Form) AddFile(name string, file File) *Form {
	f.parts = append(f.parts, part{name: name, file: &file})
	return f
}

// Len returns the number of parts added so far.
func (f *Form) Len() int {
	return len(f.parts)
}

// Encode writes the form into a buffer, returning it with the
// boundary-qualified Content-Type.
func (f *Form) Encode(ctx context.Context, optFns ...Option) (*bytes.Buffer, string, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, "", fmt.Errorf("applying option: %w", err)
		}
	}

	var buf bytes.Buffer
	var dst io.Writer = &buf
	if opts.logger != nil {
		dst = &progressWriter{
			w:         &buf,
			logger:    opts.logger,
			total:     f.fileBytes(),
			startTime: time.Now(),
		}
	}

	mw := multipart.NewWriter(dst)

	for _, p := range f.parts {
		if err := ctx.Err(); err != nil {
			return nil, "", fmt.Errorf("%w: %w", ErrEncodeCancelled, err)
		}

		if p.file == nil {
			if err := mw.WriteField(p.name, p.value); err != nil {
				return nil, "", fmt.Errorf("writing field %q: %w", p.name, err)
			}
			continue
		}

		if err := writeFile(ctx, mw, p.name, *p.file); err != nil {
			return nil, "", err
		}
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("closing multipart writer: %w", err)
	}

	if pw, ok := dst.(*progressWriter); ok {
		pw.log("upload encoded")
	}

	return &buf, mw.FormDataContentType(), nil
}

func writeFile(ctx context.Context, mw *multipart.Writer, field string, file File) error {
	if file.Name == "" {
		return &Error{Part: field, Err: ErrEmptyFileName}
	}

	contentType := file.ContentType
	if contentType == "" {
		contentType = DefaultContentType
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", multipart.FileContentDisposition(field, file.Name))
	h.Set("Content-Type", contentType)

	w, err := mw.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating part %q: %w", field, err)
	}

	if file.Body == nil {
		return nil
	}

	if _, err := io.Copy(w, &contextReader{ctx: ctx, r: file.Body}); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ErrEncodeCancelled, err)
		}
		return fmt.Errorf("copying %s into part %q: %w", file.Name, field, err)
	}

	return nil
}

// fileBytes sums the known file sizes, returning -1 if any is unknown.
func (f *Form) fileBytes() int64 {
	var total int64
	for _, p := range f.parts {
		if p.file == nil {
			continue
		}
		if p.file.Size < 0 {
			return -1
		}
		total += p.file.Size
	}

	return total
}

// contextReader stops a copy once ctx ends.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	if err := cr.ctx.Err(); err != nil {
		return 0, err
	}

	return cr.r.Read(p)
}
