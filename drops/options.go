package drops

import (
	"errors"

	"go.opentelemetry.io/otel/trace"
)

// Option is a functional option for [NewService].
type Option func(*options) error

type options struct {
	tracer   trace.Tracer
	progress bool
}

// WithTracer opens a span named "drops.<operation>" around every call.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

// WithUploadProgress logs multipart encoding progress for Create and
// Uploads.Update through the client's logger.
func WithUploadProgress() Option {
	return func(o *options) error {
		o.progress = true
		return nil
	}
}
