package upload

import (
	"errors"
	"log/slog"
)

// Option defines optional settings for encoding a form.
type Option func(*options) error

type options struct {
	logger *slog.Logger
}

// WithProgress logs encoding progress to logger at most once per
// second, plus once on completion.
func WithProgress(logger *slog.Logger) Option {
	return func(opts *options) error {
		if logger == nil {
			return errors.New("progress logger must not be nil")
		}

		opts.logger = logger
		return nil
	}
}
