package upload

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// progressWriter is an io.Writer, logging encode progress at
// most once per second.
//
// total counts file payload bytes only, while written also includes
// part headers and boundaries, so the percentage is clamped.
type progressWriter struct {
	w         io.Writer
	logger    *slog.Logger
	written   int64
	total     int64
	startTime time.Time
	lastLog   time.Time
}

func (pw *progressWriter) Write(p []byte) (int, error) {
	n, err := pw.w.Write(p)
	pw.written += int64(n)

	if time.Since(pw.lastLog) >= time.Second {
		pw.lastLog = time.Now()
		pw.log("encoding upload")
	}

	return n, err
}

func (pw *progressWriter) log(msg string) {
	progress := "unknown"
	if pw.total > 0 {
		pct := float64(pw.written) / float64(pw.total) * 100
		progress = fmt.Sprintf("%.1f%%", min(pct, 100))
	}

	pw.logger.Info(msg,
		"progress", progress,
		"elapsed", time.Since(pw.startTime).Round(time.Millisecond),
		"written", pw.written,
		"total", pw.total,
	)
}
