package diagnostics

import (
	"context"
	"os"
	"path/filepath"
)

// Sink receives raw model responses for offline inspection. Implementations
// overwrite rather than append: only the most recent capture is kept.
type Sink interface {
	Write(ctx context.Context, payload string) error
}

// FileSink overwrites a single file on every write.
type FileSink struct {
	path string
}

// NewFileSink creates a sink writing to the given path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Write replaces the file content with the payload.
func (s *FileSink) Write(ctx context.Context, payload string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.path, []byte(payload), 0o644)
}

// Discard drops every payload. Used in tests and when capture is disabled.
type Discard struct{}

// Write discards the payload.
func (Discard) Write(ctx context.Context, payload string) error {
	_ = ctx
	_ = payload
	return nil
}

var (
	_ Sink = (*FileSink)(nil)
	_ Sink = Discard{}
)
