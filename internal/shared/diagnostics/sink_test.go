package diagnostics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSinkOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug_response.txt")
	sink := NewFileSink(path)

	if err := sink.Write(context.Background(), "first response"); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := sink.Write(context.Background(), "second response"); err != nil {
		t.Fatalf("second write: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "second response" {
		t.Fatalf("expected overwrite semantics, got %q", string(data))
	}
}

func TestFileSinkCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "debug.txt")
	sink := NewFileSink(path)

	if err := sink.Write(context.Background(), "payload"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestFileSinkRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := NewFileSink(filepath.Join(t.TempDir(), "debug.txt"))
	if err := sink.Write(ctx, "payload"); err == nil {
		t.Fatal("expected context error")
	}
}
