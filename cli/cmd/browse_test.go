package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestScreenFor(t *testing.T) {
	var buf bytes.Buffer
	if got := screenFor(&buf); got != &buf {
		t.Errorf("screenFor(buffer) = %v, want the buffer", got)
	}

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = f.Close() })

	if got := screenFor(f); got != os.Stderr {
		t.Errorf("screenFor(regular file) = %v, want os.Stderr", got)
	}
}
