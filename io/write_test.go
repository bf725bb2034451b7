package io

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkWriter accepts at most n bytes per call.
type chunkWriter struct {
	n    int
	data []byte
	err  error
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestWriteAll(t *testing.T) {
	writer := &chunkWriter{n: 3}
	n, err := WriteAll([]byte("digraph G {}"), writer)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.Equal(t, "digraph G {}", string(writer.data))
}

func TestWriteAllError(t *testing.T) {
	boom := errors.New("boom")
	n, err := WriteAll([]byte("abc"), &chunkWriter{n: 1, err: boom})
	assert.Equal(t, 0, n)
	assert.Equal(t, boom, err)
}

func TestWriteAllZeroProgress(t *testing.T) {
	_, err := WriteAll([]byte("abc"), &chunkWriter{n: 0})
	assert.Equal(t, io.ErrShortWrite, err)
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.gv")
	require.NoError(t, WriteFile(name, []byte("first")))
	require.NoError(t, WriteFile(name, []byte("2nd")))

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "2nd", string(data))
}

func TestWriteFileBadDir(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.gv"), []byte("x"))
	assert.Error(t, err)
}
