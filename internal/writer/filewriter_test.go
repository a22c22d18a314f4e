package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_FileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.iss")

	s, err := Create(path, Options{})
	require.NoError(t, err)
	_, err = s.Write([]byte("[Registry]\r\n"))
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[Registry]\r\n", string(got))
}

func TestSink_WithBOM(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Options{WithBOM: true})
	_, err := s.Write([]byte("Zoë"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	assert.Equal(t, append([]byte{0xEF, 0xBB, 0xBF}, []byte("Zoë")...), buf.Bytes())
}

func TestSink_PartialOutputSurvives(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, Options{})
	_, err := s.Write([]byte("line 1\n"))
	require.NoError(t, err)
	// Nothing reaches the stream until Close flushes the buffer.
	assert.Empty(t, buf.String())
	require.NoError(t, s.Close())
	assert.Equal(t, "line 1\n", buf.String())
}

func TestSink_WriteAfterClose(t *testing.T) {
	s := New(&bytes.Buffer{}, Options{})
	require.NoError(t, s.Close())
	_, err := s.Write([]byte("x"))
	require.ErrorIs(t, err, os.ErrClosed)
}

func TestCreate_BadPath(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.iss"), Options{})
	require.Error(t, err)
}
