package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	s, err := NewFSStore(base)
	require.NoError(t, err)

	n, err := s.Put(ctx, "audio/abc.wav", strings.NewReader("RIFF1234"))
	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.FileExists(t, filepath.Join(base, "audio", "abc.wav"))

	rc, err := s.Get(ctx, "audio/abc.wav")
	require.NoError(t, err)
	b, _ := io.ReadAll(rc)
	rc.Close()
	assert.Equal(t, "RIFF1234", string(b))

	require.NoError(t, s.Delete(ctx, "audio/abc.wav"))
	require.NoError(t, s.Delete(ctx, "audio/abc.wav"), "deleting twice is fine")
	_, err = s.Get(ctx, "audio/abc.wav")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFSStoreKeysStayInBase(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	base := filepath.Join(root, "blobs")
	s, err := NewFSStore(base)
	require.NoError(t, err)

	_, err = s.Put(ctx, "../../escape.txt", strings.NewReader("x"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(base, "escape.txt"))
	assert.NoFileExists(t, filepath.Join(root, "escape.txt"))

	_, err = s.Put(ctx, "  ", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrBadKey)
	_, err = s.Put(ctx, "/", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrBadKey)
}
