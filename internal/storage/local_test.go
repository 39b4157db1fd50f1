package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "static"))
	require.NoError(t, err)
	s.now = func() time.Time { return time.Unix(1700000000, 0) }
	return s
}

func TestLocalStore_Save(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(context.Background(), DirPDFs, "tajweed.pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000_tajweed.pdf", name)

	data, err := os.ReadFile(filepath.Join(s.Root(), DirPDFs, name))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))

	entries, err := os.ReadDir(filepath.Join(s.Root(), DirPDFs))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are cleaned up")
}

func TestLocalStore_Save_StripsDirectories(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(context.Background(), DirCovers, "../../etc/cover.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000_cover.png", name)

	name, err = s.Save(context.Background(), DirCovers, `C:\Users\me\cover.jpg`, strings.NewReader("jpg"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000_cover.jpg", name)

	_, err = os.Stat(filepath.Join(s.Root(), DirCovers, name))
	assert.NoError(t, err)
}

func TestLocalStore_Save_InvalidName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"", "..", "/", "   "} {
		_, err := s.Save(context.Background(), DirPDFs, name, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
}

func TestLocalStore_Save_Cancelled(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, DirPDFs, "book.pdf", strings.NewReader("data"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
