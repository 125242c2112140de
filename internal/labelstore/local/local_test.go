package local

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vbonduro/cashdrop/internal/labelstore"
)

var _ labelstore.LabelStore = (*Store)(nil)

func TestStoreSaveAndGet(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte("fake png data")

	key, err := store.Save(ctx, "drop_7", "image/png", bytes.NewReader(data))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "drop_7_"))
	assert.Equal(t, ".png", filepath.Ext(key))

	reader, mimeType, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	assert.Equal(t, "image/png", mimeType)
	got, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestStoreKeysAreUnique(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	a, err := store.Save(ctx, "drop", "image/jpeg", bytes.NewReader([]byte("a")))
	require.NoError(t, err)
	b, err := store.Save(ctx, "drop", "image/jpeg", bytes.NewReader([]byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestStoreDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	ctx := context.Background()
	key, err := store.Save(ctx, "drop_1", "image/jpeg", bytes.NewReader([]byte("x")))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, key))
	_, err = os.Stat(filepath.Join(dir, key))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, store.Delete(ctx, key), labelstore.ErrNotFound)
	_, _, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, labelstore.ErrNotFound)
}

func TestStoreRejectsTraversal(t *testing.T) {
	store, err := New(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	_, _, err = store.Get(ctx, "../../etc/passwd")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, labelstore.ErrNotFound)

	assert.Error(t, store.Delete(ctx, "../outside.jpg"))
}

func TestMimeTypeMapping(t *testing.T) {
	for mime, ext := range map[string]string{
		"image/png":       ".png",
		"image/gif":       ".gif",
		"image/webp":      ".webp",
		"application/pdf": ".pdf",
		"image/jpeg":      ".jpg",
	} {
		assert.Equal(t, ext, mimeTypeToExt(mime))
		assert.Equal(t, mime, extToMimeType("x"+ext))
	}
}
