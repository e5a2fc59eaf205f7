package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(dir, "/static/images")

	filename, url, err := store.Save(context.Background(), strings.NewReader("image-bytes"), "png")
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.Equal(t, "/static/images/"+filename, url)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(data))
}

func TestDiskStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir, "/static/images")

	_, _, err := store.Save(context.Background(), strings.NewReader("x"), "jpg")
	require.NoError(t, err)
}

func TestUniqueFilename(t *testing.T) {
	a := uniqueFilename("png")
	b := uniqueFilename("png")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasSuffix(a, ".png"))
	assert.NotContains(t, a, "-")

	// Extension normalization
	assert.True(t, strings.HasSuffix(uniqueFilename(".PNG"), ".png"))
	assert.False(t, strings.Contains(uniqueFilename(""), "."))
}
