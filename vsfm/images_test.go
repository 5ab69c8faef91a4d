package vsfm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"c.jpg", "a.PNG", "b.jpeg", "notes.txt", "d.tiff"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.jpg"), 0o755))

	images, err := ListImages(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.PNG"),
		filepath.Join(dir, "b.jpeg"),
		filepath.Join(dir, "c.jpg"),
	}, images)
}

func TestListImagesCustomExts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.tiff", "b.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	images, err := ListImages(dir, ".tiff")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.tiff")}, images)
}

func TestFreePort(t *testing.T) {
	port, err := FreePort()
	require.NoError(t, err)
	assert.Positive(t, port)
}
