package vsfm

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// DefaultImageExts are the file extensions treated as input images.
var DefaultImageExts = []string{".jpg", ".jpeg", ".png"}

// ListImages returns the image files directly under dir, sorted
// lexicographically, as full paths. When no extensions are given,
// DefaultImageExts applies. Matching is case-insensitive.
func ListImages(dir string, exts ...string) ([]string, error) {
	if len(exts) == 0 {
		exts = DefaultImageExts
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var images []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == strings.ToLower(want) {
				images = append(images, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}

	sort.Strings(images)
	return images, nil
}
