package sift

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ReadDir decodes every feature file directly under dir, concurrently,
// and returns the sets keyed by file path. Files ending in ".sift" or
// ".sift.zst" are loaded; everything else is skipped. The first decode
// error cancels the remaining loads.
func ReadDir(ctx context.Context, dir string) (map[string]*FeatureSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	sets := make(map[string]*FeatureSet)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, entry := range entries {
		if entry.IsDir() || !isFeatureFile(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fs, err := ReadFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			sets[path] = fs
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}

func isFeatureFile(name string) bool {
	return strings.HasSuffix(name, ".sift") || strings.HasSuffix(name, ".sift"+compressedExt)
}
