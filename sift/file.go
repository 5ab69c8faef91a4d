package sift

import (
	"fmt"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// compressedExt marks feature files stored zstd-compressed. ReadFile and
// WriteFile switch on the extension, so a whole workspace can be archived
// without touching the codec.
const compressedExt = ".zst"

// ReadFile decodes the feature file at path. Paths ending in ".zst" are
// decompressed transparently.
func ReadFile(path string) (*FeatureSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, compressedExt) {
		return Decode(f)
	}

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("create decompressor: %w", err)
	}
	defer dec.Close()

	return Decode(dec)
}

// WriteFile encodes fs to the file at path. Paths ending in ".zst" are
// compressed transparently.
func WriteFile(path string, fs *FeatureSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if !strings.HasSuffix(path, compressedExt) {
		if err := Encode(f, fs); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("create compressor: %w", err)
	}
	if err := Encode(enc, fs); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return err
	}
	if err := enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush compressor: %w", err)
	}
	return f.Close()
}
