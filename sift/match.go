package sift

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// MatchPair links one keypoint index in the query image to one in the
// train image.
type MatchPair struct {
	Query int
	Train int
}

// MatchRecord describes the keypoint correspondences between the feature
// sets of two images, identified by their positions in a caller-side
// filename table.
type MatchRecord struct {
	IndexA int
	IndexB int
	Pairs  []MatchPair
}

// WriteMatches writes records in VisualSFM's match text format: for each
// record a header line "<nameA> <nameB> <count>", then one line of
// space-separated query indices, then one line of train indices.
//
// Indices are written as given; the writer does not check that they fall
// inside either feature set. That is the caller's responsibility.
func WriteMatches(w io.Writer, records []MatchRecord, names map[int]string) error {
	bw := bufio.NewWriter(w)

	for _, rec := range records {
		fmt.Fprintf(bw, "%s %s %d\n", names[rec.IndexA], names[rec.IndexB], len(rec.Pairs))

		query := make([]string, len(rec.Pairs))
		train := make([]string, len(rec.Pairs))
		for i, p := range rec.Pairs {
			query[i] = strconv.Itoa(p.Query)
			train[i] = strconv.Itoa(p.Train)
		}
		fmt.Fprintln(bw, strings.Join(query, " "))
		fmt.Fprintln(bw, strings.Join(train, " "))
	}

	return bw.Flush()
}

// WriteMatchFile writes records to the file at path.
func WriteMatchFile(path string, records []MatchRecord, names map[int]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteMatches(f, records, names); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
