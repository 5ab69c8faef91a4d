package sift

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	// HeaderTag identifies the file format and version.
	HeaderTag = "SIFTV4.0"

	// headerReserved is a constant the format carries but never interprets.
	headerReserved = 5

	// tau converts between radians (on disk) and degrees (in memory).
	tau = 2 * math.Pi
)

// trailer is the end-of-file sentinel VisualSFM expects after the last
// descriptor record.
var trailer = []byte{0xFF, 'E', 'O', 'F'}

var (
	// ErrMalformedFile indicates the byte stream is shorter than its
	// header, location block, or descriptor block requires.
	ErrMalformedFile = errors.New("malformed sift file")

	// ErrCountMismatch indicates a FeatureSet with unequal keypoint and
	// descriptor counts was passed to Encode.
	ErrCountMismatch = errors.New("keypoint/descriptor count mismatch")
)

// fileHeader is the 20-byte header at the start of every feature file.
type fileHeader struct {
	Tag      [8]byte
	Count    uint32
	Reserved uint32 // historically 5
	Dim      uint32 // historically 128
}

// fileLocation is one 20-byte location record. The pad byte after the
// color channels is part of the on-disk layout.
type fileLocation struct {
	X           float32
	Y           float32
	Color       [3]byte
	Pad         byte
	Scale       float32
	Orientation float32 // radians
}

// byteOrder is the order VisualSFM writes on x86.
var byteOrder = binary.LittleEndian

// Decode reads a complete feature file from r.
//
// Any truncation of the header, location block, or descriptor block fails
// with an error wrapping ErrMalformedFile. Bytes after the declared
// records (the trailer sentinel) are consumed and discarded. Orientation
// is converted from radians to degrees.
func Decode(r io.Reader) (*FeatureSet, error) {
	var header fileHeader
	if err := binary.Read(r, byteOrder, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedFile, err)
	}

	count := int(header.Count)

	// Cap the preallocation so a corrupt count field cannot demand
	// gigabytes before the read fails.
	prealloc := count
	if prealloc > 1<<20 {
		prealloc = 1 << 20
	}

	fs := &FeatureSet{
		Keypoints:   make([]Keypoint, 0, prealloc),
		Descriptors: make([]Descriptor, 0, prealloc),
	}

	for i := 0; i < count; i++ {
		var loc fileLocation
		if err := binary.Read(r, byteOrder, &loc); err != nil {
			return nil, fmt.Errorf("%w: location record %d: %v", ErrMalformedFile, i, err)
		}
		fs.Keypoints = append(fs.Keypoints, Keypoint{
			X:           loc.X,
			Y:           loc.Y,
			Scale:       loc.Scale,
			Orientation: loc.Orientation * 360 / tau,
		})
	}

	for i := 0; i < count; i++ {
		desc := make(Descriptor, DescriptorDim)
		if _, err := io.ReadFull(r, desc); err != nil {
			return nil, fmt.Errorf("%w: descriptor record %d: %v", ErrMalformedFile, i, err)
		}
		fs.Descriptors = append(fs.Descriptors, desc)
	}

	// Whatever follows the records (normally the trailer sentinel) is not
	// interpreted.
	if _, err := io.Copy(io.Discard, r); err != nil {
		return nil, fmt.Errorf("%w: trailer: %v", ErrMalformedFile, err)
	}

	return fs, nil
}

// Encode writes fs to w in the binary feature-file layout.
//
// Descriptors are padded or truncated to DescriptorDim bytes; color
// channels are written as zero; orientation is converted from degrees
// back to radians. Encoding the same FeatureSet twice produces
// byte-identical output.
func Encode(w io.Writer, fs *FeatureSet) error {
	if len(fs.Keypoints) != len(fs.Descriptors) {
		return fmt.Errorf("%w: %d keypoints, %d descriptors",
			ErrCountMismatch, len(fs.Keypoints), len(fs.Descriptors))
	}

	bw := bufio.NewWriter(w)

	header := fileHeader{
		Count:    uint32(len(fs.Keypoints)),
		Reserved: headerReserved,
		Dim:      DescriptorDim,
	}
	copy(header.Tag[:], HeaderTag)

	if err := binary.Write(bw, byteOrder, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, kp := range fs.Keypoints {
		loc := fileLocation{
			X:           kp.X,
			Y:           kp.Y,
			Scale:       kp.Scale,
			Orientation: kp.Orientation * tau / 360,
		}
		if err := binary.Write(bw, byteOrder, &loc); err != nil {
			return fmt.Errorf("write location record %d: %w", i, err)
		}
	}

	for i, desc := range fs.Descriptors {
		if _, err := bw.Write(desc.Normalize()); err != nil {
			return fmt.Errorf("write descriptor record %d: %w", i, err)
		}
	}

	if _, err := bw.Write(trailer); err != nil {
		return fmt.Errorf("write trailer: %w", err)
	}

	return bw.Flush()
}

// DecodeBytes decodes a feature file held fully in memory.
func DecodeBytes(data []byte) (*FeatureSet, error) {
	return Decode(bytes.NewReader(data))
}

// EncodeBytes encodes fs into a fresh byte slice.
func EncodeBytes(fs *FeatureSet) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, fs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
