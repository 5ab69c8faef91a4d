// Package sift reads and writes VisualSFM binary feature files.
//
// A feature file holds keypoint locations and their 128-byte SIFT
// descriptor vectors for one image. The layout is fixed:
//
//	offset 0:  8-byte ASCII tag ("SIFTV4.0")
//	offset 8:  u32 feature count N
//	offset 12: u32 constant 5
//	offset 16: u32 constant 128 (descriptor dimension)
//	N location records, 20 bytes each
//	N descriptor records, 128 bytes each
//	trailer: 0xFF "EOF"
//
// All integers and floats are little-endian, matching the byte order
// VisualSFM writes on every platform it ships on.
package sift

// DescriptorDim is the fixed length of a SIFT descriptor vector.
const DescriptorDim = 128

// Keypoint is a detected point of interest in an image.
//
// Orientation is in degrees (0-360). The on-disk format stores radians;
// the codec converts on the boundary, so degrees are the canonical unit
// everywhere in memory.
type Keypoint struct {
	X           float32
	Y           float32
	Scale       float32
	Orientation float32
}

// Descriptor is a SIFT descriptor vector. Values are unsigned bytes.
//
// Descriptors shorter than DescriptorDim are zero-padded on the right at
// encode time; longer ones are truncated. This normalization is silent
// and never an error.
type Descriptor []byte

// Normalize returns the descriptor padded or truncated to exactly
// DescriptorDim bytes. The receiver is not modified.
func (d Descriptor) Normalize() Descriptor {
	out := make(Descriptor, DescriptorDim)
	copy(out, d)
	return out
}

// FeatureSet holds the keypoints and descriptors of one image, in file
// order. Keypoints and Descriptors must stay the same length; Encode
// enforces this.
type FeatureSet struct {
	Keypoints   []Keypoint
	Descriptors []Descriptor
}

// Len returns the number of keypoints.
func (fs *FeatureSet) Len() int {
	return len(fs.Keypoints)
}

// Append adds one keypoint/descriptor pair.
func (fs *FeatureSet) Append(kp Keypoint, d Descriptor) {
	fs.Keypoints = append(fs.Keypoints, kp)
	fs.Descriptors = append(fs.Descriptors, d)
}
