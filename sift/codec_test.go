package sift

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFeatureSet() *FeatureSet {
	fs := &FeatureSet{}
	fs.Append(
		Keypoint{X: 10.5, Y: 20.25, Scale: 2.0, Orientation: 90},
		bytes.Repeat([]byte{7}, DescriptorDim),
	)
	fs.Append(
		Keypoint{X: 300, Y: 151.75, Scale: 1.5, Orientation: 359.5},
		bytes.Repeat([]byte{250}, DescriptorDim),
	)
	return fs
}

func TestCodecRoundTrip(t *testing.T) {
	fs := testFeatureSet()

	data, err := EncodeBytes(fs)
	require.NoError(t, err)

	got, err := DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, fs.Len(), got.Len())

	for i, want := range fs.Keypoints {
		kp := got.Keypoints[i]
		assert.Equal(t, want.X, kp.X)
		assert.Equal(t, want.Y, kp.Y)
		assert.Equal(t, want.Scale, kp.Scale)
		assert.InDelta(t, want.Orientation, kp.Orientation, 1e-3)
	}
	assert.Equal(t, fs.Descriptors, got.Descriptors)
}

func TestEncodeLayout(t *testing.T) {
	fs := &FeatureSet{}
	fs.Append(Keypoint{X: 1, Y: 2, Scale: 3, Orientation: 0}, Descriptor{1, 2, 3})

	data, err := EncodeBytes(fs)
	require.NoError(t, err)

	// 20-byte header, one 20-byte location record, one 128-byte
	// descriptor record, 4-byte trailer.
	require.Len(t, data, 20+20+DescriptorDim+4)

	assert.Equal(t, []byte(HeaderTag), data[0:8])
	assert.Equal(t, []byte{1, 0, 0, 0}, data[8:12], "feature count")
	assert.Equal(t, []byte{5, 0, 0, 0}, data[12:16])
	assert.Equal(t, []byte{128, 0, 0, 0}, data[16:20])

	// Color channels and the pad byte are always zero.
	assert.Equal(t, []byte{0, 0, 0, 0}, data[28:32])

	assert.Equal(t, []byte{0xFF, 'E', 'O', 'F'}, data[len(data)-4:])
}

func TestEncodeIdempotent(t *testing.T) {
	fs := testFeatureSet()

	first, err := EncodeBytes(fs)
	require.NoError(t, err)
	second, err := EncodeBytes(fs)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDescriptorNormalization(t *testing.T) {
	t.Run("ShortIsZeroPadded", func(t *testing.T) {
		fs := &FeatureSet{}
		fs.Append(Keypoint{}, Descriptor{1, 2, 3})

		data, err := EncodeBytes(fs)
		require.NoError(t, err)

		got, err := DecodeBytes(data)
		require.NoError(t, err)

		want := make(Descriptor, DescriptorDim)
		copy(want, Descriptor{1, 2, 3})
		assert.Equal(t, want, got.Descriptors[0])
	})

	t.Run("LongIsTruncated", func(t *testing.T) {
		long := make(Descriptor, DescriptorDim+32)
		for i := range long {
			long[i] = byte(i)
		}
		fs := &FeatureSet{}
		fs.Append(Keypoint{}, long)

		data, err := EncodeBytes(fs)
		require.NoError(t, err)

		got, err := DecodeBytes(data)
		require.NoError(t, err)
		assert.Equal(t, Descriptor(long[:DescriptorDim]), got.Descriptors[0])
	})
}

func TestEncodeCountMismatch(t *testing.T) {
	fs := &FeatureSet{
		Keypoints:   []Keypoint{{}, {}},
		Descriptors: []Descriptor{{}},
	}

	_, err := EncodeBytes(fs)
	require.ErrorIs(t, err, ErrCountMismatch)
}

func TestDecodeMalformed(t *testing.T) {
	data, err := EncodeBytes(testFeatureSet())
	require.NoError(t, err)

	t.Run("TruncatedHeader", func(t *testing.T) {
		_, err := DecodeBytes(data[:10])
		require.ErrorIs(t, err, ErrMalformedFile)
	})

	t.Run("TruncatedLocationBlock", func(t *testing.T) {
		_, err := DecodeBytes(data[:20+25])
		require.ErrorIs(t, err, ErrMalformedFile)
	})

	t.Run("TruncatedDescriptorBlock", func(t *testing.T) {
		_, err := DecodeBytes(data[:20+2*20+DescriptorDim+13])
		require.ErrorIs(t, err, ErrMalformedFile)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeBytes(nil)
		require.ErrorIs(t, err, ErrMalformedFile)
	})
}

func TestDecodeIgnoresTrailer(t *testing.T) {
	data, err := EncodeBytes(testFeatureSet())
	require.NoError(t, err)

	// Without the trailer, and with a longer one, the records decode the
	// same way.
	short, err := DecodeBytes(data[:len(data)-4])
	require.NoError(t, err)
	long, err := DecodeBytes(append(append([]byte{}, data...), []byte("garbage after eof")...))
	require.NoError(t, err)

	assert.Equal(t, short.Keypoints, long.Keypoints)
	assert.Equal(t, short.Descriptors, long.Descriptors)
}

func TestEmptyFeatureSet(t *testing.T) {
	data, err := EncodeBytes(&FeatureSet{})
	require.NoError(t, err)
	require.Len(t, data, 20+4)

	got, err := DecodeBytes(data)
	require.NoError(t, err)
	assert.Zero(t, got.Len())
}
