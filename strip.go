package tifflzw

import (
	"github.com/pkg/errors"
)

// CompressionTag is the value of a TIFF image file directory
// compression entry (tag 259).
type CompressionTag uint16

const (
	CompressionNone CompressionTag = 1
	CompressionLZW  CompressionTag = 5
)

// Geometry describes the layout of one strip: the byte width of a row,
// the number of interleaved channel bytes per pixel, and whether the
// samples were horizontally differenced before compression.
type Geometry struct {
	RowStride       int
	SamplesPerPixel int
	Predictor       bool
}

// DecompressFn reconstructs one strip from src into dst, returning the
// number of bytes written.
type DecompressFn = func(src, dst []byte, geom Geometry) (int, error)

// DecompressorLUT maps compression tag values to strip decompressors.
// A strip reader looks the tag it parsed up here and feeds each strip
// through the resulting function.
type DecompressorLUT map[CompressionTag]DecompressFn

// DecompressNone copies an uncompressed strip through unchanged.
func DecompressNone(src, dst []byte, geom Geometry) (int, error) {
	if len(src) > len(dst) {
		return 0, errors.Wrapf(ErrOutputOverflow, "%d bytes into a %d byte buffer", len(src), len(dst))
	}
	return copy(dst, src), nil
}

// DecompressLZW decodes an LZW compressed strip.
func DecompressLZW(src, dst []byte, geom Geometry) (int, error) {
	return Decode(src, dst, geom.RowStride, geom.SamplesPerPixel, geom.Predictor)
}

// Decompressors holds the decompressor for every compression tag this
// package can service.
var Decompressors = DecompressorLUT{
	CompressionNone: DecompressNone,
	CompressionLZW:  DecompressLZW,
}
