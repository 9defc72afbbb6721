// Package tifflzw decompresses TIFF image strips that were compressed
// with LZW (compression tag 5), optionally combined with horizontal
// differencing (predictor tag 2).
//
// A TIFF image stores its pixel rows in one or more strips. Each strip
// is an independent LZW stream of row-major interleaved samples
// (RGBRGB...), using the TIFF 6.0 flavor of LZW: codes are packed
// most-significant-bit first and grow from 9 to 12 bits as the string
// table fills, with the width changing one entry early relative to the
// GIF flavor implemented by compress/lzw. When the predictor is in use,
// each sample is stored as the difference from the same channel of the
// previous pixel in the row, and decoding re-accumulates those deltas
// per channel lane.
//
// The package operates on strips that are already resident in memory:
// the caller locates the strip bytes and its geometry (row stride,
// samples per pixel, predictor flag) from the image file directory and
// receives the reconstructed bytes in a buffer it owns. No file or
// stream I/O happens here, and a decode call shares no state with any
// other call, so independent strips can be decoded concurrently.
package tifflzw
