package tifflzw

import "errors"

// Decode failures are terminal for the call: output written before the
// failure is left in the caller's buffer but holds no meaning, and the
// caller should treat the whole strip as undecodable.
var (
	// ErrUnexpectedEOF means the compressed input ran out of bits
	// before an end-of-information code was seen.
	ErrUnexpectedEOF = errors.New("unexpected end of compressed input")

	// ErrInvalidCode means the stream produced a code that cannot
	// refer to any table entry yet; the strip is corrupt or not
	// TIFF-flavor LZW.
	ErrInvalidCode = errors.New("invalid code")

	// ErrTableOverflow means the stream grew the string table past
	// its last entry without issuing a clear code first.
	ErrTableOverflow = errors.New("code table overflow")

	// ErrOutputOverflow means the reconstructed bytes would not fit
	// the destination buffer; the stream and the caller disagree on
	// the strip geometry.
	ErrOutputOverflow = errors.New("output buffer overflow")

	// ErrBadGeometry means the row stride or samples per pixel
	// argument was not positive.
	ErrBadGeometry = errors.New("invalid strip geometry")
)
