package tifflzw

import (
	"bytes"

	"github.com/32bitkid/bitreader"
	"github.com/pkg/errors"
)

// codeReader pulls fixed-width LZW codes out of the compressed strip,
// most-significant bit first. The cursor only moves forward.
type codeReader struct {
	bits  bitreader.BitReader
	reads int
}

func newCodeReader(src []byte) *codeReader {
	return &codeReader{bits: bitreader.NewReader(bytes.NewReader(src))}
}

// next consumes exactly width bits and returns them as one code. Once
// fewer than width bits remain the strip is truncated: a well-formed
// stream ends with an end-of-information code before this can happen.
func (cr *codeReader) next(width uint) (uint16, error) {
	code, err := cr.bits.Read16(width)
	if err != nil {
		return 0, errors.Wrapf(ErrUnexpectedEOF, "reading code %d", cr.reads)
	}
	cr.reads++
	return code, nil
}
