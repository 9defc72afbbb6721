package tifflzw

import (
	"github.com/pkg/errors"
)

// emitter is the output stage of the decoder. It writes each decoded
// string into the destination buffer and, when the predictor is on,
// undoes horizontal differencing as the bytes land: each sample past
// the first pixel of a row is a delta from the same channel lane of
// the previous pixel, so the lane's running value is the reconstructed
// byte written samples-per-pixel positions back. Lanes restart at every
// row boundary. Byte arithmetic wraps modulo 256 on purpose, mirroring
// the encoder's difference arithmetic.
type emitter struct {
	dst       []byte
	rowStride int
	samples   int
	predict   bool

	n int // bytes written so far
}

func (e *emitter) write(entry []byte) error {
	if e.n+len(entry) > len(e.dst) {
		return errors.Wrapf(ErrOutputOverflow, "%d bytes into a %d byte buffer", e.n+len(entry), len(e.dst))
	}

	if !e.predict {
		copy(e.dst[e.n:], entry)
		e.n += len(entry)
		return nil
	}

	for _, b := range entry {
		if col := e.n % e.rowStride; col >= e.samples {
			b += e.dst[e.n-e.samples]
		}
		e.dst[e.n] = b
		e.n++
	}
	return nil
}
