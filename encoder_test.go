package tifflzw

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Test-side reference encoder. It produces conformant TIFF LZW streams
// for round trips: clear code first, end-of-information last, code
// widths widened one entry ahead of the decoder's table, and a fresh
// clear code whenever the table fills.

type bitWriter struct {
	out   []byte
	acc   uint32
	nbits uint
}

func (w *bitWriter) writeCode(code uint16, width uint) {
	w.acc = w.acc<<width | uint32(code)
	w.nbits += width
	for w.nbits >= 8 {
		w.nbits -= 8
		w.out = append(w.out, byte(w.acc>>w.nbits))
	}
}

func (w *bitWriter) flush() []byte {
	if w.nbits > 0 {
		w.out = append(w.out, byte(w.acc<<(8-w.nbits)))
		w.nbits = 0
	}
	return w.out
}

// widthFor returns the bits per code a decoder uses while its next-code
// counter holds next.
func widthFor(next uint16) uint {
	switch {
	case next < 511:
		return 9
	case next < 1023:
		return 10
	case next < 2047:
		return 11
	default:
		return 12
	}
}

func compressLZW(src []byte) []byte {
	w := &bitWriter{}
	table := make(map[string]uint16, 1<<12)
	next := uint16(firstCode)

	// The decoder defines one table entry per received data code after
	// the first, so its counter trails ours by one inside a run: data
	// codes go out at widthFor(next-1), trailing control codes at
	// widthFor(next).
	w.writeCode(clearCode, widthFor(next-1))
	if len(src) == 0 {
		w.writeCode(eoiCode, widthFor(next))
		return w.flush()
	}

	lookup := func(s []byte) (uint16, bool) {
		if len(s) == 1 {
			return uint16(s[0]), true
		}
		code, ok := table[string(s)]
		return code, ok
	}

	omega := []byte{src[0]}
	for _, k := range src[1:] {
		cand := append(omega, k)
		if _, ok := lookup(cand); ok {
			omega = cand
			continue
		}

		code, _ := lookup(omega)
		w.writeCode(code, widthFor(next-1))

		if next == lastCode {
			w.writeCode(clearCode, widthFor(next))
			table = make(map[string]uint16, 1<<12)
			next = firstCode
		} else {
			table[string(cand)] = next
			next++
		}
		omega = []byte{k}
	}

	code, _ := lookup(omega)
	w.writeCode(code, widthFor(next-1))
	w.writeCode(eoiCode, widthFor(next))
	return w.flush()
}

// horizontalDiff applies the encoder side of the predictor: every
// sample past the first pixel of a row becomes the difference from the
// same channel lane of the previous pixel.
func horizontalDiff(src []byte, rowStride, samples int) []byte {
	out := make([]byte, len(src))
	for i, b := range src {
		if col := i % rowStride; col >= samples {
			b -= src[i-samples]
		}
		out[i] = b
	}
	return out
}

// syntheticStrip renders rows of interleaved RGB pixels sweeping hue
// across the row and value down the strip, close enough to photographic
// data to exercise realistic table growth.
func syntheticStrip(rows, pixelsPerRow int) []byte {
	out := make([]byte, 0, rows*pixelsPerRow*3)
	for y := 0; y < rows; y++ {
		v := 0.35 + 0.6*float64(y)/float64(rows)
		for x := 0; x < pixelsPerRow; x++ {
			h := 360 * float64(x) / float64(pixelsPerRow)
			r, g, b := colorful.Hsv(h, 0.8, v).RGB255()
			out = append(out, r, g, b)
		}
	}
	return out
}
