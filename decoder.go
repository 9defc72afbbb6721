package tifflzw

import (
	"github.com/pkg/errors"
)

// Decode decompresses one TIFF LZW strip held in compressed into dst
// and returns the number of bytes written. rowStride is the byte width
// of one row of the strip and samplesPerPixel the number of interleaved
// channel bytes per pixel; both must be positive. With usePredictor set
// the decoded bytes are treated as horizontal differences and
// re-accumulated per channel lane.
//
// dst must be at least as large as the decompressed strip. On error the
// bytes written so far remain in dst but are not meaningful; the strip
// should be treated as undecodable.
func Decode(compressed, dst []byte, rowStride, samplesPerPixel int, usePredictor bool) (int, error) {
	if rowStride <= 0 || samplesPerPixel <= 0 {
		return 0, errors.Wrapf(ErrBadGeometry, "rowStride=%d samplesPerPixel=%d", rowStride, samplesPerPixel)
	}

	d := decoder{
		codes: newCodeReader(compressed),
		table: newCodeTable(),
		out: emitter{
			dst:       dst,
			rowStride: rowStride,
			samples:   samplesPerPixel,
			predict:   usePredictor,
		},
	}
	err := d.run()
	return d.out.n, err
}

type decoder struct {
	codes *codeReader
	table *codeTable
	out   emitter

	// prev is the last emitted string; nil right after a table reset.
	prev []byte
}

func (d *decoder) run() error {
	for {
		code, err := d.codes.next(d.table.width)
		if err != nil {
			return err
		}

		if code == clearCode {
			d.table.reset()
			d.prev = nil
			continue
		}
		if code == eoiCode {
			return nil
		}

		var entry []byte
		switch {
		case d.prev == nil:
			// The first code after a reset can only name a single
			// byte; nothing longer exists yet.
			if code >= clearCode {
				return errors.Wrapf(ErrInvalidCode, "code %d directly after a table reset", code)
			}
			entry = d.table.entryAt(code)

		case code == d.table.next:
			// The encoder used a code one step ahead of our table;
			// the entry it stands for is prev plus its own first
			// byte, which is prev's first byte.
			if err := d.table.append(d.prev, d.prev[0]); err != nil {
				return err
			}
			entry = d.table.entryAt(code)

		case code < d.table.next:
			entry = d.table.entryAt(code)
			if err := d.table.append(d.prev, entry[0]); err != nil {
				return err
			}

		default:
			return errors.Wrapf(ErrInvalidCode, "code %d but next free entry is %d", code, d.table.next)
		}

		if err := d.out.write(entry); err != nil {
			return err
		}
		d.prev = entry
	}
}
