package tifflzw

import (
	"github.com/pkg/errors"
)

const (
	clearCode = 256  // reset the string table
	eoiCode   = 257  // end of information
	firstCode = 258  // first dynamically assigned code
	lastCode  = 4094 // a conformant stream clears before filling this slot

	minWidth = 9
	maxWidth = 12

	// Longest entry a stream can legally build between clears is 3837
	// bytes (one byte per append starting from a singleton); anything
	// past this bound is corruption.
	maxEntryLen = 4096
)

// codeTable is the LZW string table. Entry bytes live in one shared
// arena and each code holds an (offset, length) pair into it, so a
// reset reuses the storage instead of reallocating 4095 slots.
type codeTable struct {
	arena []byte
	off   [lastCode + 1]uint32
	size  [lastCode + 1]uint16

	next  uint16 // next free dynamic code
	width uint   // bits per code, 9..12
}

func newCodeTable() *codeTable {
	t := &codeTable{arena: make([]byte, 0, 1<<13)}
	for i := 0; i < 256; i++ {
		t.arena = append(t.arena, byte(i))
		t.off[i] = uint32(i)
		t.size[i] = 1
	}
	t.reset()
	return t
}

// reset drops every dynamic entry, keeping the 256 fixed singletons and
// the two control codes, and returns the code width to 9 bits.
func (t *codeTable) reset() {
	t.arena = t.arena[:256]
	t.next = firstCode
	t.width = minWidth
}

// entryAt returns the stored bytes for code. The caller guarantees
// code < t.next and is not a control code; the returned slice stays
// valid across later appends.
func (t *codeTable) entryAt(code uint16) []byte {
	off := t.off[code]
	return t.arena[off : off+uint32(t.size[code])]
}

// append stores prefix+extra at the next free code and bumps the code
// width at the entry counts where a conformant encoder widens its
// output: 511, 1023 and 2047.
func (t *codeTable) append(prefix []byte, extra byte) error {
	if t.next > lastCode {
		return errors.Wrapf(ErrTableOverflow, "no clear code before entry %d", t.next)
	}
	n := len(prefix) + 1
	if n > maxEntryLen {
		return errors.Wrapf(ErrInvalidCode, "entry %d would be %d bytes", t.next, n)
	}

	t.off[t.next] = uint32(len(t.arena))
	t.size[t.next] = uint16(n)
	t.arena = append(t.arena, prefix...)
	t.arena = append(t.arena, extra)

	t.next++
	switch t.next {
	case 511:
		t.width = 10
	case 1023:
		t.width = 11
	case 2047:
		t.width = 12
	}
	return nil
}
