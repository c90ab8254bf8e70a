// Package sir0 implements the SIR0 object-graph container used by the game's
// data files: a header, a data segment, a sub-header of anchor pointers and a
// relocation list naming every position that holds a pointer.
//
// Layout of a 64-bit container:
//
//	0x00  "SIR0"
//	0x04  4 zero bytes
//	0x08  int64 sub-header offset   (relocated)
//	0x10  int64 pointer list offset (relocated)
//	0x18  8 zero bytes
//	0x20  data segment ... sub-header ... pad to 16
//	      pointer list: delta-encoded positions, 0x00 terminated, pad to 16
//
// All pointers are offsets from the container start.
package sir0

import (
	"fmt"
)

type (
	// Builder assembles a container incrementally. Positions returned by its
	// methods are absolute offsets usable as pointer targets.
	Builder struct {
		data            []byte
		pointers        []int64
		subHeaderOffset int64
	}
	// Container is a parsed container. Data is the whole container.
	Container struct {
		Data            []byte
		SubHeaderOffset int64
		PointerOffset   int64
	}
	ErrMalformed struct {
		Reason string
	}
)

const (
	HeaderSize    = 0x20
	PointerSize   = 8
	Alignment     = 16
	offsetMagic   = 0x00
	offsetSubHdr  = 0x08
	offsetPtrList = 0x10
)

var MagicNumberBytes = []byte{'S', 'I', 'R', '0'}

func (r ErrMalformed) Error() string {
	return fmt.Sprintf("malformed SIR0 container: %s", r.Reason)
}
