// Package lbytes holds the little-endian helpers shared by every record codec:
// a sequential reader, fixed-offset encoders and declarative field layouts.
package lbytes

import (
	"bytes"
)

type (
	Reader struct {
		bytes.Reader
	}
	// Field binds one fixed-offset range of a record to a Go value.
	// Target is one of *uint8, *int16, *int32, *int64, *string or *[]byte;
	// Width is only consulted for strings and opaque byte ranges.
	Field struct {
		Key    string
		Offset int
		Width  int
		Target any
	}
	// Layout is the (offset, width, type) table of a fixed-size record.
	Layout struct {
		Name   string
		Size   int
		Fields []Field
	}
)
