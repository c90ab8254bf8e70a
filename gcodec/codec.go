// Package gcodec holds the compression codecs applied to each archive entry.
//
// A Codec turns an encoded entry container into the bytes stored in the
// archive and back. Codecs only need to round-trip; their output does not
// have to be deterministic.
package gcodec

import (
	"fmt"
	"sort"
)

type (
	Codec interface {
		Name() string
		Compress(data []byte) ([]byte, error)
		Decompress(data []byte) ([]byte, error)
	}
	// ErrCompression reports a failed compress or decompress call.
	ErrCompression struct {
		Codec string
		Op    string
		Err   error
	}
	ErrUnknownCodec struct {
		Name string
	}
)

const (
	OpCompress   = "compress"
	OpDecompress = "decompress"
)

func (r ErrCompression) Error() string {
	return fmt.Sprintf("%s %s failed: %v", r.Codec, r.Op, r.Err)
}

func (r ErrCompression) Unwrap() error {
	return r.Err
}

func (r ErrUnknownCodec) Error() string {
	return fmt.Sprintf(`unknown codec "%s"; expected one of %v`, r.Name, Names())
}

var registry = map[string]func() Codec{
	NameZstd: func() Codec { return Zstd{} },
	NameLZ4:  func() Codec { return LZ4{} },
	NameNone: func() Codec { return None{} },
}

func ByName(name string) (Codec, error) {
	create, ok := registry[name]
	if !ok {
		return nil, ErrUnknownCodec{Name: name}
	}
	return create(), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
