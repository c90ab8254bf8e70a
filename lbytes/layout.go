package lbytes

import (
	"encoding/binary"
	"fmt"

	"github.com/pkg/errors"
)

func Uint8(key string, offset int, target *uint8) Field {
	return Field{Key: key, Offset: offset, Width: 1, Target: target}
}

func Int16(key string, offset int, target *int16) Field {
	return Field{Key: key, Offset: offset, Width: 2, Target: target}
}

func Int32(key string, offset int, target *int32) Field {
	return Field{Key: key, Offset: offset, Width: 4, Target: target}
}

func Int64(key string, offset int, target *int64) Field {
	return Field{Key: key, Offset: offset, Width: 8, Target: target}
}

func String(key string, offset int, width int, target *string) Field {
	return Field{Key: key, Offset: offset, Width: width, Target: target}
}

// Opaque binds a byte range whose meaning is unknown. It is copied in and out
// verbatim and never interpreted.
func Opaque(key string, offset int, width int, target *[]byte) Field {
	return Field{Key: key, Offset: offset, Width: width, Target: target}
}

// DecodeLayout reads every field of layout from bs at its fixed offset.
func DecodeLayout(bs []byte, layout Layout) error {
	if err := CheckSize(layout.Name, bs, layout.Size); err != nil {
		return err
	}
	for _, field := range layout.Fields {
		if field.Offset+field.Width > layout.Size {
			return ErrFieldOutOfRange{Record: layout.Name, Key: field.Key}
		}
		switch target := field.Target.(type) {
		case *uint8:
			*target = bs[field.Offset]
		case *int16:
			*target = Int16At(bs, field.Offset)
		case *int32:
			*target = Int32At(bs, field.Offset)
		case *int64:
			*target = Int64At(bs, field.Offset)
		case *string:
			*target = StringAt(bs, field.Offset, field.Width)
		case *[]byte:
			opaque := make([]byte, field.Width)
			copy(opaque, bs[field.Offset:field.Offset+field.Width])
			*target = opaque
		default:
			return ErrUnsupportedTarget{Record: layout.Name, Key: field.Key, Target: field.Target}
		}
	}
	return nil
}

// EncodeLayout writes every field of layout into a zeroed buffer of layout.Size bytes.
// A nil opaque range is written as zeros.
func EncodeLayout(layout Layout) ([]byte, error) {
	bs := CreateZeroBytes(layout.Size)
	for _, field := range layout.Fields {
		if field.Offset+field.Width > layout.Size {
			return nil, ErrFieldOutOfRange{Record: layout.Name, Key: field.Key}
		}
		switch target := field.Target.(type) {
		case *uint8:
			bs[field.Offset] = *target
		case *int16:
			binary.LittleEndian.PutUint16(bs[field.Offset:], uint16(*target))
		case *int32:
			binary.LittleEndian.PutUint32(bs[field.Offset:], uint32(*target))
		case *int64:
			binary.LittleEndian.PutUint64(bs[field.Offset:], uint64(*target))
		case *string:
			valueBytes, err := EncodeValueString(field.Key, *target, field.Width)
			if err != nil {
				return nil, errors.Wrapf(err, `EncodeLayout error encoding "%s"`, layout.Name)
			}
			copy(bs[field.Offset:], valueBytes)
		case *[]byte:
			if *target == nil {
				continue
			}
			if len(*target) != field.Width {
				return nil, ErrOpaqueLength{Key: field.Key, Width: field.Width, Got: len(*target)}
			}
			copy(bs[field.Offset:], *target)
		default:
			return nil, ErrUnsupportedTarget{Record: layout.Name, Key: field.Key, Target: field.Target}
		}
	}
	return bs, nil
}

type (
	ErrFieldOutOfRange struct {
		Record string
		Key    string
	}
	ErrUnsupportedTarget struct {
		Record string
		Key    string
		Target any
	}
)

func (r ErrFieldOutOfRange) Error() string {
	return fmt.Sprintf(`field "%s" lies outside record "%s"`, r.Key, r.Record)
}

func (r ErrUnsupportedTarget) Error() string {
	return fmt.Sprintf(`field "%s" of record "%s" has unsupported target type %T`, r.Key, r.Record, r.Target)
}
