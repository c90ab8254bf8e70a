package balance

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// Format is an editable representation of a parsed archive.
type Format string

type ErrUnknownFormat struct {
	Name string
}

const (
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

var (
	cborEncMode cbor.EncMode
	cborDecMode cbor.DecMode
)

func init() {
	var err error
	// core deterministic encoding: the same set always exports to the same bytes
	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("balance: CBOR encoder initialization failed: " + err.Error())
	}
	cborDecMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("balance: CBOR decoder initialization failed: " + err.Error())
	}
}

func (r ErrUnknownFormat) Error() string {
	return fmt.Sprintf(`unknown format "%s"; expected "%s" or "%s"`, r.Name, FormatJSON, FormatCBOR)
}

func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatCBOR:
		return Format(name), nil
	}
	return "", ErrUnknownFormat{Name: name}
}

// Export serializes the set. JSON output is indented for hand editing.
func (d *DungeonBalance) Export(format Format) ([]byte, error) {
	var (
		bs  []byte
		err error
	)
	switch format {
	case FormatJSON:
		bs, err = json.MarshalIndent(d, "", "  ")
	case FormatCBOR:
		bs, err = cborEncMode.Marshal(d)
	default:
		return nil, ErrUnknownFormat{Name: string(format)}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "balance.Export error: %s", format)
	}
	return bs, nil
}

// Import reads a set written by Export.
func Import(data []byte, format Format) (*DungeonBalance, error) {
	d := DungeonBalance{}
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &d)
	case FormatCBOR:
		err = cborDecMode.Unmarshal(data, &d)
	default:
		return nil, ErrUnknownFormat{Name: string(format)}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "balance.Import error: %s", format)
	}
	if d.Entries == nil {
		return nil, errors.Errorf("balance.Import error: %s document has no entries", format)
	}
	return &d, nil
}
