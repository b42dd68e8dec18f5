// SPDX-License-Identifier: EPL-2.0

package importer

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/ik5/entrain/codec"
	"github.com/ik5/entrain/formats/hbx"
	"github.com/ik5/entrain/formats/hes"
)

// State is a step of the import of one file.
type State int

const (
	Unknown State = iota
	XMLText
	ObjectBinary
	PackedBinary
	Decoded
	Projected
)

func (s State) String() string {
	switch s {
	case XMLText:
		return "hbl"
	case ObjectBinary:
		return "hbx"
	case PackedBinary:
		return "hbs"
	case Decoded:
		return "decoded"
	case Projected:
		return "projected"
	default:
		return "unknown"
	}
}

// TextExtension marks an XML text container.
const TextExtension = ".hbl"

// HeaderSize is the number of leading bytes Detect needs.
const HeaderSize = 3

// Extensions lists the file extensions legacy presets are saved with.
var Extensions = []string{".hbx", ".hbs", TextExtension}

// Detect picks the container of a file from its name and first bytes.
// header may be shorter than HeaderSize; it is ignored for text containers.
func Detect(name string, header []byte) (State, error) {
	if strings.EqualFold(filepath.Ext(name), TextExtension) {
		return XMLText, nil
	}

	if bytes.HasPrefix(header, []byte(hbx.Magic)) {
		return ObjectBinary, nil
	}
	if bytes.HasPrefix(header, []byte(hes.Magic)) {
		return PackedBinary, nil
	}

	return Unknown, errors.Wrapf(codec.ErrFormat, "%v: header %q", filepath.Base(name), header)
}
