// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circuitfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// A Format is a circuit document encoding.
//
type Format int

// Supported formats.
//
const (
	YAML Format = iota
	CBOR
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case CBOR:
		return "cbor"
	}
	return "Format(" + fmt.Sprint(int(f)) + ")"
}

// FormatFromPath guesses the format of a file from its extension: .yaml or .yml
// for YAML, .cbor for CBOR.
//
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".cbor":
		return CBOR, nil
	}
	return 0, errors.Errorf("%s: unknown circuit file extension", path)
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("circuitfile: CBOR encoder mode: %v", err))
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthAllowed,
	}.DecMode()
	if err != nil {
		panic(fmt.Sprintf("circuitfile: CBOR decoder mode: %v", err))
	}
}

// Decode decodes a document.
//
func Decode(data []byte, f Format) (*Document, error) {
	var d Document
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &d)
	case CBOR:
		err = decMode.Unmarshal(data, &d)
	default:
		return nil, errors.Errorf("unsupported format %v", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "decode %v", f)
	}
	return &d, nil
}

// Encode encodes a document.
//
func Encode(d *Document, f Format) ([]byte, error) {
	var data []byte
	var err error
	switch f {
	case YAML:
		data, err = yaml.Marshal(d)
	case CBOR:
		data, err = encMode.Marshal(d)
	default:
		return nil, errors.Errorf("unsupported format %v", f)
	}
	return data, errors.Wrapf(err, "encode %v", f)
}

// Load reads a document from a file. The format is guessed from the file name.
//
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := Decode(data, f)
	return d, errors.Wrap(err, path)
}

// Save writes a document to a file. The format is guessed from the file name.
//
func Save(path string, d *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := Encode(d, f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
