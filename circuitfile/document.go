// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package circuitfile loads and saves circuit descriptions.
//
// A Document lists the circuit terminals, the parts placed on its board, by
// name, and the wires between them in the notation of logicsim.ParseWires.
// A document can define its own parts; they are visible to the document and to
// the parts defined after them.
//
//	name: HalfAdder
//	inputs: [a, b]
//	outputs: [s, c]
//	chips: [XOR, AND]
//	wires:
//	  - in[0] -> 0.in[0]; in[1] -> 0.in[1]
//	  - in[0] -> 1.in[0]; in[1] -> 1.in[1]
//	  - 0.out[0] -> out[0]; 1.out[0] -> out[1]
//
package circuitfile

import (
	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// A Document describes a circuit.
//
type Document struct {
	Name    string     `yaml:"name" cbor:"1,keyasint"`
	Inputs  []string   `yaml:"inputs,omitempty" cbor:"2,keyasint,omitempty"`
	Outputs []string   `yaml:"outputs,omitempty" cbor:"3,keyasint,omitempty"`
	Parts   []Document `yaml:"parts,omitempty" cbor:"4,keyasint,omitempty"`
	Chips   []string   `yaml:"chips,omitempty" cbor:"5,keyasint,omitempty"`
	Wires   []string   `yaml:"wires,omitempty" cbor:"6,keyasint,omitempty"`
}

// scope resolves part names: local definitions first, then the library.
type scope struct {
	parent *scope
	local  map[string]*logicsim.PartSpec
	lib    *logicsim.Library
}

func (s *scope) lookup(name string) (*logicsim.PartSpec, bool) {
	for ; s != nil; s = s.parent {
		if p, ok := s.local[name]; ok {
			return p, true
		}
		if s.parent == nil && s.lib != nil {
			return s.lib.Lookup(name)
		}
	}
	return nil, false
}

// Define returns a part built from d. Part names are resolved in d's own part
// definitions, then in lib.
//
// The document is checked by building it once. Each instance of the returned
// part gets its own copy of the circuit.
//
func (d *Document) Define(lib *logicsim.Library) (*logicsim.PartSpec, error) {
	return d.define(&scope{lib: lib})
}

func (d *Document) define(s *scope) (*logicsim.PartSpec, error) {
	if d.Name == "" {
		return nil, errors.Wrap(logicsim.ErrConfiguration, "part has no name")
	}
	b, err := d.board(logicsim.NewNetwork(), s)
	if err != nil {
		return nil, err
	}
	return b.Package(d.Name), nil
}

// Board builds the circuit described by d on a new board in network n.
//
func (d *Document) Board(n *logicsim.Network, lib *logicsim.Library) (*logicsim.Board, error) {
	return d.board(n, &scope{lib: lib})
}

// Library returns a copy of lib extended with the parts defined in d. They
// replace library parts with the same name.
//
func (d *Document) Library(lib *logicsim.Library) (*logicsim.Library, error) {
	s, err := d.parts(&scope{lib: lib})
	if err != nil {
		return nil, err
	}
	var l *logicsim.Library
	if lib != nil {
		l = lib.Clone()
	} else {
		l = logicsim.NewLibrary()
	}
	for i := range d.Parts {
		l.Put(s.local[d.Parts[i].Name])
	}
	return l, nil
}

// parts defines the parts of d in a new scope.
func (d *Document) parts(parent *scope) (*scope, error) {
	s := &scope{parent: parent, local: make(map[string]*logicsim.PartSpec)}
	for i := range d.Parts {
		sd := &d.Parts[i]
		if _, ok := s.local[sd.Name]; ok {
			return nil, errors.Wrapf(logicsim.ErrDuplicatePart, "%s: %s", d.Name, sd.Name)
		}
		p, err := sd.define(s)
		if err != nil {
			return nil, errors.Wrap(err, d.Name)
		}
		s.local[sd.Name] = p
	}
	return s, nil
}

func (d *Document) board(n *logicsim.Network, parent *scope) (*logicsim.Board, error) {
	s, err := d.parts(parent)
	if err != nil {
		return nil, err
	}

	b := logicsim.NewBoard(n)
	for _, in := range d.Inputs {
		b.AddInput(in)
	}
	for _, out := range d.Outputs {
		b.AddOutput(out)
	}
	for i, name := range d.Chips {
		p, ok := s.lookup(name)
		if !ok {
			return nil, errors.Errorf("%s: chip %d: unknown part %q", d.Name, i, name)
		}
		if _, err := b.Place(p); err != nil {
			return nil, errors.Wrapf(err, "%s: chip %d", d.Name, i)
		}
	}
	for _, w := range d.Wires {
		if err := b.Wire(w); err != nil {
			return nil, errors.Wrapf(err, "%s: %q", d.Name, w)
		}
	}
	return b, nil
}

// FromBoard returns a document describing b. Chips are recorded by part name,
// so every part on the board must be resolvable by name when the document is
// loaded back: either from the library or from parts, which are copied into
// the document's own part definitions.
//
func FromBoard(name string, b *logicsim.Board, parts ...Document) *Document {
	d := &Document{Name: name}
	if len(parts) > 0 {
		d.Parts = append([]Document(nil), parts...)
	}
	for i := 0; i < b.NumInputs(); i++ {
		d.Inputs = append(d.Inputs, b.Input(i).Name())
	}
	for i := 0; i < b.NumOutputs(); i++ {
		d.Outputs = append(d.Outputs, b.Output(i).Name())
	}
	for _, p := range b.Parts() {
		d.Chips = append(d.Chips, p.Name)
	}
	for _, w := range b.Wires() {
		d.Wires = append(d.Wires, w.String())
	}
	return d
}
