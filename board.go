// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// A Board is a circuit under construction: a set of chips, circuit input and
// output terminals, and the wires between them.
//
// Chips and terminals are identified by their placement order, which is what
// PinLocation.Container refers to. The board keeps a WireConnection record for
// every wire it places; the pins and the records are always kept in sync as
// long as wires are only placed and removed through the board.
//
type Board struct {
	net     *Network
	chips   []Chip
	parts   []*PartSpec
	inputs  []*Terminal
	outputs []*Terminal
	wires   []WireConnection
}

// NewBoard returns an empty board whose chips live in network n.
//
func NewBoard(n *Network) *Board {
	return &Board{net: n}
}

// Network returns the network holding the board's chips.
//
func (b *Board) Network() *Network { return b.net }

// AddInput adds a circuit input terminal and returns its index.
//
func (b *Board) AddInput(name string) int {
	b.inputs = append(b.inputs, b.net.Terminal(name))
	return len(b.inputs) - 1
}

// AddOutput adds a circuit output terminal and returns its index.
//
func (b *Board) AddOutput(name string) int {
	b.outputs = append(b.outputs, b.net.Terminal(name))
	return len(b.outputs) - 1
}

// Place creates an instance of part p and places it on the board. It returns
// the chip index.
//
func (b *Board) Place(p *PartSpec) (int, error) {
	c, err := b.net.New(p)
	if err != nil {
		return -1, err
	}
	b.chips = append(b.chips, c)
	b.parts = append(b.parts, p)
	return len(b.chips) - 1, nil
}

// Chip returns chip i.
//
func (b *Board) Chip(i int) Chip { return b.chips[i] }

// NumChips returns the number of chips on the board.
//
func (b *Board) NumChips() int { return len(b.chips) }

// Parts returns the part of each chip, in placement order.
//
func (b *Board) Parts() []*PartSpec { return append([]*PartSpec(nil), b.parts...) }

// Input returns input terminal i.
//
func (b *Board) Input(i int) *Terminal { return b.inputs[i] }

// Output returns output terminal i.
//
func (b *Board) Output(i int) *Terminal { return b.outputs[i] }

// NumInputs returns the number of circuit input terminals.
//
func (b *Board) NumInputs() int { return len(b.inputs) }

// NumOutputs returns the number of circuit output terminals.
//
func (b *Board) NumOutputs() int { return len(b.outputs) }

// Entries returns the input terminals as receivers.
//
func (b *Board) Entries() []Receiver { return Receivers(b.inputs...) }

// Exits returns the output terminals as receivers.
//
func (b *Board) Exits() []Receiver { return Receivers(b.outputs...) }

// Set drives input terminal i to state s.
//
func (b *Board) Set(i int, s bool) error {
	if i < 0 || i >= len(b.inputs) {
		return errors.Errorf("no input terminal %d", i)
	}
	return b.inputs[i].Receive(s)
}

// InputIndex returns the index of the input terminal with the given name, or -1.
//
func (b *Board) InputIndex(name string) int { return indexOfTerminal(b.inputs, name) }

// OutputIndex returns the index of the output terminal with the given name, or -1.
//
func (b *Board) OutputIndex(name string) int { return indexOfTerminal(b.outputs, name) }

func indexOfTerminal(ts []*Terminal, name string) int {
	for i, t := range ts {
		if t.name == name {
			return i
		}
	}
	return -1
}

// Wires returns a copy of the wire records, in the order they were placed.
//
func (b *Board) Wires() []WireConnection {
	return append([]WireConnection(nil), b.wires...)
}

// emitter resolves a source location.
func (b *Board) emitter(l PinLocation) *Emitter {
	switch l.Kind {
	case LocSignalInput:
		if l.Container >= 0 && l.Container < len(b.inputs) && l.Pin == 0 {
			return &b.inputs[l.Container].Emitter
		}
	case LocChipOutput:
		if l.Container >= 0 && l.Container < len(b.chips) {
			if out := b.chips[l.Container].Outputs(); l.Pin >= 0 && l.Pin < len(out) {
				return &out[l.Pin].Emitter
			}
		}
	}
	return nil
}

// receiver resolves a destination location.
func (b *Board) receiver(l PinLocation) Receiver {
	switch l.Kind {
	case LocSignalOutput:
		if l.Container >= 0 && l.Container < len(b.outputs) && l.Pin == 0 {
			return b.outputs[l.Container]
		}
	case LocChipInput:
		if l.Container >= 0 && l.Container < len(b.chips) {
			if in := b.chips[l.Container].Inputs(); l.Pin >= 0 && l.Pin < len(in) {
				return in[l.Pin]
			}
		}
	}
	return nil
}

// Connect places a wire between the pins at locations l0 and l1, in either
// order, and returns the wire record.
//
// If the wire breaks the topology rules (see Normalize) or one of the pins does
// not exist, the board is left unchanged and the error's cause is
// ErrInvalidConnection. If the wire is placed but propagation fails, the wire is
// kept and the error is returned along with the record.
//
func (b *Board) Connect(l0, l1 PinLocation) (WireConnection, error) {
	src, dst, err := Normalize(l0, l1)
	if err != nil {
		return WireConnection{}, err
	}
	e, r := b.emitter(src), b.receiver(dst)
	if e == nil {
		return WireConnection{}, errors.Wrapf(ErrInvalidConnection, "no pin at %v", src)
	}
	if r == nil {
		return WireConnection{}, errors.Wrapf(ErrInvalidConnection, "no pin at %v", dst)
	}
	w := WireConnection{src, dst}
	b.wires = append(b.wires, w)
	b.net.log.Debug("wire connected", "wire", w.String())
	return w, errors.Wrap(e.Connect(r), w.String())
}

// Disconnect removes one wire between the pins at locations l0 and l1, in
// either order.
//
func (b *Board) Disconnect(l0, l1 PinLocation) error {
	src, dst, err := Normalize(l0, l1)
	if err != nil {
		return err
	}
	w := WireConnection{src, dst}
	for i := range b.wires {
		if b.wires[i] != w {
			continue
		}
		b.wires = append(b.wires[:i], b.wires[i+1:]...)
		b.net.log.Debug("wire disconnected", "wire", w.String())
		return errors.Wrap(b.emitter(src).Disconnect(b.receiver(dst)), w.String())
	}
	return errors.Wrapf(ErrInvalidConnection, "no wire %v", w)
}

// Wire places all the wires described by s. See ParseWires for the syntax.
//
func (b *Board) Wire(s string) error {
	ws, err := ParseWires(s)
	if err != nil {
		return err
	}
	for _, w := range ws {
		if _, err := b.Connect(w.Source, w.Destination); err != nil {
			return err
		}
	}
	return nil
}

// Package returns a part that reproduces the board: its input and output
// terminals become the part's pins.
//
// Each instance of the part rebuilds its own copy of the board from a snapshot
// taken when Package is called; changes made to b afterwards do not affect the
// part.
//
func (b *Board) Package(name string) *PartSpec {
	parts := b.Parts()
	wires := b.Wires()
	p := &PartSpec{
		Name:    name,
		Inputs:  terminalNames(b.inputs),
		Outputs: terminalNames(b.outputs),
	}
	p.Mount = func(n *Network) ([]Receiver, []Receiver, error) {
		nb := NewBoard(n)
		for _, in := range p.Inputs {
			nb.AddInput(in)
		}
		for _, out := range p.Outputs {
			nb.AddOutput(out)
		}
		for _, sp := range parts {
			if _, err := nb.Place(sp); err != nil {
				return nil, nil, err
			}
		}
		for _, w := range wires {
			if _, err := nb.Connect(w.Source, w.Destination); err != nil {
				return nil, nil, err
			}
		}
		return nb.Entries(), nb.Exits(), nil
	}
	return p
}

func terminalNames(ts []*Terminal) []string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.name
	}
	return names
}
