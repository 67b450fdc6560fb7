// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chiplib provides a library of reusable parts for logicsim, all
// built from the built-in AND, OR and NOT gates or from each other.
//
// Composite parts use mixed-case names so they do not clash with the
// built-in gates in a logicsim.Library.
//
package chiplib

import (
	"strconv"
	"strings"

	"github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

// common pin names
const (
	pA   = "a"
	pB   = "b"
	pC   = "c"
	pS   = "s"
	pIn  = "in"
	pSel = "sel"
	pOut = "out"
)

var (
	and = logicsim.GatePart(logicsim.GateAnd)
	or  = logicsim.GatePart(logicsim.GateOr)
	not = logicsim.GatePart(logicsim.GateNot)
	nor = logicsim.GatePart(logicsim.GateNor)
)

// make a bus name
func bus(bits int, names ...string) []string {
	b := make([]string, 0, len(names)*bits)
	for _, n := range names {
		for j := 0; j < bits; j++ {
			b = append(b, n+"["+strconv.Itoa(j)+"]")
		}
	}
	return b
}

// netlist builds wire lists for generated parts.
type netlist struct {
	strings.Builder
}

func (w *netlist) wire(src, dst string) {
	w.WriteString(src)
	w.WriteString(" -> ")
	w.WriteString(dst)
	w.WriteByte('\n')
}

func chipIn(c, p int) string  { return strconv.Itoa(c) + ".in[" + strconv.Itoa(p) + "]" }
func chipOut(c, p int) string { return strconv.Itoa(c) + ".out[" + strconv.Itoa(p) + "]" }
func in(t int) string         { return "in[" + strconv.Itoa(t) + "]" }
func out(t int) string        { return "out[" + strconv.Itoa(t) + "]" }

// define returns a part whose internals are a board with the given parts,
// placed in order, and wires.
func define(name string, inputs, outputs []string, parts []*logicsim.PartSpec, wires string) *logicsim.PartSpec {
	return &logicsim.PartSpec{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		Mount: func(n *logicsim.Network) ([]logicsim.Receiver, []logicsim.Receiver, error) {
			b := logicsim.NewBoard(n)
			for _, in := range inputs {
				b.AddInput(in)
			}
			for _, out := range outputs {
				b.AddOutput(out)
			}
			for _, p := range parts {
				if _, err := b.Place(p); err != nil {
					return nil, nil, err
				}
			}
			if err := b.Wire(wires); err != nil {
				return nil, nil, errors.Wrap(err, name)
			}
			return b.Entries(), b.Exits(), nil
		},
	}
}

// All returns all the parts of the package, in dependency order.
//
func All() []*logicsim.PartSpec {
	return []*logicsim.PartSpec{
		Nand, Nor, Xor, Xnor,
		Mux, DMux,
		Not16, And16, Or16, Or8Way,
		HalfAdder, FullAdder, Adder4, Adder8,
		SRLatch, DLatch, DFF, Bit,
	}
}

// Register adds all the parts of the package to lib.
//
func Register(lib *logicsim.Library) error {
	for _, p := range All() {
		if err := lib.Register(p); err != nil {
			return err
		}
	}
	return nil
}
