// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// GateN returns a N-bits logic gate made of bits gates of kind k side by side.
//
//	Inputs: a[bits], b[bits] (in[bits] for NOT)
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = k(a[i], b[i]) }
//
func GateN(k logicsim.GateKind, bits int) *logicsim.PartSpec {
	if bits < 1 {
		panic("invalid gate width")
	}
	g := logicsim.GatePart(k)
	parts := make([]*logicsim.PartSpec, bits)
	var w netlist
	for i := range parts {
		parts[i] = g
		for j := 0; j < k.Arity(); j++ {
			w.wire(in(j*bits+i), chipIn(i, j))
		}
		w.wire(chipOut(i, 0), out(i))
	}
	inputs := bus(bits, pA, pB)
	if k.Arity() == 1 {
		inputs = bus(bits, pIn)
	}
	return define(k.String()+strconv.Itoa(bits), inputs, bus(bits, pOut), parts, w.String())
}

var (
	// Not16 is a 16 bits NOT gate. See GateN.
	Not16 = GateN(logicsim.GateNot, 16)
	// And16 is a 16 bits AND gate. See GateN.
	And16 = GateN(logicsim.GateAnd, 16)
	// Or16 is a 16 bits OR gate. See GateN.
	Or16 = GateN(logicsim.GateOr, 16)
)

// NWay returns a N-way gate: a chain of ways-1 gates of kind k. k must be an
// associative gate: AND, OR or XOR.
//
//	Inputs: in[ways]
//	Outputs: out
//	Function: out = in[0] k in[1] k ... k in[ways-1]
//
func NWay(k logicsim.GateKind, ways int) *logicsim.PartSpec {
	switch {
	case ways < 2:
		panic("invalid number of ways")
	case k != logicsim.GateAnd && k != logicsim.GateOr && k != logicsim.GateXor:
		panic("gate kind is not associative")
	}
	g := logicsim.GatePart(k)
	parts := make([]*logicsim.PartSpec, ways-1)
	var w netlist
	w.wire(in(0), chipIn(0, 0))
	for i := range parts {
		parts[i] = g
		if i > 0 {
			w.wire(chipOut(i-1, 0), chipIn(i, 0))
		}
		w.wire(in(i+1), chipIn(i, 1))
	}
	w.wire(chipOut(ways-2, 0), out(0))
	return define(k.String()+strconv.Itoa(ways)+"Way", bus(ways, pIn), []string{pOut}, parts, w.String())
}

// Or8Way is a 8-way OR gate. See NWay.
//
var Or8Way = NWay(logicsim.GateOr, 8)
