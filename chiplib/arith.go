// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import (
	"strconv"

	"github.com/db47h/logicsim"
)

// HalfAdder is a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = a ^ b; c = a && b
//
var HalfAdder = define("HalfAdder", []string{pA, pB}, []string{pS, pC},
	[]*logicsim.PartSpec{Xor, and}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	in[0] -> 1.in[0]
	in[1] -> 1.in[1]
	0.out[0] -> out[0]
	1.out[0] -> out[1]`)

// FullAdder is a full adder made of two half adders.
//
//	Inputs: a, b, c
//	Outputs: s, c
//	Function: s = a ^ b ^ c; c = carry of a + b + c
//
var FullAdder = define("FullAdder", []string{pA, pB, pC}, []string{pS, pC},
	[]*logicsim.PartSpec{HalfAdder, HalfAdder, or}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	0.out[0] -> 1.in[0]
	in[2] -> 1.in[1]
	1.out[0] -> out[0]
	0.out[1] -> 2.in[0]
	1.out[1] -> 2.in[1]
	2.out[0] -> out[1]`)

// AdderN returns a ripple-carry adder for bits-wide numbers. Bit 0 is the
// least significant bit.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = a + b; c = carry out
//
func AdderN(bits int) *logicsim.PartSpec {
	if bits < 1 {
		panic("invalid adder width")
	}
	parts := []*logicsim.PartSpec{HalfAdder}
	var w netlist
	for i := 0; i < bits; i++ {
		if i > 0 {
			parts = append(parts, FullAdder)
			w.wire(chipOut(i-1, 1), chipIn(i, 2))
		}
		w.wire(in(i), chipIn(i, 0))
		w.wire(in(bits+i), chipIn(i, 1))
		w.wire(chipOut(i, 0), out(i))
	}
	w.wire(chipOut(bits-1, 1), out(bits))
	return define("Adder"+strconv.Itoa(bits), bus(bits, pA, pB), append(bus(bits, pOut), pC), parts, w.String())
}

var (
	// Adder4 is a 4 bits adder. See AdderN.
	Adder4 = AdderN(4)
	// Adder8 is a 8 bits adder. See AdderN.
	Adder8 = AdderN(8)
)
