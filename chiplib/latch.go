// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import "github.com/db47h/logicsim"

// SRLatch is a set/reset latch made of two cross-coupled NOR gates. It powers
// up set (q = 1).
//
//	Inputs: s, r
//	Outputs: q, nq
//	Function: s = 1 sets q, r = 1 resets q, q holds its state while s = r = 0;
//	nq = !q except while s = r = 1, where q = nq = 0
//
var SRLatch = define("SRLatch", []string{pS, "r"}, []string{"q", "nq"},
	[]*logicsim.PartSpec{nor, nor}, `
	in[1] -> 0.in[0]
	in[0] -> 1.in[0]
	0.out[0] -> 1.in[1]
	1.out[0] -> 0.in[1]
	0.out[0] -> out[0]
	1.out[0] -> out[1]`)

// DLatch is a gated D latch. It powers up with q = 1.
//
//	Inputs: d, en
//	Outputs: q, nq
//	Function: q follows d while en = 1 and holds its state while en = 0;
//	nq = !q
//
var DLatch = define("DLatch", []string{"d", "en"}, []string{"q", "nq"},
	[]*logicsim.PartSpec{not, and, and, SRLatch}, `
	in[0] -> 0.in[0]
	in[0] -> 1.in[0]; in[1] -> 1.in[1]
	0.out[0] -> 2.in[0]; in[1] -> 2.in[1]
	1.out[0] -> 3.in[0]; 2.out[0] -> 3.in[1]
	3.out[0] -> out[0]; 3.out[1] -> out[1]`)

// DFF is a master-slave D flip-flop, triggered on the rising edge of clk. It
// powers up with q = 1.
//
//	Inputs: d, clk
//	Outputs: q
//	Function: q takes the value of d when clk goes from 0 to 1
//
// The slave enable is wired first so that it locks before the master opens
// on a falling edge.
//
var DFF = define("DFF", []string{"d", "clk"}, []string{"q"},
	[]*logicsim.PartSpec{not, DLatch, DLatch}, `
	in[1] -> 2.in[1]
	in[1] -> 0.in[0]
	in[0] -> 1.in[0]; 0.out[0] -> 1.in[1]
	1.out[0] -> 2.in[0]
	2.out[0] -> out[0]`)

// Bit is a 1-bit register. It powers up with out = 1.
//
//	Inputs: in, load, clk
//	Outputs: out
//	Function: if load = 1 at the rising edge of clk, out takes the value of in,
//	otherwise out holds its state
//
var Bit = define("Bit", []string{pIn, "load", "clk"}, []string{pOut},
	[]*logicsim.PartSpec{Mux, DFF}, `
	1.out[0] -> 0.in[0]
	in[0] -> 0.in[1]
	in[1] -> 0.in[2]
	0.out[0] -> 1.in[0]
	in[2] -> 1.in[1]
	1.out[0] -> out[0]`)
