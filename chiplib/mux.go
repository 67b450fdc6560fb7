// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import "github.com/db47h/logicsim"

// Mux is a multiplexer.
//
//	Inputs: a, b, sel
//	Outputs: out
//	Function: if sel == 0 { out = a } else { out = b }
//
var Mux = define("Mux", []string{pA, pB, pSel}, []string{pOut},
	[]*logicsim.PartSpec{not, and, and, or}, `
	in[2] -> 0.in[0]
	in[0] -> 1.in[0]
	0.out[0] -> 1.in[1]
	in[1] -> 2.in[0]
	in[2] -> 2.in[1]
	1.out[0] -> 3.in[0]
	2.out[0] -> 3.in[1]
	3.out[0] -> out[0]`)

// DMux is a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
var DMux = define("DMux", []string{pIn, pSel}, []string{pA, pB},
	[]*logicsim.PartSpec{not, and, and}, `
	in[1] -> 0.in[0]
	in[0] -> 1.in[0]
	0.out[0] -> 1.in[1]
	in[0] -> 2.in[0]
	in[1] -> 2.in[1]
	1.out[0] -> out[0]
	2.out[0] -> out[1]`)
