// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chiplib

import "github.com/db47h/logicsim"

// Nand is a NAND gate made of an AND gate followed by a NOT gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a && b)
//
var Nand = define("Nand", []string{pA, pB}, []string{pOut},
	[]*logicsim.PartSpec{and, not}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	0.out[0] -> 1.in[0]
	1.out[0] -> out[0]`)

// Nor is a NOR gate made of an OR gate followed by a NOT gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = !(a || b)
//
var Nor = define("Nor", []string{pA, pB}, []string{pOut},
	[]*logicsim.PartSpec{or, not}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	0.out[0] -> 1.in[0]
	1.out[0] -> out[0]`)

// Xor is a XOR gate made of four Nand parts.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = (a && !b) || (!a && b)
//
var Xor = define("Xor", []string{pA, pB}, []string{pOut},
	[]*logicsim.PartSpec{Nand, Nand, Nand, Nand}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	in[0] -> 1.in[0]
	0.out[0] -> 1.in[1]
	in[1] -> 2.in[0]
	0.out[0] -> 2.in[1]
	1.out[0] -> 3.in[0]
	2.out[0] -> 3.in[1]
	3.out[0] -> out[0]`)

// Xnor is a XNOR gate made of a Xor part followed by a NOT gate.
//
//	Inputs: a, b
//	Outputs: out
//	Function: out = a && b || !a && !b
//
var Xnor = define("Xnor", []string{pA, pB}, []string{pOut},
	[]*logicsim.PartSpec{Xor, not}, `
	in[0] -> 0.in[0]
	in[1] -> 0.in[1]
	0.out[0] -> 1.in[0]
	1.out[0] -> out[0]`)
