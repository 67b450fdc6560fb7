// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// GateKind selects the function of a built-in gate.
//
type GateKind int

// Built-in gates. NOT has one input, all the others have two.
//
const (
	gateNone GateKind = iota
	GateAnd
	GateOr
	GateNot
	GateNand
	GateNor
	GateXor
	GateXnor
	gateCount
)

var gateNames = [...]string{
	gateNone: "NONE",
	GateAnd:  "AND",
	GateOr:   "OR",
	GateNot:  "NOT",
	GateNand: "NAND",
	GateNor:  "NOR",
	GateXor:  "XOR",
	GateXnor: "XNOR",
}

func (k GateKind) String() string {
	if k < 0 || k >= gateCount {
		return "GateKind(?)"
	}
	return gateNames[k]
}

// Arity returns the number of inputs of gates of kind k.
//
func (k GateKind) Arity() int {
	if k == GateNot {
		return 1
	}
	return 2
}

// common pin names
const (
	pinA   = "a"
	pinB   = "b"
	pinIn  = "in"
	pinOut = "out"
)

var gateParts [gateCount]*PartSpec

func init() {
	for k := GateAnd; k < gateCount; k++ {
		p := &PartSpec{Name: k.String(), Inputs: []string{pinA, pinB}, Outputs: []string{pinOut}, gate: k}
		if k.Arity() == 1 {
			p.Inputs = []string{pinIn}
		}
		gateParts[k] = p
	}
}

// GatePart returns the part spec of the built-in gate of kind k.
//
func GatePart(k GateKind) *PartSpec {
	if k <= gateNone || k >= gateCount {
		panic("invalid gate kind")
	}
	return gateParts[k]
}

// A Gate is a built-in gate: its output is a fixed boolean function of its
// inputs.
//
type Gate struct {
	chip
	kind GateKind
}

// Gate returns a new gate of kind k.
//
func (n *Network) Gate(k GateKind) *Gate {
	g := &Gate{kind: k}
	// gates have no internals, so the initial evaluation cannot fail.
	if err := n.add(g, GatePart(k).Name, k.Arity(), 1); err != nil {
		panic(err)
	}
	return g
}

// Kind returns the gate kind.
//
func (g *Gate) Kind() GateKind { return g.kind }

// Evaluate implements Chip.
//
func (g *Gate) Evaluate() error {
	a := g.in[0].state
	var b bool
	if len(g.in) > 1 {
		b = g.in[1].state
	}
	var out bool
	switch g.kind {
	case GateAnd:
		out = a && b
	case GateOr:
		out = a || b
	case GateNot:
		out = !a
	case GateNand:
		out = !(a && b)
	case GateNor:
		out = !(a || b)
	case GateXor:
		out = a != b
	case GateXnor:
		out = a == b
	}
	return g.out[0].Receive(out)
}
