// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package logicsim provides a push-based simulator for binary logic circuits.

Circuits are built from built-in gates (AND, OR, NOT and friends) and custom
chips that wrap a previously wired network behind their own pins. Custom chips
can be nested without limit.

Changes propagate synchronously: setting a pin returns once every chip
downstream has settled. A chip only re-evaluates when one of its inputs
actually changes, which is what stops cascades through feedback wiring.
Feedback loops that never settle, like an odd ring of inverters, are reported
as ErrOscillation once a cascade goes deeper than the network's depth limit.

A Board models a circuit being edited: it places chips, checks wires against
the topology rules (see Normalize), records them and can package the result
into a reusable part:

	n := logicsim.NewNetwork()
	b := logicsim.NewBoard(n)
	b.AddInput("a")
	b.AddInput("b")
	b.AddOutput("out")
	b.Place(logicsim.GatePart(logicsim.GateAnd))
	b.Place(logicsim.GatePart(logicsim.GateNot))
	err := b.Wire("in[0] -> 0.in[0], in[1] -> 0.in[1], 0.out[0] -> 1.in[0], 1.out[0] -> out[0]")
	nand := b.Package("NAND")

*/
package logicsim
