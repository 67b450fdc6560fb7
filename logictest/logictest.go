// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logictest provides utility functions for testing circuits.
//
package logictest

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/logicsim"
)

// A Probe is a Receiver that records every signal it receives. Connect it to
// an emitter to count notifications.
//
type Probe struct {
	state   bool
	Calls   int
	History []bool
}

// State implements logicsim.Receiver.
//
func (p *Probe) State() bool { return p.state }

// Receive implements logicsim.Receiver.
//
func (p *Probe) Receive(s bool) error {
	p.Calls++
	p.History = append(p.History, s)
	p.state = s
	return nil
}

// Reset clears the call count and history.
//
func (p *Probe) Reset() {
	p.Calls = 0
	p.History = nil
}

// Wrap places part p on a new board, with one circuit terminal per pin of p,
// wired straight to it.
//
func Wrap(t testing.TB, p *logicsim.PartSpec, opts ...logicsim.Option) *logicsim.Board {
	t.Helper()
	b := logicsim.NewBoard(logicsim.NewNetwork(opts...))
	c, err := b.Place(p)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range p.Inputs {
		b.AddInput(n)
		if _, err := b.Connect(logicsim.SignalIn(i), logicsim.ChipIn(c, i)); err != nil {
			t.Fatal(err)
		}
	}
	for i, n := range p.Outputs {
		b.AddOutput(n)
		if _, err := b.Connect(logicsim.ChipOut(c, i), logicsim.SignalOut(i)); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

// CheckTable checks the truth table of a board. want[o][v] is the expected
// state of output o for input vector v, in the order of logicsim.TruthTable.
//
func CheckTable(t testing.TB, b *logicsim.Board, want [][]bool) {
	t.Helper()
	rows, err := logicsim.TruthTable(b)
	if err != nil {
		t.Fatal(err)
	}
	for v, r := range rows {
		for o, got := range r.Out {
			if o >= len(want) || v >= len(want[o]) {
				t.Fatalf("no expected value for output %d, row %d", o, v)
			}
			if got != want[o][v] {
				t.Errorf("%s => %s = %v, got %v", inputString(b, r.In), b.Output(o).Name(), want[o][v], got)
			}
		}
	}
}

// CheckPart is a shorthand for CheckTable(t, Wrap(t, p), want).
//
func CheckPart(t testing.TB, p *logicsim.PartSpec, want [][]bool) {
	t.Helper()
	CheckTable(t, Wrap(t, p), want)
}

func inputString(b *logicsim.Board, in []bool) string {
	var sb strings.Builder
	for i, s := range in {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(b.Input(i).Name())
		sb.WriteRune('=')
		if s {
			sb.WriteRune('1')
		} else {
			sb.WriteRune('0')
		}
	}
	return sb.String()
}

// randomVectors is the number of input vectors tried by ComparePart when a
// part has too many inputs for an exhaustive check.
const randomVectors = 1 << 12

// ComparePart takes two parts and compares their outputs given the same inputs.
// Both parts must have the same input/output interface.
//
func ComparePart(t testing.TB, p1, p2 *logicsim.PartSpec) {
	t.Helper()

	if len(p1.Inputs) != len(p2.Inputs) {
		t.Fatal("len(p1.Inputs) != len(p2.Inputs)")
	}
	if len(p1.Outputs) != len(p2.Outputs) {
		t.Fatal("len(p1.Outputs) != len(p2.Outputs)")
	}
	for i := range p1.Inputs {
		if p1.Inputs[i] != p2.Inputs[i] {
			t.Fatalf("p1.Inputs[%d] = %q != p2.Inputs[%d] = %q", i, p1.Inputs[i], i, p2.Inputs[i])
		}
	}

	b := logicsim.NewBoard(logicsim.NewNetwork())
	c1, err := b.Place(p1)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := b.Place(p2)
	if err != nil {
		t.Fatal(err)
	}
	for i, n := range p1.Inputs {
		b.AddInput(n)
		for _, c := range []int{c1, c2} {
			if _, err := b.Connect(logicsim.SignalIn(i), logicsim.ChipIn(c, i)); err != nil {
				t.Fatal(err)
			}
		}
	}

	check := func(in []bool) {
		t.Helper()
		for i, s := range in {
			if err := b.Set(i, s); err != nil {
				t.Fatal(err)
			}
		}
		for o := range p1.Outputs {
			s1 := b.Chip(c1).Outputs()[o].State()
			s2 := b.Chip(c2).Outputs()[o].State()
			if s1 != s2 {
				t.Fatalf("%s => %s: %s = %v, %s = %v", inputString(b, in), p1.Outputs[o], p1.Name, s1, p2.Name, s2)
			}
		}
	}

	n := len(p1.Inputs)
	if n <= logicsim.MaxTableInputs {
		for v := 0; v < 1<<uint(n); v++ {
			check(logicsim.Bits(v, n))
		}
		return
	}
	in := make([]bool, n)
	for i := 0; i < randomVectors; i++ {
		for j := range in {
			in[j] = rand.Int63()&(1<<62) != 0
		}
		check(in)
	}
	t.Logf("%s vs %s: %d random vectors", p1.Name, p2.Name, randomVectors)
}
