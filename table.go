// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/pkg/errors"
)

// MaxTableInputs is the maximum number of inputs TruthTable accepts.
//
const MaxTableInputs = 16

// A Row is one line of a truth table.
//
type Row struct {
	In  []bool
	Out []bool
}

// TruthTable drives the input terminals of b through all possible input
// vectors and records the settled outputs.
//
// Rows are in binary counting order, input 0 being the most significant bit.
// Inputs are left in the state of the last row. Sequential circuits yield the
// outputs reached from the state left by the previous row.
//
func TruthTable(b *Board) ([]Row, error) {
	n := b.NumInputs()
	if n > MaxTableInputs {
		return nil, errors.Errorf("too many inputs for a truth table: %d > %d", n, MaxTableInputs)
	}
	rows := make([]Row, 0, 1<<uint(n))
	for v := 0; v < 1<<uint(n); v++ {
		in := Bits(v, n)
		for i, s := range in {
			if err := b.Set(i, s); err != nil {
				return rows, errors.Wrapf(err, "row %d", v)
			}
		}
		out := make([]bool, b.NumOutputs())
		for i := range out {
			out[i] = b.Output(i).State()
		}
		rows = append(rows, Row{In: in, Out: out})
	}
	return rows, nil
}

// Bits returns the n low bits of v, most significant first.
//
func Bits(v, n int) []bool {
	bs := make([]bool, n)
	for i := range bs {
		bs[i] = v&(1<<uint(n-i-1)) != 0
	}
	return bs
}
