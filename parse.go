// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"github.com/db47h/logicsim/internal/hdl"
)

// ParseLocation parses a pin location. The syntax is the one returned by
// PinLocation.String:
//
//	in[0]     // circuit input terminal 0
//	out[1]    // circuit output terminal 1
//	2.in[0]   // input pin 0 of chip 2
//	2.out[0]  // output pin 0 of chip 2
//
func ParseLocation(s string) (PinLocation, error) {
	l, err := hdl.ParseLoc(s)
	if err != nil {
		return PinLocation{}, err
	}
	return location(l), nil
}

// ParseWires parses a list of wires of the form "src -> dst", separated by
// commas, semicolons or new lines. The locations are returned as written; see
// Normalize.
//
// Pin index ranges expand into one wire per pin:
//
//	in[0..3] -> 0.in[4..7]  // in[0] -> 0.in[4] ... in[3] -> 0.in[7]
//	in[0] -> 0.in[0..1]     // in[0] -> 0.in[0], in[0] -> 0.in[1]
//
func ParseWires(s string) ([]WireConnection, error) {
	ws, err := hdl.ParseWires(s)
	if err != nil {
		return nil, err
	}
	out := make([]WireConnection, len(ws))
	for i, w := range ws {
		out[i] = WireConnection{location(w.From), location(w.To)}
	}
	return out, nil
}

func location(l hdl.Loc) PinLocation {
	switch {
	case l.Chip < 0 && l.Output:
		return SignalOut(l.Index)
	case l.Chip < 0:
		return SignalIn(l.Index)
	case l.Output:
		return ChipOut(l.Chip, l.Index)
	}
	return ChipIn(l.Chip, l.Index)
}
