// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// LocationKind tells what kind of pin a PinLocation refers to.
//
type LocationKind int

// Location kinds.
//
const (
	LocNone         LocationKind = iota // no pin
	LocChipInput                        // input pin of a chip
	LocChipOutput                       // output pin of a chip
	LocSignalInput                      // circuit input terminal
	LocSignalOutput                     // circuit output terminal
)

func (k LocationKind) String() string {
	switch k {
	case LocChipInput:
		return "chip input"
	case LocChipOutput:
		return "chip output"
	case LocSignalInput:
		return "signal input"
	case LocSignalOutput:
		return "signal output"
	}
	return "none"
}

func (k LocationKind) isChip() bool {
	return k == LocChipInput || k == LocChipOutput
}

// A PinLocation identifies a pin on a board: the kind of pin, the container
// (a chip index or a terminal index) and the pin index within that container.
// Terminals have a single pin, at index 0.
//
// The zero value refers to no pin.
//
type PinLocation struct {
	Kind      LocationKind
	Container int
	Pin       int
}

// ChipIn returns the location of input pin p of chip c.
//
func ChipIn(c, p int) PinLocation { return PinLocation{LocChipInput, c, p} }

// ChipOut returns the location of output pin p of chip c.
//
func ChipOut(c, p int) PinLocation { return PinLocation{LocChipOutput, c, p} }

// SignalIn returns the location of circuit input terminal t.
//
func SignalIn(t int) PinLocation { return PinLocation{LocSignalInput, t, 0} }

// SignalOut returns the location of circuit output terminal t.
//
func SignalOut(t int) PinLocation { return PinLocation{LocSignalOutput, t, 0} }

// IsNone returns true if l does not refer to any pin.
//
func (l PinLocation) IsNone() bool { return l.Kind == LocNone }

// Clear resets l so that it does not refer to any pin.
//
func (l *PinLocation) Clear() { *l = PinLocation{} }

// String returns l in the syntax accepted by ParseLocation.
//
func (l PinLocation) String() string {
	switch l.Kind {
	case LocChipInput:
		return strconv.Itoa(l.Container) + ".in[" + strconv.Itoa(l.Pin) + "]"
	case LocChipOutput:
		return strconv.Itoa(l.Container) + ".out[" + strconv.Itoa(l.Pin) + "]"
	case LocSignalInput:
		return "in[" + strconv.Itoa(l.Container) + "]"
	case LocSignalOutput:
		return "out[" + strconv.Itoa(l.Container) + "]"
	}
	return "none"
}

// A WireConnection records a wire from a driving pin to a driven pin.
//
type WireConnection struct {
	Source      PinLocation
	Destination PinLocation
}

func (w WireConnection) String() string {
	return w.Source.String() + " -> " + w.Destination.String()
}

// legal lists the location kinds that can be wired together, source first.
var legal = map[[2]LocationKind]bool{
	{LocSignalInput, LocChipInput}:   true,
	{LocChipOutput, LocChipInput}:    true,
	{LocChipOutput, LocSignalOutput}: true,
}

// Normalize checks that a wire can be placed between a and b and returns the
// locations in driving order: source first.
//
// Legal wires go from a circuit input to a chip input, from a chip output to a
// chip input, or from a chip output to a circuit output. A chip cannot be
// wired to itself; feedback loops must go through at least two chips.
// On error, the returned error's cause is ErrInvalidConnection.
//
func Normalize(a, b PinLocation) (src, dst PinLocation, err error) {
	switch {
	case legal[[2]LocationKind{a.Kind, b.Kind}]:
		src, dst = a, b
	case legal[[2]LocationKind{b.Kind, a.Kind}]:
		src, dst = b, a
	default:
		return a, b, errors.Wrapf(ErrInvalidConnection, "cannot wire %v to %v", a.Kind, b.Kind)
	}
	if src.Kind.isChip() && dst.Kind.isChip() && src.Container == dst.Container {
		return a, b, errors.Wrapf(ErrInvalidConnection, "chip %d wired to itself", src.Container)
	}
	return src, dst, nil
}
