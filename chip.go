// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Chip is a named unit with a fixed number of input and output pins and a
// single evaluation function.
//
// The set of chips is closed: *Gate for built-in gates and *Custom for chips
// wrapping a sub-network.
//
type Chip interface {
	// ID returns the chip's index in its network.
	ID() ChipID
	// Name returns the chip's display name.
	Name() string
	// Inputs returns the chip's input pins.
	Inputs() []*ChipPin
	// Outputs returns the chip's output pins.
	Outputs() []*ChipPin
	// Evaluate reads the input pins and updates the output pins accordingly.
	Evaluate() error

	String() string
	base() *chip
}

// chip holds the state common to all chips.
type chip struct {
	net  *Network
	id   ChipID
	name string
	in   []*ChipPin
	out  []*ChipPin
}

func (c *chip) base() *chip { return c }

func (c *chip) ID() ChipID { return c.id }

func (c *chip) Name() string { return c.name }

func (c *chip) Inputs() []*ChipPin { return c.in }

func (c *chip) Outputs() []*ChipPin { return c.out }

func (c *chip) String() string { return c.name + "#" + strconv.Itoa(int(c.id)) }

// A MountFn builds the internals of a custom part into network n and returns
// the entry pins, where the part's inputs are forwarded, and the exit pins,
// where the part's outputs are read.
//
// For example, a NAND gate can be mounted like this:
//
//	func(n *Network) (entry, exit []Receiver, err error) {
//		a, b, out := n.Terminal("a"), n.Terminal("b"), n.Terminal("out")
//		and, not := n.Gate(GateAnd), n.Gate(GateNot)
//		// wire a and b to and's inputs, and -> not -> out
//		...
//		return Receivers(a, b), Receivers(out), nil
//	}
//
type MountFn func(n *Network) (entry, exit []Receiver, err error)

// A PartSpec is the blueprint of a chip.
//
// Built-in gates are obtained with GatePart. Custom parts are implemented by
// setting a Mount function; Board.Package builds one from a wired board.
//
type PartSpec struct {
	// Part name.
	Name string
	// Input pin names. The count must match the number of entry pins returned
	// by Mount.
	Inputs []string
	// Output pin names. The count must match the number of exit pins returned
	// by Mount.
	Outputs []string
	// Mount function (see MountFn). Nil for built-in gates.
	Mount MountFn

	gate GateKind
}

// New creates a new instance of part p in network n.
//
// Every instance of a custom part gets its own internal network.
//
func (n *Network) New(p *PartSpec) (Chip, error) {
	if p.gate != gateNone {
		return n.Gate(p.gate), nil
	}
	if p.Mount == nil {
		return nil, errors.Wrapf(ErrConfiguration, "part %s: no mount function", p.Name)
	}
	sub := n.sub(p.Name)
	entry, exit, err := p.Mount(sub)
	if err != nil {
		return nil, errors.Wrap(err, "mount "+p.Name)
	}
	if len(entry) != len(p.Inputs) {
		return nil, errors.Wrapf(ErrConfiguration, "part %s: %d entry pins for %d inputs", p.Name, len(entry), len(p.Inputs))
	}
	if len(exit) != len(p.Outputs) {
		return nil, errors.Wrapf(ErrConfiguration, "part %s: %d exit pins for %d outputs", p.Name, len(exit), len(p.Outputs))
	}
	c, err := n.newCustom(p.Name, entry, exit, sub)
	if err != nil {
		return nil, err
	}
	c.spec = p
	return c, nil
}

// A Custom chip wraps a sub-network behind its own pins.
//
// When evaluated, it forwards the state of its input pins to the entry pins of
// the sub-network, which settles synchronously, then copies the state of the
// exit pins to its own output pins. From the outside, it is indistinguishable
// from a built-in gate.
//
type Custom struct {
	chip
	entry    []Receiver
	exit     []Receiver
	internal *Network
	spec     *PartSpec
}

// NewCustom creates a custom chip with one input pin per entry pin and one
// output pin per exit pin.
//
// The entry and exit pins must already be part of a wired network. All the
// chips created this way from the same pins share that network, and its state.
// Use a PartSpec and New to get independent instances.
//
func (n *Network) NewCustom(name string, entry, exit []Receiver) (*Custom, error) {
	return n.newCustom(name, entry, exit, nil)
}

func (n *Network) newCustom(name string, entry, exit []Receiver, internal *Network) (*Custom, error) {
	for i, r := range entry {
		if r == nil {
			return nil, errors.Wrapf(ErrConfiguration, "%s: nil entry pin %d", name, i)
		}
	}
	for i, r := range exit {
		if r == nil {
			return nil, errors.Wrapf(ErrConfiguration, "%s: nil exit pin %d", name, i)
		}
	}
	c := &Custom{
		entry:    append([]Receiver(nil), entry...),
		exit:     append([]Receiver(nil), exit...),
		internal: internal,
	}
	if err := n.add(c, name, len(entry), len(exit)); err != nil {
		return nil, errors.Wrap(err, "initialize "+name)
	}
	return c, nil
}

// Spec returns the part c was built from, or nil if it was created by
// NewCustom.
//
func (c *Custom) Spec() *PartSpec { return c.spec }

// Internal returns the network holding the chip's internals, or nil if it was
// created by NewCustom.
//
func (c *Custom) Internal() *Network { return c.internal }

// Evaluate implements Chip.
//
func (c *Custom) Evaluate() error {
	for i, p := range c.in {
		if err := c.entry[i].Receive(p.state); err != nil {
			return err
		}
	}
	for i, p := range c.out {
		if err := p.Receive(c.exit[i].State()); err != nil {
			return err
		}
	}
	return nil
}
