// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// DefaultMaxDepth is the default cascade depth limit of a network.
//
// Each chip evaluation and each terminal update in a cascade counts for one
// level. A combinational circuit needs as many levels as its longest path; only
// feedback loops that never settle should reach this limit.
//
const DefaultMaxDepth = 4096

// ChipID identifies a chip within its network.
//
type ChipID int

// An Option configures a Network.
//
type Option func(n *Network)

// WithMaxDepth sets the cascade depth limit. Values less than 1 are ignored.
//
func WithMaxDepth(depth int) Option {
	return func(n *Network) {
		if depth > 0 {
			n.maxDepth = depth
		}
	}
}

// WithLogger sets the logger used by the network. The default logger discards
// everything.
//
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// A Network is an arena of chips. Chips and the pins they own belong to exactly
// one network and are identified by their ChipID.
//
// Propagation is synchronous: setting a pin returns once every chip downstream
// has settled. A Network is not safe for concurrent use.
//
type Network struct {
	chips    []Chip
	depth    int
	maxDepth int
	steps    uint
	log      *slog.Logger
}

// NewNetwork returns a new, empty network.
//
func NewNetwork(opts ...Option) *Network {
	n := &Network{
		maxDepth: DefaultMaxDepth,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// sub returns a network for the internals of a custom chip.
func (n *Network) sub(name string) *Network {
	return &Network{
		maxDepth: n.maxDepth,
		log:      n.log.With("part", name),
	}
}

// Logger returns the network's logger.
//
func (n *Network) Logger() *slog.Logger { return n.log }

// Chip returns the chip with the given id or nil if no such chip exists.
//
func (n *Network) Chip(id ChipID) Chip {
	if id < 0 || int(id) >= len(n.chips) {
		return nil
	}
	return n.chips[id]
}

// Chips returns the chips of the network in creation order.
//
func (n *Network) Chips() []Chip {
	return append([]Chip(nil), n.chips...)
}

// Size returns the number of chips in the network. Chips inside custom chips
// are not counted.
//
func (n *Network) Size() int { return len(n.chips) }

// Steps returns the number of chip evaluations performed so far in n.
//
func (n *Network) Steps() uint { return n.steps }

// add registers c in the arena, creates its pins and computes its initial
// outputs.
func (n *Network) add(c Chip, name string, inputs, outputs int) error {
	b := c.base()
	if b.net != nil {
		panic("chip already initialized")
	}
	b.net = n
	b.id = ChipID(len(n.chips))
	b.name = name
	b.in = make([]*ChipPin, inputs)
	for i := range b.in {
		b.in[i] = &ChipPin{net: n, owner: b.id, kind: Input, index: i}
	}
	b.out = make([]*ChipPin, outputs)
	for i := range b.out {
		b.out[i] = &ChipPin{net: n, owner: b.id, kind: Output, index: i}
	}
	n.chips = append(n.chips, c)
	n.log.Debug("chip added", "chip", name, "id", b.id, "inputs", inputs, "outputs", outputs)

	// outputs must reflect an all-low input vector.
	if err := n.evaluate(b.id); err != nil {
		n.chips = n.chips[:b.id]
		return err
	}
	return nil
}

// evaluate runs one evaluation of chip id.
func (n *Network) evaluate(id ChipID) error {
	c := n.chips[id]
	return n.step(c, func() error {
		n.steps++
		return c.Evaluate()
	})
}

// step runs fn one level deeper in the current cascade.
func (n *Network) step(what fmt.Stringer, fn func() error) error {
	if n.depth >= n.maxDepth {
		n.log.Warn("propagation depth exceeded", "at", what.String(), "max", n.maxDepth)
		return errors.Wrapf(ErrOscillation, "%v: cascade deeper than %d", what, n.maxDepth)
	}
	n.depth++
	err := fn()
	n.depth--
	return err
}
