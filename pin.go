// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

import "strconv"

// A Receiver is a pin that can be told about a new state.
//
// Pins never change each other's state directly: an Emitter calls Receive on
// each of its subscribers.
//
type Receiver interface {
	// State returns the current state of the pin.
	State() bool
	// Receive delivers a new signal to the pin.
	Receive(s bool) error
}

// fanIn is implemented by receivers that combine the states of all the
// emitters connected to them.
type fanIn interface {
	attach(e *Emitter)
	detach(e *Emitter)
}

// An Emitter is a signal source that fans its state out to a list of
// subscribers. Subscribers are notified in the order they were connected.
//
// The zero value is a valid Emitter with state false and no subscribers.
//
type Emitter struct {
	state bool
	subs  []Receiver
}

// State returns the state of the emitter.
//
func (e *Emitter) State() bool { return e.state }

// Set sets the state of the emitter and notifies all subscribers, whether the
// state changed or not.
//
func (e *Emitter) Set(s bool) error {
	e.state = s
	return e.broadcast()
}

func (e *Emitter) broadcast() error {
	// e.state is re-read on each iteration: a feedback loop may have changed
	// it while a previous subscriber was settling.
	for _, r := range e.subs {
		if err := r.Receive(e.state); err != nil {
			return err
		}
	}
	return nil
}

// Connect subscribes r to e and immediately sends it the current state of e.
//
func (e *Emitter) Connect(r Receiver) error {
	e.subs = append(e.subs, r)
	if f, ok := r.(fanIn); ok {
		f.attach(e)
	}
	return r.Receive(e.state)
}

// Disconnect removes one subscription of r from e then sends r a low signal,
// as if the wire had been cut.
//
func (e *Emitter) Disconnect(r Receiver) error {
	i := indexOf(e.subs, r)
	if i < 0 {
		return ErrNotConnected
	}
	e.subs = append(e.subs[:i], e.subs[i+1:]...)
	if f, ok := r.(fanIn); ok {
		f.detach(e)
	}
	return r.Receive(false)
}

// Subscribers returns a copy of the subscriber list of e.
//
func (e *Emitter) Subscribers() []Receiver {
	return append([]Receiver(nil), e.subs...)
}

func indexOf(rs []Receiver, r Receiver) int {
	for i, x := range rs {
		if x == r {
			return i
		}
	}
	return -1
}

// PinKind tells whether a chip pin is an input or an output.
//
type PinKind int

// Pin kinds.
const (
	Input PinKind = iota
	Output
)

func (k PinKind) String() string {
	if k == Input {
		return "in"
	}
	return "out"
}

// A ChipPin is a pin of a chip.
//
// Receiving a new state on an input pin makes the owning chip evaluate its
// outputs. Receiving a new state on an output pin fans it out to its
// subscribers. In both cases, receiving the state the pin already holds is a
// no-op; this is what stops cascades through feedback wiring.
//
type ChipPin struct {
	Emitter
	net   *Network
	owner ChipID
	kind  PinKind
	index int
}

// Owner returns the ID of the chip p belongs to.
//
func (p *ChipPin) Owner() ChipID { return p.owner }

// Kind returns the pin kind.
//
func (p *ChipPin) Kind() PinKind { return p.kind }

// Index returns the position of p in its owner's input or output pin list.
//
func (p *ChipPin) Index() int { return p.index }

// Receive implements Receiver.
//
func (p *ChipPin) Receive(s bool) error {
	if s == p.state {
		return nil
	}
	p.state = s
	if p.kind == Input {
		return p.net.evaluate(p.owner)
	}
	return p.broadcast()
}

func (p *ChipPin) String() string {
	c := p.net.Chip(p.owner)
	if c == nil {
		return "?." + p.kind.String() + "[" + strconv.Itoa(p.index) + "]"
	}
	return c.Name() + "#" + strconv.Itoa(int(p.owner)) + "." + p.kind.String() + "[" + strconv.Itoa(p.index) + "]"
}
