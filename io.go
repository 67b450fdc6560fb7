// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package logicsim

// A Terminal is a circuit-level signal pin: one of the inputs a user drives
// or one of the outputs a circuit publishes.
//
// A terminal behaves like a wire junction. When one or more emitters are
// connected to it, its state is the logical OR of their states, whatever
// signal it is told about. With no emitter connected, it takes the received
// signal as is. Unlike chip pins, terminals always forward what they receive
// to their own subscribers, even if their state did not change.
//
type Terminal struct {
	Emitter
	net  *Network
	name string
	srcs []*Emitter
}

// Terminal returns a new terminal in network n.
//
func (n *Network) Terminal(name string) *Terminal {
	return &Terminal{net: n, name: name}
}

// Name returns the terminal name.
//
func (t *Terminal) Name() string { return t.name }

func (t *Terminal) String() string { return t.name }

// Receive implements Receiver.
//
func (t *Terminal) Receive(s bool) error {
	if len(t.srcs) > 0 {
		s = false
		for _, e := range t.srcs {
			if e.state {
				s = true
				break
			}
		}
	}
	return t.net.step(t, func() error { return t.Set(s) })
}

func (t *Terminal) attach(e *Emitter) {
	t.srcs = append(t.srcs, e)
}

func (t *Terminal) detach(e *Emitter) {
	for i, x := range t.srcs {
		if x == e {
			t.srcs = append(t.srcs[:i], t.srcs[i+1:]...)
			return
		}
	}
}

// Receivers converts a list of terminals to a list of receivers, as expected by
// Network.NewCustom.
//
func Receivers(ts ...*Terminal) []Receiver {
	rs := make([]Receiver, len(ts))
	for i, t := range ts {
		rs[i] = t
	}
	return rs
}
