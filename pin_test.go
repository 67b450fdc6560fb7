package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/db47h/logicsim/logictest"
)

func TestEmitter_connect_seeds_state(t *testing.T) {
	var e ls.Emitter
	if err := e.Set(true); err != nil {
		t.Fatal(err)
	}
	p := new(logictest.Probe)
	if err := e.Connect(p); err != nil {
		t.Fatal(err)
	}
	if !p.State() || p.Calls != 1 {
		t.Fatalf("probe state = %v after %d calls, expected true after 1 call", p.State(), p.Calls)
	}

	// chip input pins are seeded too, and their chip evaluated.
	n := ls.NewNetwork()
	not := n.Gate(ls.GateNot)
	if err := e.Connect(not.Inputs()[0]); err != nil {
		t.Fatal(err)
	}
	if !not.Inputs()[0].State() || not.Outputs()[0].State() {
		t.Fatal("NOT gate not updated on connect")
	}
}

func TestEmitter_order(t *testing.T) {
	var e ls.Emitter
	var order []int
	for i := 0; i < 4; i++ {
		if err := e.Connect(&recorder{i, &order}); err != nil {
			t.Fatal(err)
		}
	}
	order = order[:0]
	if err := e.Set(true); err != nil {
		t.Fatal(err)
	}
	if len(order) != 4 {
		t.Fatalf("got %d notifications, expected 4", len(order))
	}
	for i, v := range order {
		if i != v {
			t.Fatalf("notification order %v", order)
		}
	}
}

// Set always forwards, even if the state does not change.
func TestEmitter_set_unconditional(t *testing.T) {
	var e ls.Emitter
	p := new(logictest.Probe)
	if err := e.Connect(p); err != nil {
		t.Fatal(err)
	}
	p.Reset()
	for i := 0; i < 3; i++ {
		if err := e.Set(false); err != nil {
			t.Fatal(err)
		}
	}
	if p.Calls != 3 {
		t.Fatalf("got %d calls, expected 3", p.Calls)
	}
}

func TestEmitter_disconnect(t *testing.T) {
	var e ls.Emitter
	p := new(logictest.Probe)
	// duplicate subscriptions need as many disconnections.
	for i := 0; i < 2; i++ {
		if err := e.Connect(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := e.Set(true); err != nil {
		t.Fatal(err)
	}
	if err := e.Disconnect(p); err != nil {
		t.Fatal(err)
	}
	if p.State() {
		t.Fatal("disconnected receiver not driven low")
	}
	if len(e.Subscribers()) != 1 {
		t.Fatalf("got %d subscribers, expected 1", len(e.Subscribers()))
	}
	if err := e.Disconnect(p); err != nil {
		t.Fatal(err)
	}
	if err := e.Disconnect(p); err != ls.ErrNotConnected {
		t.Fatalf("got error %v, expected %v", err, ls.ErrNotConnected)
	}
}

func TestChipPin_idempotent(t *testing.T) {
	n := ls.NewNetwork()
	and := n.Gate(ls.GateAnd)
	p := new(logictest.Probe)
	if err := and.Outputs()[0].Connect(p); err != nil {
		t.Fatal(err)
	}
	p.Reset()
	steps := n.Steps()

	a, b := and.Inputs()[0], and.Inputs()[1]
	for i := 0; i < 2; i++ {
		if err := a.Receive(true); err != nil {
			t.Fatal(err)
		}
	}
	if n.Steps()-steps != 1 {
		t.Fatalf("got %d evaluations, expected 1", n.Steps()-steps)
	}
	if p.Calls != 0 {
		t.Fatalf("output fanned out %d times, expected 0", p.Calls)
	}

	for i := 0; i < 2; i++ {
		if err := b.Receive(true); err != nil {
			t.Fatal(err)
		}
	}
	if n.Steps()-steps != 2 {
		t.Fatalf("got %d evaluations, expected 2", n.Steps()-steps)
	}
	if p.Calls != 1 || !p.State() {
		t.Fatalf("output fanned out %d times with state %v, expected once with true", p.Calls, p.State())
	}

	// re-evaluating with the same inputs has no visible effect.
	if err := and.Evaluate(); err != nil {
		t.Fatal(err)
	}
	if p.Calls != 1 {
		t.Fatalf("output fanned out %d times, expected 1", p.Calls)
	}
}

func TestChipPin_identity(t *testing.T) {
	n := ls.NewNetwork()
	n.Gate(ls.GateNot)
	or := n.Gate(ls.GateOr)
	for i, p := range or.Inputs() {
		if p.Owner() != or.ID() || p.Kind() != ls.Input || p.Index() != i {
			t.Errorf("input %d: owner %d, kind %v, index %d", i, p.Owner(), p.Kind(), p.Index())
		}
	}
	out := or.Outputs()[0]
	if out.Owner() != 1 || out.Kind() != ls.Output || out.Index() != 0 {
		t.Errorf("output: owner %d, kind %v, index %d", out.Owner(), out.Kind(), out.Index())
	}
	if s := out.String(); s != "OR#1.out[0]" {
		t.Errorf("got %q", s)
	}
}

// Terminals OR together the states of the emitters connected to them.
func TestTerminal_fan_in(t *testing.T) {
	n := ls.NewNetwork()
	var e1, e2 ls.Emitter
	term := n.Terminal("t")
	for _, e := range []*ls.Emitter{&e1, &e2} {
		if err := e.Connect(term); err != nil {
			t.Fatal(err)
		}
	}
	td := []struct {
		s1, s2 bool
	}{
		{false, false}, {false, true}, {true, false}, {true, true},
	}
	for _, d := range td {
		if err := e1.Set(d.s1); err != nil {
			t.Fatal(err)
		}
		if err := e2.Set(d.s2); err != nil {
			t.Fatal(err)
		}
		if term.State() != (d.s1 || d.s2) {
			t.Errorf("%v || %v: got %v", d.s1, d.s2, term.State())
		}
	}

	// disconnecting leaves the state of the remaining emitter.
	for _, s := range []bool{false, true} {
		if err := e2.Set(s); err != nil {
			t.Fatal(err)
		}
		if err := e1.Set(true); err != nil {
			t.Fatal(err)
		}
		if err := e1.Disconnect(term); err != nil {
			t.Fatal(err)
		}
		if term.State() != s {
			t.Errorf("after disconnect: got %v, expected %v", term.State(), s)
		}
		if err := e1.Connect(term); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTerminal_undriven(t *testing.T) {
	n := ls.NewNetwork()
	term := n.Terminal("t")
	p := new(logictest.Probe)
	if err := term.Connect(p); err != nil {
		t.Fatal(err)
	}
	p.Reset()
	for _, s := range []bool{true, true, false} {
		if err := term.Receive(s); err != nil {
			t.Fatal(err)
		}
		if term.State() != s {
			t.Fatalf("got %v, expected %v", term.State(), s)
		}
	}
	if p.Calls != 3 {
		t.Fatalf("terminal forwarded %d times, expected 3", p.Calls)
	}
}

type recorder struct {
	id  int
	log *[]int
}

func (r *recorder) State() bool { return false }

func (r *recorder) Receive(bool) error {
	*r.log = append(*r.log, r.id)
	return nil
}
