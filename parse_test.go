package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
)

func TestParseLocation(t *testing.T) {
	for _, l := range []ls.PinLocation{
		ls.SignalIn(0), ls.SignalOut(7), ls.ChipIn(3, 2), ls.ChipOut(10, 0),
	} {
		got, err := ls.ParseLocation(l.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != l {
			t.Errorf("%q: got %v", l.String(), got)
		}
	}
	for _, s := range []string{"", "in", "in[]", "3.in", "3in[0]", "in[0] x", "inout[0]"} {
		if _, err := ls.ParseLocation(s); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestParseWires(t *testing.T) {
	ws, err := ls.ParseWires("in[0] -> 0.in[0]; 0.out[0] -> out[0]\n1.in[1] -> 0.out[0]")
	if err != nil {
		t.Fatal(err)
	}
	want := []ls.WireConnection{
		{Source: ls.SignalIn(0), Destination: ls.ChipIn(0, 0)},
		{Source: ls.ChipOut(0, 0), Destination: ls.SignalOut(0)},
		// not normalized
		{Source: ls.ChipIn(1, 1), Destination: ls.ChipOut(0, 0)},
	}
	if len(ws) != len(want) {
		t.Fatalf("got %d wires, expected %d", len(ws), len(want))
	}
	for i := range ws {
		if ws[i] != want[i] {
			t.Errorf("wire %d: got %v, expected %v", i, ws[i], want[i])
		}
	}
	ws, err = ls.ParseWires("in[0..1] -> 2.in[0..1]")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 2 || ws[1] != (ls.WireConnection{Source: ls.SignalIn(1), Destination: ls.ChipIn(2, 1)}) {
		t.Errorf("got %v", ws)
	}
	if _, err = ls.ParseWires("in[0] 0.in[0]"); err == nil {
		t.Error("expected an error")
	}
}
