package logicsim_test

import (
	"testing"

	ls "github.com/db47h/logicsim"
	"github.com/pkg/errors"
)

func TestNormalize(t *testing.T) {
	none := ls.PinLocation{}
	td := []struct {
		a, b     ls.PinLocation
		src, dst ls.PinLocation
		err      error
	}{
		{ls.SignalIn(0), ls.ChipIn(1, 0), ls.SignalIn(0), ls.ChipIn(1, 0), nil},
		{ls.ChipIn(1, 0), ls.SignalIn(0), ls.SignalIn(0), ls.ChipIn(1, 0), nil},
		{ls.ChipOut(0, 0), ls.ChipIn(1, 1), ls.ChipOut(0, 0), ls.ChipIn(1, 1), nil},
		{ls.ChipIn(1, 1), ls.ChipOut(0, 0), ls.ChipOut(0, 0), ls.ChipIn(1, 1), nil},
		{ls.ChipOut(2, 0), ls.SignalOut(0), ls.ChipOut(2, 0), ls.SignalOut(0), nil},
		{ls.SignalOut(0), ls.ChipOut(2, 0), ls.ChipOut(2, 0), ls.SignalOut(0), nil},
		{ls.ChipOut(1, 0), ls.ChipIn(1, 0), none, none, ls.ErrInvalidConnection},
		{ls.ChipIn(0, 0), ls.ChipIn(1, 0), none, none, ls.ErrInvalidConnection},
		{ls.ChipOut(0, 0), ls.ChipOut(1, 0), none, none, ls.ErrInvalidConnection},
		{ls.SignalIn(0), ls.SignalOut(0), none, none, ls.ErrInvalidConnection},
		{ls.SignalIn(0), ls.SignalIn(1), none, none, ls.ErrInvalidConnection},
		{ls.SignalIn(0), ls.ChipOut(0, 0), none, none, ls.ErrInvalidConnection},
		{ls.SignalOut(0), ls.ChipIn(0, 0), none, none, ls.ErrInvalidConnection},
		{none, ls.ChipIn(0, 0), none, none, ls.ErrInvalidConnection},
		{none, none, none, none, ls.ErrInvalidConnection},
	}
	for _, d := range td {
		src, dst, err := ls.Normalize(d.a, d.b)
		if errors.Cause(err) != d.err {
			t.Errorf("%v, %v: got error %v, expected %v", d.a, d.b, err, d.err)
			continue
		}
		if err != nil {
			continue
		}
		if src != d.src || dst != d.dst {
			t.Errorf("%v, %v: got %v -> %v, expected %v -> %v", d.a, d.b, src, dst, d.src, d.dst)
		}
	}
}

func TestPinLocation(t *testing.T) {
	var l ls.PinLocation
	if !l.IsNone() || l.String() != "none" {
		t.Fatalf("zero location: %v", l)
	}
	l = ls.ChipOut(3, 1)
	if l.IsNone() {
		t.Fatal("location is none")
	}
	l.Clear()
	if !l.IsNone() || l != (ls.PinLocation{}) {
		t.Fatalf("cleared location: %#v", l)
	}

	for _, d := range []struct {
		l ls.PinLocation
		s string
	}{
		{ls.SignalIn(2), "in[2]"},
		{ls.SignalOut(0), "out[0]"},
		{ls.ChipIn(4, 1), "4.in[1]"},
		{ls.ChipOut(12, 0), "12.out[0]"},
	} {
		if s := d.l.String(); s != d.s {
			t.Errorf("got %q, expected %q", s, d.s)
		}
	}
	w := ls.WireConnection{Source: ls.ChipOut(0, 0), Destination: ls.SignalOut(1)}
	if s := w.String(); s != "0.out[0] -> out[1]" {
		t.Errorf("got %q", s)
	}
}

func TestLocationKind_String(t *testing.T) {
	for k, s := range map[ls.LocationKind]string{
		ls.LocNone:         "none",
		ls.LocChipInput:    "chip input",
		ls.LocChipOutput:   "chip output",
		ls.LocSignalInput:  "signal input",
		ls.LocSignalOutput: "signal output",
	} {
		if k.String() != s {
			t.Errorf("%d: got %q, expected %q", k, k.String(), s)
		}
	}
}
