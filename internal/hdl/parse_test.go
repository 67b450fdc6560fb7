package hdl

import "testing"

func TestParseLoc(t *testing.T) {
	data := []struct {
		in  string
		loc Loc
		err string
	}{
		{"in[0]", Loc{Chip: -1, Index: 0}, ""},
		{" out[12] ", Loc{Chip: -1, Output: true, Index: 12, Pos: 1}, ""},
		{"3.in[1]", Loc{Chip: 3, Index: 1}, ""},
		{"10.out[0]", Loc{Chip: 10, Output: true}, ""},
		{"3in[1]", Loc{}, `in "3in[1]" at pos 2: expected '.' after chip index`},
		{"x[0]", Loc{}, `in "x[0]" at pos 1: expected "in" or "out"`},
		{"in[", Loc{}, `in "in[" at pos 4: integer value expected after '['`},
		{"in[2", Loc{}, `in "in[2" at pos 5: closing ']' expected after index`},
		{"in[2] x", Loc{}, `in "in[2] x" at pos 7: unexpected 'x' after location`},
		{"in[0..3]", Loc{}, `in "in[0..3]" at pos 1: index range not allowed here`},
		{"in[18446744073709551616]", Loc{}, `in "in[18446744073709551616]" at pos 4: integer 18446744073709551616 out of range`},
		{"99999999999999999999.out[0]", Loc{}, `in "99999999999999999999.out[0]" at pos 1: integer 99999999999999999999 out of range`},
	}
	for _, d := range data {
		t.Run(d.in, func(t *testing.T) {
			l, err := ParseLoc(d.in)
			if err == nil && d.err != "" || err != nil && err.Error() != d.err {
				t.Fatalf("Got error %q, expected %q", err, d.err)
			}
			if err == nil && l != d.loc {
				t.Errorf("Got %+v, expected %+v", l, d.loc)
			}
		})
	}
}

func TestParseWires(t *testing.T) {
	ws, err := ParseWires("in[0] -> 0.in[0], in[1]->0.in[1]\n0.out[0] -> out[0];\n\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != 3 {
		t.Fatalf("got %d wires, expected 3", len(ws))
	}
	if w := ws[2]; w.From.Chip != 0 || !w.From.Output || w.To.Chip != -1 || !w.To.Output {
		t.Errorf("bad third wire %+v", w)
	}

	ws, err = ParseWires("  ")
	if err != nil || len(ws) != 0 {
		t.Errorf("empty list: got %v, %v", ws, err)
	}

	for _, in := range []string{
		"in[0]", "in[0] -> ", "in[0] -> out[0] out[1]", "in[0] => out[0]",
		"in[0..2] -> 0.in[0..1]", "in[3..2] -> 0.in[0]", "in[0..] -> 0.in[0]",
	} {
		if _, err := ParseWires(in); err == nil {
			t.Errorf("%q: expected an error", in)
		}
	}
}

func TestParseWires_ranges(t *testing.T) {
	td := []struct {
		in   string
		want [][2]int // from/to indices
	}{
		{"in[0..2] -> 1.in[4..6]", [][2]int{{0, 4}, {1, 5}, {2, 6}}},
		{"in[1] -> 1.in[0..2]", [][2]int{{1, 0}, {1, 1}, {1, 2}}},
		{"1.out[0..1] -> out[3]", [][2]int{{0, 3}, {1, 3}}},
		{"in[2..2] -> 1.in[0]", [][2]int{{2, 0}}},
	}
	for _, d := range td {
		ws, err := ParseWires(d.in)
		if err != nil {
			t.Fatalf("%q: %v", d.in, err)
		}
		if len(ws) != len(d.want) {
			t.Fatalf("%q: got %d wires, expected %d", d.in, len(ws), len(d.want))
		}
		for i, w := range ws {
			if w.From.Index != d.want[i][0] || w.To.Index != d.want[i][1] {
				t.Errorf("%q: wire %d: got %d -> %d, expected %d -> %d", d.in, i, w.From.Index, w.To.Index, d.want[i][0], d.want[i][1])
			}
		}
	}
}

func TestParseWires_limits(t *testing.T) {
	data := []struct {
		in  string
		err string
	}{
		{"in[0..999999999999999] -> 0.in[0]", `in "in[0..999999999999999] -> 0.in[0]" at pos 7: index range 0..999999999999999 wider than 65536 pins`},
		{"in[0] -> 0.in[0..99999999999999999999]", `in "in[0] -> 0.in[0..99999999999999999999]" at pos 18: integer 99999999999999999999 out of range`},
		{"in[0..65536] -> 0.in[0]", `in "in[0..65536] -> 0.in[0]" at pos 7: index range 0..65536 wider than 65536 pins`},
	}
	for _, d := range data {
		t.Run(d.in, func(t *testing.T) {
			_, err := ParseWires(d.in)
			if err == nil || err.Error() != d.err {
				t.Fatalf("Got error %q, expected %q", err, d.err)
			}
		})
	}

	ws, err := ParseWires("in[0..65535] -> 0.in[0]")
	if err != nil {
		t.Fatal(err)
	}
	if len(ws) != MaxRange {
		t.Errorf("got %d wires, expected %d", len(ws), MaxRange)
	}
}
