// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl parses the textual notation of pin locations and wires.
//
//	in[0]              circuit input terminal 0
//	out[1]             circuit output terminal 1
//	2.in[0]            input pin 0 of chip 2
//	2.out[0] -> out[1] a wire
//	in[0..3] -> 0.in[0..3]
//
// Wire lists are separated by commas, semicolons or new lines. Index ranges
// like [0..3] expand into one wire per pin. Both ends of a wire must have the
// same number of pins, unless one end is a single pin.
//
package hdl

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Loc is a parsed pin location.
//
type Loc struct {
	Chip   int // chip index, -1 for circuit terminals
	Output bool
	Index  int
	Pos    int // position of the location in the input
}

// Wire is a parsed wire.
//
type Wire struct {
	From Loc
	To   Loc
}

// MaxRange is the maximum number of pins in an index range.
//
const MaxRange = 1 << 16

// Parser is a simplistic parser for locations and wire lists.
//
type Parser struct {
	Input string
	pos   int
}

// ParseLoc parses a single location.
//
func ParseLoc(s string) (Loc, error) {
	p := &Parser{Input: s}
	l, end, err := p.loc()
	if err != nil {
		return Loc{}, err
	}
	if end != l.Index {
		return Loc{}, parseError(s, l.Pos, "index range not allowed here")
	}
	p.skipSpace()
	if !p.eof() {
		return Loc{}, p.errorf("unexpected %q after location", p.peek())
	}
	return l, nil
}

// ParseWires parses a list of wires. An empty list is valid.
//
func ParseWires(s string) ([]Wire, error) {
	p := &Parser{Input: s}
	var ws []Wire
	for {
		p.skipSep()
		if p.eof() {
			return ws, nil
		}
		w, err := p.wire()
		if err != nil {
			return nil, err
		}
		ws = append(ws, w...)
		p.skipBlank()
		if p.eof() {
			return ws, nil
		}
		if !isSep(p.peek()) {
			return nil, p.errorf("expected separator, got %q", p.peek())
		}
	}
}

func (p *Parser) wire() ([]Wire, error) {
	from, fromEnd, err := p.loc()
	if err != nil {
		return nil, err
	}
	p.skipBlank()
	if !strings.HasPrefix(p.Input[p.pos:], "->") {
		return nil, p.errorf("expected '->'")
	}
	p.pos += 2
	to, toEnd, err := p.loc()
	if err != nil {
		return nil, err
	}
	fn, tn := fromEnd-from.Index+1, toEnd-to.Index+1
	if fn != tn && fn != 1 && tn != 1 {
		return nil, parseError(p.Input, to.Pos, fmt.Sprintf("pin count mismatch: %d -> %d", fn, tn))
	}
	n := fn
	if tn > n {
		n = tn
	}
	ws := make([]Wire, n)
	for i := range ws {
		f, t := from, to
		if fn > 1 {
			f.Index += i
		}
		if tn > 1 {
			t.Index += i
		}
		ws[i] = Wire{f, t}
	}
	return ws, nil
}

// loc parses a location and returns the end of its index range.
func (p *Parser) loc() (Loc, int, error) {
	p.skipBlank()
	l := Loc{Chip: -1, Pos: p.pos}
	var err error
	if !p.eof() && isDigit(p.peek()) {
		if l.Chip, err = p.int(); err != nil {
			return l, 0, err
		}
		if p.eof() || p.peek() != '.' {
			return l, 0, p.errorf("expected '.' after chip index")
		}
		p.pos++
	}
	switch {
	case strings.HasPrefix(p.Input[p.pos:], "out"):
		l.Output = true
		p.pos += 3
	case strings.HasPrefix(p.Input[p.pos:], "in"):
		p.pos += 2
	default:
		return l, 0, p.errorf("expected \"in\" or \"out\"")
	}
	if p.eof() || p.peek() != '[' {
		return l, 0, p.errorf("expected '['")
	}
	p.pos++
	if p.eof() || !isDigit(p.peek()) {
		return l, 0, p.errorf("integer value expected after '['")
	}
	if l.Index, err = p.int(); err != nil {
		return l, 0, err
	}
	end := l.Index
	if strings.HasPrefix(p.Input[p.pos:], "..") {
		p.pos += 2
		if p.eof() || !isDigit(p.peek()) {
			return l, 0, p.errorf("integer value expected after '..'")
		}
		rpos := p.pos
		if end, err = p.int(); err != nil {
			return l, 0, err
		}
		if end < l.Index {
			return l, 0, p.errorf("invalid index range %d..%d", l.Index, end)
		}
		if end-l.Index >= MaxRange {
			return l, 0, parseError(p.Input, rpos, fmt.Sprintf("index range %d..%d wider than %d pins", l.Index, end, MaxRange))
		}
	}
	if p.eof() || p.peek() != ']' {
		return l, 0, p.errorf("closing ']' expected after index")
	}
	p.pos++
	return l, end, nil
}

func (p *Parser) int() (int, error) {
	start := p.pos
	for !p.eof() && isDigit(p.peek()) {
		p.pos++
	}
	n, err := strconv.Atoi(p.Input[start:p.pos])
	if err != nil {
		return 0, parseError(p.Input, start, fmt.Sprintf("integer %s out of range", p.Input[start:p.pos]))
	}
	return n, nil
}

func (p *Parser) eof() bool  { return p.pos >= len(p.Input) }
func (p *Parser) peek() byte { return p.Input[p.pos] }

// skipBlank skips spaces but not line breaks, which separate wires.
func (p *Parser) skipBlank() {
	for !p.eof() && p.peek() != '\n' && unicode.IsSpace(rune(p.peek())) {
		p.pos++
	}
}

func (p *Parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(rune(p.peek())) {
		p.pos++
	}
}

func (p *Parser) skipSep() {
	for !p.eof() && (isSep(p.peek()) || unicode.IsSpace(rune(p.peek()))) {
		p.pos++
	}
}

func isSep(c byte) bool   { return c == ',' || c == ';' || c == '\n' }
func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func (p *Parser) errorf(format string, args ...interface{}) error {
	return parseError(p.Input, p.pos, fmt.Sprintf(format, args...))
}

func parseError(in string, pos int, msg string) error {
	return errors.Errorf("in %q at pos %d: %s", in, pos+1, msg)
}
