// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package shell implements an interactive editor for a logicsim.Board.
//
package shell

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/circuitfile"
	"github.com/pkg/errors"
)

// errQuit is returned by Exec for the quit command.
var errQuit = errors.New("quit")

// A Shell runs editing commands against a board.
//
type Shell struct {
	name  string
	board *logicsim.Board
	lib   *logicsim.Library
	parts []circuitfile.Document
	out   io.Writer
}

// New returns a new shell for board b. Parts placed with the place command are
// looked up in lib. Command output goes to out.
//
func New(name string, b *logicsim.Board, lib *logicsim.Library, out io.Writer) *Shell {
	return &Shell{name: name, board: b, lib: lib, out: out}
}

// Open returns a shell for the circuit described by d, built in network n.
// The parts defined in d can be placed on the board and are saved along with
// it.
//
func Open(d *circuitfile.Document, n *logicsim.Network, lib *logicsim.Library, out io.Writer) (*Shell, error) {
	lib, err := d.Library(lib)
	if err != nil {
		return nil, err
	}
	b, err := d.Board(n, lib)
	if err != nil {
		return nil, err
	}
	s := New(d.Name, b, lib, out)
	s.parts = d.Parts
	return s, nil
}

// Board returns the shell's board.
//
func (s *Shell) Board() *logicsim.Board { return s.board }

// SetOutput sets the destination of command output.
//
func (s *Shell) SetOutput(w io.Writer) { s.out = w }

type command struct {
	name  string
	alias string
	args  string
	help  string
	run   func(s *Shell, args []string) error
}

var commands []command

func init() {
	commands = []command{
		{"help", "?", "", "show this help", (*Shell).cmdHelp},
		{"show", "s", "", "show the state of the circuit terminals", (*Shell).cmdShow},
		{"set", "", "<name>=<0|1>...", "drive input terminals", (*Shell).cmdSet},
		{"toggle", "t", "<name>...", "toggle input terminals", (*Shell).cmdToggle},
		{"chips", "c", "", "list the chips on the board", (*Shell).cmdChips},
		{"wires", "w", "", "list the wires on the board", (*Shell).cmdWires},
		{"connect", "", "<loc> <loc>", "place a wire, e.g. connect in[0] 0.in[1]", (*Shell).cmdConnect},
		{"disconnect", "", "<loc> <loc>", "remove a wire", (*Shell).cmdDisconnect},
		{"place", "p", "<part>", "place a chip", (*Shell).cmdPlace},
		{"parts", "", "", "list available parts", (*Shell).cmdParts},
		{"table", "", "", "print the truth table of the circuit", (*Shell).cmdTable},
		{"save", "", "<file>", "save the circuit (.yaml or .cbor)", (*Shell).cmdSave},
		{"quit", "q", "", "leave the shell", func(*Shell, []string) error { return errQuit }},
	}
}

func lookup(name string) *command {
	for i := range commands {
		if c := &commands[i]; c.name == name || c.alias != "" && c.alias == name {
			return c
		}
	}
	return nil
}

// Exec runs a single command line.
//
func (s *Shell) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	if name == "exit" {
		name = "quit"
	}
	c := lookup(name)
	if c == nil {
		return errors.Errorf("unknown command %q (type 'help' for commands)", fields[0])
	}
	return c.run(s, fields[1:])
}

// Run reads and executes commands until the quit command or the end of input.
// It returns early if ctx is canceled or reading a line fails.
//
func (s *Shell) Run(ctx context.Context) error {
	items := make([]readline.PrefixCompleterInterface, 0, len(commands))
	for _, c := range commands {
		items = append(items, readline.PcItem(c.name))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.name + "> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		AutoComplete:    readline.NewPrefixCompleter(items...),
	})
	if err != nil {
		return errors.Wrap(err, "readline")
	}
	defer rl.Close()
	s.out = rl.Stdout()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			return readError(err)
		}
		switch err := s.Exec(line); {
		case err == errQuit:
			return nil
		case err != nil:
			fmt.Fprintf(rl.Stderr(), "error: %v\n", err)
		}
	}
}

func (s *Shell) cmdHelp([]string) error {
	for _, c := range commands {
		n := c.name
		if c.alias != "" {
			n += ", " + c.alias
		}
		fmt.Fprintf(s.out, "  %-20s %s\n", strings.TrimSpace(n+" "+c.args), c.help)
	}
	return nil
}

func bit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (s *Shell) cmdShow([]string) error {
	b := s.board
	var sb strings.Builder
	for i := 0; i < b.NumInputs(); i++ {
		fmt.Fprintf(&sb, "%s=%s ", b.Input(i).Name(), bit(b.Input(i).State()))
	}
	sb.WriteString("|")
	for i := 0; i < b.NumOutputs(); i++ {
		fmt.Fprintf(&sb, " %s=%s", b.Output(i).Name(), bit(b.Output(i).State()))
	}
	fmt.Fprintln(s.out, sb.String())
	return nil
}

// input resolves an input terminal by name or index.
func (s *Shell) input(name string) (int, error) {
	if i := s.board.InputIndex(name); i >= 0 {
		return i, nil
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < s.board.NumInputs() {
		return i, nil
	}
	return -1, errors.Errorf("no input %q", name)
}

func parseState(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "1", "h", "high", "true", "on":
		return true, nil
	case "0", "l", "low", "false", "off":
		return false, nil
	}
	return false, errors.Errorf("invalid state %q", v)
}

func (s *Shell) cmdSet(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: set <name>=<0|1>...")
	}
	for _, a := range args {
		name, v, ok := strings.Cut(a, "=")
		if !ok {
			return errors.Errorf("expected <name>=<0|1>, got %q", a)
		}
		i, err := s.input(name)
		if err != nil {
			return err
		}
		st, err := parseState(v)
		if err != nil {
			return err
		}
		if err = s.board.Set(i, st); err != nil {
			return err
		}
	}
	return s.cmdShow(nil)
}

func (s *Shell) cmdToggle(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: toggle <name>...")
	}
	for _, a := range args {
		i, err := s.input(a)
		if err != nil {
			return err
		}
		if err = s.board.Set(i, !s.board.Input(i).State()); err != nil {
			return err
		}
	}
	return s.cmdShow(nil)
}

func (s *Shell) cmdChips([]string) error {
	for i := 0; i < s.board.NumChips(); i++ {
		c := s.board.Chip(i)
		var in, out strings.Builder
		for _, p := range c.Inputs() {
			in.WriteString(bit(p.State()))
		}
		for _, p := range c.Outputs() {
			out.WriteString(bit(p.State()))
		}
		fmt.Fprintf(s.out, "%3d %-12s in=%s out=%s\n", i, c.Name(), in.String(), out.String())
	}
	return nil
}

func (s *Shell) cmdWires([]string) error {
	for i, w := range s.board.Wires() {
		fmt.Fprintf(s.out, "%3d %v\n", i, w)
	}
	return nil
}

func locations(args []string) (l0, l1 logicsim.PinLocation, err error) {
	if len(args) == 3 && args[1] == "->" {
		args = []string{args[0], args[2]}
	}
	if len(args) != 2 {
		return l0, l1, errors.New("expected two pin locations")
	}
	if l0, err = logicsim.ParseLocation(args[0]); err != nil {
		return l0, l1, err
	}
	l1, err = logicsim.ParseLocation(args[1])
	return l0, l1, err
}

func (s *Shell) cmdConnect(args []string) error {
	l0, l1, err := locations(args)
	if err != nil {
		return err
	}
	w, err := s.board.Connect(l0, l1)
	if w.Source.IsNone() {
		return err
	}
	fmt.Fprintln(s.out, w)
	return err
}

func (s *Shell) cmdDisconnect(args []string) error {
	l0, l1, err := locations(args)
	if err != nil {
		return err
	}
	return s.board.Disconnect(l0, l1)
}

func (s *Shell) cmdPlace(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: place <part>")
	}
	p, ok := s.lib.Lookup(args[0])
	if !ok {
		return errors.Errorf("unknown part %q", args[0])
	}
	i, err := s.board.Place(p)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%d %s\n", i, p.Name)
	return nil
}

func (s *Shell) cmdParts([]string) error {
	for _, n := range s.lib.Names() {
		p, _ := s.lib.Lookup(n)
		fmt.Fprintf(s.out, "  %-12s (%s) -> (%s)\n", n, strings.Join(p.Inputs, ", "), strings.Join(p.Outputs, ", "))
	}
	return nil
}

func (s *Shell) cmdTable([]string) error {
	rows, err := logicsim.TruthTable(s.board)
	if err != nil {
		return err
	}
	return WriteTable(s.out, s.board, rows)
}

func (s *Shell) cmdSave(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: save <file>")
	}
	return circuitfile.Save(args[0], circuitfile.FromBoard(s.name, s.board, s.parts...))
}

// readError returns the error Run ends with when reading a line fails. End of
// input is a normal exit.
func readError(err error) error {
	if err == io.EOF {
		return nil
	}
	return errors.Wrap(err, "readline")
}

// WriteTable prints a truth table of board b.
//
func WriteTable(w io.Writer, b *logicsim.Board, rows []logicsim.Row) error {
	var sb strings.Builder
	for i := 0; i < b.NumInputs(); i++ {
		sb.WriteString(b.Input(i).Name())
		sb.WriteByte(' ')
	}
	sb.WriteString("|")
	for i := 0; i < b.NumOutputs(); i++ {
		sb.WriteByte(' ')
		sb.WriteString(b.Output(i).Name())
	}
	sb.WriteByte('\n')
	for _, r := range rows {
		for i, v := range r.In {
			sb.WriteString(pad(bit(v), len(b.Input(i).Name())))
			sb.WriteByte(' ')
		}
		sb.WriteString("|")
		for i, v := range r.Out {
			sb.WriteByte(' ')
			sb.WriteString(pad(bit(v), len(b.Output(i).Name())))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func pad(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}
