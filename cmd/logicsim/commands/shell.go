// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/circuitfile"
	"github.com/db47h/logicsim/internal/shell"
	"github.com/spf13/cobra"
)

func shellCmd(o *options) *cobra.Command {
	var inputs, outputs []string
	cmd := &cobra.Command{
		Use:   "shell [FILE]",
		Short: "Edit and simulate a circuit interactively",
		Long: `Edit and simulate a circuit interactively.

Without FILE, the shell starts with an empty board with the terminals given by
--in and --out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sh, err := o.shell(args, inputs, outputs)
			if err != nil {
				return err
			}
			return sh.Run(cmd.Context())
		},
	}
	cmd.Flags().StringSliceVar(&inputs, "in", []string{"a", "b"}, "input terminals of an empty board")
	cmd.Flags().StringSliceVar(&outputs, "out", []string{"out"}, "output terminals of an empty board")
	return cmd
}

func (o *options) shell(args, inputs, outputs []string) (*shell.Shell, error) {
	lib, err := o.library()
	if err != nil {
		return nil, err
	}
	if len(args) == 1 {
		d, err := circuitfile.Load(args[0])
		if err != nil {
			return nil, err
		}
		sh, err := shell.Open(d, o.network(), lib, nil)
		if err != nil {
			return nil, err
		}
		o.log.Debug("circuit loaded", "file", args[0], "name", d.Name, "chips", sh.Board().NumChips())
		return sh, nil
	}
	b := logicsim.NewBoard(o.network())
	for _, n := range inputs {
		b.AddInput(n)
	}
	for _, n := range outputs {
		b.AddOutput(n)
	}
	return shell.New("circuit", b, lib, nil), nil
}
