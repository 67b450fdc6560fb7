// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/internal/shell"
	"github.com/spf13/cobra"
)

func tableCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table FILE",
		Short: "Print the truth table of a circuit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := o.load(args[0])
			if err != nil {
				return err
			}
			rows, err := logicsim.TruthTable(b)
			if err != nil {
				return err
			}
			return shell.WriteTable(cmd.OutOrStdout(), b, rows)
		},
	}
}
