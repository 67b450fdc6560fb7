// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"github.com/db47h/logicsim/circuitfile"
	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a circuit file, formats are guessed from file extensions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := circuitfile.Load(args[0])
			if err != nil {
				return err
			}
			return circuitfile.Save(args[1], d)
		},
	}
}
