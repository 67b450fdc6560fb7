// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func partsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parts",
		Short: "List available parts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := o.library()
			if err != nil {
				return err
			}
			for _, n := range lib.Names() {
				p, _ := lib.Lookup(n)
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s (%s) -> (%s)\n", n, strings.Join(p.Inputs, ", "), strings.Join(p.Outputs, ", "))
			}
			return nil
		},
	}
}
