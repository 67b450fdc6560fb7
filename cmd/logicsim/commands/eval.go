// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func evalCmd(o *options) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Drive circuit inputs and print the outputs",
		Long: `Drive circuit inputs and print the outputs.

Inputs are set in the order given on the command line; inputs that are not set
stay low. Setting the same input several times is allowed, which can be used to
pulse the inputs of sequential circuits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, b, err := o.load(args[0])
			if err != nil {
				return err
			}
			for _, s := range sets {
				name, v, ok := strings.Cut(s, "=")
				if !ok {
					return errors.Errorf("invalid --set %q, expected name=0|1", s)
				}
				i := b.InputIndex(name)
				if i < 0 {
					return errors.Errorf("no input %q", name)
				}
				var st bool
				switch v {
				case "0":
				case "1":
					st = true
				default:
					return errors.Errorf("invalid state %q for input %s", v, name)
				}
				if err := b.Set(i, st); err != nil {
					return err
				}
			}
			for i := 0; i < b.NumOutputs(); i++ {
				st := 0
				if b.Output(i).State() {
					st = 1
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%d\n", b.Output(i).Name(), st)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "set input `name=0|1` (repeatable)")
	return cmd
}
