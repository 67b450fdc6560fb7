// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package commands

import (
	"log/slog"

	"github.com/db47h/logicsim"
	"github.com/db47h/logicsim/chiplib"
	"github.com/db47h/logicsim/circuitfile"
	"github.com/spf13/cobra"
)

type options struct {
	debug    bool
	maxDepth int
	log      *slog.Logger
}

// Execute runs the logicsim command line.
//
func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "logicsim",
		Short:         "Binary logic circuit simulator",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if o.debug {
				level = slog.LevelDebug
			}
			o.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().BoolVar(&o.debug, "debug", false, "log chip creation and wiring")
	root.PersistentFlags().IntVar(&o.maxDepth, "max-depth", logicsim.DefaultMaxDepth, "propagation depth limit")

	root.AddCommand(partsCmd(o), tableCmd(o), evalCmd(o), convertCmd(), shellCmd(o))
	return root
}

func (o *options) library() (*logicsim.Library, error) {
	lib := logicsim.NewLibrary()
	return lib, chiplib.Register(lib)
}

func (o *options) network() *logicsim.Network {
	return logicsim.NewNetwork(logicsim.WithMaxDepth(o.maxDepth), logicsim.WithLogger(o.log))
}

// load builds the circuit in file path.
func (o *options) load(path string) (*circuitfile.Document, *logicsim.Board, error) {
	lib, err := o.library()
	if err != nil {
		return nil, nil, err
	}
	d, err := circuitfile.Load(path)
	if err != nil {
		return nil, nil, err
	}
	b, err := d.Board(o.network(), lib)
	if err != nil {
		return nil, nil, err
	}
	o.log.Debug("circuit loaded", "file", path, "name", d.Name, "chips", b.NumChips())
	return d, b, nil
}
