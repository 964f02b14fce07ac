package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pypippark/internal/dispatch"
	"github.com/conn-castle/pypippark/internal/messages"
)

func newPathCmd(g *globalFlags) *cobra.Command {
	var opts dispatch.PathOptions
	cmd := &cobra.Command{
		Use:   messages.PathUse,
		Short: messages.PathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.Path(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, messages.PathFlagDryRun)
	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, messages.PathFlagYes)
	return cmd
}
