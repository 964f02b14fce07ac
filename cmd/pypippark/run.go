package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pypippark/internal/messages"
)

func newRunCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.RunUse,
		Short: messages.RunShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.Run(cmd.Context(), args[0], args[1:])
		},
	}
	// Everything after the script belongs to the script.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newShellCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ShellUse,
		Short: messages.ShellShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.Shell(cmd.Context())
		},
	}
}
