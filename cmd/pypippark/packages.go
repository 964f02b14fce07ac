package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/pypippark/internal/messages"
)

func newInstallCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.Install(cmd.Context(), args)
		},
	}
}

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.ListUse,
		Short: messages.ListShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.List(cmd.Context())
		},
	}
}

func newRemoveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     messages.RemoveUse,
		Aliases: []string{"uninstall"},
		Short:   messages.RemoveShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			return d.Remove(cmd.Context(), args)
		},
	}
}

func newUpdateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     messages.UpdateUse,
		Aliases: []string{"upgrade"},
		Short:   messages.UpdateShort,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := newDispatcher(cmd, g)
			if err != nil {
				return err
			}
			_, err = d.Update(cmd.Context())
			return err
		},
	}
}
