package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// creates and returns the "vendors" command
func vendors(props *CommandProps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendors",
		Short: "Manage the hardware vendor database",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Download the latest IEEE OUI vendor registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			appCore, err := props.CreateCore(*props.Conf, nil)

			if err != nil {
				return err
			}

			if err := appCore.UpdateVendors(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "vendor database updated")

			return nil
		},
	}

	cmd.AddCommand(update)

	return cmd
}
