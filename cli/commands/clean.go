package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func removeFile(key string) (bool, error) {
	file := viper.GetString(key)

	if file == "" {
		return false, nil
	}

	if err := os.Remove(file); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// creates and returns the "clean" command
func clean() *cobra.Command {
	var withConfig bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes the history database and log files",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			keys := []string{"database-file", "log-file"}

			if withConfig {
				keys = append(keys, "config-file")
			}

			for _, key := range keys {
				removed, err := removeFile(key)

				if err != nil {
					return err
				}

				if removed {
					fmt.Fprintf(out, "removed %s: %s\n", key, viper.GetString(key))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&withConfig, "config", false, "also remove the config file")

	return cmd
}
