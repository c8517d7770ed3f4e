package commands

import (
	"fmt"
	"os/exec"
	"strings"

	app_info "github.com/robgonnella/netsweep/internal/app-info"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func info() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Print detailed app info",
		Run: func(cmd *cobra.Command, args []string) {
			nmapInfo := "not installed"

			if out, err := exec.Command("nmap", "--version").Output(); err == nil {
				nmapInfo = strings.SplitN(strings.TrimSpace(string(out)), "\n", 2)[0]
			}

			fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s: %s\n\nconfig:   %s\ndatabase: %s\nlog:      %s\nnmap:     %s\n",
				app_info.NAME,
				app_info.VERSION,
				viper.GetString("config-file"),
				viper.GetString("database-file"),
				viper.GetString("log-file"),
				nmapInfo,
			)
		},
	}

	return cmd
}
