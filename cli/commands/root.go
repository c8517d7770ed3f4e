package commands

import (
	"io"
	"time"

	"github.com/robgonnella/netsweep/internal/config"
	"github.com/robgonnella/netsweep/internal/core"
	"github.com/robgonnella/netsweep/internal/discovery"
	"github.com/robgonnella/netsweep/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// CoreFactory builds an app core for the given configuration, reporting
// progress to out
type CoreFactory func(conf config.Config, out io.Writer) (*core.Core, error)

// CommandProps injected props that can be made available to all commands
type CommandProps struct {
	Conf       *config.Config
	CreateCore CoreFactory
}

// Root builds and returns our root command
func Root(props *CommandProps) *cobra.Command {
	var verbose bool
	var silent bool
	var target string
	var output string
	var method string
	var timeout time.Duration
	var dwell time.Duration
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "netsweep",
		Short: "Discover devices on your local /24 network",
		Long: "Probes every host address of a /24 subnet, resolves hardware " +
			"addresses and vendors of responders and writes a sorted inventory",
		SilenceUsage: true,
		// This runs before all commands and all sub-commands
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// set logging verbosity for all loggers
			zerolog.SetGlobalLevel(zerolog.InfoLevel)

			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}

			if silent {
				zerolog.SetGlobalLevel(zerolog.Disabled)
			}

			// keep log lines out of the progress output
			if logFile := viper.GetString("log-file"); logFile != "" {
				return logger.GlobalSetLogFile(logFile)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := *props.Conf

			if cmd.Flags().Changed("output") {
				conf.Output = output
			}

			if cmd.Flags().Changed("method") {
				conf.Probe.Method = discovery.ProbeMethod(method)
			}

			if cmd.Flags().Changed("timeout") {
				conf.Probe.Timeout = timeout
			}

			if cmd.Flags().Changed("dwell") {
				conf.Progress.Dwell = &dwell
			}

			if noHistory {
				conf.History.Disabled = true
			}

			if err := conf.Validate(); err != nil {
				return err
			}

			appCore, err := props.CreateCore(conf, cmd.OutOrStdout())

			if err != nil {
				return err
			}

			_, err = appCore.Scan(cmd.Context(), target)

			return err
		},
	}

	// Persistent flags available to all commands
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	cmd.PersistentFlags().BoolVar(&silent, "silent", false, "disables all logging")

	cmd.Flags().StringVarP(&target, "subnet", "s", "", "any address (or /24 cidr) of the subnet to scan, defaults to the local subnet")
	cmd.Flags().StringVarP(&output, "output", "o", props.Conf.Output, "path of the json inventory")
	cmd.Flags().StringVarP(&method, "method", "m", string(props.Conf.Probe.Method), "liveness probe method: icmp, tcp or nmap")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", props.Conf.Probe.Timeout, "per host probe timeout")
	cmd.Flags().DurationVar(&dwell, "dwell", props.Conf.DwellOrDefault(), "pause after the sorting and saving messages")
	cmd.Flags().BoolVar(&noHistory, "no-history", props.Conf.History.Disabled, "do not record the scan in the history database")

	cmd.AddCommand(history(props))
	cmd.AddCommand(vendors(props))
	cmd.AddCommand(clean())
	cmd.AddCommand(info())
	cmd.AddCommand(version())

	return cmd
}
