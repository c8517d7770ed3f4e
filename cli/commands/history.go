package commands

import (
	"fmt"
	"io"

	"github.com/robgonnella/netsweep/internal/store"
	"github.com/spf13/cobra"
)

func printScan(out io.Writer, scan *store.Scan) {
	fmt.Fprintf(
		out,
		"%s  %s  %s  (%d devices)\n",
		scan.Completed.Local().Format("2006-01-02 15:04:05"),
		scan.Subnet,
		scan.ID,
		len(scan.Records),
	)
}

// creates and returns the "history" command
func history(props *CommandProps) *cobra.Command {
	var all bool
	var id string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Print previously recorded scans",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			appCore, err := props.CreateCore(*props.Conf, nil)

			if err != nil {
				return err
			}

			if all {
				scans, err := appCore.Scans()

				if err != nil {
					return err
				}

				for _, s := range scans {
					printScan(out, s)
				}

				return nil
			}

			var scan *store.Scan

			if id != "" {
				scan, err = appCore.GetScan(id)
			} else {
				scan, err = appCore.LatestScan()
			}

			if err != nil {
				return err
			}

			printScan(out, scan)

			for _, r := range scan.Records {
				deviceType := ""

				if r.Classification != nil {
					deviceType = r.Classification.DeviceType
				}

				fmt.Fprintf(
					out,
					"  %-15s  %-17s  %8.2fms  %s  %s\n",
					r.IP,
					r.MAC,
					r.ResponseTime,
					r.Vendor,
					deviceType,
				)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every recorded scan")
	cmd.Flags().StringVar(&id, "id", "", "print the devices of a specific scan instead of the latest")

	return cmd
}
