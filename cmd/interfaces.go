package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/briandowns/spinner"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/di"
	"github.com/windsorcli/netdesk/pkg/network"
)

var outputFormat string

var interfacesCmd = &cobra.Command{
	Use:          "interfaces",
	Short:        "List the host's network interfaces",
	Long:         "List every non-loopback interface/address pair with its hardware address. Unresolved hardware addresses are shown as N/A.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		switch outputFormat {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("Unsupported output format %q, expected table, json, or yaml", outputFormat)
		}

		injector, err := injectorFrom(cmd)
		if err != nil {
			return err
		}
		reporter, err := di.ResolveAs[network.InterfaceReporter](injector, "interfaceReporter")
		if err != nil {
			return fmt.Errorf("Error resolving interface reporter: %w", err)
		}

		var spin *spinner.Spinner
		if shims.IsTerminal(int(os.Stderr.Fd())) {
			spin = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithColor("green"), spinner.WithWriter(os.Stderr))
			spin.Suffix = " Querying network interfaces"
			spin.Start()
		}
		records := reporter.ListInterfaces(cmd.Context())
		if spin != nil {
			spin.Stop()
		}

		return writeRecords(cmd.OutOrStdout(), outputFormat, records)
	},
}

func init() {
	interfacesCmd.Flags().StringVarP(&outputFormat, "output", "o", "table", "Output format: table, json, or yaml")
	rootCmd.AddCommand(interfacesCmd)
}

// writeRecords renders records to w in format.
func writeRecords(w io.Writer, format string, records []network.InterfaceRecord) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("Error encoding interfaces: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		data, err := yaml.Marshal(records)
		if err != nil {
			return fmt.Errorf("Error encoding interfaces: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tIP\tMAC")
		for _, r := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Name, r.Address, r.HardwareAddress)
		}
		return tw.Flush()
	}
}
