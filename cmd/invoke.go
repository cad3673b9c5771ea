package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/bridge"
	"github.com/windsorcli/netdesk/pkg/di"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <command> [json-args]",
	Short: "Run one bridge command",
	Long: `Run one bridge command the way the desktop host does and print its JSON result.

Examples:
  netdesk invoke greet '{"name":"Ada"}'
  netdesk invoke get_network_interfaces`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		injector, err := injectorFrom(cmd)
		if err != nil {
			return err
		}
		b, err := di.ResolveAs[*bridge.Bridge](injector, "bridge")
		if err != nil {
			return fmt.Errorf("Error resolving bridge: %w", err)
		}

		var payload []byte
		if len(args) == 2 {
			payload = []byte(args[1])
		}
		result, err := b.Invoke(cmd.Context(), args[0], payload)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(invokeCmd)
}
