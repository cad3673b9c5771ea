package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/bridge"
	"github.com/windsorcli/netdesk/pkg/di"
)

var commandsCmd = &cobra.Command{
	Use:          "commands",
	Short:        "List bridge commands",
	Long:         "List the commands the bridge accepts, one per line",
	Args:         cobra.NoArgs,
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
		for _, name := range b.Commands() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(commandsCmd)
}
