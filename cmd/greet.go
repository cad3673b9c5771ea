package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/greeter"
)

var greetCmd = &cobra.Command{
	Use:          "greet [name]",
	Short:        "Print a greeting",
	Long:         "Print a greeting for name. An omitted name greets the empty string.",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		fmt.Fprintln(cmd.OutOrStdout(), greeter.Greet(name))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(greetCmd)
}
