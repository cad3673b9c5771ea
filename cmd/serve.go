package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/bridge"
	"github.com/windsorcli/netdesk/pkg/config"
	"github.com/windsorcli/netdesk/pkg/constants"
	"github.com/windsorcli/netdesk/pkg/di"
)

var serveAddress string

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Serve the command bridge over loopback HTTP",
	Long:         "Serve the command bridge over HTTP for a desktop webview until interrupted",
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
		configHandler, err := di.ResolveAs[config.ConfigHandler](injector, "configHandler")
		if err != nil {
			return fmt.Errorf("Error resolving config handler: %w", err)
		}

		addr := serveAddress
		if !cmd.Flags().Changed("address") {
			addr = configHandler.GetString("server.address", constants.DefaultServerAddress)
		}

		ctx, stop := shims.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		server := bridge.NewServer(b, addr, slog.Default())
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("Error starting bridge server: %w", err)
		}
		color.New(color.FgGreen).Fprintf(cmd.ErrOrStderr(), "Serving command bridge on http://%s\n", server.Addr())

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("Error stopping bridge server: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddress, "address", constants.DefaultServerAddress, "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
