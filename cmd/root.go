package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/windsorcli/netdesk/pkg/bridge"
	"github.com/windsorcli/netdesk/pkg/config"
	"github.com/windsorcli/netdesk/pkg/constants"
	"github.com/windsorcli/netdesk/pkg/di"
	"github.com/windsorcli/netdesk/pkg/logging"
	"github.com/windsorcli/netdesk/pkg/network"
	"github.com/windsorcli/netdesk/pkg/shell"
)

type contextKey string

// injectorKey carries the di.Injector a command runs against. Tests put a prepared injector
// under this key on the root command's context.
const injectorKey = contextKey("injector")

var (
	shims      = NewShims()
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:               "netdesk",
	Short:             "Desktop backend reporting the host's network interfaces",
	Long:              "netdesk greets callers and reports the host's non-loopback network interfaces, from the terminal or over a loopback command bridge for a desktop webview.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: preRunInitializeComponents,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Errors are printed in red on stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

// =============================================================================
// Private Functions
// =============================================================================

// preRunInitializeComponents loads the config, installs the logger, and registers every
// component a command may resolve. Components already present in the injector are kept.
func preRunInitializeComponents(cmd *cobra.Command, args []string) error {
	base := cmd.Root().Context()
	if base == nil {
		base = context.Background()
	}
	injector, ok := base.Value(injectorKey).(di.Injector)
	if !ok {
		injector = di.NewInjector()
	}

	configHandler, ok := injector.Resolve("configHandler").(config.ConfigHandler)
	if !ok {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}
		handler := config.NewYamlConfigHandler()
		if err := handler.LoadConfig(path); err != nil {
			return fmt.Errorf("Error loading config file %s: %w", path, err)
		}
		configHandler = handler
		injector.Register("configHandler", configHandler)
	}

	if verbose {
		configHandler.Set("logging.level", "debug")
	}
	logger, err := logging.NewLogger(
		cmd.ErrOrStderr(),
		configHandler.GetString("logging.level", constants.DefaultLogLevel),
		configHandler.GetString("logging.format", constants.DefaultLogFormat),
	)
	if err != nil {
		return fmt.Errorf("Error configuring logging: %w", err)
	}
	slog.SetDefault(logger)

	if _, ok := injector.Resolve("shell").(shell.Shell); !ok {
		injector.Register("shell", shell.NewDefaultShell(logger))
	}

	if _, ok := injector.Resolve("interfaceReporter").(network.InterfaceReporter); !ok {
		injector.Register("interfaceReporter", network.NewBaseInterfaceReporter(injector))
	}
	if err := initializeComponents(injector); err != nil {
		return err
	}

	if _, ok := injector.Resolve("bridge").(*bridge.Bridge); !ok {
		reporter, err := di.ResolveAs[network.InterfaceReporter](injector, "interfaceReporter")
		if err != nil {
			return err
		}
		b := bridge.NewBridge()
		if err := bridge.RegisterCommands(b, reporter); err != nil {
			return fmt.Errorf("Error registering bridge commands: %w", err)
		}
		injector.Register("bridge", b)
	}

	cmd.SetContext(context.WithValue(base, injectorKey, injector))
	return nil
}

// initializer is any registered component that resolves its own dependencies.
type initializer interface {
	Initialize() error
}

// initializeComponents initializes every registered initializer in name order.
func initializeComponents(injector di.Injector) error {
	components, err := injector.ResolveAll((*initializer)(nil))
	if err != nil {
		return fmt.Errorf("Error resolving components: %w", err)
	}
	for _, component := range components {
		if err := component.(initializer).Initialize(); err != nil {
			return fmt.Errorf("Error initializing %T: %w", component, err)
		}
	}
	return nil
}

// resolveConfigPath picks --config, then NETDESK_CONFIG, then $HOME/.config/netdesk/config.yaml.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	if path := shims.Getenv(constants.ConfigEnvVar); path != "" {
		return path, nil
	}
	home, err := shims.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("Error finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "netdesk", "config.yaml"), nil
}

// injectorFrom returns the injector the pre-run stored on cmd.
func injectorFrom(cmd *cobra.Command) (di.Injector, error) {
	injector, ok := cmd.Context().Value(injectorKey).(di.Injector)
	if !ok {
		return nil, fmt.Errorf("No injector found")
	}
	return injector, nil
}
