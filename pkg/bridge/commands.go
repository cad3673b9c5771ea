package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/windsorcli/netdesk/pkg/greeter"
	"github.com/windsorcli/netdesk/pkg/network"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// GreetCommand greets the name in its {"name": ...} arguments.
	GreetCommand = "greet"
	// ListInterfacesCommand lists the host's non-loopback interfaces.
	ListInterfacesCommand = "get_network_interfaces"
)

// =============================================================================
// Types
// =============================================================================

type greetArgs struct {
	Name *string `json:"name"`
}

// =============================================================================
// Public Functions
// =============================================================================

// RegisterCommands installs the netdesk commands on b.
func RegisterCommands(b *Bridge, reporter network.InterfaceReporter) error {
	if reporter == nil {
		return fmt.Errorf("interface reporter is required")
	}
	if err := b.Register(GreetCommand, greetCommand); err != nil {
		return err
	}
	return b.Register(ListInterfacesCommand, listInterfacesCommand(reporter))
}

// =============================================================================
// Private Functions
// =============================================================================

func greetCommand(_ context.Context, args json.RawMessage) (any, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArguments)
	}
	var parsed greetArgs
	if err := json.Unmarshal(args, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
	}
	if parsed.Name == nil {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArguments)
	}
	return greeter.Greet(*parsed.Name), nil
}

func listInterfacesCommand(reporter network.InterfaceReporter) Command {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		if err := expectNoArgs(args); err != nil {
			return nil, err
		}
		return reporter.ListInterfaces(ctx), nil
	}
}

// expectNoArgs accepts a missing body, null, or a JSON object whose fields are ignored.
func expectNoArgs(args json.RawMessage) error {
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("%w: expected no arguments", ErrInvalidArguments)
	}
	return nil
}
