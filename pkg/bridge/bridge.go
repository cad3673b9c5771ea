package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// The bridge package is the host boundary of netdesk. A desktop webview (or the CLI) names an
// operation and hands over JSON arguments; the bridge runs the matching command and answers
// with JSON. Only the boundary can fail: unknown names and malformed arguments are errors,
// the operations behind them are not.

// =============================================================================
// Types
// =============================================================================

var (
	// ErrUnknownCommand is returned when no command is registered under the requested name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrInvalidArguments is returned when the arguments are not valid for the command.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Command runs one named operation. args is the raw JSON the host sent, or nil.
type Command func(ctx context.Context, args json.RawMessage) (any, error)

// Bridge is a registry of named commands.
type Bridge struct {
	mu       sync.RWMutex
	commands map[string]Command
}

// =============================================================================
// Constructor
// =============================================================================

// NewBridge creates an empty Bridge.
func NewBridge() *Bridge {
	return &Bridge{
		commands: make(map[string]Command),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Register installs cmd under name. Names are unique.
func (b *Bridge) Register(name string, cmd Command) error {
	if name == "" {
		return fmt.Errorf("command name is required")
	}
	if cmd == nil {
		return fmt.Errorf("command %s is nil", name)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.commands[name]; exists {
		return fmt.Errorf("command %s is already registered", name)
	}
	b.commands[name] = cmd
	return nil
}

// Invoke runs the command registered under name and returns its JSON-encoded result.
func (b *Bridge) Invoke(ctx context.Context, name string, args []byte) ([]byte, error) {
	b.mu.RLock()
	cmd, ok := b.commands[name]
	b.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	var raw json.RawMessage
	if len(args) > 0 {
		if !json.Valid(args) {
			return nil, fmt.Errorf("%w: %s: arguments are not valid JSON", ErrInvalidArguments, name)
		}
		raw = json.RawMessage(args)
	}

	result, err := cmd(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("error running command %s: %w", name, err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("error encoding result of %s: %w", name, err)
	}
	return data, nil
}

// Commands returns the registered command names in sorted order.
func (b *Bridge) Commands() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.commands))
	for name := range b.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
