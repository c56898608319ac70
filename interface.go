package golove

import "context"

// GameModeClient defines the interface for Game Mode LAN API operations.
// Client implements it; test doubles can too.
type GameModeClient interface {
	// Raw command plumbing
	SendCommand(ctx context.Context, cmd Command) (*Response, error)
	LastCommand() Command
	Resend(ctx context.Context) (*Response, error)

	// Toy queries
	GetToys(ctx context.Context) ([]Toy, error)
	GetToyNames(ctx context.Context) ([]string, error)
	ConnectedToys(ctx context.Context) ([]Toy, error)

	// Control commands
	Function(ctx context.Context, req FunctionRequest) (*Response, error)
	Preset(ctx context.Context, req PresetRequest) (*Response, error)
	Pattern(ctx context.Context, req PatternRequest) (*Response, error)
	PatternRaw(ctx context.Context, req RawPatternRequest) (*Response, error)
	Stop(ctx context.Context, toyID ...string) (*Response, error)
}

var _ GameModeClient = (*Client)(nil)
