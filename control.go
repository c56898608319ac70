package golove

import "context"

// Function sends a single immediate stimulation instruction.
func (c *Client) Function(ctx context.Context, req FunctionRequest) (*Response, error) {
	cmd, err := req.Command()
	if err != nil {
		return nil, err
	}
	return c.SendCommand(ctx, cmd)
}

// Preset plays one of the app's built-in patterns.
func (c *Client) Preset(ctx context.Context, req PresetRequest) (*Response, error) {
	cmd, err := req.Command()
	if err != nil {
		return nil, err
	}
	return c.SendCommand(ctx, cmd)
}

// Pattern plays a time-varying strength sequence as a single command,
// avoiding one network call per strength change.
func (c *Client) Pattern(ctx context.Context, req PatternRequest) (*Response, error) {
	cmd, err := req.Command()
	if err != nil {
		return nil, err
	}
	return c.SendCommand(ctx, cmd)
}

// PatternRaw plays a pre-formatted pattern with structural validation only.
func (c *Client) PatternRaw(ctx context.Context, req RawPatternRequest) (*Response, error) {
	cmd, err := req.Command()
	if err != nil {
		return nil, err
	}
	return c.SendCommand(ctx, cmd)
}

// Stop halts all running commands. An optional single toy ID limits the
// stop to that toy.
func (c *Client) Stop(ctx context.Context, toyID ...string) (*Response, error) {
	switch len(toyID) {
	case 0:
		return c.SendCommand(ctx, NewStopCommand())
	case 1:
		return c.SendCommand(ctx, newStopCommand(toyID[0]))
	default:
		return nil, invalidArgf("stop accepts at most one toy ID, got %d", len(toyID))
	}
}
