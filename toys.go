package golove

import "context"

// GetToys returns descriptors for every toy the app knows about, connected
// or not.
func (c *Client) GetToys(ctx context.Context) ([]Toy, error) {
	resp, err := c.SendCommand(ctx, NewToyListCommand())
	if err != nil {
		return nil, err
	}
	return resp.Toys, nil
}

// GetToyNames returns just the names of the app's toys.
func (c *Client) GetToyNames(ctx context.Context) ([]string, error) {
	resp, err := c.SendCommand(ctx, NewToyNameCommand())
	if err != nil {
		return nil, err
	}
	return resp.ToyNames(), nil
}

// ConnectedToys returns descriptors for the currently connected toys only.
func (c *Client) ConnectedToys(ctx context.Context) ([]Toy, error) {
	toys, err := c.GetToys(ctx)
	if err != nil {
		return nil, err
	}
	connected := toys[:0]
	for _, toy := range toys {
		if toy.Connected() {
			connected = append(connected, toy)
		}
	}
	return connected, nil
}
