package main

import "context"

type StopCmd struct {
	Toy string `help:"Stop a single toy by ID. Defaults to all toys."`
}

func (c *StopCmd) Run(g *Globals) error {
	client, err := newClient(g)
	if err != nil {
		return err
	}

	var toys []string
	if c.Toy != "" {
		toys = append(toys, c.Toy)
	}
	resp, err := client.Stop(context.Background(), toys...)
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}
