package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/catboy1357/golove"
	"github.com/catboy1357/golove/internal/ui"
)

type ToysCmd struct {
	Names     bool `help:"Print toy names only."`
	Connected bool `help:"Only list connected toys."`
}

func (c *ToysCmd) Run(g *Globals) error {
	client, err := newClient(g)
	if err != nil {
		return err
	}
	ctx := context.Background()

	if c.Names {
		names, err := client.GetToyNames(ctx)
		if err != nil {
			return err
		}
		if g.JSON {
			return printJSON(names)
		}
		ui.PrintNames(names)
		return nil
	}

	var toys []golove.Toy
	if c.Connected {
		toys, err = client.ConnectedToys(ctx)
	} else {
		toys, err = client.GetToys(ctx)
	}
	if err != nil {
		return err
	}
	if g.JSON {
		return printJSON(toys)
	}
	ui.PrintToys(toys)
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ui.Output, string(data))
	return nil
}
