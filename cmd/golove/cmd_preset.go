package main

import (
	"context"

	"github.com/catboy1357/golove"
)

type PresetCmd struct {
	Name     string  `arg:"" predictor:"preset" help:"Preset name: pulse, wave, fireworks, or earthquake."`
	Duration float64 `short:"t" default:"0" help:"Run time in seconds. 0 runs until stopped."`
	Toy      string  `help:"Target a single toy by ID."`
}

func (c *PresetCmd) Run(g *Globals) error {
	preset, err := parsePreset(c.Name)
	if err != nil {
		return err
	}

	client, err := newClient(g)
	if err != nil {
		return err
	}
	resp, err := client.Preset(context.Background(), golove.PresetRequest{
		Preset:   preset,
		Duration: c.Duration,
		Toy:      c.Toy,
	})
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}
