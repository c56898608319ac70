package main

import (
	"context"

	"github.com/catboy1357/golove"
)

type FunctionCmd struct {
	Strength int      `arg:"" help:"Strength to apply (0-20, pump and depth top out at 3)."`
	Action   []string `short:"a" predictor:"action" help:"Actions to drive. Defaults to everything the toy supports."`
	Duration float64  `short:"t" default:"0" help:"Run time in seconds. 0 runs until stopped."`
	LoopOn   float64  `help:"Seconds the loop runs before pausing."`
	LoopOff  float64  `help:"Seconds the loop pauses before resuming."`
	Toy      string   `help:"Target a single toy by ID."`
}

func (c *FunctionCmd) Run(g *Globals) error {
	actions, err := parseActions(c.Action)
	if err != nil {
		return err
	}

	levels := make(map[golove.Action]int, len(actions))
	for _, action := range actions {
		levels[action] = c.Strength
	}

	client, err := newClient(g)
	if err != nil {
		return err
	}
	resp, err := client.Function(context.Background(), golove.FunctionRequest{
		Levels:   levels,
		Duration: c.Duration,
		LoopOn:   c.LoopOn,
		LoopOff:  c.LoopOff,
		Toy:      c.Toy,
	})
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}
