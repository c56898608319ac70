package main

import (
	"context"

	"github.com/catboy1357/golove"
)

type PatternCmd struct {
	Steps    string   `arg:"" help:"Comma-separated strength steps, e.g. 0,5,10,20,10,5."`
	Interval int      `short:"i" default:"100" help:"Milliseconds between steps (100-1000)."`
	Action   []string `short:"a" predictor:"action" help:"Actions the pattern drives. Defaults to all."`
	Duration float64  `short:"t" default:"0" help:"Run time in seconds. 0 runs until stopped."`
	Toy      string   `help:"Target a single toy by ID."`
}

func (c *PatternCmd) Run(g *Globals) error {
	steps, err := parseSteps(c.Steps)
	if err != nil {
		return err
	}
	var actions []golove.Action
	if len(c.Action) > 0 {
		actions, err = parseActions(c.Action)
		if err != nil {
			return err
		}
	}

	client, err := newClient(g)
	if err != nil {
		return err
	}
	resp, err := client.Pattern(context.Background(), golove.PatternRequest{
		Strengths: steps,
		Interval:  c.Interval,
		Duration:  c.Duration,
		Actions:   actions,
		Toy:       c.Toy,
	})
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}

type PatternRawCmd struct {
	Strength string  `arg:"" help:"Semicolon-joined strength string, e.g. 1;2;3;4;5;20."`
	Rule     string  `short:"r" help:"Rule string, e.g. V:1;F:v;S:100#. Defaults to all actions at 100ms."`
	Duration float64 `short:"t" default:"0" help:"Run time in seconds. 0 runs until stopped."`
	Toy      string  `help:"Target a single toy by ID."`
}

func (c *PatternRawCmd) Run(g *Globals) error {
	client, err := newClient(g)
	if err != nil {
		return err
	}
	resp, err := client.PatternRaw(context.Background(), golove.RawPatternRequest{
		Strength: c.Strength,
		Rule:     c.Rule,
		Duration: c.Duration,
		Toy:      c.Toy,
	})
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}
