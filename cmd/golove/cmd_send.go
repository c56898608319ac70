package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/catboy1357/golove"
)

type SendCmd struct {
	Payload string `arg:"" optional:"" help:"JSON command object. Reads stdin when omitted."`
}

func (c *SendCmd) Run(g *Globals) error {
	data := []byte(c.Payload)
	if c.Payload == "" {
		var err error
		data, err = io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
	}

	var cmd golove.RawCommand
	if err := json.Unmarshal(data, &cmd); err != nil {
		return errUsage("Payload is not a JSON object: %v", err)
	}
	if cmd.CommandName() == "" {
		return errUsage("Payload needs a \"command\" field.")
	}

	client, err := newClient(g)
	if err != nil {
		return err
	}
	resp, err := client.SendCommand(context.Background(), cmd)
	if err != nil {
		return err
	}
	printResponse(g, resp)
	return nil
}
