package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/catboy1357/golove"
	"github.com/catboy1357/golove/internal/ui"
)

// newClient builds a client from flags merged over the config file.
func newClient(g *Globals) (*golove.Client, error) {
	cfg, err := loadConfig(g.Config)
	if err != nil {
		return nil, err
	}

	host := g.Host
	if host == "" {
		host = cfg.Host
	}
	if host == "" {
		return nil, errNoHost()
	}

	appName := g.AppName
	if cfg.AppName != "" && g.AppName == "golove" {
		appName = cfg.AppName
	}

	port := g.Port
	if port == 0 {
		port = cfg.Port
	}
	if port == 0 {
		port = golove.DefaultPort
	}

	opts := []golove.Option{
		golove.WithPort(port),
		golove.WithTimeout(g.Timeout),
	}
	if g.Verbose {
		opts = append(opts, golove.WithLogger(newLogger()))
	}
	return golove.NewClient(appName, host, opts...)
}

func newLogger() zerolog.Logger {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// parseActions resolves action names case-insensitively.
// An empty list means drive everything the toy supports.
func parseActions(names []string) ([]golove.Action, error) {
	if len(names) == 0 {
		return []golove.Action{golove.ActionAll}, nil
	}
	actions := make([]golove.Action, 0, len(names))
	for _, name := range names {
		action, ok := lookupAction(name)
		if !ok {
			return nil, errUsage("Unknown action %q.\nValid actions: %s", name, strings.Join(actionNames(), ", "))
		}
		actions = append(actions, action)
	}
	return actions, nil
}

func lookupAction(name string) (golove.Action, bool) {
	for _, action := range golove.Actions() {
		if strings.EqualFold(string(action), name) {
			return action, true
		}
	}
	return "", false
}

func actionNames() []string {
	actions := golove.Actions()
	names := make([]string, len(actions))
	for i, action := range actions {
		names[i] = strings.ToLower(string(action))
	}
	return names
}

// parsePreset resolves a preset name case-insensitively.
func parsePreset(name string) (golove.Preset, error) {
	preset := golove.Preset(strings.ToLower(name))
	if !preset.Valid() {
		return "", errUsage("Unknown preset %q.\nValid presets: %s", name, strings.Join(presetNames(), ", "))
	}
	return preset, nil
}

func presetNames() []string {
	presets := golove.Presets()
	names := make([]string, len(presets))
	for i, preset := range presets {
		names[i] = string(preset)
	}
	return names
}

// parseSteps parses a comma-separated strength list like "1,5,10,20".
func parseSteps(raw string) ([]int, error) {
	steps, err := golove.ParseStrengths(strings.ReplaceAll(raw, ",", ";"))
	if err != nil {
		return nil, errUsage("Invalid step list %q: %v", raw, err)
	}
	return steps, nil
}

// printResponse reports a command reply, honoring --json.
func printResponse(g *Globals, resp *golove.Response) {
	if g.JSON {
		fmt.Fprintln(ui.Output, string(resp.Raw))
		return
	}
	ui.PrintResult(resp.Code, resp.Type)
}
