package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"
)

var version = "dev"

// Globals holds flags shared by every subcommand.
type Globals struct {
	Host    string        `short:"H" help:"Address shown on the app's Game Mode screen."`
	Port    int           `short:"p" help:"Game Mode port (default 20010)."`
	AppName string        `help:"Name shown to the user inside the app." default:"golove"`
	Config  string        `short:"c" help:"Path to a config file." type:"path"`
	Timeout time.Duration `help:"HTTP request timeout." default:"10s"`
	Verbose bool          `short:"v" help:"Enable debug logging."`
	JSON    bool          `help:"Print raw JSON replies instead of formatted output."`
}

type CLI struct {
	Globals

	Toys       ToysCmd       `cmd:"" help:"List toys known to the app"`
	Function   FunctionCmd   `cmd:"" help:"Drive one or more actions at a strength"`
	Preset     PresetCmd     `cmd:"" help:"Run a built-in preset"`
	Pattern    PatternCmd    `cmd:"" help:"Loop a sequence of strength steps"`
	PatternRaw PatternRawCmd `cmd:"" name:"pattern-raw" help:"Send a pattern with a hand-written rule string"`
	Stop       StopCmd       `cmd:"" help:"Stop all actions"`
	Send       SendCmd       `cmd:"" help:"Send a raw JSON command"`

	Version            VersionCmd                   `cmd:"" help:"Show version"`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("golove"),
		kong.Description("Control Lovense toys over the LAN through the Remote app's Game Mode"),
		kong.UsageOnError(),
	)
	kongplete.Complete(parser,
		kongplete.WithPredictor("action", newActionPredictor()),
		kongplete.WithPredictor("preset", newPresetPredictor()),
	)

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&cli.Globals); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}

type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("golove version %s\n", version)
	return nil
}
