package golove

import (
	"sort"
	"strconv"
	"strings"
)

// Wire-level command names.
const (
	cmdGetToys    = "GetToys"
	cmdGetToyName = "GetToyName"
	cmdFunction   = "Function"
	cmdPattern    = "Pattern"
	cmdPreset     = "Preset"

	// actionStop is the Function action that halts everything.
	actionStop = "Stop"
)

// Command is a JSON payload understood by the app's /command endpoint.
// Each command kind has its own struct so unused fields are absent from the
// wire format rather than null or zero.
type Command interface {
	// CommandName returns the value of the payload's "command" field.
	CommandName() string
}

// RawCommand is an arbitrary JSON object sent as-is. It is the escape hatch
// for payloads the typed builders do not cover, such as user-created presets.
type RawCommand map[string]any

// CommandName implements Command.
func (r RawCommand) CommandName() string {
	name, _ := r["command"].(string)
	return name
}

// ToyListCommand requests information about connected toys.
type ToyListCommand struct {
	Command string `json:"command"`
}

// CommandName implements Command.
func (c ToyListCommand) CommandName() string { return c.Command }

// NewToyListCommand builds the query for full toy descriptors.
func NewToyListCommand() ToyListCommand {
	return ToyListCommand{Command: cmdGetToys}
}

// NewToyNameCommand builds the query for toy names only.
func NewToyNameCommand() ToyListCommand {
	return ToyListCommand{Command: cmdGetToyName}
}

// FunctionCommand is a single immediate stimulation instruction.
type FunctionCommand struct {
	Command        string  `json:"command"`
	Action         string  `json:"action"`
	TimeSec        float64 `json:"timeSec"`
	LoopRunningSec float64 `json:"loopRunningSec,omitempty"`
	LoopPauseSec   float64 `json:"loopPauseSec,omitempty"`
	Toy            string  `json:"toy,omitempty"`
	StopPrevious   *int    `json:"stopPrevious,omitempty"`
	APIVer         int     `json:"apiVer"`
}

// CommandName implements Command.
func (c FunctionCommand) CommandName() string { return c.Command }

// PresetCommand plays one of the app's built-in patterns.
type PresetCommand struct {
	Command string  `json:"command"`
	Name    string  `json:"name"`
	TimeSec float64 `json:"timeSec"`
	Toy     string  `json:"toy,omitempty"`
	APIVer  int     `json:"apiVer"`
}

// CommandName implements Command.
func (c PresetCommand) CommandName() string { return c.Command }

// PatternCommand plays a compact time-varying strength sequence, sent as one
// command to avoid a network round trip per strength change.
type PatternCommand struct {
	Command  string  `json:"command"`
	Rule     string  `json:"rule"`
	Strength string  `json:"strength"`
	TimeSec  float64 `json:"timeSec"`
	Toy      string  `json:"toy,omitempty"`
	APIVer   int     `json:"apiVer"`
}

// CommandName implements Command.
func (c PatternCommand) CommandName() string { return c.Command }

// FunctionRequest describes a Function command.
type FunctionRequest struct {
	// Levels maps each action to its strength. StrengthNoChange keeps an
	// action's current strength.
	Levels map[Action]int

	// Duration is the run time in seconds. 0 runs until stopped.
	Duration float64

	// LoopOn and LoopOff enable looped execution: run for LoopOn seconds,
	// pause for LoopOff. Zero leaves looping off. The app enforces a one
	// second minimum, so sub-second values are raised to 1.
	LoopOn  float64
	LoopOff float64

	// Toy targets a single toy by ID. Empty targets all toys.
	Toy string

	// StopPrevious controls whether the previous command is stopped first.
	// Nil keeps the app's default (stop).
	StopPrevious *bool
}

// Command builds and validates the wire payload. Actions are serialized in
// sorted order so the same logical set always produces byte-identical JSON.
func (r FunctionRequest) Command() (FunctionCommand, error) {
	if len(r.Levels) == 0 {
		return FunctionCommand{}, invalidArgf("function requires at least one action")
	}
	if r.Duration < 0 {
		return FunctionCommand{}, invalidArgf("duration %v must not be negative", r.Duration)
	}
	if r.LoopOn < 0 || r.LoopOff < 0 {
		return FunctionCommand{}, invalidArgf("loop times must not be negative")
	}

	actions := make([]Action, 0, len(r.Levels))
	for action := range r.Levels {
		actions = append(actions, action)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	parts := make([]string, 0, len(actions))
	for _, action := range actions {
		strength := r.Levels[action]
		if !action.Valid() {
			return FunctionCommand{}, invalidArgf("unsupported action %q", string(action))
		}
		if strength != StrengthNoChange {
			min, max := action.StrengthRange()
			if strength < min || strength > max {
				return FunctionCommand{}, invalidArgf("strength %d for %s outside range [%d,%d]",
					strength, action, min, max)
			}
		}
		parts = append(parts, string(action)+":"+strconv.Itoa(strength))
	}

	cmd := FunctionCommand{
		Command: cmdFunction,
		Action:  strings.Join(parts, ","),
		TimeSec: r.Duration,
		Toy:     r.Toy,
		APIVer:  1,
	}
	if r.LoopOn > 0 {
		cmd.LoopRunningSec = atLeast(r.LoopOn, 1)
	}
	if r.LoopOff > 0 {
		cmd.LoopPauseSec = atLeast(r.LoopOff, 1)
	}
	if r.StopPrevious != nil {
		v := 0
		if *r.StopPrevious {
			v = 1
		}
		cmd.StopPrevious = &v
	}
	return cmd, nil
}

// NewFunctionCommand builds a Function command applying one strength to a
// set of actions. Any permutation of the same set yields identical JSON.
func NewFunctionCommand(actions []Action, strength int, duration float64) (FunctionCommand, error) {
	if len(actions) == 0 {
		return FunctionCommand{}, invalidArgf("function requires at least one action")
	}
	levels := make(map[Action]int, len(actions))
	for _, action := range actions {
		levels[action] = strength
	}
	return FunctionRequest{Levels: levels, Duration: duration}.Command()
}

// PresetRequest describes a Preset command.
type PresetRequest struct {
	// Preset must be a member of the built-in catalog.
	Preset Preset

	// Duration is the run time in seconds. 0 runs until stopped.
	Duration float64

	// Toy targets a single toy by ID. Empty targets all toys.
	Toy string
}

// Command builds and validates the wire payload.
func (r PresetRequest) Command() (PresetCommand, error) {
	if !r.Preset.Valid() {
		return PresetCommand{}, invalidArgf("unknown preset %q", string(r.Preset))
	}
	if r.Duration < 0 {
		return PresetCommand{}, invalidArgf("duration %v must not be negative", r.Duration)
	}
	return PresetCommand{
		Command: cmdPreset,
		Name:    string(r.Preset),
		TimeSec: r.Duration,
		Toy:     r.Toy,
		APIVer:  1,
	}, nil
}

// NewPresetCommand builds a Preset command.
func NewPresetCommand(preset Preset, duration float64) (PresetCommand, error) {
	return PresetRequest{Preset: preset, Duration: duration}.Command()
}

// NewStopCommand builds the command that stops all running functions. The
// output is fixed regardless of prior call history.
func NewStopCommand() FunctionCommand {
	return newStopCommand("")
}

func newStopCommand(toy string) FunctionCommand {
	return FunctionCommand{
		Command: cmdFunction,
		Action:  actionStop,
		TimeSec: 0,
		Toy:     toy,
		APIVer:  1,
	}
}

func atLeast(v, floor float64) float64 {
	if v < floor {
		return floor
	}
	return v
}
