package golove

// Action identifies a stimulation function supported by the app.
type Action string

// Actions understood by the Function and Pattern commands.
const (
	ActionVibrate   Action = "Vibrate"
	ActionVibrate1  Action = "Vibrate1"
	ActionVibrate2  Action = "Vibrate2"
	ActionVibrate3  Action = "Vibrate3"
	ActionRotate    Action = "Rotate"
	ActionPump      Action = "Pump"
	ActionThrusting Action = "Thrusting"
	ActionFingering Action = "Fingering"
	ActionSuction   Action = "Suction"
	ActionDepth     Action = "Depth"

	// ActionAll targets every function the connected toys support.
	ActionAll Action = "All"
)

// StrengthNoChange leaves an action's current strength untouched.
const StrengthNoChange = -1

type strengthRange struct {
	min, max int
}

// Documented strength ranges per action. Most actions accept 0-20; Pump and
// Depth top out at 3.
var actionRanges = map[Action]strengthRange{
	ActionVibrate:   {0, 20},
	ActionVibrate1:  {0, 20},
	ActionVibrate2:  {0, 20},
	ActionVibrate3:  {0, 20},
	ActionRotate:    {0, 20},
	ActionPump:      {0, 3},
	ActionThrusting: {0, 20},
	ActionFingering: {0, 20},
	ActionSuction:   {0, 20},
	ActionDepth:     {0, 3},
	ActionAll:       {0, 20},
}

// Valid reports whether the action is part of the supported set.
func (a Action) Valid() bool {
	_, ok := actionRanges[a]
	return ok
}

// StrengthRange returns the documented strength bounds for the action.
// Unknown actions report the common 0-20 range.
func (a Action) StrengthRange() (min, max int) {
	r, ok := actionRanges[a]
	if !ok {
		return 0, 20
	}
	return r.min, r.max
}

// letterCode returns the single-letter feature code used in pattern rule
// strings. ActionAll has no letter; a blank feature field targets everything.
func (a Action) letterCode() (byte, bool) {
	if len(a) == 0 || a == ActionAll {
		return 0, false
	}
	c := a[0]
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	switch c {
	case 'v', 'r', 'p', 't', 'f', 's', 'd':
		return c, true
	}
	return 0, false
}

// Actions returns every supported action, sorted.
func Actions() []Action {
	return []Action{
		ActionAll,
		ActionDepth,
		ActionFingering,
		ActionPump,
		ActionRotate,
		ActionSuction,
		ActionThrusting,
		ActionVibrate,
		ActionVibrate1,
		ActionVibrate2,
		ActionVibrate3,
	}
}

// Preset names one of the app's built-in stimulation patterns.
type Preset string

// The built-in preset catalog. User-created presets are not part of the
// closed set; send those through RawCommand instead.
const (
	PresetPulse      Preset = "pulse"
	PresetWave       Preset = "wave"
	PresetFireworks  Preset = "fireworks"
	PresetEarthquake Preset = "earthquake"
)

// Valid reports whether the preset is part of the built-in catalog.
func (p Preset) Valid() bool {
	switch p {
	case PresetPulse, PresetWave, PresetFireworks, PresetEarthquake:
		return true
	}
	return false
}

// Presets returns the built-in preset catalog, sorted.
func Presets() []Preset {
	return []Preset{PresetEarthquake, PresetFireworks, PresetPulse, PresetWave}
}
