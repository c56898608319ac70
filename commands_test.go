package golove

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, cmd Command) string {
	t.Helper()
	data, err := json.Marshal(cmd)
	require.NoError(t, err)
	return string(data)
}

func TestNewToyListCommand(t *testing.T) {
	assert.Equal(t, `{"command":"GetToys"}`, mustJSON(t, NewToyListCommand()))
	assert.Equal(t, `{"command":"GetToyName"}`, mustJSON(t, NewToyNameCommand()))
}

func TestNewPresetCommand(t *testing.T) {
	t.Run("valid preset carries exactly the documented fields", func(t *testing.T) {
		cmd, err := NewPresetCommand(PresetPulse, 5)
		require.NoError(t, err)
		assert.Equal(t, `{"command":"Preset","name":"pulse","timeSec":5,"apiVer":1}`, mustJSON(t, cmd))
	})

	t.Run("zero duration passes through unchanged", func(t *testing.T) {
		cmd, err := NewPresetCommand(PresetWave, 0)
		require.NoError(t, err)
		assert.Equal(t, `{"command":"Preset","name":"wave","timeSec":0,"apiVer":1}`, mustJSON(t, cmd))
	})

	t.Run("unknown preset fails", func(t *testing.T) {
		_, err := NewPresetCommand(Preset("tsunami"), 5)
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("negative duration fails", func(t *testing.T) {
		_, err := NewPresetCommand(PresetPulse, -1)
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("toy targeting", func(t *testing.T) {
		cmd, err := PresetRequest{Preset: PresetEarthquake, Duration: 3, Toy: "abc123"}.Command()
		require.NoError(t, err)
		assert.Equal(t,
			`{"command":"Preset","name":"earthquake","timeSec":3,"toy":"abc123","apiVer":1}`,
			mustJSON(t, cmd))
	})
}

func TestFunctionRequest(t *testing.T) {
	t.Run("single action", func(t *testing.T) {
		cmd, err := FunctionRequest{
			Levels:   map[Action]int{ActionVibrate: 5},
			Duration: 3,
		}.Command()
		require.NoError(t, err)
		assert.Equal(t, `{"command":"Function","action":"Vibrate:5","timeSec":3,"apiVer":1}`, mustJSON(t, cmd))
	})

	t.Run("actions serialize in sorted order", func(t *testing.T) {
		cmd, err := FunctionRequest{
			Levels: map[Action]int{
				ActionVibrate: 10,
				ActionPump:    2,
				ActionRotate:  7,
			},
		}.Command()
		require.NoError(t, err)
		assert.Equal(t, "Pump:2,Rotate:7,Vibrate:10", cmd.Action)
	})

	t.Run("permutations yield byte-identical JSON", func(t *testing.T) {
		forward := map[Action]int{}
		backward := map[Action]int{}
		actions := []Action{ActionVibrate, ActionRotate, ActionThrusting, ActionSuction}
		for i, a := range actions {
			forward[a] = 4
			backward[actions[len(actions)-1-i]] = 4
		}

		a, err := FunctionRequest{Levels: forward, Duration: 2}.Command()
		require.NoError(t, err)
		b, err := FunctionRequest{Levels: backward, Duration: 2}.Command()
		require.NoError(t, err)
		assert.Equal(t, mustJSON(t, a), mustJSON(t, b))

		c, err := NewFunctionCommand([]Action{ActionSuction, ActionVibrate, ActionRotate, ActionThrusting}, 4, 2)
		require.NoError(t, err)
		assert.Equal(t, mustJSON(t, a), mustJSON(t, c))
	})

	t.Run("empty action set fails", func(t *testing.T) {
		_, err := FunctionRequest{Levels: map[Action]int{}}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))

		_, err = NewFunctionCommand(nil, 5, 0)
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("strength above documented max fails", func(t *testing.T) {
		_, err := FunctionRequest{Levels: map[Action]int{ActionVibrate: 21}}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("per-action range is enforced", func(t *testing.T) {
		// Pump tops out at 3 even though vibration goes to 20.
		_, err := FunctionRequest{Levels: map[Action]int{ActionPump: 4}}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))

		cmd, err := FunctionRequest{Levels: map[Action]int{ActionPump: 3}}.Command()
		require.NoError(t, err)
		assert.Equal(t, "Pump:3", cmd.Action)
	})

	t.Run("no-change sentinel is exempt from range checks", func(t *testing.T) {
		cmd, err := FunctionRequest{
			Levels: map[Action]int{ActionVibrate: StrengthNoChange},
		}.Command()
		require.NoError(t, err)
		assert.Equal(t, "Vibrate:-1", cmd.Action)
	})

	t.Run("unsupported action fails", func(t *testing.T) {
		_, err := FunctionRequest{Levels: map[Action]int{Action("Explode"): 1}}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("negative duration fails", func(t *testing.T) {
		_, err := FunctionRequest{Levels: map[Action]int{ActionAll: 1}, Duration: -2}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("loop times get a one second floor", func(t *testing.T) {
		cmd, err := FunctionRequest{
			Levels:  map[Action]int{ActionAll: 2},
			LoopOn:  0.5,
			LoopOff: 4,
		}.Command()
		require.NoError(t, err)
		assert.Equal(t, 1.0, cmd.LoopRunningSec)
		assert.Equal(t, 4.0, cmd.LoopPauseSec)
	})

	t.Run("negative loop times fail", func(t *testing.T) {
		_, err := FunctionRequest{Levels: map[Action]int{ActionAll: 2}, LoopOn: -1}.Command()
		require.Error(t, err)
		assert.True(t, IsInvalidArgument(err))
	})

	t.Run("stop previous serializes as 0 or 1", func(t *testing.T) {
		keep := false
		cmd, err := FunctionRequest{
			Levels:       map[Action]int{ActionAll: 2},
			StopPrevious: &keep,
		}.Command()
		require.NoError(t, err)
		assert.Contains(t, mustJSON(t, cmd), `"stopPrevious":0`)
	})

	t.Run("optional fields absent when unset", func(t *testing.T) {
		cmd, err := FunctionRequest{Levels: map[Action]int{ActionAll: 2}}.Command()
		require.NoError(t, err)
		raw := mustJSON(t, cmd)
		assert.NotContains(t, raw, "loopRunningSec")
		assert.NotContains(t, raw, "loopPauseSec")
		assert.NotContains(t, raw, "toy")
		assert.NotContains(t, raw, "stopPrevious")
	})
}

func TestNewStopCommand(t *testing.T) {
	want := `{"command":"Function","action":"Stop","timeSec":0,"apiVer":1}`
	assert.Equal(t, want, mustJSON(t, NewStopCommand()))

	// Pure and stateless: identical output no matter what ran before.
	_, _ = NewFunctionCommand([]Action{ActionVibrate}, 9, 1)
	_, _ = NewPatternCommand([]int{1, 2, 3}, 200, 0)
	assert.Equal(t, want, mustJSON(t, NewStopCommand()))
}

func TestRawCommand(t *testing.T) {
	cmd := RawCommand{"command": "GetToyName"}
	assert.Equal(t, "GetToyName", cmd.CommandName())
	assert.Equal(t, `{"command":"GetToyName"}`, mustJSON(t, cmd))

	assert.Empty(t, RawCommand{"strength": "1;2"}.CommandName())
}
