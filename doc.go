// Package golove provides a Go client library for the Lovense Game Mode
// (LAN) API exposed by the Lovense Remote app.
//
// Enable the endpoint in the app under Discover > Game Mode > Enable LAN,
// then feed the displayed local IP and port into the client. While connected,
// the app shows your application name under "Accepting control from
// third-party apps".
//
// # Basic Usage
//
// Create a client and list connected toys:
//
//	client, err := golove.NewClient("My Cool App", "10.0.0.69")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	toys, err := client.GetToys(ctx)
//	for _, toy := range toys {
//	    fmt.Printf("%s (battery %d%%)\n", toy.Name, toy.Battery)
//	}
//
// Run a single stimulation function for five seconds:
//
//	resp, err := client.Function(ctx, golove.FunctionRequest{
//	    Levels:   map[golove.Action]int{golove.ActionAll: 2},
//	    Duration: 5,
//	})
//
// Play a preset, or a time-varying strength pattern sent as one command:
//
//	client.Preset(ctx, golove.PresetRequest{Preset: golove.PresetPulse, Duration: 5})
//	client.Pattern(ctx, golove.PatternRequest{Strengths: []int{1, 2, 3, 4, 5, 20}, Duration: 5})
//
// A duration of 0 runs a command until it is stopped:
//
//	client.Stop(ctx)
//
// # Commands and Validation
//
// Every operation has a pure builder that produces the exact JSON payload
// the app expects. Builders validate their arguments up front and fail with
// an error wrapping ErrInvalidArgument before any network traffic:
//
//	cmd, err := golove.NewPresetCommand(golove.PresetWave, 10)
//	if golove.IsInvalidArgument(err) {
//	    // bad preset name or negative duration
//	}
//
// Prebuilt or hand-written payloads can be sent directly:
//
//	resp, err := client.SendCommand(ctx, golove.RawCommand{"command": "GetToyName"})
//
// # Error Handling
//
// Replies from the app carry a result code. Non-success codes are returned
// as *CommandError values; codes outside the documented table are still
// returned, not treated as faults:
//
//	var cmdErr *golove.CommandError
//	if errors.As(err, &cmdErr) && !cmdErr.Known() {
//	    log.Printf("app returned undocumented code %d", cmdErr.Code)
//	}
//
// Helpers such as IsToyNotConnected and IsServerUnavailable cover the
// common cases.
package golove
