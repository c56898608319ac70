package golove

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the golove client.
var (
	// Construction errors
	ErrEmptyAppName = errors.New("golove: app name cannot be empty")
	ErrEmptyHost    = errors.New("golove: host cannot be empty")

	// ErrInvalidArgument is wrapped by every builder validation failure.
	// It always fires before any network interaction.
	ErrInvalidArgument = errors.New("golove: invalid argument")

	// ErrMalformedResponse is returned when a reply lacks the required
	// structure (not JSON, or missing the code field).
	ErrMalformedResponse = errors.New("golove: malformed response")

	// ErrNoLastCommand is returned by Resend when nothing has been sent yet.
	ErrNoLastCommand = errors.New("golove: no command has been sent yet")
)

// Result codes documented for the Game Mode LAN API.
const (
	CodeOK                 = 200
	CodeInvalidCommand     = 400
	CodeToyNotFound        = 401
	CodeToyNotConnected    = 402
	CodeCommandUnsupported = 403
	CodeInvalidParameter   = 404
	CodeServerNotStarted   = 500
	CodeServerError        = 506
)

// codeDescriptions maps documented result codes to their messages.
var codeDescriptions = map[int]string{
	CodeOK:                 "OK",
	CodeInvalidCommand:     "Invalid Command",
	CodeToyNotFound:        "Toy Not Found",
	CodeToyNotConnected:    "Toy Not Connected",
	CodeCommandUnsupported: "Toy Doesn't Support This Command",
	CodeInvalidParameter:   "Invalid Parameter",
	CodeServerNotStarted:   "HTTP server not started or disabled",
	CodeServerError:        "Server Error. Restart Lovense Connect.",
}

// CommandError is a non-success result code returned by the app. Codes
// outside the documented table are carried through rather than rejected, so
// callers can handle new codes the app starts emitting.
type CommandError struct {
	// Code is the raw result code from the reply.
	Code int
	// Description is the documented message for the code, or empty when the
	// code is not in the documented table.
	Description string
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("golove: app returned %d: %s", e.Code, e.Description)
	}
	return fmt.Sprintf("golove: app returned unknown code %d", e.Code)
}

// Known reports whether the code is part of the documented code table.
func (e *CommandError) Known() bool {
	return e.Description != ""
}

// invalidArgf builds a validation error wrapping ErrInvalidArgument.
func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IsInvalidArgument returns true if the error is a builder validation failure.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

// IsMalformedResponse returns true if the error indicates a reply that could
// not be decoded at all.
func IsMalformedResponse(err error) bool {
	return errors.Is(err, ErrMalformedResponse)
}

// IsToyNotFound returns true if the app reported the target toy as unknown.
func IsToyNotFound(err error) bool {
	return hasCode(err, CodeToyNotFound)
}

// IsToyNotConnected returns true if the app reported the toy as disconnected.
func IsToyNotConnected(err error) bool {
	return hasCode(err, CodeToyNotConnected)
}

// IsServerUnavailable returns true if the app's HTTP server is not started,
// disabled, or in an error state that requires a restart.
func IsServerUnavailable(err error) bool {
	return hasCode(err, CodeServerNotStarted) || hasCode(err, CodeServerError)
}

// IsUnknownCode returns true if the app replied with a code outside the
// documented table.
func IsUnknownCode(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && !cmdErr.Known()
}

func hasCode(err error, code int) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == code
}
