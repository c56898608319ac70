package main

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/catboy1357/golove"
)

// Exit codes for CLI commands.
const (
	exitSuccess     = 0
	exitError       = 1
	exitUsage       = 2
	exitUnreachable = 3
	exitRemote      = 4
)

// ExitError carries a process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errNoHost() *ExitError {
	return &ExitError{
		Code:    exitUsage,
		Message: "No host configured.\nPass --host or set it in the config file (see golove --help).",
	}
}

func errUsage(format string, args ...any) *ExitError {
	return &ExitError{Code: exitUsage, Message: fmt.Sprintf(format, args...)}
}

// exitCodeFor maps client errors to exit codes.
func exitCodeFor(err error) int {
	var cmdErr *golove.CommandError
	var urlErr *url.Error
	switch {
	case golove.IsInvalidArgument(err):
		return exitUsage
	case errors.As(err, &cmdErr):
		return exitRemote
	case errors.As(err, &urlErr):
		return exitUnreachable
	default:
		return exitError
	}
}
