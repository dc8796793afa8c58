package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrAppNameIsEmpty is returned if Log.AppName was not defined.
	ErrAppNameIsEmpty = errors.New("config Log.AppName can not be empty")

	// ErrServiceNameIsEmpty is returned if Log.ServiceName was not defined.
	ErrServiceNameIsEmpty = errors.New("config Log.ServiceName can not be empty")

	// ErrUnsupportedLogLevel is returned if Log.LogLevel is not a zerolog level.
	ErrUnsupportedLogLevel = errors.New("config Log.LogLevel is not supported")
)

// errorOutput receives events zerolog failed to write.
var errorOutput io.Writer = os.Stderr //nolint:gochecknoglobals

// ErrorHandler reports events zerolog could not write to any of its outputs.
func ErrorHandler(err error) {
	_, _ = fmt.Fprintf(errorOutput, "recordsettings: log event lost: %v\n", err)
}
