package util

import (
	"os"

	"github.com/bokysan/base45"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	// ErrInvalidInput is the exit code for input that is not valid Base45 or not valid UTF-8 text.
	ErrInvalidInput = 65
	ErrGeneric      = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with an error code.
// The code of a `flags.Error` is its type, rejected codec input exits with ErrInvalidInput and
// everything else with ErrGeneric.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	var flagsError *flags.Error
	if errors.As(err, &flagsError) && flagsError.Type == flags.ErrHelp {
		os.Exit(0)
		return
	}

	log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	log.Exit(ExitCode(err))
}

// ExitCode maps an error to the process exit code used by MustErrorNilOrExit.
func ExitCode(err error) int {
	var flagsError *flags.Error
	switch {
	case err == nil:
		return 0
	case errors.As(err, &flagsError):
		return int(flagsError.Type)
	case errors.Is(err, base45.ErrInvalidEncoding), errors.Is(err, base45.ErrInvalidUtf8):
		return ErrInvalidInput
	default:
		return ErrGeneric
	}
}
