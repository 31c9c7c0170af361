package logging

import (
	log "github.com/sirupsen/logrus"
)

// SetVerbosity sets the log level from the number of `-v` flags. Without any flag only errors
// are logged, every flag enables the next level up to TRACE.
func SetVerbosity(v []bool) {
	verbosity := log.ErrorLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

// VerbosityName returns the name of the current log level.
func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
