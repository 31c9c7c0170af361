package logging

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func Test_SetVerbosity(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	levels := []struct {
		flags int
		level log.Level
		name  string
	}{
		{0, log.ErrorLevel, "ERROR"},
		{1, log.WarnLevel, "WARN"},
		{2, log.InfoLevel, "INFO"},
		{3, log.DebugLevel, "DEBUG"},
		{4, log.TraceLevel, "TRACE"},
		{9, log.TraceLevel, "TRACE"},
	}

	for _, l := range levels {
		SetVerbosity(make([]bool, l.flags))
		require.Equal(t, l.level, log.GetLevel(), "verbosity for %d flags", l.flags)
		require.Equal(t, l.name, VerbosityName())
	}
}

func Test_ContextHookLevels(t *testing.T) {
	require.Equal(t, log.AllLevels, ContextHook{}.Levels())

	entry := log.NewEntry(log.StandardLogger())
	entry.Data = log.Fields{}
	require.NoError(t, ContextHook{}.Fire(entry))
}
