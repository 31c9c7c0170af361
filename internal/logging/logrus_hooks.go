package logging

import (
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// callerDepth is the number of frames between Fire and the code that issued the log call when
// logging through the package-level logrus functions.
const callerDepth = 9

// ContextHook adds the go source location (file, line, func) of the log call to every entry.
type ContextHook struct{}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire walks back the call stack to the method that issued the log call.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	if pc, file, line, ok := runtime.Caller(callerDepth); ok {
		entry.Data["file"] = path.Base(file)
		entry.Data["line"] = line
		entry.Data["func"] = path.Base(runtime.FuncForPC(pc).Name())
	}

	return nil
}
