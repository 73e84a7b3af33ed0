package logs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/reusee/quirl/cmds"
)

var level = new(slog.LevelVar)

// set by a -log-* flag, which wins over configuration
var levelFromFlag bool

func init() {
	level.Set(slog.LevelWarn)

	for _, l := range []slog.Level{
		slog.LevelDebug,
		slog.LevelInfo,
		slog.LevelWarn,
		slog.LevelError,
	} {
		cmds.Define("-log-"+strings.ToLower(l.String()), cmds.Func(func() {
			level.Set(l)
			levelFromFlag = true
		}).Desc("set log level to "+strings.ToLower(l.String())))
	}
}

// ConfigureLevel applies a configured level unless one was given on the command line.
func ConfigureLevel(name string) error {
	if name == "" || levelFromFlag {
		return nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return fmt.Errorf("log level %q: %w", name, err)
	}
	level.Set(l)
	return nil
}

func Level() slog.Level {
	return level.Level()
}
