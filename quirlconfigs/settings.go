package quirlconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/quirl/cmds"
	"github.com/reusee/quirl/configs"
	"github.com/reusee/quirl/logs"
	"github.com/reusee/quirl/vars"
)

var (
	promptFlag   = cmds.Var[string]("-prompt", "REPL prompt")
	historyFlag  = cmds.Var[string]("-history", "REPL history file, - to disable")
	noBannerFlag = cmds.Switch("-no-banner", "skip the welcome banner")
)

const defaultPrompt = "> "

type Prompt string

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "prompt"),
		defaultPrompt,
	))
}

// HistoryFile is empty when history is disabled.
type HistoryFile string

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	path := vars.FirstNonZero(
		*historyFlag,
		configs.First[string](loader, "history_file"),
	)
	if path == "-" {
		return ""
	}
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, ".quirl_history")
	}
	return HistoryFile(path)
}

type Banner bool

func (Module) Banner(
	loader configs.Loader,
) Banner {
	if *noBannerFlag {
		return false
	}
	if v := configs.First[*bool](loader, "banner"); v != nil {
		return Banner(*v)
	}
	return true
}

// LogLevel is the configured level name, already applied to logs.
type LogLevel string

func (Module) LogLevel(
	loader configs.Loader,
) LogLevel {
	name := configs.First[string](loader, "log_level")
	if err := logs.ConfigureLevel(name); err != nil {
		panic(err)
	}
	return LogLevel(name)
}
