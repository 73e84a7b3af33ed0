package quirlconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/quirl/configs"
	"github.com/reusee/quirl/logs"
)

//go:embed schema.cue
var schema string

var configFilenames = []string{
	"quirl.cue",
	".quirl.cue",
}

// ConfigsLoader reads config files from the working directory, the user
// config dir and /etc, in that order of precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) configs.Loader {

	var dirs []string
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "quirl"))
	}
	dirs = append(dirs, "/etc")

	paths := findConfigFiles(dirs)
	if len(paths) > 0 {
		logger.Info("config file",
			"paths", paths,
		)
	}

	return configs.NewLoader(paths, schema)
}

func findConfigFiles(dirs []string) (paths []string) {
	for _, dir := range dirs {
		for _, filename := range configFilenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}
	return
}
