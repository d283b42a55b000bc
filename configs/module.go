package configs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
	"github.com/reusee/taisp/logs"
)

type Module struct {
	dscope.Module
}

//go:embed schema.cue
var schema string

var fileNames = []string{
	"taisp.cue",
	".taisp.cue",
}

// ConfigsLoader loads taisp.cue or .taisp.cue from the working directory, the user config dir and /etc, in that precedence.
func (Module) ConfigsLoader(
	logger logs.Logger,
) Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		paths = append(paths, existing(workingDir)...)
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		paths = append(paths, existing(configDir)...)
	}

	// system wide dir
	paths = append(paths, existing("/etc")...)

	return NewLoader(paths, schema)
}

func existing(dir string) (ret []string) {
	for _, filename := range fileNames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			ret = append(ret, path)
		}
	}
	return
}
