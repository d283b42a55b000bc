package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/taisp/cmds"
	"github.com/reusee/taisp/vars"
)

type Prompt string

type ResultPrefix string

// HistoryFile is the REPL history path. Empty disables history.
type HistoryFile string

var (
	promptFlag  = cmds.Var[string]("-prompt")
	historyFlag = cmds.Var[string]("-history")
)

func (Module) Prompt(
	loader Loader,
) Prompt {
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		First[string](loader, "prompt"),
		"> ",
	))
}

func (Module) ResultPrefix(
	loader Loader,
) ResultPrefix {
	return ResultPrefix(vars.FirstNonZero(
		First[string](loader, "result_prefix"),
		"==> ",
	))
}

func (Module) HistoryFile(
	loader Loader,
) HistoryFile {
	var defaultPath string
	if home, err := os.UserHomeDir(); err == nil {
		defaultPath = filepath.Join(home, ".taisp_history")
	}
	return HistoryFile(vars.FirstNonZero(
		*historyFlag,
		First[string](loader, "history_file"),
		defaultPath,
	))
}
