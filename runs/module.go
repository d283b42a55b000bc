package runs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/taisp/builtins"
	"github.com/reusee/taisp/configs"
	"github.com/reusee/taisp/logs"
)

type Module struct {
	dscope.Module
	Builtins builtins.Module
	Configs  configs.Module
	Logs     logs.Module
}

var wrap = e5.Wrap.With(e5.WrapStacktrace)
