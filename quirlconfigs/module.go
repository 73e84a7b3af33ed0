package quirlconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/quirl/configs"
	"github.com/reusee/quirl/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
