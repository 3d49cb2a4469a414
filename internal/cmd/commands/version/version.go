package version

import (
	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the meterconsole version"
}

func (c *Command) Help() string {
	return `Usage: meterconsole version`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("meterconsole " + version.FullVersion())
	return 0
}
