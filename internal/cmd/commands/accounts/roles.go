package accounts

import (
	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
)

type RolesCommand struct {
	*base.Command
}

func (c *RolesCommand) Synopsis() string {
	return "Inspect roles"
}

func (c *RolesCommand) Help() string {
	return `Usage: meterconsole roles <subcommand> [options] [args]

  This command groups subcommands for inspecting roles.`
}

func (c *RolesCommand) Run(args []string) int {
	return cli.RunResultHelp
}

type RolesListCommand struct {
	*base.Command
}

func (c *RolesListCommand) Synopsis() string {
	return "List roles"
}

func (c *RolesListCommand) Help() string {
	return `Usage: meterconsole roles list [options]` + c.Flags().Help()
}

func (c *RolesListCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("roles list")
}

func (c *RolesListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.Roles(ctx)
	if !res.OK() {
		return c.Error("listing roles", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type RolesGetCommand struct {
	*base.Command
}

func (c *RolesGetCommand) Synopsis() string {
	return "Show one role and its permissions"
}

func (c *RolesGetCommand) Help() string {
	return `Usage: meterconsole roles get [options] <id>` + c.Flags().Help()
}

func (c *RolesGetCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("roles get")
}

func (c *RolesGetCommand) Run(args []string) int {
	f := c.Flags()
	d, err := c.Init(f, args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	id, err := base.ParseID(f.Args())
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.Role(ctx, id)
	if !res.OK() {
		return c.Error("reading role", res.Err)
	}

	// Tables cannot show the nested permission list, so list it below.
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	if c.Format() == base.FormatTable && len(res.Data.Permissions) > 0 {
		c.UI.Output("")
		if err := c.Render(res.Data.Permissions); err != nil {
			return c.Error("rendering output", err)
		}
	}
	return 0
}
