package accounts

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/models"
)

type UsersCommand struct {
	*base.Command
}

func (c *UsersCommand) Synopsis() string {
	return "Manage user accounts"
}

func (c *UsersCommand) Help() string {
	return `Usage: meterconsole users <subcommand> [options] [args]

  This command groups subcommands for listing and removing user accounts.`
}

func (c *UsersCommand) Run(args []string) int {
	return cli.RunResultHelp
}

type UsersListCommand struct {
	*base.Command

	page models.PageRequest
}

func (c *UsersListCommand) Synopsis() string {
	return "List user accounts"
}

func (c *UsersListCommand) Help() string {
	return `Usage: meterconsole users list [options]` + c.Flags().Help()
}

func (c *UsersListCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("users list")
	f.PageVars(&c.page)
	return f
}

func (c *UsersListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.Users(ctx, c.page)
	if !res.OK() {
		return c.Error("listing users", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type UsersGetCommand struct {
	*base.Command
}

func (c *UsersGetCommand) Synopsis() string {
	return "Show one user account"
}

func (c *UsersGetCommand) Help() string {
	return `Usage: meterconsole users get [options] <id>` + c.Flags().Help()
}

func (c *UsersGetCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("users get")
}

func (c *UsersGetCommand) Run(args []string) int {
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

	res := d.User(ctx, id)
	if !res.OK() {
		return c.Error("reading user", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type UsersDeleteCommand struct {
	*base.Command
}

func (c *UsersDeleteCommand) Synopsis() string {
	return "Delete a user account"
}

func (c *UsersDeleteCommand) Help() string {
	return `Usage: meterconsole users delete [options] <id>` + c.Flags().Help()
}

func (c *UsersDeleteCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("users delete")
}

func (c *UsersDeleteCommand) Run(args []string) int {
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

	if res := d.DeleteUser(ctx, id); !res.OK() {
		return c.Error("deleting user", res.Err)
	}
	c.UI.Info(fmt.Sprintf("Deleted user %d", id))
	return 0
}
