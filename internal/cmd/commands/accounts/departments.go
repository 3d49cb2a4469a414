package accounts

import (
	"fmt"
	"strings"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/models"
)

type DepartmentsCommand struct {
	*base.Command
}

func (c *DepartmentsCommand) Synopsis() string {
	return "Manage departments"
}

func (c *DepartmentsCommand) Help() string {
	return `Usage: meterconsole departments <subcommand> [options] [args]

  This command groups subcommands for managing departments.`
}

func (c *DepartmentsCommand) Run(args []string) int {
	return cli.RunResultHelp
}

type DepartmentsListCommand struct {
	*base.Command

	page models.PageRequest
}

func (c *DepartmentsListCommand) Synopsis() string {
	return "List departments"
}

func (c *DepartmentsListCommand) Help() string {
	return `Usage: meterconsole departments list [options]` + c.Flags().Help()
}

func (c *DepartmentsListCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("departments list")
	f.PageVars(&c.page)
	return f
}

func (c *DepartmentsListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.Departments(ctx, c.page)
	if !res.OK() {
		return c.Error("listing departments", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DepartmentsGetCommand struct {
	*base.Command
}

func (c *DepartmentsGetCommand) Synopsis() string {
	return "Show one department"
}

func (c *DepartmentsGetCommand) Help() string {
	return `Usage: meterconsole departments get [options] <id>` + c.Flags().Help()
}

func (c *DepartmentsGetCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("departments get")
}

func (c *DepartmentsGetCommand) Run(args []string) int {
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

	res := d.Department(ctx, id)
	if !res.OK() {
		return c.Error("reading department", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DepartmentsCreateCommand struct {
	*base.Command

	flagName string
}

func (c *DepartmentsCreateCommand) Synopsis() string {
	return "Create a department"
}

func (c *DepartmentsCreateCommand) Help() string {
	return `Usage: meterconsole departments create -name=<name> [options]` + c.Flags().Help()
}

func (c *DepartmentsCreateCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("departments create")
	f.StringVar(&c.flagName, "name", "", "(Required) Department name.")
	return f
}

func (c *DepartmentsCreateCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	name := strings.TrimSpace(c.flagName)
	if name == "" {
		c.UI.Error("name flag is required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.CreateDepartment(ctx, &models.Department{Name: name})
	if !res.OK() {
		return c.Error("creating department", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type DepartmentsDeleteCommand struct {
	*base.Command
}

func (c *DepartmentsDeleteCommand) Synopsis() string {
	return "Delete a department"
}

func (c *DepartmentsDeleteCommand) Help() string {
	return `Usage: meterconsole departments delete [options] <id>` + c.Flags().Help()
}

func (c *DepartmentsDeleteCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("departments delete")
}

func (c *DepartmentsDeleteCommand) Run(args []string) int {
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

	if res := d.DeleteDepartment(ctx, id); !res.OK() {
		return c.Error("deleting department", res.Err)
	}
	c.UI.Info(fmt.Sprintf("Deleted department %d", id))
	return 0
}
