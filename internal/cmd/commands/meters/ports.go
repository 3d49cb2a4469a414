package meters

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
)

type PortsCommand struct {
	*base.Command
}

func (c *PortsCommand) Synopsis() string {
	return "Manage meter serial port assignments"
}

func (c *PortsCommand) Help() string {
	return `Usage: meterconsole ports <subcommand> [options] [args]

  This command groups subcommands for the serial ports meters report on.`
}

func (c *PortsCommand) Run(args []string) int {
	return cli.RunResultHelp
}

type PortsListCommand struct {
	*base.Command
}

func (c *PortsListCommand) Synopsis() string {
	return "List serial port configurations"
}

func (c *PortsListCommand) Help() string {
	return `Usage: meterconsole ports list [options]` + c.Flags().Help()
}

func (c *PortsListCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("ports list")
}

func (c *PortsListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.SerialPorts(ctx)
	if !res.OK() {
		return c.Error("listing serial ports", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type PortsSetActiveCommand struct {
	*base.Command

	flagActive bool
}

func (c *PortsSetActiveCommand) Synopsis() string {
	return "Enable or disable a serial port configuration"
}

func (c *PortsSetActiveCommand) Help() string {
	return `Usage: meterconsole ports set-active [options] <id>

  Switch a serial port configuration on or off. The rest of the
  configuration is kept as the server has it.` +
		c.Flags().Help()
}

func (c *PortsSetActiveCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("ports set-active")
	f.BoolVar(&c.flagActive, "active", true, "Whether the port is read from.")
	return f
}

func (c *PortsSetActiveCommand) Run(args []string) int {
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

	ports := d.SerialPorts(ctx)
	if !ports.OK() {
		return c.Error("listing serial ports", ports.Err)
	}
	for _, p := range ports.Data.Content {
		if p.ID != id {
			continue
		}
		p.Active = c.flagActive
		res := d.UpdateSerialPort(ctx, id, &p)
		if !res.OK() {
			return c.Error("updating serial port", res.Err)
		}
		if err := c.Render(res.Data); err != nil {
			return c.Error("rendering output", err)
		}
		return 0
	}

	c.UI.Error(fmt.Sprintf("serial port %d not found", id))
	return 1
}
