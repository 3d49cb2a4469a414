package notifications

import (
	"fmt"

	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/models"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read and send notifications"
}

func (c *Command) Help() string {
	return `Usage: meterconsole notifications <subcommand> [options] [args]

  This command groups subcommands for user notifications.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type ListCommand struct {
	*base.Command

	flagUser string
}

func (c *ListCommand) Synopsis() string {
	return "List the notifications of a user"
}

func (c *ListCommand) Help() string {
	return `Usage: meterconsole notifications list [options]` + c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("notifications list")
	f.StringVar(&c.flagUser, "user", "", "Recipient username. Defaults to the logged-in user.")
	return f
}

func (c *ListCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	username := c.flagUser
	if username == "" {
		me := d.CurrentUser(ctx)
		if !me.OK() {
			return c.Error("reading current user", me.Err)
		}
		username = me.Data.Username
	}

	res := d.Notifications(ctx, username)
	if !res.OK() {
		return c.Error("listing notifications", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type SendCommand struct {
	*base.Command

	flagTo      string
	flagTitle   string
	flagMessage string
}

func (c *SendCommand) Synopsis() string {
	return "Send a notification to a user"
}

func (c *SendCommand) Help() string {
	return `Usage: meterconsole notifications send -to=<username> -title=<title> [options]` +
		c.Flags().Help()
}

func (c *SendCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("notifications send")
	f.StringVar(&c.flagTo, "to", "", "(Required) Recipient username.")
	f.StringVar(&c.flagTitle, "title", "", "(Required) Notification title.")
	f.StringVar(&c.flagMessage, "message", "", "Notification body.")
	return f
}

func (c *SendCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagTo == "" || c.flagTitle == "" {
		c.UI.Error("to and title flags are required")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.CreateNotification(ctx, &models.Notification{
		Title:             c.flagTitle,
		Message:           c.flagMessage,
		RecipientUsername: c.flagTo,
	})
	if !res.OK() {
		return c.Error("sending notification", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type ReadCommand struct {
	*base.Command
}

func (c *ReadCommand) Synopsis() string {
	return "Mark a notification as read"
}

func (c *ReadCommand) Help() string {
	return `Usage: meterconsole notifications read [options] <id>` + c.Flags().Help()
}

func (c *ReadCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("notifications read")
}

func (c *ReadCommand) Run(args []string) int {
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

	if res := d.MarkNotificationRead(ctx, id); !res.OK() {
		return c.Error("marking notification read", res.Err)
	}
	c.UI.Info(fmt.Sprintf("Marked notification %d as read", id))
	return 0
}

type DeleteCommand struct {
	*base.Command
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a notification"
}

func (c *DeleteCommand) Help() string {
	return `Usage: meterconsole notifications delete [options] <id>` + c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("notifications delete")
}

func (c *DeleteCommand) Run(args []string) int {
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

	if res := d.DeleteNotification(ctx, id); !res.OK() {
		return c.Error("deleting notification", res.Err)
	}
	c.UI.Info(fmt.Sprintf("Deleted notification %d", id))
	return 0
}
