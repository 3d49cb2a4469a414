package policy

import (
	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Show or change the password policy"
}

func (c *Command) Help() string {
	return `Usage: meterconsole policy <subcommand> [options]

  This command groups subcommands for the password rotation and session
  expiry policy.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}

type GetCommand struct {
	*base.Command
}

func (c *GetCommand) Synopsis() string {
	return "Show the password policy"
}

func (c *GetCommand) Help() string {
	return `Usage: meterconsole policy get [options]` + c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("policy get")
}

func (c *GetCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.PasswordPolicy(ctx)
	if !res.OK() {
		return c.Error("reading password policy", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type SetCommand struct {
	*base.Command

	flagDays          int
	flagSessionExpire int
}

func (c *SetCommand) Synopsis() string {
	return "Change the password policy"
}

func (c *SetCommand) Help() string {
	return `Usage: meterconsole policy set [options]

  Change the password policy. Values not given keep their current setting.` +
		c.Flags().Help()
}

func (c *SetCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("policy set")
	f.IntVar(&c.flagDays, "days", 0, "Days before a password must be changed.")
	f.IntVar(&c.flagSessionExpire, "session-expire", 0, "Session lifetime in minutes.")
	return f
}

func (c *SetCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagDays < 0 || c.flagSessionExpire < 0 {
		c.UI.Error("days and session-expire must not be negative")
		return 1
	}
	if c.flagDays == 0 && c.flagSessionExpire == 0 {
		c.UI.Error("nothing to change: give -days or -session-expire")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var p models.PasswordPolicy
	current := d.PasswordPolicy(ctx)
	if !current.OK() {
		return c.Error("reading password policy", current.Err)
	}
	if current.Data != nil {
		p = *current.Data
	}
	if c.flagDays > 0 {
		p.NumberOfDays = c.flagDays
	}
	if c.flagSessionExpire > 0 {
		p.SessionExpireTime = c.flagSessionExpire
	}

	res := d.SetPasswordPolicy(ctx, p)
	if !res.OK() {
		return c.Error("updating password policy", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type LogsCommand struct {
	*base.Command

	flagUser string
	flagMine bool
	page     models.PageRequest
}

func (c *LogsCommand) Synopsis() string {
	return "Show user activity logs"
}

func (c *LogsCommand) Help() string {
	return `Usage: meterconsole logs [options]

  Show every activity log entry, those of one user (-user), or the logged-in
  user's own (-mine).` +
		c.Flags().Help()
}

func (c *LogsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("logs")
	f.StringVar(&c.flagUser, "user", "", "Only entries of this username.")
	f.BoolVar(&c.flagMine, "mine", false, "Only the logged-in user's entries.")
	f.PageVars(&c.page)
	return f
}

func (c *LogsCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagMine && c.flagUser != "" {
		c.UI.Error("-user and -mine cannot be combined")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	var res query.Result[models.Page[models.ActivityLog]]
	switch {
	case c.flagUser != "":
		res = d.SearchActivityLogs(ctx, c.flagUser, c.page)
	case c.flagMine:
		res = d.MyActivityLogs(ctx, c.page)
	default:
		res = d.ActivityLogs(ctx)
	}
	if !res.OK() {
		return c.Error("reading activity logs", res.Err)
	}
	if err := c.RenderPage(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}
