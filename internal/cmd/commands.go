package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/internal/cmd/commands/accounts"
	"github.com/aqualab/meterconsole/internal/cmd/commands/auth"
	"github.com/aqualab/meterconsole/internal/cmd/commands/meters"
	"github.com/aqualab/meterconsole/internal/cmd/commands/notifications"
	"github.com/aqualab/meterconsole/internal/cmd/commands/pdf"
	"github.com/aqualab/meterconsole/internal/cmd/commands/policy"
	"github.com/aqualab/meterconsole/internal/cmd/commands/version"
)

// Commands is the mapping of all available meterconsole commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	Commands = NewCommands(base.New(log, ui))
}

// NewCommands returns every command sharing b.
func NewCommands(b *base.Command) map[string]cli.CommandFactory {
	commands := map[string]cli.CommandFactory{
		"login": func() (cli.Command, error) {
			return &auth.LoginCommand{Command: b}, nil
		},
		"logout": func() (cli.Command, error) {
			return &auth.LogoutCommand{Command: b}, nil
		},
		"status": func() (cli.Command, error) {
			return &auth.StatusCommand{Command: b}, nil
		},
		"whoami": func() (cli.Command, error) {
			return &auth.WhoamiCommand{Command: b}, nil
		},

		"users": func() (cli.Command, error) {
			return &accounts.UsersCommand{Command: b}, nil
		},
		"users list": func() (cli.Command, error) {
			return &accounts.UsersListCommand{Command: b}, nil
		},
		"users get": func() (cli.Command, error) {
			return &accounts.UsersGetCommand{Command: b}, nil
		},
		"users delete": func() (cli.Command, error) {
			return &accounts.UsersDeleteCommand{Command: b}, nil
		},
		"departments": func() (cli.Command, error) {
			return &accounts.DepartmentsCommand{Command: b}, nil
		},
		"departments list": func() (cli.Command, error) {
			return &accounts.DepartmentsListCommand{Command: b}, nil
		},
		"departments get": func() (cli.Command, error) {
			return &accounts.DepartmentsGetCommand{Command: b}, nil
		},
		"departments create": func() (cli.Command, error) {
			return &accounts.DepartmentsCreateCommand{Command: b}, nil
		},
		"departments delete": func() (cli.Command, error) {
			return &accounts.DepartmentsDeleteCommand{Command: b}, nil
		},
		"roles": func() (cli.Command, error) {
			return &accounts.RolesCommand{Command: b}, nil
		},
		"roles list": func() (cli.Command, error) {
			return &accounts.RolesListCommand{Command: b}, nil
		},
		"roles get": func() (cli.Command, error) {
			return &accounts.RolesGetCommand{Command: b}, nil
		},
		"permissions": func() (cli.Command, error) {
			return &accounts.PermissionsCommand{Command: b}, nil
		},

		"ports": func() (cli.Command, error) {
			return &meters.PortsCommand{Command: b}, nil
		},
		"ports list": func() (cli.Command, error) {
			return &meters.PortsListCommand{Command: b}, nil
		},
		"ports set-active": func() (cli.Command, error) {
			return &meters.PortsSetActiveCommand{Command: b}, nil
		},
		"data": func() (cli.Command, error) {
			return &meters.DataCommand{Command: b}, nil
		},
		"data latest": func() (cli.Command, error) {
			return &meters.DataLatestCommand{Command: b}, nil
		},
		"data filter": func() (cli.Command, error) {
			return &meters.DataFilterCommand{Command: b}, nil
		},
		"data range": func() (cli.Command, error) {
			return &meters.DataRangeCommand{Command: b}, nil
		},
		"data audit": func() (cli.Command, error) {
			return &meters.DataAuditCommand{Command: b}, nil
		},

		"pdf": func() (cli.Command, error) {
			return &pdf.Command{Command: b}, nil
		},
		"pdf list": func() (cli.Command, error) {
			return &pdf.ListCommand{Command: b}, nil
		},
		"pdf get": func() (cli.Command, error) {
			return &pdf.GetCommand{Command: b}, nil
		},
		"pdf request": func() (cli.Command, error) {
			return &pdf.RequestCommand{Command: b}, nil
		},
		"pdf review": func() (cli.Command, error) {
			return &pdf.ReviewCommand{Command: b}, nil
		},
		"pdf approve": func() (cli.Command, error) {
			return &pdf.ApproveCommand{Command: b}, nil
		},
		"pdf download": func() (cli.Command, error) {
			return &pdf.DownloadCommand{Command: b}, nil
		},

		"notifications": func() (cli.Command, error) {
			return &notifications.Command{Command: b}, nil
		},
		"notifications list": func() (cli.Command, error) {
			return &notifications.ListCommand{Command: b}, nil
		},
		"notifications send": func() (cli.Command, error) {
			return &notifications.SendCommand{Command: b}, nil
		},
		"notifications read": func() (cli.Command, error) {
			return &notifications.ReadCommand{Command: b}, nil
		},
		"notifications delete": func() (cli.Command, error) {
			return &notifications.DeleteCommand{Command: b}, nil
		},

		"policy": func() (cli.Command, error) {
			return &policy.Command{Command: b}, nil
		},
		"policy get": func() (cli.Command, error) {
			return &policy.GetCommand{Command: b}, nil
		},
		"policy set": func() (cli.Command, error) {
			return &policy.SetCommand{Command: b}, nil
		},
		"logs": func() (cli.Command, error) {
			return &policy.LogsCommand{Command: b}, nil
		},

		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}

	for name := range meters.MeterReaders {
		name := name
		commands["data "+name] = func() (cli.Command, error) {
			return &meters.DataMeterCommand{Command: b, Name: name}, nil
		}
	}

	return commands
}
