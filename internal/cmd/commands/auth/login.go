package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/cli"
	"golang.org/x/term"

	"github.com/aqualab/meterconsole/internal/cmd/base"
)

type LoginCommand struct {
	*base.Command

	flagUsername string
	flagPassword string
}

func (c *LoginCommand) Synopsis() string {
	return "Log in to the meter backend"
}

func (c *LoginCommand) Help() string {
	return `Usage: meterconsole login [options]

  Authenticate with a username and password and store the session token.
  The password is prompted for when -password is not given.` +
		c.Flags().Help()
}

func (c *LoginCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("login")

	f.StringVar(&c.flagUsername, "username", "", "Account username.")
	f.StringVar(&c.flagPassword, "password", "",
		"Account password. Prompted for when empty.")

	return f
}

func (c *LoginCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	username := c.flagUsername
	if username == "" {
		username, err = c.UI.Ask("Username:")
		if err != nil {
			return c.Error("reading username", err)
		}
	}
	username = strings.TrimSpace(username)
	if username == "" {
		c.UI.Error("username is required")
		return 1
	}

	password := c.flagPassword
	if password == "" {
		password, err = readPassword(c.UI)
		if err != nil {
			return c.Error("reading password", err)
		}
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.Login(ctx, username, password)
	if !res.OK() {
		return c.Error("logging in", res.Err)
	}

	c.UI.Info(fmt.Sprintf("Logged in as %s", username))
	return 0
}

// readPassword reads a password without echo from a terminal, or a plain
// line when stdin is not one.
func readPassword(ui cli.Ui) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return ui.Ask("Password:")
	}

	fmt.Fprint(os.Stderr, "Password: ")
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
