package auth

import (
	"errors"
	"time"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/session"
)

type LogoutCommand struct {
	*base.Command
}

func (c *LogoutCommand) Synopsis() string {
	return "Forget the stored session token"
}

func (c *LogoutCommand) Help() string {
	return `Usage: meterconsole logout [options]

  Remove the stored session token. The backend is not contacted.` +
		c.Flags().Help()
}

func (c *LogoutCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("logout")
}

func (c *LogoutCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	d.Logout()
	c.UI.Info("Logged out")
	return 0
}

type StatusCommand struct {
	*base.Command
}

func (c *StatusCommand) Synopsis() string {
	return "Show the session state"
}

func (c *StatusCommand) Help() string {
	return `Usage: meterconsole status [options]

  Show whether a session token is stored and, for JWT tokens, its subject
  and lifetime. The claims are read without verifying the signature.` +
		c.Flags().Help()
}

func (c *StatusCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("status")
}

type status struct {
	Authenticated bool       `json:"authenticated" yaml:"authenticated"`
	Subject       string     `json:"subject,omitempty" yaml:"subject,omitempty"`
	Issuer        string     `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	IssuedAt      *time.Time `json:"issuedAt,omitempty" yaml:"issuedAt,omitempty"`
	ExpiresAt     *time.Time `json:"expiresAt,omitempty" yaml:"expiresAt,omitempty"`
	Expired       bool       `json:"expired" yaml:"expired"`
	Opaque        bool       `json:"opaque,omitempty" yaml:"opaque,omitempty"`
}

func (c *StatusCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	st := status{Authenticated: d.IsAuthenticated()}
	if st.Authenticated {
		claims, err := d.Session.Claims()
		switch {
		case errors.Is(err, session.ErrNotJWT):
			st.Opaque = true
		case err != nil:
			return c.Error("reading session", err)
		default:
			st.Subject = claims.Subject
			st.Issuer = claims.Issuer
			if !claims.IssuedAt.IsZero() {
				st.IssuedAt = &claims.IssuedAt
			}
			if !claims.ExpiresAt.IsZero() {
				st.ExpiresAt = &claims.ExpiresAt
			}
			st.Expired = claims.Expired(time.Now())
		}
	}

	if err := c.Render(st); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

type WhoamiCommand struct {
	*base.Command
}

func (c *WhoamiCommand) Synopsis() string {
	return "Show the logged-in user"
}

func (c *WhoamiCommand) Help() string {
	return `Usage: meterconsole whoami [options]

  Show the account the stored session belongs to.` +
		c.Flags().Help()
}

func (c *WhoamiCommand) Flags() *base.FlagSet {
	return c.NewFlagSet("whoami")
}

func (c *WhoamiCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	res := d.CurrentUser(ctx)
	if !res.OK() {
		return c.Error("reading current user", res.Err)
	}
	if err := c.Render(res.Data); err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}
