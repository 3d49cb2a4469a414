package accounts

import (
	"sort"

	"github.com/aqualab/meterconsole/internal/cmd/base"
	"github.com/aqualab/meterconsole/pkg/models"
)

type PermissionsCommand struct {
	*base.Command

	flagMine   bool
	flagGroups bool
}

func (c *PermissionsCommand) Synopsis() string {
	return "List permissions"
}

func (c *PermissionsCommand) Help() string {
	return `Usage: meterconsole permissions [options]

  List every permission, the permissions of the logged-in user (-mine), or
  the permissions grouped by permission group (-groups).` +
		c.Flags().Help()
}

func (c *PermissionsCommand) Flags() *base.FlagSet {
	f := c.NewFlagSet("permissions")
	f.BoolVar(&c.flagMine, "mine", false, "Only the logged-in user's permissions.")
	f.BoolVar(&c.flagGroups, "groups", false, "Group permissions by permission group.")
	return f
}

func (c *PermissionsCommand) Run(args []string) int {
	d, err := c.Init(c.Flags(), args)
	if err != nil {
		c.UI.Error(err.Error())
		return 1
	}
	if c.flagMine && c.flagGroups {
		c.UI.Error("-mine and -groups cannot be combined")
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	switch {
	case c.flagMine:
		res := d.MyPermissions(ctx)
		if !res.OK() {
			return c.Error("listing permissions", res.Err)
		}
		err = c.RenderPage(res.Data)

	case c.flagGroups:
		res := d.PermissionsByGroup(ctx)
		if !res.OK() {
			return c.Error("listing permissions", res.Err)
		}
		if c.Format() != base.FormatTable {
			err = c.Render(res.Data)
			break
		}
		type row struct {
			Group      string
			Permission string
		}
		var rows []row
		for _, group := range sortedGroups(res.Data) {
			for _, p := range res.Data[group] {
				rows = append(rows, row{Group: group, Permission: p.Name})
			}
		}
		err = c.Render(rows)

	default:
		res := d.Permissions(ctx)
		if !res.OK() {
			return c.Error("listing permissions", res.Err)
		}
		err = c.RenderPage(res.Data)
	}

	if err != nil {
		return c.Error("rendering output", err)
	}
	return 0
}

func sortedGroups(groups models.PermissionsByGroup) []string {
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
