package dashboard

import (
	"context"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

func (d *Dashboard) Permissions(ctx context.Context) query.Result[models.Page[models.Permission]] {
	return list[models.Permission](ctx, d, query.NewKey(KeyPermissions), false, d.API.Permissions.List)
}

func (d *Dashboard) MyPermissions(ctx context.Context) query.Result[models.Page[models.PermissionResponse]] {
	return list[models.PermissionResponse](ctx, d, query.NewKey(KeyPermissionsByUser), false, d.API.Permissions.Mine)
}

func (d *Dashboard) PermissionsByGroup(ctx context.Context) query.Result[models.PermissionsByGroup] {
	return read(ctx, d, query.NewKey(KeyPermissionsByGroup), false, d.API.Permissions.ByGroup)
}
