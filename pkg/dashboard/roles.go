package dashboard

import (
	"context"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

func (d *Dashboard) Roles(ctx context.Context) query.Result[models.Page[models.Role]] {
	return list[models.Role](ctx, d, query.NewKey(KeyRoles), false, d.API.Roles.List)
}

// Role reads one role. An id of 0 disables the read.
func (d *Dashboard) Role(ctx context.Context, id int64) query.Result[*models.Role] {
	return read(ctx, d, query.NewKey(KeyRole, id), id == 0,
		func(ctx context.Context) (*models.Role, error) { return d.API.Roles.Get(ctx, id) })
}

func (d *Dashboard) CreateRole(ctx context.Context, r *models.Role) query.MutationResult[*models.Role] {
	return write(ctx, d, func(ctx context.Context) (*models.Role, error) {
		return d.API.Roles.Create(ctx, r)
	}, family(KeyRoles))
}

func (d *Dashboard) UpdateRole(ctx context.Context, id int64, r *models.Role) query.MutationResult[*models.Role] {
	return write(ctx, d, func(ctx context.Context) (*models.Role, error) {
		return d.API.Roles.Update(ctx, id, r)
	}, family(KeyRoles), query.NewKey(KeyRole, id))
}

func (d *Dashboard) DeleteRole(ctx context.Context, id int64) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Roles.Delete(ctx, id)
	}), family(KeyRoles))
}
