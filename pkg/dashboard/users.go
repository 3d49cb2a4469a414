package dashboard

import (
	"context"
	"encoding/json"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
	"github.com/aqualab/meterconsole/pkg/services"
)

func (d *Dashboard) CurrentUser(ctx context.Context) query.Result[*models.User] {
	return read(ctx, d, query.NewKey(KeyCurrentUser), false, d.API.Users.Me)
}

func (d *Dashboard) Users(ctx context.Context, page models.PageRequest) query.Result[models.Page[models.User]] {
	page = page.WithDefaults(services.DefaultListSize)
	return list[models.User](ctx, d, query.NewKey(KeyUsers, page.Page, page.Size), false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.Users.List(ctx, page) })
}

// User reads one user. An id of 0 disables the read.
func (d *Dashboard) User(ctx context.Context, id int64) query.Result[*models.User] {
	return read(ctx, d, query.NewKey(KeyUser, id), id == 0,
		func(ctx context.Context) (*models.User, error) { return d.API.Users.Get(ctx, id) })
}

func (d *Dashboard) CreateUser(ctx context.Context, u *models.User) query.MutationResult[*models.User] {
	return write(ctx, d, func(ctx context.Context) (*models.User, error) {
		return d.API.Users.Create(ctx, u)
	}, family(KeyUsers))
}

func (d *Dashboard) UpdateUser(ctx context.Context, id int64, u *models.User) query.MutationResult[*models.User] {
	return write(ctx, d, func(ctx context.Context) (*models.User, error) {
		return d.API.Users.Update(ctx, id, u)
	}, family(KeyUsers), query.NewKey(KeyUser, id))
}

func (d *Dashboard) DeleteUser(ctx context.Context, id int64) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Users.Delete(ctx, id)
	}), family(KeyUsers))
}

// UpdateMyPassword changes the current user's password. Nothing cached
// depends on it.
func (d *Dashboard) UpdateMyPassword(ctx context.Context, req models.UpdatePasswordRequest) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Users.UpdateMyPassword(ctx, req)
	}))
}
