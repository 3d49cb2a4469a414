package dashboard

import (
	"context"
	"encoding/json"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
	"github.com/aqualab/meterconsole/pkg/services"
)

func (d *Dashboard) PasswordPolicy(ctx context.Context) query.Result[*models.PasswordPolicy] {
	return read(ctx, d, query.NewKey(KeyPasswordPolicy), false, d.API.PasswordPolicy.Current)
}

func (d *Dashboard) SetPasswordPolicy(ctx context.Context, p models.PasswordPolicy) query.MutationResult[*models.PasswordPolicy] {
	return write(ctx, d, func(ctx context.Context) (*models.PasswordPolicy, error) {
		return d.API.PasswordPolicy.Set(ctx, p)
	}, family(KeyPasswordPolicy))
}

func (d *Dashboard) ActivityLogs(ctx context.Context) query.Result[models.Page[models.ActivityLog]] {
	return list[models.ActivityLog](ctx, d, query.NewKey(KeyActivityLogs), false, d.API.ActivityLogs.All)
}

// SearchActivityLogs reads the activity of username. An empty username
// disables the read.
func (d *Dashboard) SearchActivityLogs(ctx context.Context, username string, page models.PageRequest) query.Result[models.Page[models.ActivityLog]] {
	page = page.WithDefaults(services.DefaultLogSize)
	return list[models.ActivityLog](ctx, d, query.NewKey(KeyActivityLogsSearch, username, page.Page, page.Size), username == "",
		func(ctx context.Context) (json.RawMessage, error) { return d.API.ActivityLogs.Search(ctx, username, page) })
}

func (d *Dashboard) MyActivityLogs(ctx context.Context, page models.PageRequest) query.Result[models.Page[models.ActivityLog]] {
	page = page.WithDefaults(services.DefaultLogSize)
	return list[models.ActivityLog](ctx, d, query.NewKey(KeyUserActivityLogs, page.Page, page.Size), false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.ActivityLogs.Mine(ctx, page) })
}
