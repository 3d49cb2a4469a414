package dashboard

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
)

var errNoNotification = errors.New("no notification to create")

// Notifications reads the notifications of username. An empty username
// disables the read.
func (d *Dashboard) Notifications(ctx context.Context, username string) query.Result[models.Page[models.Notification]] {
	return list[models.Notification](ctx, d, query.NewKey(KeyNotifications, username), username == "",
		func(ctx context.Context) (json.RawMessage, error) { return d.API.Notifications.List(ctx, username) })
}

func (d *Dashboard) CreateNotification(ctx context.Context, n *models.Notification) query.MutationResult[*models.Notification] {
	if n == nil {
		return query.MutationResult[*models.Notification]{
			Status: query.StatusError,
			Err:    errNoNotification,
		}
	}
	return write(ctx, d, func(ctx context.Context) (*models.Notification, error) {
		return d.API.Notifications.Create(ctx, n)
	}, query.NewKey(KeyNotifications, n.RecipientUsername))
}

// MarkNotificationRead invalidates the notifications of every user: the
// recipient is not known from the id alone.
func (d *Dashboard) MarkNotificationRead(ctx context.Context, id int64) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Notifications.MarkRead(ctx, id)
	}), family(KeyNotifications))
}

// DeleteNotification invalidates the notifications of every user.
func (d *Dashboard) DeleteNotification(ctx context.Context, id int64) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Notifications.Delete(ctx, id)
	}), family(KeyNotifications))
}
