package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const notificationsPath = "/api/notifications"

// NotificationService manages per-user notifications. A notification can be
// marked read but never unread.
type NotificationService struct {
	client *apiclient.Client
}

// List returns the notifications addressed to username.
func (s *NotificationService) List(ctx context.Context, username string) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, notificationsPath+"/"+url.PathEscape(username), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return raw, nil
}

func (s *NotificationService) Create(ctx context.Context, n *models.Notification) (*models.Notification, error) {
	var out models.Notification
	if err := s.client.PostJSON(ctx, notificationsPath, n, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}
	return &out, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) error {
	if _, err := s.client.Put(ctx, idPath(notificationsPath, id)+"/read", nil, nil); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, idPath(notificationsPath, id)); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
