package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const activityLogsPath = "/api/activity-logs"

// ActivityLogService reads the user activity audit trail.
type ActivityLogService struct {
	client *apiclient.Client
}

func (s *ActivityLogService) All(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, activityLogsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return raw, nil
}

// Search returns one page of the activity of username.
func (s *ActivityLogService) Search(ctx context.Context, username string, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultLogSize)
	raw, err := s.client.GetRaw(ctx, activityLogsPath+"/search", apiclient.NewParams().
		Add("username", username).
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to search activity logs: %w", err)
	}
	return raw, nil
}

// Mine returns one page of the current user's activity.
func (s *ActivityLogService) Mine(ctx context.Context, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultLogSize)
	raw, err := s.client.GetRaw(ctx, activityLogsPath+"/me", apiclient.NewParams().
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to list own activity logs: %w", err)
	}
	return raw, nil
}
