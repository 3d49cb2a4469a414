package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

// PermissionService reads the permission catalogue.
type PermissionService struct {
	client *apiclient.Client
}

func (s *PermissionService) List(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, "/api/permissions", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	return raw, nil
}

// Mine lists the permissions granted to the current user.
func (s *PermissionService) Mine(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, "/api/permissions/me", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list own permissions: %w", err)
	}
	return raw, nil
}

func (s *PermissionService) ByGroup(ctx context.Context) (models.PermissionsByGroup, error) {
	groups := models.PermissionsByGroup{}
	if err := s.client.GetJSON(ctx, "/api/permissions/byGroup", nil, &groups); err != nil {
		return nil, fmt.Errorf("failed to list permissions by group: %w", err)
	}
	return groups, nil
}
