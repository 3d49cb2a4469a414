package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const rolesPath = "/api/roles"

// RoleService manages roles and the permissions they grant.
type RoleService struct {
	client *apiclient.Client
}

func (s *RoleService) List(ctx context.Context) (json.RawMessage, error) {
	raw, err := s.client.GetRaw(ctx, rolesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return raw, nil
}

func (s *RoleService) Get(ctx context.Context, id int64) (*models.Role, error) {
	var r models.Role
	if err := s.client.GetJSON(ctx, idPath(rolesPath, id), nil, &r); err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return &r, nil
}

func (s *RoleService) Create(ctx context.Context, role *models.Role) (*models.Role, error) {
	var r models.Role
	if err := s.client.PostJSON(ctx, rolesPath, role, nil, &r); err != nil {
		return nil, fmt.Errorf("failed to create role: %w", err)
	}
	return &r, nil
}

func (s *RoleService) Update(ctx context.Context, id int64, role *models.Role) (*models.Role, error) {
	var r models.Role
	if err := s.client.PutJSON(ctx, idPath(rolesPath, id), role, nil, &r); err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return &r, nil
}

func (s *RoleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, idPath(rolesPath, id)); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}
	return nil
}
