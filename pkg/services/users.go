package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const usersPath = "/api/users"

// UserService manages operator accounts.
type UserService struct {
	client *apiclient.Client
}

// Me returns the account the session belongs to.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	var u models.User
	if err := s.client.GetJSON(ctx, usersPath+"/me", nil, &u); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &u, nil
}

// UpdateMyPassword changes the current user's password.
func (s *UserService) UpdateMyPassword(ctx context.Context, req models.UpdatePasswordRequest) error {
	if _, err := s.client.Put(ctx, usersPath+"/me", &req, nil); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

// List returns one page of users.
func (s *UserService) List(ctx context.Context, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultListSize)
	raw, err := s.client.GetRaw(ctx, usersPath, apiclient.NewParams().
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return raw, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	if err := s.client.GetJSON(ctx, idPath(usersPath, id), nil, &u); err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	var u models.User
	if err := s.client.PostJSON(ctx, usersPath, user, nil, &u); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Update(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	var u models.User
	if err := s.client.PutJSON(ctx, idPath(usersPath, id), user, nil, &u); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, idPath(usersPath, id)); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
