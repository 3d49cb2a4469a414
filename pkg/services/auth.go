package services

import (
	"context"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

// AuthService starts sessions. It is backed by the unauthenticated client.
type AuthService struct {
	client *apiclient.Client
}

// Login exchanges credentials for a session. The response has no fixed
// envelope, so the decoded payload is returned as-is: a generic JSON value,
// or the body text when the server answers with plain text.
func (s *AuthService) Login(ctx context.Context, username, password string) (any, error) {
	resp, err := s.client.Post(ctx, "/api/auth/login", &models.LoginRequest{
		Username: username,
		Password: password,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	payload, err := resp.Payload()
	if err != nil {
		return nil, fmt.Errorf("failed to read login response: %w", err)
	}
	return payload, nil
}
