package services

import (
	"context"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const passwordPolicyPath = "/api/password-policy"

// PasswordPolicyService reads and replaces the password policy.
type PasswordPolicyService struct {
	client *apiclient.Client
}

func (s *PasswordPolicyService) Current(ctx context.Context) (*models.PasswordPolicy, error) {
	var p models.PasswordPolicy
	if err := s.client.GetJSON(ctx, passwordPolicyPath, nil, &p); err != nil {
		return nil, fmt.Errorf("failed to get password policy: %w", err)
	}
	return &p, nil
}

// Set replaces the policy. The server takes the policy as query parameters.
func (s *PasswordPolicyService) Set(ctx context.Context, policy models.PasswordPolicy) (*models.PasswordPolicy, error) {
	params := apiclient.NewParams().
		Add("policy.numberOfDays", policy.NumberOfDays).
		AddIf(policy.ID != 0, "policy.id", policy.ID).
		AddIf(policy.SessionExpireTime != 0, "policy.sessionExpireTime", policy.SessionExpireTime)

	var out models.PasswordPolicy
	if err := s.client.PutJSON(ctx, passwordPolicyPath, nil, params, &out); err != nil {
		return nil, fmt.Errorf("failed to set password policy: %w", err)
	}
	return &out, nil
}
