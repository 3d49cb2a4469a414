package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aqualab/meterconsole/pkg/apiclient"
	"github.com/aqualab/meterconsole/pkg/models"
)

const departmentsPath = "/api/departments"

// DepartmentService manages departments.
type DepartmentService struct {
	client *apiclient.Client
}

// List returns one page of departments.
func (s *DepartmentService) List(ctx context.Context, page models.PageRequest) (json.RawMessage, error) {
	page = page.WithDefaults(DefaultListSize)
	raw, err := s.client.GetRaw(ctx, departmentsPath, apiclient.NewParams().
		Add("page", page.Page).
		Add("size", page.Size))
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return raw, nil
}

func (s *DepartmentService) Get(ctx context.Context, id int64) (*models.Department, error) {
	var d models.Department
	if err := s.client.GetJSON(ctx, idPath(departmentsPath, id), nil, &d); err != nil {
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return &d, nil
}

func (s *DepartmentService) Create(ctx context.Context, dept *models.Department) (*models.Department, error) {
	var d models.Department
	if err := s.client.PostJSON(ctx, departmentsPath, dept, nil, &d); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return &d, nil
}

func (s *DepartmentService) Update(ctx context.Context, id int64, dept *models.Department) (*models.Department, error) {
	var d models.Department
	if err := s.client.PutJSON(ctx, idPath(departmentsPath, id), dept, nil, &d); err != nil {
		return nil, fmt.Errorf("failed to update department: %w", err)
	}
	return &d, nil
}

func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	if _, err := s.client.Delete(ctx, idPath(departmentsPath, id)); err != nil {
		return fmt.Errorf("failed to delete department: %w", err)
	}
	return nil
}
