package dashboard

import (
	"context"
	"encoding/json"

	"github.com/aqualab/meterconsole/pkg/models"
	"github.com/aqualab/meterconsole/pkg/query"
	"github.com/aqualab/meterconsole/pkg/services"
)

func (d *Dashboard) Departments(ctx context.Context, page models.PageRequest) query.Result[models.Page[models.Department]] {
	page = page.WithDefaults(services.DefaultListSize)
	return list[models.Department](ctx, d, query.NewKey(KeyDepartments, page.Page, page.Size), false,
		func(ctx context.Context) (json.RawMessage, error) { return d.API.Departments.List(ctx, page) })
}

// Department reads one department. An id of 0 disables the read.
func (d *Dashboard) Department(ctx context.Context, id int64) query.Result[*models.Department] {
	return read(ctx, d, query.NewKey(KeyDepartment, id), id == 0,
		func(ctx context.Context) (*models.Department, error) { return d.API.Departments.Get(ctx, id) })
}

func (d *Dashboard) CreateDepartment(ctx context.Context, dept *models.Department) query.MutationResult[*models.Department] {
	return write(ctx, d, func(ctx context.Context) (*models.Department, error) {
		return d.API.Departments.Create(ctx, dept)
	}, family(KeyDepartments))
}

// UpdateDepartment invalidates every departments page and the department
// itself.
func (d *Dashboard) UpdateDepartment(ctx context.Context, id int64, dept *models.Department) query.MutationResult[*models.Department] {
	return write(ctx, d, func(ctx context.Context) (*models.Department, error) {
		return d.API.Departments.Update(ctx, id, dept)
	}, family(KeyDepartments), query.NewKey(KeyDepartment, id))
}

func (d *Dashboard) DeleteDepartment(ctx context.Context, id int64) query.MutationResult[struct{}] {
	return write(ctx, d, exec(func(ctx context.Context) error {
		return d.API.Departments.Delete(ctx, id)
	}), family(KeyDepartments))
}
