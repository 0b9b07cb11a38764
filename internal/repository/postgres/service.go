package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
)

const serviceColumns = `id, name, slug, description, duration_minutes, price, is_active, created_at, updated_at`

// serviceRow mirrors the services table, with price in its persisted
// NUMERIC(10,2) text form. Conversion to and from float happens through the
// model price codec on every read and write.
type serviceRow struct {
	ID              int64          `db:"id"`
	Name            string         `db:"name"`
	Slug            string         `db:"slug"`
	Description     string         `db:"description"`
	DurationMinutes int            `db:"duration_minutes"`
	Price           sql.NullString `db:"price"`
	IsActive        bool           `db:"is_active"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (row *serviceRow) toModel() (*model.Service, error) {
	price, err := model.PriceFromDecimal(row.Price)
	if err != nil {
		return nil, err
	}
	return &model.Service{
		ID:              row.ID,
		Name:            row.Name,
		Slug:            row.Slug,
		Description:     row.Description,
		DurationMinutes: row.DurationMinutes,
		Price:           price,
		IsActive:        row.IsActive,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

type serviceRepository struct {
	db *sqlx.DB
}

func NewServiceRepository(db *sqlx.DB) repository.ServiceRepository {
	return &serviceRepository{db: db}
}

func (r *serviceRepository) Create(ctx context.Context, svc *model.Service) error {
	query := `
		INSERT INTO services (name, slug, description, duration_minutes, price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + serviceColumns
	var row serviceRow
	err := r.db.GetContext(ctx, &row, query,
		svc.Name,
		svc.Slug,
		svc.Description,
		svc.DurationMinutes,
		model.DecimalFromPrice(svc.Price),
		svc.IsActive,
	)
	if err != nil {
		return wrapError(err, "failed to create service")
	}
	created, err := row.toModel()
	if err != nil {
		return wrapError(err, "failed to read created service")
	}
	*svc = *created
	return nil
}

func (r *serviceRepository) List(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services ORDER BY id ASC`
	return r.selectServices(ctx, query)
}

func (r *serviceRepository) ListActive(ctx context.Context) ([]*model.Service, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE is_active = TRUE ORDER BY id ASC`
	return r.selectServices(ctx, query)
}

func (r *serviceRepository) selectServices(ctx context.Context, query string, args ...interface{}) ([]*model.Service, error) {
	var rows []serviceRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, wrapError(err, "failed to list services")
	}
	services := make([]*model.Service, 0, len(rows))
	for i := range rows {
		svc, err := rows[i].toModel()
		if err != nil {
			return nil, wrapError(err, "failed to read service")
		}
		services = append(services, svc)
	}
	return services, nil
}
