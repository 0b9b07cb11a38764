package model

import (
	"time"
)

type Service struct {
	ID              int64     `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Slug            string    `db:"slug" json:"slug"`
	Description     string    `db:"description" json:"description"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes"`
	Price           *float64  `db:"-" json:"price"`
	IsActive        bool      `db:"is_active" json:"is_active"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CreateServiceInput: IsActive is a pointer so an omitted flag defaults to
// true while an explicit false is preserved.
type CreateServiceInput struct {
	Name            string   `json:"name" validate:"required" label:"Service name"`
	Slug            string   `json:"slug" validate:"required" label:"Service slug"`
	Description     string   `json:"description" validate:"required"`
	DurationMinutes int      `json:"duration_minutes" validate:"required,gt=0" label:"Duration"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active"`
}

// Active resolves the is_active default.
func (in *CreateServiceInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}
