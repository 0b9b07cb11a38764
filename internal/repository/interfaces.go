package repository

import (
	"context"
	"time"

	"github.com/podomus/clinic-api/internal/model"
)

type PatientRepository interface {
	// Create inserts the patient and fills in the store-assigned id and
	// timestamps. Duplicate emails surface as a conflict error.
	Create(ctx context.Context, patient *model.Patient) error
	// GetByEmail is an exact, case-sensitive match. A missing patient is
	// (nil, nil), not an error.
	GetByEmail(ctx context.Context, email string) (*model.Patient, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *model.Appointment) error
	// ListByDateRange returns appointments within the inclusive closed
	// interval [start, end], ascending by appointment date.
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error)
	// UpdateStatus sets status and refreshes updated_at, leaving every other
	// column untouched. A missing id is a not-found error naming it.
	UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error)
}

type ContactMessageRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	// List returns messages newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, svc *model.Service) error
	List(ctx context.Context) ([]*model.Service, error)
	ListActive(ctx context.Context) ([]*model.Service, error)
}
