package appointment

import (
	"context"
	"fmt"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
	"github.com/podomus/clinic-api/pkg/validator"
)

type AppointmentService interface {
	CreateAppointment(ctx context.Context, input *model.CreateAppointmentInput) (*model.Appointment, error)
	GetAppointmentsByDateRange(ctx context.Context, input *model.GetAppointmentsByDateRangeInput) ([]*model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, input *model.UpdateAppointmentStatusInput) (*model.Appointment, error)
}

type Service struct {
	repo        repository.AppointmentRepository
	patientRepo repository.PatientRepository
}

func NewService(repo repository.AppointmentRepository, patientRepo repository.PatientRepository) *Service {
	return &Service{
		repo:        repo,
		patientRepo: patientRepo,
	}
}

// CreateAppointment inserts a new appointment with status forced to pending.
// The referenced patient must exist; the foreign key constraint remains the
// backstop for the race between check and insert.
func (s *Service) CreateAppointment(ctx context.Context, input *model.CreateAppointmentInput) (*model.Appointment, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	exists, err := s.patientRepo.Exists(ctx, input.PatientID)
	if err != nil {
		return nil, fmt.Errorf("failed to check patient existence: %w", err)
	}
	if !exists {
		return nil, apperrors.Referential(fmt.Sprintf("patient with id %d not found", input.PatientID), nil)
	}

	appointment := &model.Appointment{
		PatientID:       input.PatientID,
		ServiceType:     input.ServiceType,
		AppointmentDate: input.AppointmentDate.Time,
		DurationMinutes: input.DurationMinutes,
		Status:          model.AppointmentStatusPending,
		Notes:           input.Notes,
	}

	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// GetAppointmentsByDateRange returns appointments within [start, end], both
// boundaries inclusive, ascending by appointment date. An empty range is an
// empty list, not an error.
func (s *Service) GetAppointmentsByDateRange(ctx context.Context, input *model.GetAppointmentsByDateRangeInput) ([]*model.Appointment, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}
	return s.repo.ListByDateRange(ctx, input.StartDate.Time, input.EndDate.Time)
}

// UpdateAppointmentStatus applies the new status unconditionally; the status
// graph has no enforced transitions.
func (s *Service) UpdateAppointmentStatus(ctx context.Context, input *model.UpdateAppointmentStatusInput) (*model.Appointment, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, input.ID, input.Status)
}
