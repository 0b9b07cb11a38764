package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

const appointmentColumns = `id, patient_id, service_type, appointment_date, duration_minutes, status, notes, created_at, updated_at`

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, service_type, appointment_date, duration_minutes, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + appointmentColumns
	err := r.db.GetContext(ctx, appointment, query,
		appointment.PatientID,
		appointment.ServiceType,
		appointment.AppointmentDate,
		appointment.DurationMinutes,
		appointment.Status,
		appointment.Notes,
	)
	if err != nil {
		return wrapError(err, "failed to create appointment")
	}
	return nil
}

func (r *appointmentRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE appointment_date >= $1
		AND appointment_date <= $2
		ORDER BY appointment_date ASC
	`
	appointments := []*model.Appointment{}
	err := r.db.SelectContext(ctx, &appointments, query, start, end)
	if err != nil {
		return nil, wrapError(err, "failed to list appointments by date range")
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error) {
	query := `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
		RETURNING ` + appointmentColumns
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, status, time.Now().UTC(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment with id %d not found", id)
	}
	if err != nil {
		return nil, wrapError(err, "failed to update appointment status")
	}
	return &appointment, nil
}
