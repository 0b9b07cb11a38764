package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (first_name, last_name, email, phone, date_of_birth, address, medical_history)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, first_name, last_name, email, phone, date_of_birth, address, medical_history, created_at, updated_at
	`
	err := r.db.GetContext(ctx, patient, query,
		patient.FirstName,
		patient.LastName,
		patient.Email,
		patient.Phone,
		patient.DateOfBirth,
		patient.Address,
		patient.MedicalHistory,
	)
	if err != nil {
		return wrapError(err, "failed to create patient")
	}
	return nil
}

func (r *patientRepository) GetByEmail(ctx context.Context, email string) (*model.Patient, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, date_of_birth, address, medical_history, created_at, updated_at
		FROM patients
		WHERE email = $1
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapError(err, "failed to get patient by email")
	}
	return &patient, nil
}

func (r *patientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM patients WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, id); err != nil {
		return false, wrapError(err, "failed to check patient existence")
	}
	return exists, nil
}
