package model

import (
	"time"
)

type ServiceType string

const (
	ServiceTypePedicurie    ServiceType = "pedicurie_medicale"
	ServiceTypeSemelles     ServiceType = "semelles_orthopediques"
	ServiceTypeOrthoplastie ServiceType = "orthoplastie_onychoplastie"
)

func (t ServiceType) Valid() bool {
	switch t {
	case ServiceTypePedicurie, ServiceTypeSemelles, ServiceTypeOrthoplastie:
		return true
	}
	return false
}

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID              int64             `db:"id" json:"id"`
	PatientID       int64             `db:"patient_id" json:"patient_id"`
	ServiceType     ServiceType       `db:"service_type" json:"service_type"`
	AppointmentDate time.Time         `db:"appointment_date" json:"appointment_date"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Notes           *string           `db:"notes" json:"notes"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updated_at"`
}

// CreateAppointmentInput deliberately has no status field: every new
// appointment starts out pending.
type CreateAppointmentInput struct {
	PatientID       int64       `json:"patient_id" validate:"required,gt=0" label:"Patient id"`
	ServiceType     ServiceType `json:"service_type" validate:"required,oneof=pedicurie_medicale semelles_orthopediques orthoplastie_onychoplastie"`
	AppointmentDate Datetime    `json:"appointment_date" validate:"required"`
	DurationMinutes int         `json:"duration_minutes" validate:"required,gt=0" label:"Duration"`
	Notes           *string     `json:"notes"`
}

type GetAppointmentsByDateRangeInput struct {
	StartDate Datetime `json:"start_date" validate:"required"`
	EndDate   Datetime `json:"end_date" validate:"required"`
}

type UpdateAppointmentStatusInput struct {
	ID     int64             `json:"id" validate:"required,gt=0" label:"Id"`
	Status AppointmentStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
