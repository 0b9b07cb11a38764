package model

import (
	"time"
)

type Patient struct {
	ID             int64      `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Email          string     `db:"email" json:"email"`
	Phone          string     `db:"phone" json:"phone"`
	DateOfBirth    *time.Time `db:"date_of_birth" json:"date_of_birth"`
	Address        *string    `db:"address" json:"address"`
	MedicalHistory *string    `db:"medical_history" json:"medical_history"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

type CreatePatientInput struct {
	FirstName      string    `json:"first_name" validate:"required"`
	LastName       string    `json:"last_name" validate:"required"`
	Email          string    `json:"email" validate:"required,email"`
	Phone          string    `json:"phone" validate:"required" label:"Phone number"`
	DateOfBirth    *Datetime `json:"date_of_birth"`
	Address        *string   `json:"address"`
	MedicalHistory *string   `json:"medical_history"`
}

type GetPatientByEmailInput struct {
	Email string `json:"email" validate:"required,email"`
}
