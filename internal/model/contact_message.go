package model

import (
	"time"
)

type MessageStatus string

const (
	MessageStatusNew       MessageStatus = "new"
	MessageStatusRead      MessageStatus = "read"
	MessageStatusResponded MessageStatus = "responded"
)

func (s MessageStatus) Valid() bool {
	switch s {
	case MessageStatusNew, MessageStatusRead, MessageStatusResponded:
		return true
	}
	return false
}

// ContactMessage has no updated_at column: status triage does not track
// modification time.
type ContactMessage struct {
	ID                   int64         `db:"id" json:"id"`
	Name                 string        `db:"name" json:"name"`
	Email                string        `db:"email" json:"email"`
	Phone                *string       `db:"phone" json:"phone"`
	Subject              string        `db:"subject" json:"subject"`
	Message              string        `db:"message" json:"message"`
	IsAppointmentRequest bool          `db:"is_appointment_request" json:"is_appointment_request"`
	Status               MessageStatus `db:"status" json:"status"`
	CreatedAt            time.Time     `db:"created_at" json:"created_at"`
}

type CreateContactMessageInput struct {
	Name                 string  `json:"name" validate:"required"`
	Email                string  `json:"email" validate:"required,email"`
	Phone                *string `json:"phone"`
	Subject              string  `json:"subject" validate:"required"`
	Message              string  `json:"message" validate:"required"`
	IsAppointmentRequest bool    `json:"is_appointment_request"`
}

type UpdateContactMessageStatusInput struct {
	ID     int64         `json:"id" validate:"required,gt=0" label:"Id"`
	Status MessageStatus `json:"status" validate:"required,oneof=new read responded"`
}
