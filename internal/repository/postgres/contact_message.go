package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

const contactMessageColumns = `id, name, email, phone, subject, message, is_appointment_request, status, created_at`

type contactMessageRepository struct {
	db *sqlx.DB
}

func NewContactMessageRepository(db *sqlx.DB) repository.ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (name, email, phone, subject, message, is_appointment_request, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + contactMessageColumns
	err := r.db.GetContext(ctx, msg, query,
		msg.Name,
		msg.Email,
		msg.Phone,
		msg.Subject,
		msg.Message,
		msg.IsAppointmentRequest,
		msg.Status,
	)
	if err != nil {
		return wrapError(err, "failed to create contact message")
	}
	return nil
}

func (r *contactMessageRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	query := `
		SELECT ` + contactMessageColumns + `
		FROM contact_messages
		ORDER BY created_at DESC
	`
	messages := []*model.ContactMessage{}
	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, wrapError(err, "failed to list contact messages")
	}
	return messages, nil
}

// UpdateStatus does not touch any timestamp: the table has no updated_at.
func (r *contactMessageRepository) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	query := `
		UPDATE contact_messages
		SET status = $1
		WHERE id = $2
		RETURNING ` + contactMessageColumns
	var msg model.ContactMessage
	err := r.db.GetContext(ctx, &msg, query, status, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("contact message with id %d not found", id)
	}
	if err != nil {
		return nil, wrapError(err, "failed to update contact message status")
	}
	return &msg, nil
}
