package message

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/podomus/clinic-api/internal/email"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	"github.com/podomus/clinic-api/pkg/validator"
)

type MessageService interface {
	CreateContactMessage(ctx context.Context, input *model.CreateContactMessageInput) (*model.ContactMessage, error)
	GetContactMessages(ctx context.Context) ([]*model.ContactMessage, error)
	UpdateContactMessageStatus(ctx context.Context, input *model.UpdateContactMessageStatusInput) (*model.ContactMessage, error)
}

type Service struct {
	repo     repository.ContactMessageRepository
	notifier email.Notifier
}

func NewService(repo repository.ContactMessageRepository, notifier email.Notifier) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
	}
}

// CreateContactMessage inserts the message with status forced to new. The
// clinic inbox notification is best effort: a send failure never fails the
// create.
func (s *Service) CreateContactMessage(ctx context.Context, input *model.CreateContactMessageInput) (*model.ContactMessage, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:                 input.Name,
		Email:                input.Email,
		Phone:                input.Phone,
		Subject:              input.Subject,
		Message:              input.Message,
		IsAppointmentRequest: input.IsAppointmentRequest,
		Status:               model.MessageStatusNew,
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if err := s.notifier.NotifyContactMessage(ctx, msg); err != nil {
		log.Warn().Err(err).Int64("message_id", msg.ID).Msg("failed to send contact message notification")
	}

	return msg, nil
}

// GetContactMessages returns every message, newest first. The ordering is a
// contract, not incidental.
func (s *Service) GetContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

func (s *Service) UpdateContactMessageStatus(ctx context.Context, input *model.UpdateContactMessageStatusInput) (*model.ContactMessage, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}
	return s.repo.UpdateStatus(ctx, input.ID, input.Status)
}
