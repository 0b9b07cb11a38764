package message

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podomus/clinic-api/internal/model"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

type fakeMessageRepo struct {
	created *model.ContactMessage
	stored  map[int64]*model.ContactMessage
	listed  []*model.ContactMessage
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = 1
	msg.CreatedAt = time.Now().UTC()
	f.created = msg
	return nil
}

func (f *fakeMessageRepo) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return f.listed, nil
}

func (f *fakeMessageRepo) UpdateStatus(ctx context.Context, id int64, status model.MessageStatus) (*model.ContactMessage, error) {
	msg, ok := f.stored[id]
	if !ok {
		return nil, apperrors.NotFound("contact message with id %d not found", id)
	}
	msg.Status = status
	return msg, nil
}

type fakeNotifier struct {
	notified *model.ContactMessage
	err      error
}

func (f *fakeNotifier) NotifyContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	f.notified = msg
	return f.err
}

func validMessageInput() *model.CreateContactMessageInput {
	return &model.CreateContactMessageInput{
		Name:                 "Jean Martin",
		Email:                "jean@example.com",
		Subject:              "Douleur au talon",
		Message:              "Bonjour, je souhaite prendre rendez-vous.",
		IsAppointmentRequest: true,
	}
}

func TestCreateContactMessageForcesNewStatus(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	created, err := svc.CreateContactMessage(context.Background(), validMessageInput())
	require.NoError(t, err)
	assert.Equal(t, model.MessageStatusNew, created.Status)
	assert.Equal(t, "Jean Martin", created.Name)
	assert.True(t, created.IsAppointmentRequest)
}

func TestCreateContactMessageNotifies(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	created, err := svc.CreateContactMessage(context.Background(), validMessageInput())
	require.NoError(t, err)
	assert.Equal(t, created, notifier.notified)
}

func TestCreateContactMessageNotifierFailureIsIgnored(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{err: fmt.Errorf("smtp: connection refused")}
	svc := NewService(repo, notifier)

	created, err := svc.CreateContactMessage(context.Background(), validMessageInput())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(1), created.ID)
}

func TestCreateContactMessageValidatesBeforeStore(t *testing.T) {
	repo := &fakeMessageRepo{}
	notifier := &fakeNotifier{}
	svc := NewService(repo, notifier)

	input := validMessageInput()
	input.Subject = ""

	_, err := svc.CreateContactMessage(context.Background(), input)
	require.Error(t, err)
	assert.EqualError(t, err, "Subject is required")
	assert.Nil(t, repo.created)
	assert.Nil(t, notifier.notified)
}

func TestGetContactMessages(t *testing.T) {
	listed := []*model.ContactMessage{{ID: 2}, {ID: 1}}
	svc := NewService(&fakeMessageRepo{listed: listed}, &fakeNotifier{})

	messages, err := svc.GetContactMessages(context.Background())
	require.NoError(t, err)
	assert.Equal(t, listed, messages)
}

func TestUpdateContactMessageStatus(t *testing.T) {
	stored := &model.ContactMessage{ID: 3, Status: model.MessageStatusNew}
	repo := &fakeMessageRepo{stored: map[int64]*model.ContactMessage{3: stored}}
	svc := NewService(repo, &fakeNotifier{})

	updated, err := svc.UpdateContactMessageStatus(context.Background(), &model.UpdateContactMessageStatusInput{
		ID:     3,
		Status: model.MessageStatusResponded,
	})
	require.NoError(t, err)
	assert.Equal(t, model.MessageStatusResponded, updated.Status)
}

func TestUpdateContactMessageStatusNotFound(t *testing.T) {
	repo := &fakeMessageRepo{stored: map[int64]*model.ContactMessage{}}
	svc := NewService(repo, &fakeNotifier{})

	_, err := svc.UpdateContactMessageStatus(context.Background(), &model.UpdateContactMessageStatusInput{
		ID:     44,
		Status: model.MessageStatusRead,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.EqualError(t, err, "contact message with id 44 not found")
}
