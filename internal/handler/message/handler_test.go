package message

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podomus/clinic-api/internal/middleware"
	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/service/message"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

type stubMessageService struct {
	created *model.ContactMessage
	updated *model.ContactMessage
	listed  []*model.ContactMessage
	err     error
}

var _ message.MessageService = (*stubMessageService)(nil)

func (s *stubMessageService) CreateContactMessage(ctx context.Context, input *model.CreateContactMessageInput) (*model.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.created, nil
}

func (s *stubMessageService) GetContactMessages(ctx context.Context) ([]*model.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.listed, nil
}

func (s *stubMessageService) UpdateContactMessageStatus(ctx context.Context, input *model.UpdateContactMessageStatusInput) (*model.ContactMessage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.updated, nil
}

func setupRouter(svc message.MessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	rpc := r.Group("/rpc")
	NewHandler(svc).RegisterRoutes(rpc)
	return r
}

func doPost(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateContactMessageResponseEnvelope(t *testing.T) {
	svc := &stubMessageService{
		created: &model.ContactMessage{
			ID:      1,
			Name:    "Jean Martin",
			Email:   "jean@example.com",
			Subject: "Question",
			Message: "Bonjour",
			Status:  model.MessageStatusNew,
		},
	}
	r := setupRouter(svc)

	w := doPost(t, r, "/rpc/createContactMessage", `{
		"name": "Jean Martin",
		"email": "jean@example.com",
		"subject": "Question",
		"message": "Bonjour"
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string               `json:"status"`
		Data   model.ContactMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, int64(1), resp.Data.ID)
	assert.Equal(t, model.MessageStatusNew, resp.Data.Status)
}

func TestCreateContactMessageMalformedBody(t *testing.T) {
	r := setupRouter(&stubMessageService{})

	w := doPost(t, r, "/rpc/createContactMessage", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}

func TestCreateContactMessageValidationError(t *testing.T) {
	r := setupRouter(&stubMessageService{err: apperrors.Validation("Subject is required")})

	w := doPost(t, r, "/rpc/createContactMessage", `{"name":"Jean","email":"jean@example.com","message":"Bonjour"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Status    string `json:"status"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "Subject is required", resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	assert.Equal(t, resp.RequestID, w.Header().Get(middleware.HeaderXRequestID))
}

func TestUpdateContactMessageStatusNotFound(t *testing.T) {
	r := setupRouter(&stubMessageService{err: apperrors.NotFound("contact message with id %d not found", 42)})

	w := doPost(t, r, "/rpc/updateContactMessageStatus", `{"id":42,"status":"read"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "contact message with id 42 not found", resp.Message)
}

func TestGetContactMessagesUnexpectedError(t *testing.T) {
	r := setupRouter(&stubMessageService{err: assert.AnError})

	w := doPost(t, r, "/rpc/getContactMessages", `{}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Message)
}

func TestGetContactMessagesEmptyList(t *testing.T) {
	r := setupRouter(&stubMessageService{listed: []*model.ContactMessage{}})

	w := doPost(t, r, "/rpc/getContactMessages", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success","data":[]}`, w.Body.String())
}
