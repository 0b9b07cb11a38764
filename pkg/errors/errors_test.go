package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation("First name is required").StatusCode())
	assert.Equal(t, http.StatusNotFound, NotFound("appointment with id %d not found", 7).StatusCode())
	assert.Equal(t, http.StatusConflict, Conflict("duplicate email", nil).StatusCode())
	assert.Equal(t, http.StatusConflict, Referential("patient with id 9 not found", nil).StatusCode())
	assert.Equal(t, http.StatusInternalServerError, Internal(fmt.Errorf("boom")).StatusCode())
}

func TestNotFoundMessageNamesID(t *testing.T) {
	err := NotFound("appointment with id %d not found", 999999)
	assert.EqualError(t, err, "appointment with id 999999 not found")
}

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("pq: duplicate key value")
	err := Conflict("a patient with this email already exists", cause)

	assert.ErrorContains(t, err, "a patient with this email already exists")
	assert.Equal(t, cause, err.Unwrap())

	wrapped := fmt.Errorf("create patient: %w", err)
	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(Validation("bad")))
	assert.True(t, IsNotFound(NotFound("missing")))
	assert.False(t, IsConflict(fmt.Errorf("plain error")))
}
