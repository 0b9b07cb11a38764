package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podomus/clinic-api/internal/model"
	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

func validPatientInput() *model.CreatePatientInput {
	return &model.CreatePatientInput{
		FirstName: "Marie",
		LastName:  "Dupont",
		Email:     "marie.dupont@example.com",
		Phone:     "+33 6 12 34 56 78",
	}
}

func TestValidateCreatePatientInput(t *testing.T) {
	require.NoError(t, Validate(validPatientInput()))

	tests := []struct {
		name    string
		mutate  func(*model.CreatePatientInput)
		message string
	}{
		{
			name:    "missing first name",
			mutate:  func(in *model.CreatePatientInput) { in.FirstName = "" },
			message: "First name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(in *model.CreatePatientInput) { in.LastName = "" },
			message: "Last name is required",
		},
		{
			name:    "invalid email",
			mutate:  func(in *model.CreatePatientInput) { in.Email = "not-an-email" },
			message: "Valid email is required",
		},
		{
			name:    "missing phone",
			mutate:  func(in *model.CreatePatientInput) { in.Phone = "" },
			message: "Phone number is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validPatientInput()
			tt.mutate(input)
			err := Validate(input)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.EqualError(t, err, tt.message)
		})
	}
}

func TestValidateCreateContactMessageInput(t *testing.T) {
	input := &model.CreateContactMessageInput{
		Name:    "Jean Martin",
		Email:   "jean@example.com",
		Subject: "Question",
		Message: "Bonjour",
	}
	require.NoError(t, Validate(input))

	input.Name = ""
	assert.EqualError(t, Validate(input), "Name is required")

	input.Name = "Jean Martin"
	input.Subject = ""
	assert.EqualError(t, Validate(input), "Subject is required")

	input.Subject = "Question"
	input.Message = ""
	assert.EqualError(t, Validate(input), "Message is required")
}

func TestValidateCreateServiceInput(t *testing.T) {
	price := 45.0
	input := &model.CreateServiceInput{
		Name:            "Pédicurie médicale",
		Slug:            "pedicurie-medicale",
		Description:     "Soins des pieds",
		DurationMinutes: 45,
		Price:           &price,
	}
	require.NoError(t, Validate(input))

	input.Name = ""
	assert.EqualError(t, Validate(input), "Service name is required")

	input.Name = "Pédicurie médicale"
	input.Slug = ""
	assert.EqualError(t, Validate(input), "Service slug is required")

	input.Slug = "pedicurie-medicale"
	input.DurationMinutes = 0
	assert.EqualError(t, Validate(input), "Duration is required")

	input.DurationMinutes = -5
	assert.EqualError(t, Validate(input), "Duration must be positive")

	input.DurationMinutes = 45
	negative := -1.0
	input.Price = &negative
	assert.EqualError(t, Validate(input), "Price must be positive")

	// Price is nullable.
	input.Price = nil
	require.NoError(t, Validate(input))
}

func TestValidateCreateAppointmentInput(t *testing.T) {
	input := &model.CreateAppointmentInput{
		PatientID:       1,
		ServiceType:     model.ServiceTypePedicurie,
		AppointmentDate: model.Datetime{},
		DurationMinutes: 45,
	}
	assert.EqualError(t, Validate(input), "Appointment date is required")

	require.NoError(t, input.AppointmentDate.UnmarshalJSON([]byte(`"2024-03-20T10:00:00Z"`)))
	require.NoError(t, Validate(input))

	input.ServiceType = "massage"
	err := Validate(input)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	input.ServiceType = model.ServiceTypeSemelles
	input.PatientID = 0
	assert.EqualError(t, Validate(input), "Patient id is required")
}

func TestValidateUpdateStatusInputs(t *testing.T) {
	require.NoError(t, Validate(&model.UpdateAppointmentStatusInput{ID: 1, Status: model.AppointmentStatusConfirmed}))
	assert.Error(t, Validate(&model.UpdateAppointmentStatusInput{ID: 1, Status: "unknown"}))
	assert.EqualError(t, Validate(&model.UpdateAppointmentStatusInput{Status: model.AppointmentStatusConfirmed}), "Id is required")

	require.NoError(t, Validate(&model.UpdateContactMessageStatusInput{ID: 3, Status: model.MessageStatusRead}))
	assert.Error(t, Validate(&model.UpdateContactMessageStatusInput{ID: 3, Status: "archived"}))
}
