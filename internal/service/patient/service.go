package patient

import (
	"context"

	"github.com/podomus/clinic-api/internal/model"
	"github.com/podomus/clinic-api/internal/repository"
	"github.com/podomus/clinic-api/pkg/validator"
)

type PatientService interface {
	CreatePatient(ctx context.Context, input *model.CreatePatientInput) (*model.Patient, error)
	GetPatientByEmail(ctx context.Context, input *model.GetPatientByEmailInput) (*model.Patient, error)
}

type Service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePatient(ctx context.Context, input *model.CreatePatientInput) (*model.Patient, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	patient := &model.Patient{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		Phone:          input.Phone,
		DateOfBirth:    input.DateOfBirth.TimePtr(),
		Address:        input.Address,
		MedicalHistory: input.MedicalHistory,
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// GetPatientByEmail matches the stored email exactly and case-sensitively.
// A missing patient is (nil, nil), never an error.
func (s *Service) GetPatientByEmail(ctx context.Context, input *model.GetPatientByEmailInput) (*model.Patient, error) {
	if err := validator.Validate(input); err != nil {
		return nil, err
	}
	return s.repo.GetByEmail(ctx, input.Email)
}
