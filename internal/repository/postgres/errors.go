package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	apperrors "github.com/podomus/clinic-api/pkg/errors"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapError translates postgres constraint violations into the application
// error taxonomy and wraps anything else with context. Storage errors are
// never swallowed.
func wrapError(err error, msg string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperrors.Conflict(uniqueViolationMessage(pqErr.Constraint), err)
		case pqForeignKeyViolation:
			return apperrors.Referential(foreignKeyMessage(pqErr.Constraint), err)
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

func uniqueViolationMessage(constraint string) string {
	switch constraint {
	case "patients_email_key":
		return "a patient with this email already exists"
	case "services_slug_key":
		return "a service with this slug already exists"
	default:
		return "duplicate value violates a uniqueness constraint"
	}
}

func foreignKeyMessage(constraint string) string {
	switch constraint {
	case "appointments_patient_id_fkey":
		return "referenced patient does not exist"
	default:
		return "referenced record does not exist"
	}
}
