package persistence

import (
	"errors"
	"strings"

	"github.com/artistai/backend/internal/domain/shared"
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations
const uniqueViolation = "23505"

// translateUniqueViolation maps a driver-level unique violation to the
// domain conflict error matching the violated index. The index names
// come from the migrations; anything unrecognized falls back to a
// generic conflict. Non-unique-violation errors pass through.
func translateUniqueViolation(err error, values map[string]string) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || string(pqErr.Code) != uniqueViolation {
		return err
	}

	constraint := pqErr.Constraint
	switch {
	case strings.Contains(constraint, "phone"):
		return shared.NewDuplicateConflict("PHONE", values["phone"])
	case strings.Contains(constraint, "cpf_cnpj"):
		return shared.NewDuplicateConflict("DOCUMENT", values["cpf_cnpj"])
	default:
		return shared.ErrAlreadyExists
	}
}
