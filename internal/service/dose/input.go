package dose

import (
	"strings"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// ConfirmarTomadaInput identifies the dose being confirmed. A nil Instante
// means now.
type ConfirmarTomadaInput struct {
	DoseLogID string
	Instante  *time.Time
}

func (i ConfirmarTomadaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.DoseLogID) == "" {
		errs = append(errs, domain.FieldError{Field: "doseLogId", Message: "DoseLogId obrigatorio"})
	}
	if i.Instante != nil && i.Instante.IsZero() {
		errs = append(errs, domain.FieldError{Field: "instante", Message: "Instante invalido"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
