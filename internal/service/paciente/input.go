package paciente

import (
	"strings"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// ListarPorTutorInput holds the parameters for listing a tutor's patients.
type ListarPorTutorInput struct {
	TutorID string
}

func (i ListarPorTutorInput) Validate() error {
	if strings.TrimSpace(i.TutorID) == "" {
		return domain.NewValidationError("tutorId", "TutorId obrigatorio")
	}
	return nil
}

// PlanoSaudeInput is the optional health plan attached at registration.
type PlanoSaudeInput struct {
	Operadora         string
	NumeroCarteirinha string
	Validade          *time.Time
}

// CadastrarInput holds the parameters for registering a patient.
// An empty ID is replaced by a generated one.
type CadastrarInput struct {
	ID           string
	TutorID      string
	NomeCompleto string
	Condicoes    []string
	Alergias     []string
	PlanoSaude   *PlanoSaudeInput
}

// Validate checks all fields and collects all errors. Length and content
// rules are left to the domain constructors.
func (i CadastrarInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.TutorID) == "" {
		errs = append(errs, domain.FieldError{Field: "tutorId", Message: "TutorId obrigatorio"})
	}
	if strings.TrimSpace(i.NomeCompleto) == "" {
		errs = append(errs, domain.FieldError{Field: "nomeCompleto", Message: "Nome do paciente nao pode ser vazio"})
	}
	if i.PlanoSaude != nil && strings.TrimSpace(i.PlanoSaude.Operadora) == "" {
		errs = append(errs, domain.FieldError{Field: "planoSaude.operadora", Message: "Plano de saude requer nome da operadora"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ObterInput identifies one patient of a tutor.
type ObterInput struct {
	TutorID    string
	PacienteID string
}

func (i ObterInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.TutorID) == "" {
		errs = append(errs, domain.FieldError{Field: "tutorId", Message: "TutorId obrigatorio"})
	}
	if strings.TrimSpace(i.PacienteID) == "" {
		errs = append(errs, domain.FieldError{Field: "pacienteId", Message: "PacienteId obrigatorio"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
