package medicamento

import (
	"strings"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// NovoEsquemaDTO is the raw schedule sent by clients.
type NovoEsquemaDTO struct {
	Tipo         string
	Timezone     string
	Horarios     []string
	Inicio       *time.Time
	Fim          *time.Time
	DiasDaSemana []int
}

func (d NovoEsquemaDTO) dados() domain.EsquemaDoseDados {
	return domain.EsquemaDoseDados{
		Tipo:         domain.TipoRecorrencia(strings.TrimSpace(d.Tipo)),
		Timezone:     strings.TrimSpace(d.Timezone),
		Horarios:     d.Horarios,
		Inicio:       d.Inicio,
		Fim:          d.Fim,
		DiasDaSemana: d.DiasDaSemana,
	}
}

// AlterarEsquemaInput holds the parameters for replacing a schedule.
type AlterarEsquemaInput struct {
	MedicamentoID string
	Esquema       NovoEsquemaDTO
}

// Validate checks all fields and collects all errors. Schedule content is
// validated by the domain.
func (i AlterarEsquemaInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.MedicamentoID) == "" {
		errs = append(errs, domain.FieldError{Field: "medicamentoId", Message: "MedicamentoId obrigatorio"})
	}
	if strings.TrimSpace(i.Esquema.Tipo) == "" {
		errs = append(errs, domain.FieldError{Field: "esquema.tipo", Message: "Tipo de recorrencia obrigatorio"})
	}
	if len(i.Esquema.Horarios) == 0 {
		errs = append(errs, domain.FieldError{Field: "esquema.horarios", Message: "EsquemaDose requer ao menos um horario"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ProjetarDosesInput asks for pending doses between Inicio and Fim.
type ProjetarDosesInput struct {
	MedicamentoID string
	Inicio        time.Time
	Fim           time.Time
}

func (i ProjetarDosesInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.MedicamentoID) == "" {
		errs = append(errs, domain.FieldError{Field: "medicamentoId", Message: "MedicamentoId obrigatorio"})
	}
	if i.Inicio.IsZero() || i.Fim.IsZero() {
		errs = append(errs, domain.FieldError{Field: "periodo", Message: "Periodo de projecao precisa de inicio e fim definidos"})
	} else {
		if i.Fim.Before(i.Inicio) {
			errs = append(errs, domain.FieldError{Field: "periodo", Message: "Periodo invalido: inicio deve ser anterior ou igual ao fim"})
		}
		if i.Fim.Sub(i.Inicio) > MaxJanelaProjecaoDias*24*time.Hour {
			errs = append(errs, domain.FieldError{Field: "periodo", Message: "Periodo de projecao excede 92 dias"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
