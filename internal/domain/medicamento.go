package domain

import (
	"math"
	"strings"
	"time"
)

// MedicamentoProps holds the fields for NovoMedicamento. Medications are
// active unless Inativo is set.
type MedicamentoProps struct {
	ID             string
	PacienteID     string
	Nome           string
	Dosagem        float64
	UnidadeDosagem UnidadeDosagem
	Esquema        EsquemaDose
	Inativo        bool
}

// Medicamento is a medication prescribed to a patient, with an optional
// dosing schedule.
type Medicamento struct {
	eventRecorder

	id             string
	pacienteID     string
	nome           string
	dosagem        float64
	unidadeDosagem UnidadeDosagem
	esquema        EsquemaDose
	ativo          bool
}

// MedicamentoSnapshot is the plain-data projection of a Medicamento.
type MedicamentoSnapshot struct {
	ID             string            `json:"id"`
	PacienteID     string            `json:"pacienteId"`
	Nome           string            `json:"nome"`
	Dosagem        float64           `json:"dosagem"`
	UnidadeDosagem string            `json:"unidadeDosagem"`
	Ativo          bool              `json:"ativo"`
	Esquema        *EsquemaDoseDados `json:"esquema"`
}

func NovoMedicamento(props MedicamentoProps) (*Medicamento, error) {
	id := strings.TrimSpace(props.ID)
	pacienteID := strings.TrimSpace(props.PacienteID)
	nome := strings.TrimSpace(props.Nome)

	if id == "" {
		return nil, NewValidationError("id", "Medicamento requer identificador")
	}
	if pacienteID == "" {
		return nil, NewValidationError("pacienteId", "Medicamento deve estar vinculado a um paciente")
	}
	if nome == "" {
		return nil, NewValidationError("nome", "Medicamento requer nome")
	}
	if math.IsNaN(props.Dosagem) || math.IsInf(props.Dosagem, 0) || props.Dosagem <= 0 {
		return nil, NewValidationError("dosagem", "Dosagem do medicamento deve ser positiva")
	}
	if props.UnidadeDosagem.Value() == "" {
		return nil, NewValidationError("unidadeDosagem", "Unidade de dosagem nao suportada")
	}

	return &Medicamento{
		id:             id,
		pacienteID:     pacienteID,
		nome:           nome,
		dosagem:        props.Dosagem,
		unidadeDosagem: props.UnidadeDosagem,
		esquema:        props.Esquema,
		ativo:          !props.Inativo,
	}, nil
}

func (m *Medicamento) ID() string           { return m.id }
func (m *Medicamento) PacienteID() string   { return m.pacienteID }
func (m *Medicamento) Ativo() bool          { return m.ativo }
func (m *Medicamento) Esquema() EsquemaDose { return m.esquema }

// DefinirEsquema replaces the dosing schedule and records an
// EsquemaDeDoseAlterado event at agora.
func (m *Medicamento) DefinirEsquema(esquema EsquemaDose, agora time.Time) error {
	if !m.ativo {
		return newTransitionError("Nao e possivel atualizar esquema de medicamento inativo")
	}
	if esquema == nil {
		return NewValidationError("esquema", "Esquema de dose obrigatorio")
	}

	alterado, err := NewEsquemaDeDoseAlterado(EsquemaDeDoseAlteradoPayload{
		MedicamentoID: m.id,
		AlteradoEm:    agora,
	})
	if err != nil {
		return err
	}

	m.esquema = esquema
	m.record(alterado)
	return nil
}

func (m *Medicamento) Desativar() { m.ativo = false }
func (m *Medicamento) Reativar()  { m.ativo = true }

// GerarProjecoes projects the schedule over periodo. A medication without
// a schedule has no projections.
func (m *Medicamento) GerarProjecoes(periodo Periodo, clock Clock) ([]DoseProjecao, error) {
	if m.esquema == nil {
		return nil, nil
	}
	return m.esquema.ProjetarInstancias(periodo, clock)
}

func (m *Medicamento) Snapshot() MedicamentoSnapshot {
	s := MedicamentoSnapshot{
		ID:             m.id,
		PacienteID:     m.pacienteID,
		Nome:           m.nome,
		Dosagem:        m.dosagem,
		UnidadeDosagem: m.unidadeDosagem.Value(),
		Ativo:          m.ativo,
	}
	if m.esquema != nil {
		d := m.esquema.Dados()
		s.Esquema = &d
	}
	return s
}
