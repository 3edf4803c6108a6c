package domain

import (
	"slices"
	"strings"
	"time"
)

// ConsultaProps holds the fields for AgendarConsulta.
type ConsultaProps struct {
	ID         string
	PacienteID string
	DataHora   time.Time
	Retroativa bool
	Documentos []string
}

// Consulta is a medical appointment of a patient. A retroactive consulta
// records one that already happened; any other must not be in the past.
type Consulta struct {
	id         string
	pacienteID string
	dataHora   time.Time
	retroativa bool
	documentos []string
}

// ConsultaSnapshot is the plain-data projection of a Consulta.
type ConsultaSnapshot struct {
	ID         string    `json:"id"`
	PacienteID string    `json:"pacienteId"`
	DataHora   time.Time `json:"dataHora"`
	Retroativa bool      `json:"retroativa"`
	Documentos []string  `json:"documentos"`
}

func AgendarConsulta(props ConsultaProps, clock Clock) (*Consulta, error) {
	id := strings.TrimSpace(props.ID)
	pacienteID := strings.TrimSpace(props.PacienteID)

	if id == "" {
		return nil, NewValidationError("consultaId", "Consulta requer identificador")
	}
	if pacienteID == "" {
		return nil, NewValidationError("pacienteId", "Consulta requer paciente")
	}
	if err := validarDataConsulta(props.DataHora, props.Retroativa, clock); err != nil {
		return nil, err
	}

	c := &Consulta{
		id:         id,
		pacienteID: pacienteID,
		dataHora:   props.DataHora.UTC(),
		retroativa: props.Retroativa,
	}
	for _, doc := range props.Documentos {
		if err := c.AnexarDocumento(doc); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// RestaurarConsulta rebuilds a consulta from storage without the date check.
func RestaurarConsulta(s ConsultaSnapshot) *Consulta {
	return &Consulta{
		id:         s.ID,
		pacienteID: s.PacienteID,
		dataHora:   s.DataHora.UTC(),
		retroativa: s.Retroativa,
		documentos: slices.Clone(s.Documentos),
	}
}

func (c *Consulta) ID() string          { return c.id }
func (c *Consulta) PacienteID() string  { return c.pacienteID }
func (c *Consulta) DataHora() time.Time { return c.dataHora }

// Reagendar moves the consulta. On error the consulta is unchanged.
func (c *Consulta) Reagendar(novaDataHora time.Time, retroativa bool, clock Clock) error {
	if err := validarDataConsulta(novaDataHora, retroativa, clock); err != nil {
		return err
	}
	c.dataHora = novaDataHora.UTC()
	c.retroativa = retroativa
	return nil
}

// AnexarDocumento links a document. Attaching the same id twice is a no-op.
func (c *Consulta) AnexarDocumento(documentoID string) error {
	id := strings.TrimSpace(documentoID)
	if id == "" {
		return NewValidationError("documentoId", "Documento invalido")
	}
	if !slices.Contains(c.documentos, id) {
		c.documentos = append(c.documentos, id)
	}
	return nil
}

func (c *Consulta) Snapshot() ConsultaSnapshot {
	docs := slices.Clone(c.documentos)
	if docs == nil {
		docs = []string{}
	}
	return ConsultaSnapshot{
		ID:         c.id,
		PacienteID: c.pacienteID,
		DataHora:   c.dataHora,
		Retroativa: c.retroativa,
		Documentos: docs,
	}
}

func validarDataConsulta(data time.Time, retroativa bool, clock Clock) error {
	if data.IsZero() {
		return NewValidationError("dataHora", "Data da consulta invalida")
	}
	if !retroativa && data.Before(clock.NowUTC()) {
		return NewValidationError("dataHora", "Consulta futura nao pode ter data passada")
	}
	return nil
}
