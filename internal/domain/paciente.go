package domain

import (
	"strings"
	"unicode/utf8"
)

const maxTextoCurto = 180

// PacienteProps holds the raw fields for NovoPaciente.
type PacienteProps struct {
	ID           string
	TutorID      string
	NomeCompleto string
	Condicoes    []string
	Alergias     []string
	PlanoSaude   *PlanoSaude
}

// PerfilPaciente is the editable part of a patient record.
type PerfilPaciente struct {
	NomeCompleto string
	Condicoes    []string
	Alergias     []string
}

// Paciente is a patient cared for by a tutor.
type Paciente struct {
	id           string
	tutorID      string
	nomeCompleto string
	condicoes    []string
	alergias     []string
	planoSaude   *PlanoSaude
}

// PacienteSnapshot is the plain-data projection of a Paciente.
// Slices are never shared with the aggregate.
type PacienteSnapshot struct {
	ID           string              `json:"id"`
	TutorID      string              `json:"tutorId"`
	NomeCompleto string              `json:"nomeCompleto"`
	Condicoes    []string            `json:"condicoes"`
	Alergias     []string            `json:"alergias"`
	PlanoSaude   *PlanoSaudeSnapshot `json:"planoSaude"`
}

// NovoPaciente trims and validates props.
func NovoPaciente(props PacienteProps) (*Paciente, error) {
	id := strings.TrimSpace(props.ID)
	tutorID := strings.TrimSpace(props.TutorID)
	nome := strings.TrimSpace(props.NomeCompleto)

	if id == "" {
		return nil, NewValidationError("id", "Paciente requer identificador")
	}
	if tutorID == "" {
		return nil, NewValidationError("tutorId", "Paciente requer tutorId")
	}
	if nome == "" {
		return nil, NewValidationError("nomeCompleto", "Nome do paciente nao pode ser vazio")
	}

	condicoes, err := textosCurtos("condicoes", props.Condicoes)
	if err != nil {
		return nil, err
	}
	alergias, err := textosCurtos("alergias", props.Alergias)
	if err != nil {
		return nil, err
	}

	return &Paciente{
		id:           id,
		tutorID:      tutorID,
		nomeCompleto: nome,
		condicoes:    condicoes,
		alergias:     alergias,
		planoSaude:   props.PlanoSaude,
	}, nil
}

func (p *Paciente) ID() string      { return p.id }
func (p *Paciente) TutorID() string { return p.tutorID }

// AtualizarPerfil replaces the name, conditions and allergies.
// The patient is left untouched on error.
func (p *Paciente) AtualizarPerfil(in PerfilPaciente) error {
	nome := strings.TrimSpace(in.NomeCompleto)
	if nome == "" {
		return NewValidationError("nomeCompleto", "Nome do paciente nao pode ser vazio")
	}

	condicoes, err := textosCurtos("condicoes", in.Condicoes)
	if err != nil {
		return err
	}
	alergias, err := textosCurtos("alergias", in.Alergias)
	if err != nil {
		return err
	}

	p.nomeCompleto = nome
	p.condicoes = condicoes
	p.alergias = alergias
	return nil
}

func (p *Paciente) VincularPlanoSaude(plano *PlanoSaude) {
	p.planoSaude = plano
}

func (p *Paciente) Snapshot() PacienteSnapshot {
	s := PacienteSnapshot{
		ID:           p.id,
		TutorID:      p.tutorID,
		NomeCompleto: p.nomeCompleto,
		Condicoes:    append([]string{}, p.condicoes...),
		Alergias:     append([]string{}, p.alergias...),
	}
	if p.planoSaude != nil {
		plano := p.planoSaude.Snapshot()
		s.PlanoSaude = &plano
	}
	return s
}

func textosCurtos(field string, items []string) ([]string, error) {
	out := make([]string, 0, len(items))
	for _, item := range items {
		texto := strings.TrimSpace(item)
		if utf8.RuneCountInString(texto) > maxTextoCurto {
			return nil, NewValidationError(field, "Texto excede limite de 180 caracteres")
		}
		out = append(out, texto)
	}
	return out, nil
}
