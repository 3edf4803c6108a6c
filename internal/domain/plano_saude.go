package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxCarteirinhaLength = 40
	maxOperadoraLength   = 120
)

// NumeroCarteirinha is a health-plan membership number.
type NumeroCarteirinha struct {
	value string
}

func NewNumeroCarteirinha(raw string) (NumeroCarteirinha, error) {
	normalized := strings.TrimSpace(raw)

	if normalized == "" {
		return NumeroCarteirinha{}, NewValidationError("numeroCarteirinha", "NumeroCarteirinha nao pode ser vazio")
	}
	if utf8.RuneCountInString(normalized) > maxCarteirinhaLength {
		return NumeroCarteirinha{}, NewValidationError("numeroCarteirinha", "NumeroCarteirinha excede comprimento maximo")
	}

	return NumeroCarteirinha{value: normalized}, nil
}

func (n NumeroCarteirinha) Value() string { return n.value }

// PlanoSaudeProps holds the raw fields for NewPlanoSaude.
type PlanoSaudeProps struct {
	Operadora         string
	NumeroCarteirinha NumeroCarteirinha
	Validade          *time.Time
	Arquivado         bool
}

// PlanoSaude is a patient's health plan.
type PlanoSaude struct {
	operadora         string
	numeroCarteirinha NumeroCarteirinha
	validade          *time.Time
	arquivado         bool
}

// PlanoSaudeSnapshot is the plain-data projection of a PlanoSaude.
type PlanoSaudeSnapshot struct {
	Operadora         string     `json:"operadora"`
	NumeroCarteirinha string     `json:"numeroCarteirinha"`
	Validade          *time.Time `json:"validade"`
	Arquivado         bool       `json:"arquivado"`
}

// NewPlanoSaude validates props. An active plan may not already be expired
// at time agora.
func NewPlanoSaude(props PlanoSaudeProps, agora time.Time) (*PlanoSaude, error) {
	operadora := strings.TrimSpace(props.Operadora)

	if operadora == "" {
		return nil, NewValidationError("operadora", "Plano de saude requer nome da operadora")
	}
	if utf8.RuneCountInString(operadora) > maxOperadoraLength {
		return nil, NewValidationError("operadora", "Nome da operadora excede limite de 120 caracteres")
	}
	if props.Validade != nil && !props.Arquivado && props.Validade.Before(agora) {
		return nil, NewValidationError("validade", "Validade do plano nao pode estar vencida para planos ativos")
	}

	return &PlanoSaude{
		operadora:         operadora,
		numeroCarteirinha: props.NumeroCarteirinha,
		validade:          copyTime(props.Validade),
		arquivado:         props.Arquivado,
	}, nil
}

// RestaurarPlanoSaude rebuilds a plan from storage without the expiry check.
func RestaurarPlanoSaude(s PlanoSaudeSnapshot) (*PlanoSaude, error) {
	num, err := NewNumeroCarteirinha(s.NumeroCarteirinha)
	if err != nil {
		return nil, err
	}
	return &PlanoSaude{
		operadora:         s.Operadora,
		numeroCarteirinha: num,
		validade:          copyTime(s.Validade),
		arquivado:         s.Arquivado,
	}, nil
}

// EstaValido reports whether the plan covers instant em.
func (p *PlanoSaude) EstaValido(em time.Time) bool {
	if p.arquivado {
		return false
	}
	if p.validade == nil {
		return true
	}
	return !p.validade.Before(em)
}

func (p *PlanoSaude) Arquivar() { p.arquivado = true }

func (p *PlanoSaude) Snapshot() PlanoSaudeSnapshot {
	return PlanoSaudeSnapshot{
		Operadora:         p.operadora,
		NumeroCarteirinha: p.numeroCarteirinha.Value(),
		Validade:          copyTime(p.validade),
		Arquivado:         p.arquivado,
	}
}
