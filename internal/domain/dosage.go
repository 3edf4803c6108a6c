package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Supported dosage units.
const (
	UnidadeMg          = "mg"
	UnidadeMl          = "ml"
	UnidadeGotas       = "gotas"
	UnidadeComprimidos = "comprimidos"
	UnidadeCapsulas    = "capsulas"
)

var unidadesSuportadas = map[string]struct{}{
	UnidadeMg:          {},
	UnidadeMl:          {},
	UnidadeGotas:       {},
	UnidadeComprimidos: {},
	UnidadeCapsulas:    {},
}

// UnidadeDosagem is the unit a medication dose is measured in.
type UnidadeDosagem struct {
	value string
}

// NewUnidadeDosagem normalizes raw (trim + lowercase) and checks it
// against the supported units.
func NewUnidadeDosagem(raw string) (UnidadeDosagem, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))

	if _, ok := unidadesSuportadas[normalized]; !ok {
		return UnidadeDosagem{}, NewValidationError("unidadeDosagem", "Unidade de dosagem nao suportada")
	}

	return UnidadeDosagem{value: normalized}, nil
}

func (u UnidadeDosagem) Value() string  { return u.value }
func (u UnidadeDosagem) String() string { return u.value }

func (u UnidadeDosagem) Equal(other UnidadeDosagem) bool { return u.value == other.value }

var doseHorarioPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// DoseHorario is a wall-clock time of day ("hh:mm") a dose is due at.
type DoseHorario struct {
	hours   int
	minutes int
}

// NewDoseHorario parses "hh:mm" with hours 0..23 and minutes 0..59.
func NewDoseHorario(raw string) (DoseHorario, error) {
	normalized := strings.TrimSpace(raw)

	if !doseHorarioPattern.MatchString(normalized) {
		return DoseHorario{}, NewValidationError("horario", "DoseHorario deve estar no formato hh:mm")
	}

	h, _ := strconv.Atoi(normalized[:2])
	m, _ := strconv.Atoi(normalized[3:])
	if h > 23 || m > 59 {
		return DoseHorario{}, NewValidationError("horario", "DoseHorario invalido")
	}

	return DoseHorario{hours: h, minutes: m}, nil
}

func (d DoseHorario) Hours() int   { return d.hours }
func (d DoseHorario) Minutes() int { return d.minutes }

func (d DoseHorario) String() string {
	return fmt.Sprintf("%02d:%02d", d.hours, d.minutes)
}
