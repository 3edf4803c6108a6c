package domain

import "time"

// Periodo is a time interval with optional bounds. A nil bound is open.
type Periodo struct {
	inicio *time.Time
	fim    *time.Time
}

// NewPeriodo validates that inicio is not after fim when both are set.
func NewPeriodo(inicio, fim *time.Time) (Periodo, error) {
	if inicio != nil && fim != nil && inicio.After(*fim) {
		return Periodo{}, NewValidationError("periodo", "Periodo invalido: inicio deve ser anterior ou igual ao fim")
	}

	return Periodo{inicio: copyTime(inicio), fim: copyTime(fim)}, nil
}

// Inicio returns the lower bound, if any.
func (p Periodo) Inicio() (time.Time, bool) {
	if p.inicio == nil {
		return time.Time{}, false
	}
	return *p.inicio, true
}

// Fim returns the upper bound, if any.
func (p Periodo) Fim() (time.Time, bool) {
	if p.fim == nil {
		return time.Time{}, false
	}
	return *p.fim, true
}

// Contem reports whether t lies inside the period, bounds included.
func (p Periodo) Contem(t time.Time) bool {
	if p.inicio != nil && t.Before(*p.inicio) {
		return false
	}
	if p.fim != nil && t.After(*p.fim) {
		return false
	}
	return true
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
