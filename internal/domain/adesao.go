package domain

import (
	"math"
	"time"
)

const (
	// AdesaoCasasDecimaisPadrao is the precision NewAdesao rounds to.
	AdesaoCasasDecimaisPadrao = 4

	maxAdesaoCasasDecimais = 6
)

// Adesao is a treatment adherence ratio in [0, 1] over a period.
type Adesao struct {
	valor         float64
	periodo       Periodo
	casasDecimais int
}

// AdesaoSnapshot is the wire form of an Adesao.
type AdesaoSnapshot struct {
	Valor      float64    `json:"valor"`
	Percentual float64    `json:"percentual"`
	Inicio     *time.Time `json:"inicio"`
	Fim        *time.Time `json:"fim"`
}

func NewAdesao(valor float64, periodo Periodo) (Adesao, error) {
	return NewAdesaoComPrecisao(valor, periodo, AdesaoCasasDecimaisPadrao)
}

// NewAdesaoComPrecisao rounds valor to casasDecimais places, clamped to 0..6.
func NewAdesaoComPrecisao(valor float64, periodo Periodo, casasDecimais int) (Adesao, error) {
	if math.IsNaN(valor) || math.IsInf(valor, 0) {
		return Adesao{}, NewValidationError("adesao", "Adesao invalida")
	}
	if valor < 0 || valor > 1 {
		return Adesao{}, NewValidationError("adesao", "Adesao precisa estar entre 0 e 1")
	}

	casas := min(max(casasDecimais, 0), maxAdesaoCasasDecimais)
	escala := math.Pow10(casas)

	return Adesao{
		valor:         math.Round(valor*escala) / escala,
		periodo:       periodo,
		casasDecimais: casas,
	}, nil
}

// CalcularAdesao is the share of doses due inside periodo that were taken.
// A period with no due doses has no adherence and is rejected.
func CalcularAdesao(doses []*DoseLog, periodo Periodo) (Adesao, error) {
	var previstas, tomadas int
	for _, d := range doses {
		if !periodo.Contem(d.HorarioPrevisto()) {
			continue
		}
		previstas++
		if d.Status() == DoseStatusTomado {
			tomadas++
		}
	}
	if previstas == 0 {
		return Adesao{}, NewValidationError("periodo", "Periodo sem doses previstas")
	}
	return NewAdesao(float64(tomadas)/float64(previstas), periodo)
}

func (a Adesao) Valor() float64     { return a.valor }
func (a Adesao) Periodo() Periodo   { return a.periodo }
func (a Adesao) CasasDecimais() int { return a.casasDecimais }

// Percentual is the ratio as a percentage with two decimals.
func (a Adesao) Percentual() float64 {
	return math.Round(a.valor*10000) / 100
}

func (a Adesao) Snapshot() AdesaoSnapshot {
	return AdesaoSnapshot{
		Valor:      a.valor,
		Percentual: a.Percentual(),
		Inicio:     copyTime(a.periodo.inicio),
		Fim:        copyTime(a.periodo.fim),
	}
}
