package domain

import (
	"fmt"
	"slices"
	"time"
)

// TipoRecorrencia identifies how a dosing schedule repeats.
type TipoRecorrencia string

const (
	RecorrenciaDiaria  TipoRecorrencia = "DIARIO_HORARIOS_FIXOS"
	RecorrenciaSemanal TipoRecorrencia = "SEMANAL_DIAS_FIXOS"
)

func (t TipoRecorrencia) String() string { return string(t) }

// DoseProjecao is one projected dose instant.
type DoseProjecao struct {
	HorarioPrevisto time.Time
}

// EsquemaDose is a dosing schedule. Implementations: *EsquemaDoseDiario,
// *EsquemaDoseSemanal.
type EsquemaDose interface {
	Tipo() TipoRecorrencia
	// ProjetarInstancias lists the dose instants inside periodo, which must
	// have both bounds, clipped to the schedule's own validity window.
	ProjetarInstancias(periodo Periodo, clock Clock) ([]DoseProjecao, error)
	Dados() EsquemaDoseDados
}

// EsquemaDoseDados is the plain-data form of a schedule, used both as
// input to NovoEsquemaDose and as its stored representation.
type EsquemaDoseDados struct {
	Tipo         TipoRecorrencia `json:"tipo"`
	Timezone     string          `json:"timezone"`
	Horarios     []string        `json:"horarios"`
	Inicio       *time.Time      `json:"inicio,omitempty"`
	Fim          *time.Time      `json:"fim,omitempty"`
	DiasDaSemana []int           `json:"diasDaSemana,omitempty"`
}

// NovoEsquemaDose builds the schedule variant named by d.Tipo.
func NovoEsquemaDose(d EsquemaDoseDados) (EsquemaDose, error) {
	horarios := make([]DoseHorario, 0, len(d.Horarios))
	for _, raw := range d.Horarios {
		h, err := NewDoseHorario(raw)
		if err != nil {
			return nil, err
		}
		horarios = append(horarios, h)
	}

	vigencia, err := NewPeriodo(d.Inicio, d.Fim)
	if err != nil {
		return nil, err
	}

	switch d.Tipo {
	case RecorrenciaDiaria:
		e, err := NovoEsquemaDiario(horarios, d.Timezone, vigencia)
		if err != nil {
			return nil, err
		}
		return e, nil
	case RecorrenciaSemanal:
		e, err := NovoEsquemaSemanal(horarios, d.Timezone, vigencia, d.DiasDaSemana)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, NewValidationError("tipo", fmt.Sprintf("Recorrencia de dose nao suportada: %s", d.Tipo))
	}
}

type esquemaBase struct {
	horarios []DoseHorario
	timezone string
	vigencia Periodo
}

func novoEsquemaBase(horarios []DoseHorario, tz string, vigencia Periodo) (esquemaBase, error) {
	if len(horarios) == 0 {
		return esquemaBase{}, NewValidationError("horarios", "EsquemaDose requer ao menos um horario")
	}
	return esquemaBase{
		horarios: slices.Clone(horarios),
		timezone: tz,
		vigencia: vigencia,
	}, nil
}

// periodoEfetivo intersects periodo with the schedule's validity window.
func (b esquemaBase) periodoEfetivo(periodo Periodo) (time.Time, time.Time, error) {
	inicio, okInicio := periodo.Inicio()
	fim, okFim := periodo.Fim()
	if !okInicio || !okFim {
		return time.Time{}, time.Time{}, NewValidationError("periodo", "Periodo de projecao precisa de inicio e fim definidos")
	}

	if v, ok := b.vigencia.Inicio(); ok && v.After(inicio) {
		inicio = v
	}
	if v, ok := b.vigencia.Fim(); ok && v.Before(fim) {
		fim = v
	}

	if inicio.After(fim) {
		return time.Time{}, time.Time{}, NewValidationError("periodo", "Periodo de projecao nao intersecta com a vigencia do esquema")
	}
	return inicio, fim, nil
}

// projetar walks UTC days from inicio to fim and emits every horario on the
// days accepted by incluiDia.
func (b esquemaBase) projetar(periodo Periodo, clock Clock, incluiDia func(time.Weekday) bool) ([]DoseProjecao, error) {
	inicio, fim, err := b.periodoEfetivo(periodo)
	if err != nil {
		return nil, err
	}

	var out []DoseProjecao
	y, m, d := inicio.UTC().Date()
	for cursor := time.Date(y, m, d, 0, 0, 0, 0, time.UTC); !cursor.After(fim); cursor = cursor.AddDate(0, 0, 1) {
		if !incluiDia(cursor.Weekday()) {
			continue
		}
		for _, h := range b.horarios {
			previsto := clock.At(b.timezone, cursor, h.Hours(), h.Minutes())
			if previsto.Before(inicio) || previsto.After(fim) {
				continue
			}
			out = append(out, DoseProjecao{HorarioPrevisto: previsto})
		}
	}

	slices.SortFunc(out, func(x, y DoseProjecao) int {
		return x.HorarioPrevisto.Compare(y.HorarioPrevisto)
	})
	return out, nil
}

func (b esquemaBase) dados(tipo TipoRecorrencia) EsquemaDoseDados {
	horarios := make([]string, len(b.horarios))
	for i, h := range b.horarios {
		horarios[i] = h.String()
	}
	d := EsquemaDoseDados{Tipo: tipo, Timezone: b.timezone, Horarios: horarios}
	if v, ok := b.vigencia.Inicio(); ok {
		d.Inicio = &v
	}
	if v, ok := b.vigencia.Fim(); ok {
		d.Fim = &v
	}
	return d
}

// EsquemaDoseDiario repeats every day at fixed times.
type EsquemaDoseDiario struct {
	esquemaBase
}

func NovoEsquemaDiario(horarios []DoseHorario, tz string, vigencia Periodo) (*EsquemaDoseDiario, error) {
	base, err := novoEsquemaBase(horarios, tz, vigencia)
	if err != nil {
		return nil, err
	}
	return &EsquemaDoseDiario{esquemaBase: base}, nil
}

func (e *EsquemaDoseDiario) Tipo() TipoRecorrencia { return RecorrenciaDiaria }

func (e *EsquemaDoseDiario) ProjetarInstancias(periodo Periodo, clock Clock) ([]DoseProjecao, error) {
	return e.projetar(periodo, clock, func(time.Weekday) bool { return true })
}

func (e *EsquemaDoseDiario) Dados() EsquemaDoseDados {
	return e.dados(RecorrenciaDiaria)
}

// EsquemaDoseSemanal repeats on fixed weekdays (0 = Sunday .. 6 = Saturday)
// at fixed times.
type EsquemaDoseSemanal struct {
	esquemaBase
	dias []time.Weekday
}

func NovoEsquemaSemanal(horarios []DoseHorario, tz string, vigencia Periodo, dias []int) (*EsquemaDoseSemanal, error) {
	base, err := novoEsquemaBase(horarios, tz, vigencia)
	if err != nil {
		return nil, err
	}
	if len(dias) == 0 {
		return nil, NewValidationError("diasDaSemana", "Esquema semanal requer ao menos um dia da semana")
	}

	weekdays := make([]time.Weekday, 0, len(dias))
	for _, dia := range dias {
		if dia < 0 || dia > 6 {
			return nil, NewValidationError("diasDaSemana", "Dia da semana invalido em esquema")
		}
		if !slices.Contains(weekdays, time.Weekday(dia)) {
			weekdays = append(weekdays, time.Weekday(dia))
		}
	}

	return &EsquemaDoseSemanal{esquemaBase: base, dias: weekdays}, nil
}

func (e *EsquemaDoseSemanal) Tipo() TipoRecorrencia { return RecorrenciaSemanal }

func (e *EsquemaDoseSemanal) ProjetarInstancias(periodo Periodo, clock Clock) ([]DoseProjecao, error) {
	return e.projetar(periodo, clock, func(d time.Weekday) bool {
		return slices.Contains(e.dias, d)
	})
}

func (e *EsquemaDoseSemanal) Dados() EsquemaDoseDados {
	d := e.dados(RecorrenciaSemanal)
	d.DiasDaSemana = make([]int, len(e.dias))
	for i, w := range e.dias {
		d.DiasDaSemana[i] = int(w)
	}
	return d
}
