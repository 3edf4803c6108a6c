package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// TipoRecurso is a kind of patient data that a share link can expose.
type TipoRecurso string

const (
	RecursoDocumento   TipoRecurso = "documento"
	RecursoMedicamento TipoRecurso = "medicamento"
	RecursoConsulta    TipoRecurso = "consulta"
	RecursoHistorico   TipoRecurso = "historico"
)

func (t TipoRecurso) String() string { return string(t) }

func (t TipoRecurso) IsValid() bool {
	switch t {
	case RecursoDocumento, RecursoMedicamento, RecursoConsulta, RecursoHistorico:
		return true
	}
	return false
}

// regraEscopo grants either every resource of a type or an explicit id set.
type regraEscopo struct {
	todos bool
	ids   []string
}

// EscopoCompartilhamento lists what a share link grants access to.
// The zero value is an empty scope, ready to use.
type EscopoCompartilhamento struct {
	regras map[TipoRecurso]*regraEscopo
	ordem  []TipoRecurso
}

// NovoEscopo returns an empty scope.
func NovoEscopo() *EscopoCompartilhamento {
	return &EscopoCompartilhamento{}
}

// Incluir grants access to the given ids of tipo. With no ids every
// resource of tipo is granted; once that holds, later ids are ignored.
func (e *EscopoCompartilhamento) Incluir(tipo TipoRecurso, ids ...string) error {
	if !tipo.IsValid() {
		return NewValidationError("escopo", fmt.Sprintf("Tipo de recurso invalido no escopo: %s", tipo))
	}

	trimmed := make([]string, 0, len(ids))
	for _, id := range ids {
		v := strings.TrimSpace(id)
		if v == "" {
			return NewValidationError("escopo", "Identificador invalido no escopo")
		}
		trimmed = append(trimmed, v)
	}

	if e.regras == nil {
		e.regras = make(map[TipoRecurso]*regraEscopo)
	}

	regra, ok := e.regras[tipo]
	if !ok {
		regra = &regraEscopo{}
		e.regras[tipo] = regra
		e.ordem = append(e.ordem, tipo)
	}

	if len(trimmed) == 0 {
		regra.todos = true
		regra.ids = nil
		return nil
	}
	if regra.todos {
		return nil
	}

	for _, id := range trimmed {
		if !slices.Contains(regra.ids, id) {
			regra.ids = append(regra.ids, id)
		}
	}
	return nil
}

// Abrange reports whether the scope grants resource id of tipo.
// An empty id only matches a grant covering every resource of tipo.
func (e *EscopoCompartilhamento) Abrange(tipo TipoRecurso, id string) bool {
	regra, ok := e.regras[tipo]
	if !ok {
		return false
	}
	if regra.todos {
		return true
	}
	if id == "" {
		return false
	}
	return slices.Contains(regra.ids, id)
}

func (e *EscopoCompartilhamento) EstaVazio() bool {
	return len(e.regras) == 0
}

// Clonar returns a deep copy.
func (e *EscopoCompartilhamento) Clonar() *EscopoCompartilhamento {
	c := &EscopoCompartilhamento{
		regras: make(map[TipoRecurso]*regraEscopo, len(e.regras)),
		ordem:  slices.Clone(e.ordem),
	}
	for tipo, r := range e.regras {
		c.regras[tipo] = &regraEscopo{todos: r.todos, ids: slices.Clone(r.ids)}
	}
	return c
}

// Snapshot returns the plain-data projection of the scope.
func (e *EscopoCompartilhamento) Snapshot() EscopoSnapshot {
	s := make(EscopoSnapshot, len(e.regras))
	for _, tipo := range e.ordem {
		r := e.regras[tipo]
		s[tipo] = RegraEscopo{Todos: r.todos, IDs: slices.Clone(r.ids)}
	}
	return s
}

// RegraEscopo is one entry of an EscopoSnapshot. In JSON it is either
// the string "*" (every resource) or a list of ids.
type RegraEscopo struct {
	Todos bool
	IDs   []string
}

func (r RegraEscopo) MarshalJSON() ([]byte, error) {
	if r.Todos {
		return json.Marshal("*")
	}
	ids := r.IDs
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

func (r *RegraEscopo) UnmarshalJSON(data []byte) error {
	var star string
	if err := json.Unmarshal(data, &star); err == nil {
		if star != "*" {
			return fmt.Errorf("regra de escopo %q: %w", star, ErrInvalidPayload)
		}
		*r = RegraEscopo{Todos: true}
		return nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("regra de escopo: %w", ErrInvalidPayload)
	}
	*r = RegraEscopo{IDs: ids}
	return nil
}

// EscopoSnapshot maps each granted resource type to its rule.
type EscopoSnapshot map[TipoRecurso]RegraEscopo

// RestaurarEscopo rebuilds a scope from its snapshot.
func RestaurarEscopo(s EscopoSnapshot) (*EscopoCompartilhamento, error) {
	e := NovoEscopo()

	tipos := make([]TipoRecurso, 0, len(s))
	for tipo := range s {
		tipos = append(tipos, tipo)
	}
	slices.Sort(tipos)

	for _, tipo := range tipos {
		regra := s[tipo]
		var err error
		if regra.Todos {
			err = e.Incluir(tipo)
		} else {
			if len(regra.IDs) == 0 {
				continue
			}
			err = e.Incluir(tipo, regra.IDs...)
		}
		if err != nil {
			return nil, err
		}
	}
	return e, nil
}
