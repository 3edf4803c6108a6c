package domain

import (
	"fmt"
	"time"
)

// EventKind names a domain event variant.
type EventKind string

const (
	EventDoseConfirmada        EventKind = "DoseConfirmada"
	EventEsquemaDeDoseAlterado EventKind = "EsquemaDeDoseAlterado"
	EventShareLinkGerado       EventKind = "ShareLinkGerado"
	EventShareLinkAcessado     EventKind = "ShareLinkAcessado"
)

func (k EventKind) String() string { return string(k) }

// Event is a recorded state transition. The set of variants is closed:
// DoseConfirmada, EsquemaDeDoseAlterado, ShareLinkGerado, ShareLinkAcessado.
type Event interface {
	Kind() EventKind
	OccurredAt() time.Time
	event()
}

// DoseConfirmadaPayload carries the fields for NewDoseConfirmada.
type DoseConfirmadaPayload struct {
	DoseLogID     string
	MedicamentoID string
	ConfirmadoEm  time.Time
}

// DoseConfirmada is recorded when a pending dose is confirmed as taken.
type DoseConfirmada struct {
	DoseLogID     string
	MedicamentoID string
	occurredAt    time.Time
}

func NewDoseConfirmada(p DoseConfirmadaPayload) (DoseConfirmada, error) {
	if p.ConfirmadoEm.IsZero() {
		return DoseConfirmada{}, fmt.Errorf("DoseConfirmada.confirmadoEm: %w", ErrInvalidPayload)
	}
	return DoseConfirmada{
		DoseLogID:     p.DoseLogID,
		MedicamentoID: p.MedicamentoID,
		occurredAt:    p.ConfirmadoEm,
	}, nil
}

func (DoseConfirmada) Kind() EventKind         { return EventDoseConfirmada }
func (e DoseConfirmada) OccurredAt() time.Time { return e.occurredAt }
func (DoseConfirmada) event()                  {}

// EsquemaDeDoseAlteradoPayload carries the fields for NewEsquemaDeDoseAlterado.
type EsquemaDeDoseAlteradoPayload struct {
	MedicamentoID string
	AlteradoEm    time.Time
}

// EsquemaDeDoseAlterado is recorded when a medication gets a new schedule.
type EsquemaDeDoseAlterado struct {
	MedicamentoID string
	occurredAt    time.Time
}

func NewEsquemaDeDoseAlterado(p EsquemaDeDoseAlteradoPayload) (EsquemaDeDoseAlterado, error) {
	if p.AlteradoEm.IsZero() {
		return EsquemaDeDoseAlterado{}, fmt.Errorf("EsquemaDeDoseAlterado.alteradoEm: %w", ErrInvalidPayload)
	}
	return EsquemaDeDoseAlterado{
		MedicamentoID: p.MedicamentoID,
		occurredAt:    p.AlteradoEm,
	}, nil
}

func (EsquemaDeDoseAlterado) Kind() EventKind         { return EventEsquemaDeDoseAlterado }
func (e EsquemaDeDoseAlterado) OccurredAt() time.Time { return e.occurredAt }
func (EsquemaDeDoseAlterado) event()                  {}

// ShareLinkGeradoPayload carries the fields for NewShareLinkGerado.
type ShareLinkGeradoPayload struct {
	ShareLinkID string
	TutorID     string
	Token       string
	Expiracao   time.Time
}

// ShareLinkGerado is recorded when a share link is created. Its occurrence
// time is the wall clock at construction, not Expiracao.
type ShareLinkGerado struct {
	ShareLinkID string
	TutorID     string
	Token       string
	Expiracao   time.Time
	occurredAt  time.Time
}

func NewShareLinkGerado(p ShareLinkGeradoPayload) (ShareLinkGerado, error) {
	if p.Expiracao.IsZero() {
		return ShareLinkGerado{}, fmt.Errorf("ShareLinkGerado.expiracao: %w", ErrInvalidPayload)
	}
	return ShareLinkGerado{
		ShareLinkID: p.ShareLinkID,
		TutorID:     p.TutorID,
		Token:       p.Token,
		Expiracao:   p.Expiracao,
		occurredAt:  time.Now().UTC(),
	}, nil
}

func (ShareLinkGerado) Kind() EventKind         { return EventShareLinkGerado }
func (e ShareLinkGerado) OccurredAt() time.Time { return e.occurredAt }
func (ShareLinkGerado) event()                  {}

// ShareLinkAcessadoPayload carries the fields for NewShareLinkAcessado.
// RequestID is optional.
type ShareLinkAcessadoPayload struct {
	ShareLinkID string
	TutorID     string
	Token       string
	RequestID   string
	OcorridoEm  time.Time
}

// ShareLinkAcessado is recorded each time a share link is opened.
type ShareLinkAcessado struct {
	ShareLinkID string
	TutorID     string
	Token       string
	RequestID   string
	occurredAt  time.Time
}

func NewShareLinkAcessado(p ShareLinkAcessadoPayload) (ShareLinkAcessado, error) {
	if p.OcorridoEm.IsZero() {
		return ShareLinkAcessado{}, fmt.Errorf("ShareLinkAcessado.ocorridoEm: %w", ErrInvalidPayload)
	}
	return ShareLinkAcessado{
		ShareLinkID: p.ShareLinkID,
		TutorID:     p.TutorID,
		Token:       p.Token,
		RequestID:   p.RequestID,
		occurredAt:  p.OcorridoEm,
	}, nil
}

func (ShareLinkAcessado) Kind() EventKind         { return EventShareLinkAcessado }
func (e ShareLinkAcessado) OccurredAt() time.Time { return e.occurredAt }
func (ShareLinkAcessado) event()                  {}

// EventEnvelope is the serialized form of an Event.
type EventEnvelope struct {
	Name       EventKind      `json:"name"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

// NewEventEnvelope projects e into its wire representation. Share-link
// envelopes carry the link id, never the bearer token.
func NewEventEnvelope(e Event) EventEnvelope {
	env := EventEnvelope{Name: e.Kind(), OccurredAt: e.OccurredAt()}

	switch ev := e.(type) {
	case DoseConfirmada:
		env.Data = map[string]any{
			"doseLogId":     ev.DoseLogID,
			"medicamentoId": ev.MedicamentoID,
		}
	case EsquemaDeDoseAlterado:
		env.Data = map[string]any{
			"medicamentoId": ev.MedicamentoID,
		}
	case ShareLinkGerado:
		env.Data = map[string]any{
			"shareLinkId": ev.ShareLinkID,
			"tutorId":     ev.TutorID,
			"expiracao":   ev.Expiracao,
		}
	case ShareLinkAcessado:
		env.Data = map[string]any{
			"shareLinkId": ev.ShareLinkID,
			"tutorId":     ev.TutorID,
		}
		if ev.RequestID != "" {
			env.Data["requestId"] = ev.RequestID
		}
	}

	return env
}

// eventRecorder buffers events raised by an aggregate until they are pulled.
type eventRecorder struct {
	pending []Event
}

func (r *eventRecorder) record(e Event) {
	r.pending = append(r.pending, e)
}

// PullEvents returns the buffered events and clears the buffer.
func (r *eventRecorder) PullEvents() []Event {
	out := r.pending
	r.pending = nil
	return out
}
