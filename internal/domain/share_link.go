package domain

import (
	"strings"
	"time"
)

// ShareLinkProps holds the fields for NovoShareLink.
type ShareLinkProps struct {
	ID        string
	TutorID   string
	Token     TokenShare
	Escopo    *EscopoCompartilhamento
	Expiracao time.Time
}

// ShareLink grants time-limited read access to a tutor's patient data.
type ShareLink struct {
	eventRecorder

	id        string
	tutorID   string
	token     TokenShare
	escopo    *EscopoCompartilhamento
	expiracao time.Time
	revogado  bool
	criadoEm  time.Time
}

// ShareLinkSnapshot is the plain-data projection of a ShareLink.
type ShareLinkSnapshot struct {
	ID        string         `json:"id"`
	TutorID   string         `json:"tutorId"`
	Token     string         `json:"token"`
	Expiracao time.Time      `json:"expiracao"`
	Revogado  bool           `json:"revogado"`
	Escopo    EscopoSnapshot `json:"escopo"`
	CriadoEm  time.Time      `json:"criadoEm"`
}

// NovoShareLink validates props and records a ShareLinkGerado event.
// The scope is copied; later changes to props.Escopo do not leak in.
func NovoShareLink(props ShareLinkProps, clock Clock) (*ShareLink, error) {
	id := strings.TrimSpace(props.ID)
	tutorID := strings.TrimSpace(props.TutorID)
	now := clock.NowUTC()

	if id == "" {
		return nil, NewValidationError("shareLinkId", "ShareLink requer identificador")
	}
	if tutorID == "" {
		return nil, NewValidationError("tutorId", "ShareLink requer tutorId")
	}
	if props.Token.Value() == "" {
		return nil, NewValidationError("token", "TokenShare nao pode ser vazio")
	}
	if props.Expiracao.IsZero() {
		return nil, NewValidationError("expiracao", "ShareLink requer expiracao valida")
	}
	if !props.Expiracao.After(now) {
		return nil, NewValidationError("expiracao", "ShareLink deve expirar no futuro")
	}
	if props.Escopo == nil || props.Escopo.EstaVazio() {
		return nil, NewValidationError("escopo", "ShareLink requer escopo nao vazio")
	}

	gerado, err := NewShareLinkGerado(ShareLinkGeradoPayload{
		ShareLinkID: id,
		TutorID:     tutorID,
		Token:       props.Token.Value(),
		Expiracao:   props.Expiracao,
	})
	if err != nil {
		return nil, err
	}

	link := &ShareLink{
		id:        id,
		tutorID:   tutorID,
		token:     props.Token,
		escopo:    props.Escopo.Clonar(),
		expiracao: props.Expiracao.UTC(),
		criadoEm:  now,
	}
	link.record(gerado)
	return link, nil
}

// RestaurarShareLink rebuilds a link from storage. No events are recorded.
func RestaurarShareLink(s ShareLinkSnapshot) (*ShareLink, error) {
	token, err := NewTokenShare(s.Token)
	if err != nil {
		return nil, err
	}
	escopo, err := RestaurarEscopo(s.Escopo)
	if err != nil {
		return nil, err
	}

	return &ShareLink{
		id:        s.ID,
		tutorID:   s.TutorID,
		token:     token,
		escopo:    escopo,
		expiracao: s.Expiracao.UTC(),
		revogado:  s.Revogado,
		criadoEm:  s.CriadoEm.UTC(),
	}, nil
}

func (l *ShareLink) ID() string           { return l.id }
func (l *ShareLink) TutorID() string      { return l.tutorID }
func (l *ShareLink) Token() TokenShare    { return l.token }
func (l *ShareLink) Expiracao() time.Time { return l.expiracao }
func (l *ShareLink) Revogado() bool       { return l.revogado }

// Renovar moves the expiry forward. Revoked links cannot be renewed.
func (l *ShareLink) Renovar(novaExpiracao time.Time, clock Clock) error {
	if l.revogado {
		return newTransitionError("Nao e possivel renovar link revogado")
	}
	if !novaExpiracao.After(clock.NowUTC()) {
		return NewValidationError("expiracao", "Nova expiracao deve estar no futuro")
	}
	if !novaExpiracao.After(l.expiracao) {
		return NewValidationError("expiracao", "Nova expiracao deve ser posterior a atual")
	}

	l.expiracao = novaExpiracao.UTC()
	return nil
}

func (l *ShareLink) Revogar() {
	l.revogado = true
}

// IncluiNoEscopo widens the scope of the link.
func (l *ShareLink) IncluiNoEscopo(tipo TipoRecurso, ids ...string) error {
	if err := l.escopo.Incluir(tipo, ids...); err != nil {
		return err
	}
	if l.escopo.EstaVazio() {
		return NewValidationError("escopo", "ShareLink nao pode ter escopo vazio")
	}
	return nil
}

// Abrange reports whether the link grants resource id of tipo.
func (l *ShareLink) Abrange(tipo TipoRecurso, id string) bool {
	return l.escopo.Abrange(tipo, id)
}

// RegistrarAcesso records a ShareLinkAcessado event at clock's now.
func (l *ShareLink) RegistrarAcesso(clock Clock, requestID string) error {
	acesso, err := NewShareLinkAcessado(ShareLinkAcessadoPayload{
		ShareLinkID: l.id,
		TutorID:     l.tutorID,
		Token:       l.token.Value(),
		RequestID:   requestID,
		OcorridoEm:  clock.NowUTC(),
	})
	if err != nil {
		return err
	}

	l.record(acesso)
	return nil
}

// EstaValido reports whether the link is neither revoked nor expired.
func (l *ShareLink) EstaValido(clock Clock) bool {
	if l.revogado {
		return false
	}
	return l.expiracao.After(clock.NowUTC())
}

func (l *ShareLink) Snapshot() ShareLinkSnapshot {
	return ShareLinkSnapshot{
		ID:        l.id,
		TutorID:   l.tutorID,
		Token:     l.token.Value(),
		Expiracao: l.expiracao,
		Revogado:  l.revogado,
		Escopo:    l.escopo.Snapshot(),
		CriadoEm:  l.criadoEm,
	}
}
