// Package sharelink implements the share link repository using PostgreSQL.
package sharelink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	postgres "github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const (
	table        = "share_links"
	tableAcessos = "share_link_acessos"
)

var columns = []string{"id", "tutor_id", "token", "expiracao", "revogado", "escopo", "criado_em"}

type row struct {
	ID        string    `db:"id"`
	TutorID   string    `db:"tutor_id"`
	Token     string    `db:"token"`
	Expiracao time.Time `db:"expiracao"`
	Revogado  bool      `db:"revogado"`
	Escopo    []byte    `db:"escopo"`
	CriadoEm  time.Time `db:"criado_em"`
}

// Repo provides share link persistence backed by PostgreSQL. Accesses are
// appended to share_link_acessos.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Criar(ctx context.Context, l *domain.ShareLink) error {
	s := l.Snapshot()

	escopo, err := json.Marshal(s.Escopo)
	if err != nil {
		return fmt.Errorf("share_link %s: marshal escopo: %w", s.ID, err)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.TutorID, s.Token, s.Expiracao, s.Revogado, string(escopo), s.CriadoEm).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "share_link", s.ID)
	}
	return nil
}

// BuscarPorToken returns the link with the given token, revoked or not.
func (r *Repo) BuscarPorToken(ctx context.Context, token string) (*domain.ShareLink, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"token": token}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		// The token is a credential; keep it out of error messages.
		return nil, postgres.MapError(err, "share_link", "by token")
	}

	var escopo domain.EscopoSnapshot
	if err := json.Unmarshal(rw.Escopo, &escopo); err != nil {
		return nil, fmt.Errorf("share_link %s: decode escopo: %w", rw.ID, err)
	}

	l, err := domain.RestaurarShareLink(domain.ShareLinkSnapshot{
		ID:        rw.ID,
		TutorID:   rw.TutorID,
		Token:     rw.Token,
		Expiracao: rw.Expiracao,
		Revogado:  rw.Revogado,
		Escopo:    escopo,
		CriadoEm:  rw.CriadoEm,
	})
	if err != nil {
		return nil, fmt.Errorf("share_link %s: restore: %w", rw.ID, err)
	}
	return l, nil
}

// RegistrarAcesso stamps the last access and appends an access record.
// Call it inside a transaction so both writes land together.
func (r *Repo) RegistrarAcesso(ctx context.Context, shareLinkID string, em time.Time, requestID string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	update, args, err := postgres.Builder.
		Update(table).
		Set("ultimo_acesso_em", em).
		Where(squirrel.Eq{"id": shareLinkID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, update, args...)
	if err != nil {
		return postgres.MapError(err, "share_link", shareLinkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share_link %s: %w", shareLinkID, domain.ErrNotFound)
	}

	var reqID *string
	if requestID != "" {
		reqID = &requestID
	}

	insert, args, err := postgres.Builder.
		Insert(tableAcessos).
		Columns("share_link_id", "acessado_em", "request_id").
		Values(shareLinkID, em, reqID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, insert, args...); err != nil {
		return postgres.MapError(err, "share_link", shareLinkID)
	}
	return nil
}

func (r *Repo) Revogar(ctx context.Context, shareLinkID string) error {
	query, args, err := postgres.Builder.
		Update(table).
		Set("revogado", true).
		Set("revogado_em", squirrel.Expr("COALESCE(revogado_em, now())")).
		Where(squirrel.Eq{"id": shareLinkID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "share_link", shareLinkID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("share_link %s: %w", shareLinkID, domain.ErrNotFound)
	}
	return nil
}

// ExcluirExpirados deletes links that expired, or were revoked, before
// antesDe. Their access records go with them.
func (r *Repo) ExcluirExpirados(ctx context.Context, antesDe time.Time) (int64, error) {
	query, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Or{
			squirrel.Lt{"expiracao": antesDe},
			squirrel.And{
				squirrel.Eq{"revogado": true},
				squirrel.Lt{"revogado_em": antesDe},
			},
		}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired share links: %w", err)
	}
	return tag.RowsAffected(), nil
}
