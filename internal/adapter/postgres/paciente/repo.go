// Package paciente implements the patient repository using PostgreSQL.
package paciente

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	postgres "github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const table = "pacientes"

var columns = []string{
	"id", "tutor_id", "nome_completo", "condicoes", "alergias",
	"plano_operadora", "plano_carteirinha", "plano_validade", "plano_arquivado",
}

type row struct {
	ID               string     `db:"id"`
	TutorID          string     `db:"tutor_id"`
	NomeCompleto     string     `db:"nome_completo"`
	Condicoes        []string   `db:"condicoes"`
	Alergias         []string   `db:"alergias"`
	PlanoOperadora   *string    `db:"plano_operadora"`
	PlanoCarteirinha *string    `db:"plano_carteirinha"`
	PlanoValidade    *time.Time `db:"plano_validade"`
	PlanoArquivado   bool       `db:"plano_arquivado"`
}

// Repo provides patient persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListarPorTutor returns the tutor's patients in registration order.
func (r *Repo) ListarPorTutor(ctx context.Context, tutorID string) ([]*domain.Paciente, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"tutor_id": tutorID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "tutor", tutorID)
	}

	out := make([]*domain.Paciente, 0, len(rows))
	for _, rw := range rows {
		p, err := toDomain(rw)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// BuscarPorID returns the patient only when it belongs to tutorID.
func (r *Repo) BuscarPorID(ctx context.Context, tutorID, pacienteID string) (*domain.Paciente, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": pacienteID, "tutor_id": tutorID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "paciente", pacienteID)
	}
	return toDomain(rw)
}

// Salvar inserts the patient or overwrites its profile.
func (r *Repo) Salvar(ctx context.Context, p *domain.Paciente) error {
	s := p.Snapshot()

	var (
		operadora, carteirinha *string
		validade               *time.Time
		arquivado              bool
	)
	if s.PlanoSaude != nil {
		operadora = &s.PlanoSaude.Operadora
		carteirinha = &s.PlanoSaude.NumeroCarteirinha
		validade = s.PlanoSaude.Validade
		arquivado = s.PlanoSaude.Arquivado
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.TutorID, s.NomeCompleto, s.Condicoes, s.Alergias, operadora, carteirinha, validade, arquivado).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			nome_completo = EXCLUDED.nome_completo,
			condicoes = EXCLUDED.condicoes,
			alergias = EXCLUDED.alergias,
			plano_operadora = EXCLUDED.plano_operadora,
			plano_carteirinha = EXCLUDED.plano_carteirinha,
			plano_validade = EXCLUDED.plano_validade,
			plano_arquivado = EXCLUDED.plano_arquivado,
			updated_at = now()
		WHERE pacientes.tutor_id = EXCLUDED.tutor_id`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "paciente", s.ID)
	}
	// The guarded update matched nothing: the id belongs to another tutor.
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("paciente %s: %w", s.ID, domain.ErrConflict)
	}
	return nil
}

func toDomain(rw row) (*domain.Paciente, error) {
	props := domain.PacienteProps{
		ID:           rw.ID,
		TutorID:      rw.TutorID,
		NomeCompleto: rw.NomeCompleto,
		Condicoes:    rw.Condicoes,
		Alergias:     rw.Alergias,
	}

	if rw.PlanoOperadora != nil && rw.PlanoCarteirinha != nil {
		plano, err := domain.RestaurarPlanoSaude(domain.PlanoSaudeSnapshot{
			Operadora:         *rw.PlanoOperadora,
			NumeroCarteirinha: *rw.PlanoCarteirinha,
			Validade:          rw.PlanoValidade,
			Arquivado:         rw.PlanoArquivado,
		})
		if err != nil {
			return nil, fmt.Errorf("paciente %s: restore plano: %w", rw.ID, err)
		}
		props.PlanoSaude = plano
	}

	p, err := domain.NovoPaciente(props)
	if err != nil {
		return nil, fmt.Errorf("paciente %s: restore: %w", rw.ID, err)
	}
	return p, nil
}
