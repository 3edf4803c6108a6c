// Package doselog implements the dose log repository using PostgreSQL.
package doselog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	postgres "github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const table = "dose_logs"

var columns = []string{"id", "medicamento_id", "horario_previsto", "horario_real", "status"}

type row struct {
	ID              string     `db:"id"`
	MedicamentoID   string     `db:"medicamento_id"`
	HorarioPrevisto time.Time  `db:"horario_previsto"`
	HorarioReal     *time.Time `db:"horario_real"`
	Status          string     `db:"status"`
}

type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) BuscarPorID(ctx context.Context, id string) (*domain.DoseLog, error) {
	return r.buscar(ctx, id, false)
}

// BuscarPorIDParaAtualizar reads the dose with a row lock (SELECT ... FOR
// UPDATE) held until the surrounding transaction ends. Concurrent
// confirmations of the same dose are serialized: the second one sees the
// status committed by the first.
func (r *Repo) BuscarPorIDParaAtualizar(ctx context.Context, id string) (*domain.DoseLog, error) {
	return r.buscar(ctx, id, true)
}

func (r *Repo) buscar(ctx context.Context, id string, lock bool) (*domain.DoseLog, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "dose_log", id)
	}

	d, err := domain.NovoDoseLog(domain.DoseLogProps{
		ID:              rw.ID,
		MedicamentoID:   rw.MedicamentoID,
		HorarioPrevisto: rw.HorarioPrevisto,
		HorarioReal:     rw.HorarioReal,
		Status:          domain.DoseStatus(rw.Status),
	})
	if err != nil {
		return nil, fmt.Errorf("dose_log %s: restore: %w", id, err)
	}
	return d, nil
}

// AtualizarStatus writes the status and the confirmation instant of d.
func (r *Repo) AtualizarStatus(ctx context.Context, d *domain.DoseLog) error {
	s := d.Snapshot()

	query, args, err := postgres.Builder.
		Update(table).
		Set("status", s.Status.String()).
		Set("horario_real", s.HorarioReal).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "dose_log", s.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dose_log %s: %w", s.ID, domain.ErrNotFound)
	}
	return nil
}

// SalvarEmLote inserts doses in one statement. Doses already stored for the
// same medication and instant are skipped; the count of new rows is returned.
func (r *Repo) SalvarEmLote(ctx context.Context, doses []*domain.DoseLog) (int, error) {
	if len(doses) == 0 {
		return 0, nil
	}

	insert := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Suffix("ON CONFLICT (medicamento_id, horario_previsto) DO NOTHING")
	for _, d := range doses {
		s := d.Snapshot()
		insert = insert.Values(s.ID, s.MedicamentoID, s.HorarioPrevisto, s.HorarioReal, s.Status.String())
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "medicamento", doses[0].MedicamentoID())
	}
	return int(tag.RowsAffected()), nil
}
