// Package medicamento implements the medication repository using PostgreSQL.
package medicamento

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	postgres "github.com/agendaamiga/agenda-backend/internal/adapter/postgres"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/georgysavva/scany/v2/pgxscan"
)

const table = "medicamentos"

var columns = []string{"id", "paciente_id", "nome", "dosagem", "unidade_dosagem", "ativo", "esquema"}

type row struct {
	ID             string  `db:"id"`
	PacienteID     string  `db:"paciente_id"`
	Nome           string  `db:"nome"`
	Dosagem        float64 `db:"dosagem"`
	UnidadeDosagem string  `db:"unidade_dosagem"`
	Ativo          bool    `db:"ativo"`
	Esquema        []byte  `db:"esquema"`
}

// Repo provides medication persistence backed by PostgreSQL. The dosing
// schedule is stored as JSONB.
type Repo struct {
	db postgres.Querier
}

func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) BuscarPorID(ctx context.Context, id string) (*domain.Medicamento, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "medicamento", id)
	}
	return toDomain(rw)
}

// Salvar inserts the medication or overwrites its mutable fields.
func (r *Repo) Salvar(ctx context.Context, m *domain.Medicamento) error {
	s := m.Snapshot()

	var esquema any
	if s.Esquema != nil {
		raw, err := json.Marshal(s.Esquema)
		if err != nil {
			return fmt.Errorf("medicamento %s: marshal esquema: %w", s.ID, err)
		}
		esquema = string(raw)
	}

	query, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(s.ID, s.PacienteID, s.Nome, s.Dosagem, s.UnidadeDosagem, s.Ativo, esquema).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			nome = EXCLUDED.nome,
			dosagem = EXCLUDED.dosagem,
			unidade_dosagem = EXCLUDED.unidade_dosagem,
			ativo = EXCLUDED.ativo,
			esquema = EXCLUDED.esquema,
			updated_at = now()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "medicamento", s.ID)
	}
	return nil
}

func toDomain(rw row) (*domain.Medicamento, error) {
	unidade, err := domain.NewUnidadeDosagem(rw.UnidadeDosagem)
	if err != nil {
		return nil, fmt.Errorf("medicamento %s: restore unidade: %w", rw.ID, err)
	}

	props := domain.MedicamentoProps{
		ID:             rw.ID,
		PacienteID:     rw.PacienteID,
		Nome:           rw.Nome,
		Dosagem:        rw.Dosagem,
		UnidadeDosagem: unidade,
		Inativo:        !rw.Ativo,
	}

	if len(rw.Esquema) > 0 {
		var dados domain.EsquemaDoseDados
		if err := json.Unmarshal(rw.Esquema, &dados); err != nil {
			return nil, fmt.Errorf("medicamento %s: decode esquema: %w", rw.ID, err)
		}
		esquema, err := domain.NovoEsquemaDose(dados)
		if err != nil {
			return nil, fmt.Errorf("medicamento %s: restore esquema: %w", rw.ID, err)
		}
		props.Esquema = esquema
	}

	m, err := domain.NovoMedicamento(props)
	if err != nil {
		return nil, fmt.Errorf("medicamento %s: restore: %w", rw.ID, err)
	}
	return m, nil
}
