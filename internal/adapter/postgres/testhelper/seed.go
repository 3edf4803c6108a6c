package testhelper

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedPaciente inserts a patient for tutorID and returns its id.
func SeedPaciente(t *testing.T, pool *pgxpool.Pool, tutorID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO pacientes (id, tutor_id, nome_completo, condicoes, alergias)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, tutorID, "Paciente "+uniqueSuffix(), []string{"hipertensao"}, []string{},
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPaciente: %v", err)
	}
	return id
}

// SeedMedicamento inserts an active medication without a schedule.
func SeedMedicamento(t *testing.T, pool *pgxpool.Pool, pacienteID string) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO medicamentos (id, paciente_id, nome, dosagem, unidade_dosagem)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, pacienteID, "Losartana", 50.0, "mg",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMedicamento: %v", err)
	}
	return id
}

// SeedDoseLog inserts a pending dose log scheduled at previsto.
func SeedDoseLog(t *testing.T, pool *pgxpool.Pool, medicamentoID string, previsto time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO dose_logs (id, medicamento_id, horario_previsto, status)
		 VALUES ($1, $2, $3, 'PENDENTE')`,
		id, medicamentoID, previsto,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDoseLog: %v", err)
	}
	return id
}

// SeedShareLink inserts a share link covering every medication and returns
// its id and token.
func SeedShareLink(t *testing.T, pool *pgxpool.Pool, tutorID string, expiracao time.Time, revogado bool) (string, string) {
	t.Helper()

	id := uuid.NewString()
	token := strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	_, err := pool.Exec(context.Background(),
		`INSERT INTO share_links (id, tutor_id, token, expiracao, revogado, escopo, criado_em)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, tutorID, token, expiracao, revogado, `{"medicamento":"*"}`, expiracao.Add(-24*time.Hour),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShareLink: %v", err)
	}
	return id, token
}
