package sharelink_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/adapter/postgres/sharelink"
	"github.com/agendaamiga/agenda-backend/internal/adapter/postgres/testhelper"
	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

var columns = []string{"id", "tutor_id", "token", "expiracao", "revogado", "escopo", "criado_em"}

var testToken = strings.Repeat("k", 32)

type fixedClock struct{ now time.Time }

func (c fixedClock) NowUTC() time.Time                    { return c.now }
func (c fixedClock) TodayAt(_ string, h, m int) time.Time { return c.At("", c.now, h, m) }
func (c fixedClock) At(_ string, day time.Time, h, m int) time.Time {
	y, mo, d := day.UTC().Date()
	return time.Date(y, mo, d, h, m, 0, 0, time.UTC)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func newLink(t *testing.T, id string, token string, now, exp time.Time) *domain.ShareLink {
	t.Helper()
	tok, err := domain.NewTokenShare(token)
	if err != nil {
		t.Fatalf("NewTokenShare: %v", err)
	}
	escopo := domain.NovoEscopo()
	if err := escopo.Incluir(domain.RecursoMedicamento); err != nil {
		t.Fatalf("Incluir: %v", err)
	}
	if err := escopo.Incluir(domain.RecursoDocumento, "doc-1"); err != nil {
		t.Fatalf("Incluir: %v", err)
	}
	l, err := domain.NovoShareLink(domain.ShareLinkProps{
		ID: id, TutorID: "t1", Token: tok, Escopo: escopo, Expiracao: exp,
	}, fixedClock{now: now})
	if err != nil {
		t.Fatalf("NovoShareLink: %v", err)
	}
	return l
}

func TestRepo_Criar(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	l := newLink(t, "s1", testToken, now, now.Add(24*time.Hour))

	mock.ExpectExec(`INSERT INTO share_links`).
		WithArgs("s1", "t1", testToken, now.Add(24*time.Hour), false,
			`{"documento":["doc-1"],"medicamento":"*"}`, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := repo.Criar(context.Background(), l); err != nil {
		t.Fatalf("Criar: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_Criar_DuplicateToken(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	l := newLink(t, "s1", testToken, now, now.Add(time.Hour))

	mock.ExpectExec(`INSERT INTO share_links`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	if err := repo.Criar(context.Background(), l); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRepo_BuscarPorToken(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT .+ FROM share_links WHERE token = \$1`).
		WithArgs(testToken).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("s1", "t1", testToken, now.Add(time.Hour), true, []byte(`{"medicamento":["m1","m2"]}`), now))

	l, err := repo.BuscarPorToken(context.Background(), testToken)
	if err != nil {
		t.Fatalf("BuscarPorToken: %v", err)
	}
	if !l.Revogado() || !l.Abrange(domain.RecursoMedicamento, "m2") || l.Abrange(domain.RecursoMedicamento, "m3") {
		t.Errorf("unexpected link %+v", l.Snapshot())
	}
	if len(l.PullEvents()) != 0 {
		t.Error("restored link must not carry events")
	}
}

func TestRepo_BuscarPorToken_NotFoundHidesToken(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	mock.ExpectQuery(`FROM share_links`).WithArgs(testToken).WillReturnError(pgx.ErrNoRows)

	_, err := repo.BuscarPorToken(context.Background(), testToken)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if strings.Contains(err.Error(), testToken) {
		t.Errorf("error leaks the token: %v", err)
	}
}

func TestRepo_RegistrarAcesso(t *testing.T) {
	t.Parallel()

	em := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("records access", func(t *testing.T) {
		t.Parallel()
		mock := newMock(t)
		repo := sharelink.New(mock)

		mock.ExpectExec(`UPDATE share_links SET ultimo_acesso_em = \$1 WHERE id = \$2`).
			WithArgs(em, "s1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectExec(`INSERT INTO share_link_acessos \(share_link_id,acessado_em,request_id\)`).
			WithArgs("s1", em, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		if err := repo.RegistrarAcesso(context.Background(), "s1", em, "req-1"); err != nil {
			t.Fatalf("RegistrarAcesso: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})

	t.Run("unknown link", func(t *testing.T) {
		t.Parallel()
		mock := newMock(t)
		repo := sharelink.New(mock)

		mock.ExpectExec(`UPDATE share_links`).
			WithArgs(em, "s1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		if err := repo.RegistrarAcesso(context.Background(), "s1", em, ""); !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Error(err)
		}
	})
}

func TestRepo_Revogar(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	mock.ExpectExec(`UPDATE share_links SET revogado = \$1, revogado_em = COALESCE\(revogado_em, now\(\)\) WHERE id = \$2`).
		WithArgs(true, "s1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	if err := repo.Revogar(context.Background(), "s1"); err != nil {
		t.Fatalf("Revogar: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestRepo_ExcluirExpirados(t *testing.T) {
	t.Parallel()
	mock := newMock(t)
	repo := sharelink.New(mock)

	antesDe := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(`DELETE FROM share_links WHERE \(expiracao < \$1 OR \(revogado = \$2 AND revogado_em < \$3\)\)`).
		WithArgs(antesDe, true, antesDe).
		WillReturnResult(pgxmock.NewResult("DELETE", 4))

	n, err := repo.ExcluirExpirados(context.Background(), antesDe)
	if err != nil {
		t.Fatalf("ExcluirExpirados: %v", err)
	}
	if n != 4 {
		t.Errorf("deleted = %d, want 4", n)
	}
}

func TestRepo_Integration_Lifecycle(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := sharelink.New(pool)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	token := strings.ReplaceAll(uuid.NewString(), "-", "")
	l := newLink(t, uuid.NewString(), token, now, now.Add(time.Hour))

	if err := repo.Criar(ctx, l); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	got, err := repo.BuscarPorToken(ctx, token)
	if err != nil {
		t.Fatalf("BuscarPorToken: %v", err)
	}
	if !got.Abrange(domain.RecursoDocumento, "doc-1") || !got.Expiracao().Equal(now.Add(time.Hour)) {
		t.Errorf("unexpected link %+v", got.Snapshot())
	}

	if err := repo.RegistrarAcesso(ctx, l.ID(), now, "req-1"); err != nil {
		t.Fatalf("RegistrarAcesso: %v", err)
	}

	var acessos int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM share_link_acessos WHERE share_link_id = $1`, l.ID()).Scan(&acessos); err != nil {
		t.Fatalf("count acessos: %v", err)
	}
	if acessos != 1 {
		t.Errorf("acessos = %d, want 1", acessos)
	}

	if err := repo.Revogar(ctx, l.ID()); err != nil {
		t.Fatalf("Revogar: %v", err)
	}
	got, _ = repo.BuscarPorToken(ctx, token)
	if !got.Revogado() {
		t.Error("link should be revoked")
	}
}

func TestRepo_Integration_ExcluirExpirados(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := sharelink.New(pool)
	ctx := context.Background()

	longAgo := time.Now().UTC().AddDate(0, 0, -60)
	tutorID := "tutor-cleanup-" + uuid.NewString()[:8]
	_, expiredToken := testhelper.SeedShareLink(t, pool, tutorID, longAgo, false)
	_, liveToken := testhelper.SeedShareLink(t, pool, tutorID, time.Now().UTC().Add(time.Hour), false)

	n, err := repo.ExcluirExpirados(ctx, time.Now().UTC().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("ExcluirExpirados: %v", err)
	}
	if n < 1 {
		t.Errorf("deleted = %d, want at least 1", n)
	}

	if _, err := repo.BuscarPorToken(ctx, expiredToken); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expired link should be gone, got %v", err)
	}
	if _, err := repo.BuscarPorToken(ctx, liveToken); err != nil {
		t.Errorf("live link should remain: %v", err)
	}
}
