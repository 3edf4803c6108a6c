package medicamento

import (
	"context"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

const (
	// MaxJanelaProjecaoDias bounds how far ahead ProjetarDoses may materialize logs.
	MaxJanelaProjecaoDias = 92
)

type medicamentoRepo interface {
	BuscarPorID(ctx context.Context, id string) (*domain.Medicamento, error)
	Salvar(ctx context.Context, m *domain.Medicamento) error
}

type doseLogRepo interface {
	SalvarEmLote(ctx context.Context, doses []*domain.DoseLog) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Service manages medication schedules and their projected doses.
type Service struct {
	medicamentos medicamentoRepo
	doses        doseLogRepo
	tx           txManager
	publisher    eventPublisher
	clock        domain.Clock
	log          *slog.Logger
}

// NewService creates a new Medicamento service.
func NewService(
	log *slog.Logger,
	medicamentos medicamentoRepo,
	doses doseLogRepo,
	tx txManager,
	publisher eventPublisher,
	clock domain.Clock,
) *Service {
	return &Service{
		medicamentos: medicamentos,
		doses:        doses,
		tx:           tx,
		publisher:    publisher,
		clock:        clock,
		log:          log.With("service", "medicamento"),
	}
}

func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.log.WarnContext(ctx, "publish medicamento events failed",
			slog.Int("count", len(events)),
			slog.String("error", err.Error()),
		)
	}
}
