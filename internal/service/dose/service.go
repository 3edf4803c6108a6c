package dose

import (
	"context"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

type doseLogRepo interface {
	BuscarPorIDParaAtualizar(ctx context.Context, id string) (*domain.DoseLog, error)
	AtualizarStatus(ctx context.Context, d *domain.DoseLog) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Service handles dose confirmations.
type Service struct {
	doses     doseLogRepo
	tx        txManager
	publisher eventPublisher
	clock     domain.Clock
	log       *slog.Logger
}

// NewService creates a new Dose service.
func NewService(
	log *slog.Logger,
	doses doseLogRepo,
	tx txManager,
	publisher eventPublisher,
	clock domain.Clock,
) *Service {
	return &Service{
		doses:     doses,
		tx:        tx,
		publisher: publisher,
		clock:     clock,
		log:       log.With("service", "dose"),
	}
}

// publish hands committed events to the publisher. Failures are logged only;
// the state change they describe is already stored.
func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.log.WarnContext(ctx, "publish dose events failed",
			slog.Int("count", len(events)),
			slog.String("error", err.Error()),
		)
	}
}
