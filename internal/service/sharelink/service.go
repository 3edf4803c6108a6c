package sharelink

import (
	"context"
	"log/slog"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

type shareLinkRepo interface {
	Criar(ctx context.Context, l *domain.ShareLink) error
	BuscarPorToken(ctx context.Context, token string) (*domain.ShareLink, error)
	RegistrarAcesso(ctx context.Context, shareLinkID string, em time.Time, requestID string) error
	Revogar(ctx context.Context, shareLinkID string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, events ...domain.Event) error
}

// Options bounds link lifetimes. DefaultTTL applies when no expiry is given.
type Options struct {
	DefaultTTL time.Duration
	MaxTTL     time.Duration
}

// Service issues, opens and revokes share links.
type Service struct {
	links     shareLinkRepo
	tx        txManager
	publisher eventPublisher
	clock     domain.Clock
	opts      Options
	log       *slog.Logger
}

// NewService creates a new ShareLink service.
func NewService(
	log *slog.Logger,
	links shareLinkRepo,
	tx txManager,
	publisher eventPublisher,
	clock domain.Clock,
	opts Options,
) *Service {
	return &Service{
		links:     links,
		tx:        tx,
		publisher: publisher,
		clock:     clock,
		opts:      opts,
		log:       log.With("service", "sharelink"),
	}
}

func (s *Service) publish(ctx context.Context, events []domain.Event) {
	if len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.log.WarnContext(ctx, "publish share link events failed",
			slog.Int("count", len(events)),
			slog.String("error", err.Error()),
		)
	}
}
