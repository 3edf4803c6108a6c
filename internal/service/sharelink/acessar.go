package sharelink

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/pkg/ctxutil"
)

// AcessarResult is the opened link and the access event.
type AcessarResult struct {
	ShareLink domain.ShareLinkSnapshot
	Eventos   []domain.Event
}

// Acessar opens a link by token and records the access. Unknown, malformed,
// revoked and expired tokens all report domain.ErrNotFound.
func (s *Service) Acessar(ctx context.Context, rawToken string) (*AcessarResult, error) {
	link, err := s.carregar(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	if !link.EstaValido(s.clock) {
		return nil, fmt.Errorf("share link: %w", domain.ErrNotFound)
	}

	requestID := ctxutil.RequestIDFromCtx(ctx)
	if err := link.RegistrarAcesso(s.clock, requestID); err != nil {
		return nil, err
	}
	eventos := link.PullEvents()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, ev := range eventos {
			if err := s.links.RegistrarAcesso(txCtx, link.ID(), ev.OccurredAt(), requestID); err != nil {
				return fmt.Errorf("record share link access: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventos)

	s.log.InfoContext(ctx, "share link accessed",
		slog.String("share_link_id", link.ID()),
		slog.String("request_id", requestID),
	)

	return &AcessarResult{ShareLink: link.Snapshot(), Eventos: eventos}, nil
}

func (s *Service) carregar(ctx context.Context, rawToken string) (*domain.ShareLink, error) {
	token, err := domain.NewTokenShare(rawToken)
	if err != nil {
		return nil, fmt.Errorf("share link: %w", domain.ErrNotFound)
	}

	link, err := s.links.BuscarPorToken(ctx, token.Value())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("share link: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get share link: %w", err)
	}
	return link, nil
}
