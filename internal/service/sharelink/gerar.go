package sharelink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/google/uuid"
)

// GerarResult is the stored link and the events raised while issuing it.
type GerarResult struct {
	ShareLink domain.ShareLinkSnapshot
	Eventos   []domain.Event
}

// Gerar issues a new share link for a tutor.
func (s *Service) Gerar(ctx context.Context, input GerarInput) (*GerarResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ShareLinkID)
	if id == "" {
		id = uuid.NewString()
	}

	token, err := s.token(input.Token)
	if err != nil {
		return nil, err
	}

	agora := s.clock.NowUTC()
	expiracao := agora.Add(s.opts.DefaultTTL)
	if input.Expiracao != nil {
		expiracao = input.Expiracao.UTC()
	}
	if s.opts.MaxTTL > 0 && expiracao.After(agora.Add(s.opts.MaxTTL)) {
		return nil, domain.NewValidationError("expiracao", "Expiracao excede o limite permitido")
	}

	escopo, err := input.escopo()
	if err != nil {
		return nil, err
	}

	link, err := domain.NovoShareLink(domain.ShareLinkProps{
		ID:        id,
		TutorID:   input.TutorID,
		Token:     token,
		Escopo:    escopo,
		Expiracao: expiracao,
	}, s.clock)
	if err != nil {
		return nil, err
	}

	if err := s.links.Criar(ctx, link); err != nil {
		return nil, fmt.Errorf("create share link: %w", err)
	}

	eventos := link.PullEvents()
	s.publish(ctx, eventos)

	s.log.InfoContext(ctx, "share link issued",
		slog.String("share_link_id", link.ID()),
		slog.String("tutor_id", link.TutorID()),
		slog.Time("expiracao", link.Expiracao()),
	)

	return &GerarResult{ShareLink: link.Snapshot(), Eventos: eventos}, nil
}

func (s *Service) token(raw string) (domain.TokenShare, error) {
	if strings.TrimSpace(raw) == "" {
		tok, err := domain.GerarTokenShare()
		if err != nil {
			return domain.TokenShare{}, fmt.Errorf("generate token: %w", err)
		}
		return tok, nil
	}
	return domain.NewTokenShare(raw)
}
