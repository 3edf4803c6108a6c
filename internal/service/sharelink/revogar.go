package sharelink

import (
	"context"
	"fmt"
	"log/slog"
)

// Revogar revokes a link. Revoking twice is not an error.
func (s *Service) Revogar(ctx context.Context, rawToken string) error {
	link, err := s.carregar(ctx, rawToken)
	if err != nil {
		return err
	}
	if link.Revogado() {
		return nil
	}

	link.Revogar()
	if err := s.links.Revogar(ctx, link.ID()); err != nil {
		return fmt.Errorf("revoke share link: %w", err)
	}

	s.log.InfoContext(ctx, "share link revoked", slog.String("share_link_id", link.ID()))
	return nil
}
