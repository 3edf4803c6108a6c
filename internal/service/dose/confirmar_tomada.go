package dose

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// ConfirmarTomadaResult is the dose state after confirmation and the events
// it produced. Re-confirming a taken dose yields no events.
type ConfirmarTomadaResult struct {
	DoseLog domain.DoseLogSnapshot
	Eventos []domain.Event
}

// ConfirmarTomada marks a dose as taken and publishes DoseConfirmada.
func (s *Service) ConfirmarTomada(ctx context.Context, input ConfirmarTomadaInput) (*ConfirmarTomadaResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.DoseLogID)
	agora := s.clock.NowUTC()
	if input.Instante != nil {
		agora = input.Instante.UTC()
	}

	var (
		snap    domain.DoseLogSnapshot
		eventos []domain.Event
	)

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.doses.BuscarPorIDParaAtualizar(txCtx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("DoseLog nao encontrado: %w", domain.ErrNotFound)
			}
			return fmt.Errorf("get dose log: %w", err)
		}

		if err := d.ConfirmarTomada(agora); err != nil {
			return err
		}

		eventos = d.PullEvents()
		if len(eventos) > 0 {
			if err := s.doses.AtualizarStatus(txCtx, d); err != nil {
				return fmt.Errorf("update dose log: %w", err)
			}
		}

		snap = d.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventos)

	s.log.InfoContext(ctx, "dose confirmed",
		slog.String("dose_log_id", id),
		slog.String("status", snap.Status.String()),
		slog.Int("events", len(eventos)),
	)

	return &ConfirmarTomadaResult{DoseLog: snap, Eventos: eventos}, nil
}
