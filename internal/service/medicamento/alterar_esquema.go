package medicamento

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// AlterarEsquemaResult is the medication after the change and the events
// it produced.
type AlterarEsquemaResult struct {
	Medicamento domain.MedicamentoSnapshot
	Eventos     []domain.Event
}

// AlterarEsquema replaces the dosing schedule of a medication.
func (s *Service) AlterarEsquema(ctx context.Context, input AlterarEsquemaInput) (*AlterarEsquemaResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	esquema, err := domain.NovoEsquemaDose(input.Esquema.dados())
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.MedicamentoID)
	agora := s.clock.NowUTC()

	var (
		snap    domain.MedicamentoSnapshot
		eventos []domain.Event
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		m, err := s.buscar(txCtx, id)
		if err != nil {
			return err
		}

		if err := m.DefinirEsquema(esquema, agora); err != nil {
			return err
		}
		if err := s.medicamentos.Salvar(txCtx, m); err != nil {
			return fmt.Errorf("save medicamento: %w", err)
		}

		eventos = m.PullEvents()
		snap = m.Snapshot()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventos)

	s.log.InfoContext(ctx, "esquema de dose changed",
		slog.String("medicamento_id", id),
		slog.String("tipo", esquema.Tipo().String()),
	)

	return &AlterarEsquemaResult{Medicamento: snap, Eventos: eventos}, nil
}

func (s *Service) buscar(ctx context.Context, id string) (*domain.Medicamento, error) {
	m, err := s.medicamentos.BuscarPorID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("Medicamento nao encontrado: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get medicamento: %w", err)
	}
	return m, nil
}
