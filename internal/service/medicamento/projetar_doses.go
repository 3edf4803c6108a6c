package medicamento

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/google/uuid"
)

// ProjetarDosesResult lists the projected doses and how many were new.
// Doses already stored for the same instant are not duplicated.
type ProjetarDosesResult struct {
	Doses   []domain.DoseLogSnapshot
	Criadas int
}

// ProjetarDoses materializes pending dose logs for every instant the
// medication's schedule yields between Inicio and Fim.
func (s *Service) ProjetarDoses(ctx context.Context, input ProjetarDosesInput) (*ProjetarDosesResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.MedicamentoID)
	inicio, fim := input.Inicio.UTC(), input.Fim.UTC()

	periodo, err := domain.NewPeriodo(&inicio, &fim)
	if err != nil {
		return nil, err
	}

	m, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.Ativo() {
		return nil, fmt.Errorf("medicamento %s inativo: %w", id, domain.ErrInvalidTransition)
	}

	projecoes, err := m.GerarProjecoes(periodo, s.clock)
	if err != nil {
		return nil, err
	}

	doses := make([]*domain.DoseLog, 0, len(projecoes))
	for _, p := range projecoes {
		d, err := domain.NovoDoseLog(domain.DoseLogProps{
			ID:              uuid.NewString(),
			MedicamentoID:   id,
			HorarioPrevisto: p.HorarioPrevisto,
			Status:          domain.DoseStatusPendente,
		})
		if err != nil {
			return nil, err
		}
		doses = append(doses, d)
	}

	criadas := 0
	if len(doses) > 0 {
		criadas, err = s.doses.SalvarEmLote(ctx, doses)
		if err != nil {
			return nil, fmt.Errorf("save projected doses: %w", err)
		}
	}

	snaps := make([]domain.DoseLogSnapshot, len(doses))
	for i, d := range doses {
		snaps[i] = d.Snapshot()
	}

	s.log.InfoContext(ctx, "doses projected",
		slog.String("medicamento_id", id),
		slog.Int("projected", len(doses)),
		slog.Int("created", criadas),
	)

	return &ProjetarDosesResult{Doses: snaps, Criadas: criadas}, nil
}
