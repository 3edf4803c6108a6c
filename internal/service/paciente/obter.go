package paciente

import (
	"context"
	"fmt"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// Obter returns one patient of a tutor, or domain.ErrNotFound.
func (s *Service) Obter(ctx context.Context, input ObterInput) (*domain.PacienteSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	p, err := s.pacientes.BuscarPorID(ctx, input.TutorID, input.PacienteID)
	if err != nil {
		return nil, fmt.Errorf("get paciente: %w", err)
	}

	snap := p.Snapshot()
	return &snap, nil
}
