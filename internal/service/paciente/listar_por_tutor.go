package paciente

import (
	"context"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

// ListarPorTutorResult holds the patients of one tutor, in repository order.
type ListarPorTutorResult struct {
	Pacientes []domain.PacienteSnapshot
}

// ListarPorTutor returns snapshots of every patient owned by the tutor.
// Repository errors are returned as is.
func (s *Service) ListarPorTutor(ctx context.Context, input ListarPorTutorInput) (*ListarPorTutorResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	pacientes, err := s.pacientes.ListarPorTutor(ctx, input.TutorID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]domain.PacienteSnapshot, 0, len(pacientes))
	for _, p := range pacientes {
		snapshots = append(snapshots, p.Snapshot())
	}

	s.log.DebugContext(ctx, "pacientes listed",
		slog.String("tutor_id", input.TutorID),
		slog.Int("count", len(snapshots)),
	)

	return &ListarPorTutorResult{Pacientes: snapshots}, nil
}
