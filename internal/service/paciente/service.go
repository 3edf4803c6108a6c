package paciente

import (
	"context"
	"log/slog"

	"github.com/agendaamiga/agenda-backend/internal/domain"
)

type pacienteRepo interface {
	ListarPorTutor(ctx context.Context, tutorID string) ([]*domain.Paciente, error)
	BuscarPorID(ctx context.Context, tutorID, pacienteID string) (*domain.Paciente, error)
	Salvar(ctx context.Context, p *domain.Paciente) error
}

// Service provides patient registration and lookup.
type Service struct {
	pacientes pacienteRepo
	clock     domain.Clock
	log       *slog.Logger
}

// NewService creates a new Paciente service.
func NewService(
	log *slog.Logger,
	pacientes pacienteRepo,
	clock domain.Clock,
) *Service {
	return &Service{
		pacientes: pacientes,
		clock:     clock,
		log:       log.With("service", "paciente"),
	}
}
