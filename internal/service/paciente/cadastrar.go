package paciente

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/google/uuid"
)

// Cadastrar registers a new patient for a tutor.
func (s *Service) Cadastrar(ctx context.Context, input CadastrarInput) (*domain.PacienteSnapshot, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var plano *domain.PlanoSaude
	if in := input.PlanoSaude; in != nil {
		numero, err := domain.NewNumeroCarteirinha(in.NumeroCarteirinha)
		if err != nil {
			return nil, err
		}
		plano, err = domain.NewPlanoSaude(domain.PlanoSaudeProps{
			Operadora:         in.Operadora,
			NumeroCarteirinha: numero,
			Validade:          in.Validade,
		}, s.clock.NowUTC())
		if err != nil {
			return nil, err
		}
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = uuid.NewString()
	}

	p, err := domain.NovoPaciente(domain.PacienteProps{
		ID:           id,
		TutorID:      input.TutorID,
		NomeCompleto: input.NomeCompleto,
		Condicoes:    input.Condicoes,
		Alergias:     input.Alergias,
		PlanoSaude:   plano,
	})
	if err != nil {
		return nil, err
	}

	if err := s.pacientes.Salvar(ctx, p); err != nil {
		return nil, fmt.Errorf("save paciente: %w", err)
	}

	s.log.InfoContext(ctx, "paciente registered",
		slog.String("tutor_id", p.TutorID()),
		slog.String("paciente_id", p.ID()),
	)

	snap := p.Snapshot()
	return &snap, nil
}
