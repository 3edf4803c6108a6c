package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/paciente"
	"github.com/go-chi/chi/v5"
)

type pacienteService interface {
	ListarPorTutor(ctx context.Context, input paciente.ListarPorTutorInput) (*paciente.ListarPorTutorResult, error)
	Cadastrar(ctx context.Context, input paciente.CadastrarInput) (*domain.PacienteSnapshot, error)
	Obter(ctx context.Context, input paciente.ObterInput) (*domain.PacienteSnapshot, error)
}

// PacienteHandler serves the patients of a tutor.
type PacienteHandler struct {
	svc pacienteService
	log *slog.Logger
}

func NewPacienteHandler(svc pacienteService, logger *slog.Logger) *PacienteHandler {
	return &PacienteHandler{svc: svc, log: logger.With("handler", "paciente")}
}

type planoSaudeRequest struct {
	Operadora         string     `json:"operadora"`
	NumeroCarteirinha string     `json:"numeroCarteirinha"`
	Validade          *time.Time `json:"validade"`
}

type cadastrarPacienteRequest struct {
	ID           string             `json:"id"`
	NomeCompleto string             `json:"nomeCompleto"`
	Condicoes    []string           `json:"condicoes"`
	Alergias     []string           `json:"alergias"`
	PlanoSaude   *planoSaudeRequest `json:"planoSaude"`
}

type listarPacientesResponse struct {
	Pacientes []domain.PacienteSnapshot `json:"pacientes"`
}

// Listar handles GET /api/tutores/{tutorId}/pacientes.
func (h *PacienteHandler) Listar(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListarPorTutor(r.Context(), paciente.ListarPorTutorInput{
		TutorID: chi.URLParam(r, "tutorId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	pacientes := res.Pacientes
	if pacientes == nil {
		pacientes = []domain.PacienteSnapshot{}
	}
	writeJSON(w, http.StatusOK, listarPacientesResponse{Pacientes: pacientes})
}

// Cadastrar handles POST /api/tutores/{tutorId}/pacientes.
func (h *PacienteHandler) Cadastrar(w http.ResponseWriter, r *http.Request) {
	var req cadastrarPacienteRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	input := paciente.CadastrarInput{
		ID:           req.ID,
		TutorID:      chi.URLParam(r, "tutorId"),
		NomeCompleto: req.NomeCompleto,
		Condicoes:    req.Condicoes,
		Alergias:     req.Alergias,
	}
	if req.PlanoSaude != nil {
		input.PlanoSaude = &paciente.PlanoSaudeInput{
			Operadora:         req.PlanoSaude.Operadora,
			NumeroCarteirinha: req.PlanoSaude.NumeroCarteirinha,
			Validade:          req.PlanoSaude.Validade,
		}
	}

	snap, err := h.svc.Cadastrar(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, snap)
}

// Obter handles GET /api/tutores/{tutorId}/pacientes/{pacienteId}.
func (h *PacienteHandler) Obter(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Obter(r.Context(), paciente.ObterInput{
		TutorID:    chi.URLParam(r, "tutorId"),
		PacienteID: chi.URLParam(r, "pacienteId"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, snap)
}
