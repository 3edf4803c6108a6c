package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/medicamento"
	"github.com/go-chi/chi/v5"
)

type medicamentoService interface {
	AlterarEsquema(ctx context.Context, input medicamento.AlterarEsquemaInput) (*medicamento.AlterarEsquemaResult, error)
	ProjetarDoses(ctx context.Context, input medicamento.ProjetarDosesInput) (*medicamento.ProjetarDosesResult, error)
}

// MedicamentoHandler serves schedule changes and dose projection.
type MedicamentoHandler struct {
	svc medicamentoService
	log *slog.Logger
}

func NewMedicamentoHandler(svc medicamentoService, logger *slog.Logger) *MedicamentoHandler {
	return &MedicamentoHandler{svc: svc, log: logger.With("handler", "medicamento")}
}

type esquemaRequest struct {
	Tipo         string     `json:"tipo"`
	Timezone     string     `json:"timezone"`
	Horarios     []string   `json:"horarios"`
	Inicio       *time.Time `json:"inicio"`
	Fim          *time.Time `json:"fim"`
	DiasDaSemana []int      `json:"diasDaSemana"`
}

type projetarRequest struct {
	Inicio time.Time `json:"inicio"`
	Fim    time.Time `json:"fim"`
}

type medicamentoResponse struct {
	Medicamento domain.MedicamentoSnapshot `json:"medicamento"`
	Eventos     []domain.EventEnvelope     `json:"eventos"`
}

type projecaoResponse struct {
	Doses   []domain.DoseLogSnapshot `json:"doses"`
	Criadas int                      `json:"criadas"`
}

// AlterarEsquema handles PUT /api/medicamentos/{medicamentoId}/esquema.
func (h *MedicamentoHandler) AlterarEsquema(w http.ResponseWriter, r *http.Request) {
	var req esquemaRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	res, err := h.svc.AlterarEsquema(r.Context(), medicamento.AlterarEsquemaInput{
		MedicamentoID: chi.URLParam(r, "medicamentoId"),
		Esquema: medicamento.NovoEsquemaDTO{
			Tipo:         req.Tipo,
			Timezone:     req.Timezone,
			Horarios:     req.Horarios,
			Inicio:       req.Inicio,
			Fim:          req.Fim,
			DiasDaSemana: req.DiasDaSemana,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, medicamentoResponse{
		Medicamento: res.Medicamento,
		Eventos:     eventEnvelopes(res.Eventos),
	})
}

// ProjetarDoses handles POST /api/medicamentos/{medicamentoId}/projecoes.
func (h *MedicamentoHandler) ProjetarDoses(w http.ResponseWriter, r *http.Request) {
	var req projetarRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	res, err := h.svc.ProjetarDoses(r.Context(), medicamento.ProjetarDosesInput{
		MedicamentoID: chi.URLParam(r, "medicamentoId"),
		Inicio:        req.Inicio,
		Fim:           req.Fim,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	doses := res.Doses
	if doses == nil {
		doses = []domain.DoseLogSnapshot{}
	}
	writeJSON(w, http.StatusCreated, projecaoResponse{Doses: doses, Criadas: res.Criadas})
}
