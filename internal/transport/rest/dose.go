package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/dose"
	"github.com/go-chi/chi/v5"
)

type doseService interface {
	ConfirmarTomada(ctx context.Context, input dose.ConfirmarTomadaInput) (*dose.ConfirmarTomadaResult, error)
}

// DoseHandler serves dose confirmation.
type DoseHandler struct {
	svc doseService
	log *slog.Logger
}

func NewDoseHandler(svc doseService, logger *slog.Logger) *DoseHandler {
	return &DoseHandler{svc: svc, log: logger.With("handler", "dose")}
}

type confirmarDoseRequest struct {
	Instante *time.Time `json:"instante"`
}

type doseResponse struct {
	DoseLog domain.DoseLogSnapshot `json:"doseLog"`
	Eventos []domain.EventEnvelope `json:"eventos"`
}

// Confirmar handles POST /api/doses/{doseLogId}/confirmar. The body is
// optional; without "instante" the server clock is used.
func (h *DoseHandler) Confirmar(w http.ResponseWriter, r *http.Request) {
	var req confirmarDoseRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	res, err := h.svc.ConfirmarTomada(r.Context(), dose.ConfirmarTomadaInput{
		DoseLogID: chi.URLParam(r, "doseLogId"),
		Instante:  req.Instante,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doseResponse{
		DoseLog: res.DoseLog,
		Eventos: eventEnvelopes(res.Eventos),
	})
}
