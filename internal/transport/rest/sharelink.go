package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/agendaamiga/agenda-backend/internal/domain"
	"github.com/agendaamiga/agenda-backend/internal/service/sharelink"
	"github.com/go-chi/chi/v5"
)

type shareLinkService interface {
	Gerar(ctx context.Context, input sharelink.GerarInput) (*sharelink.GerarResult, error)
	Acessar(ctx context.Context, rawToken string) (*sharelink.AcessarResult, error)
	Revogar(ctx context.Context, rawToken string) error
}

// ShareLinkHandler serves share link issue, access and revocation.
type ShareLinkHandler struct {
	svc shareLinkService
	log *slog.Logger
}

func NewShareLinkHandler(svc shareLinkService, logger *slog.Logger) *ShareLinkHandler {
	return &ShareLinkHandler{svc: svc, log: logger.With("handler", "share_link")}
}

type escopoItemRequest struct {
	Tipo string   `json:"tipo"`
	IDs  []string `json:"ids"`
}

type gerarShareLinkRequest struct {
	ID        string              `json:"id"`
	TutorID   string              `json:"tutorId"`
	Token     string              `json:"token"`
	Expiracao *time.Time          `json:"expiracao"`
	Escopo    []escopoItemRequest `json:"escopo"`
}

type shareLinkResponse struct {
	ShareLink domain.ShareLinkSnapshot `json:"shareLink"`
	Eventos   []domain.EventEnvelope   `json:"eventos"`
}

// Gerar handles POST /api/share-links.
func (h *ShareLinkHandler) Gerar(w http.ResponseWriter, r *http.Request) {
	var req gerarShareLinkRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	escopo := make([]sharelink.EscopoItem, len(req.Escopo))
	for i, item := range req.Escopo {
		escopo[i] = sharelink.EscopoItem{Tipo: item.Tipo, IDs: item.IDs}
	}

	res, err := h.svc.Gerar(r.Context(), sharelink.GerarInput{
		ShareLinkID: req.ID,
		TutorID:     req.TutorID,
		Token:       req.Token,
		Expiracao:   req.Expiracao,
		Escopo:      escopo,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, shareLinkResponse{
		ShareLink: res.ShareLink,
		Eventos:   eventEnvelopes(res.Eventos),
	})
}

// Acessar handles GET /api/share-links/{token}. Unknown, revoked and
// expired links all answer 404.
func (h *ShareLinkHandler) Acessar(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Acessar(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, shareLinkResponse{
		ShareLink: res.ShareLink,
		Eventos:   eventEnvelopes(res.Eventos),
	})
}

// Revogar handles DELETE /api/share-links/{token}.
func (h *ShareLinkHandler) Revogar(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Revogar(r.Context(), chi.URLParam(r, "token")); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
