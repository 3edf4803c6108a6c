package rest

import (
	"log/slog"
	"net/http"

	"github.com/agendaamiga/agenda-backend/internal/config"
	"github.com/agendaamiga/agenda-backend/internal/transport/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterDeps collects everything NewRouter mounts. A nil RateLimiter
// disables rate limiting.
type RouterDeps struct {
	Log         *slog.Logger
	CORS        config.CORSConfig
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.HTTPMetrics
	Gatherer    prometheus.Gatherer

	Health       *HealthHandler
	Pacientes    *PacienteHandler
	Doses        *DoseHandler
	Medicamentos *MedicamentoHandler
	ShareLinks   *ShareLinkHandler
}

// NewRouter builds the HTTP handler of the API.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.Recovery(d.Log),
		middleware.CORS(d.CORS),
	}
	if d.RateLimiter != nil {
		mws = append(mws, d.RateLimiter.Middleware())
	}
	if d.Metrics != nil {
		mws = append(mws, middleware.Metrics(d.Metrics))
	}
	r.Use(middleware.Chain(mws...))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, codeNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	})

	r.Get("/health", d.Health.Health)
	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/tutores/{tutorId}/pacientes", func(r chi.Router) {
			r.Get("/", d.Pacientes.Listar)
			r.Post("/", d.Pacientes.Cadastrar)
			r.Get("/{pacienteId}", d.Pacientes.Obter)
		})

		r.Post("/doses/{doseLogId}/confirmar", d.Doses.Confirmar)

		r.Route("/medicamentos/{medicamentoId}", func(r chi.Router) {
			r.Put("/esquema", d.Medicamentos.AlterarEsquema)
			r.Post("/projecoes", d.Medicamentos.ProjetarDoses)
		})

		r.Route("/share-links", func(r chi.Router) {
			r.Post("/", d.ShareLinks.Gerar)
			r.Get("/{token}", d.ShareLinks.Acessar)
			r.Delete("/{token}", d.ShareLinks.Revogar)
		})
	})

	return r
}
