package httpx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AngelCh415/campaign-insights/internal/dashboard"
	"github.com/AngelCh415/campaign-insights/internal/utils"
)

func NewRouter(log *slog.Logger, svc *dashboard.Service, metricsHandler http.Handler) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))
	mux.Use(middleware.Recoverer)

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Method(http.MethodGet, "/metrics", metricsHandler)

	mux.Route("/dashboard", func(r chi.Router) {
		r.Get("/", section(svc.Dashboard))
		r.Get("/overview", section(svc.Overview))
		r.Get("/gender", section(svc.Gender))
		r.Get("/age", section(svc.Age))
		r.Get("/gender-age", section(svc.GenderAge))
		r.Get("/device", section(svc.Device))
		r.Get("/region", section(svc.Region))
		r.Get("/week", section(svc.Week))
	})

	return mux
}

// section serves one dashboard builder. Builders have no failure path; an
// unreachable feed yields an empty section.
func section[T any](build func(context.Context) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, build(r.Context()))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
