package server

import (
	"net/http"

	"github.com/bagdasarian/transfer-market/internal/handler"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler, gatherer prometheus.Gatherer) {
	mux.HandleFunc("POST /users/signup", h.OptionalAuth(h.Signup))
	mux.HandleFunc("POST /users/signin", h.OptionalAuth(h.Signin))
	mux.HandleFunc("POST /users/refreshToken", h.RefreshToken)
	mux.HandleFunc("POST /users/signout", h.Signout)
	mux.HandleFunc("GET /users/me", h.RequireAuth(h.Me))
	mux.HandleFunc("GET /users/me/transfers", h.RequireAuth(h.ListMyTransfers))

	mux.HandleFunc("GET /teams", h.OptionalAuth(h.ListTeams))
	mux.HandleFunc("POST /teams", h.RequireAuth(h.CreateTeam))
	mux.HandleFunc("GET /teams/{id}", h.OptionalAuth(h.GetTeam))
	mux.HandleFunc("PUT /teams/{id}", h.RequireAuth(h.UpdateTeam))
	mux.HandleFunc("DELETE /teams/{id}", h.RequireAuth(h.DeleteTeam))
	mux.HandleFunc("GET /teams/{id}/transfers", h.RequireAuth(h.GetTeamTransfers))

	mux.HandleFunc("POST /transfers", h.RequireAuth(h.CreateTransfer))
	mux.HandleFunc("PUT /transfers/{id}", h.RequireAuth(h.RespondToTransfer))

	mux.HandleFunc("GET /stats", h.GetStats)
	mux.HandleFunc("GET /health", h.Health)
	mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
