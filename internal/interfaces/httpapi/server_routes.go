package httpapi

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metricsEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !metricsEnabled {
		return
	}

	mux.Handle("GET /metrics", promhttp.Handler())
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueCode}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueCode}/standings", handler.ListLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueCode}/points", handler.GetTeamPoints)
	mux.HandleFunc("GET /v1/leagues/{leagueCode}/compare", handler.CompareTeamPoints)
	mux.HandleFunc("POST /v1/leagues/{leagueCode}/projections", handler.CreateProjection)
	mux.HandleFunc("GET /v1/teams/{teamID}/fixtures", handler.ListTeamFixtures)
	mux.HandleFunc("GET /v1/team-names/normalize", handler.NormalizeTeamName)
}

func registerDiagnosticsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/diagnostics/missing-points", handler.ListMissingPoints)
	mux.HandleFunc("GET /v1/provider/status", handler.GetProviderStatus)
}
