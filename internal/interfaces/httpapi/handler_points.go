package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
)

const pointsCacheControl = "public, s-maxage=300, stale-while-revalidate=300"

func (h *Handler) GetTeamPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamPoints")
	defer span.End()

	query := pointsQuery{Team: strings.TrimSpace(r.URL.Query().Get("team"))}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, r.PathValue("leagueCode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	resolution := h.pointsService.ResolvePoints(ctx, item.Code, query.Team)
	w.Header().Set("Cache-Control", pointsCacheControl)
	writeSuccess(ctx, w, http.StatusOK, resolutionToDTO(resolution))
}

func (h *Handler) CompareTeamPoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeamPoints")
	defer span.End()

	query := compareQuery{
		Home: strings.TrimSpace(r.URL.Query().Get("home")),
		Away: strings.TrimSpace(r.URL.Query().Get("away")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, r.PathValue("leagueCode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	comparison, err := h.pointsService.Compare(ctx, item.Code, query.Home, query.Away)
	if err != nil {
		h.logger.WarnContext(ctx, "compare team points failed", "league", item.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Cache-Control", pointsCacheControl)
	writeSuccess(ctx, w, http.StatusOK, compareDTO{
		LeagueCode: comparison.LeagueCode,
		Home:       resolutionToDTO(comparison.Home),
		Away:       resolutionToDTO(comparison.Away),
	})
}

func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateProjection")
	defer span.End()

	var req projectionRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.leagueService.GetLeague(ctx, r.PathValue("leagueCode"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	home, err := req.Home.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	away, err := req.Away.toInput()
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	projection, err := h.projectionService.Project(ctx, usecase.ProjectionInput{
		LeagueCode: item.Code,
		Home:       home,
		Away:       away,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create projection failed", "league", item.Code, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, projectionToDTO(projection))
}
