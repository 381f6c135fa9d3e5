package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
)

// ListTeamFixtures answers with an empty list and an X-Error header when the
// provider fails, so pages can still render the rest of a comparison.
func (h *Handler) ListTeamFixtures(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamFixtures")
	defer span.End()

	rawTeamID := strings.TrimSpace(r.PathValue("teamID"))
	teamID, err := strconv.ParseInt(rawTeamID, 10, 64)
	if err != nil || teamID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: team id must be a positive integer", usecase.ErrInvalidInput))
		return
	}
	leagueFilter := league.NormalizeCode(r.URL.Query().Get("leagueCode"))

	w.Header().Set("X-League-Filter", leagueFilter)
	upcoming, err := h.fixtureService.UpcomingByTeam(ctx, teamID, leagueFilter)
	if err != nil {
		h.logger.WarnContext(ctx, "list team fixtures failed", "team_id", teamID, "league", leagueFilter, "error", err)
		w.Header().Set("X-Error", "fixtures_fetch_failed")
		w.Header().Set("X-Fixtures-Count", "0")
		writeSuccess(ctx, w, http.StatusOK, fixtureListDTO{
			TeamID:       teamID,
			LeagueFilter: leagueFilter,
			Fixtures:     []fixtureDTO{},
		})
		return
	}

	w.Header().Set("X-Fixtures-Count", strconv.Itoa(len(upcoming.Fixtures)))
	writeSuccess(ctx, w, http.StatusOK, fixtureListDTO{
		TeamID:       upcoming.TeamID,
		LeagueFilter: upcoming.LeagueFilter,
		Fixtures:     fixturesToDTO(upcoming.Fixtures),
		FromCache:    upcoming.Status.FromCache(),
		CacheStatus:  string(upcoming.Status),
	})
}
