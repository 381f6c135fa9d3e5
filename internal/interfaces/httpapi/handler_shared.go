package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fixture-compare/internal/domain/fixture"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/points"
	"github.com/riskibarqy/fixture-compare/internal/domain/prediction"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
)

type Handler struct {
	leagueService         *usecase.LeagueService
	teamService           *usecase.TeamService
	leagueStandingService *usecase.LeagueStandingService
	fixtureService        *usecase.FixtureService
	pointsService         *usecase.PointsService
	projectionService     *usecase.ProjectionService
	teamNameService       *usecase.TeamNameService
	diagnosticsService    *usecase.DiagnosticsService
	providerStatusService *usecase.ProviderStatusService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	leagueStandingService *usecase.LeagueStandingService,
	fixtureService *usecase.FixtureService,
	pointsService *usecase.PointsService,
	projectionService *usecase.ProjectionService,
	teamNameService *usecase.TeamNameService,
	diagnosticsService *usecase.DiagnosticsService,
	providerStatusService *usecase.ProviderStatusService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:         leagueService,
		teamService:           teamService,
		leagueStandingService: leagueStandingService,
		fixtureService:        fixtureService,
		pointsService:         pointsService,
		projectionService:     projectionService,
		teamNameService:       teamNameService,
		diagnosticsService:    diagnosticsService,
		providerStatusService: providerStatusService,
		logger:                logger.Component("httpapi"),
		validator:             validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type pointsQuery struct {
	Team string `validate:"required,max=100"`
}

type compareQuery struct {
	Home string `validate:"required,max=100"`
	Away string `validate:"required,max=100"`
}

type normalizeQuery struct {
	Name string `validate:"required,max=200"`
}

type projectionSideRequest struct {
	Team        string   `json:"team" validate:"required,max=100"`
	Predictions []string `json:"predictions" validate:"max=10,dive,required"`
}

type projectionRequest struct {
	Home projectionSideRequest `json:"home" validate:"required"`
	Away projectionSideRequest `json:"away" validate:"required"`
}

func (r projectionSideRequest) toInput() (usecase.ProjectionSide, error) {
	outcomes := make([]prediction.Outcome, 0, len(r.Predictions))
	for _, raw := range r.Predictions {
		outcome, err := prediction.ParseOutcome(raw)
		if err != nil {
			return usecase.ProjectionSide{}, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
		}
		outcomes = append(outcomes, outcome)
	}

	return usecase.ProjectionSide{Team: strings.TrimSpace(r.Team), Predictions: outcomes}, nil
}

type leagueDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
}

type teamDTO struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	ShortName  string `json:"shortName"`
	TLA        string `json:"tla"`
	Logo       string `json:"logo"`
	LeagueCode string `json:"leagueCode"`
}

type teamListDTO struct {
	LeagueCode   string    `json:"leagueCode"`
	Teams        []teamDTO `json:"teams"`
	FromCache    bool      `json:"fromCache"`
	CacheStatus  string    `json:"cacheStatus"`
	FetchedAt    string    `json:"fetchedAt,omitempty"`
	RefreshError string    `json:"refreshError,omitempty"`
}

type standingTeamDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
}

type standingDTO struct {
	Position       int             `json:"position"`
	Team           standingTeamDTO `json:"team"`
	PlayedGames    int             `json:"playedGames"`
	Won            int             `json:"won"`
	Draw           int             `json:"draw"`
	Lost           int             `json:"lost"`
	Points         int             `json:"points"`
	GoalsFor       int             `json:"goalsFor"`
	GoalsAgainst   int             `json:"goalsAgainst"`
	GoalDifference int             `json:"goalDifference"`
	Form           string          `json:"form,omitempty"`
}

type standingsDTO struct {
	LeagueCode   string        `json:"leagueCode"`
	Standings    []standingDTO `json:"standings"`
	FromCache    bool          `json:"fromCache"`
	CacheStatus  string        `json:"cacheStatus"`
	FetchedAt    string        `json:"fetchedAt,omitempty"`
	RefreshError string        `json:"refreshError,omitempty"`
}

type pointsDTO struct {
	LeagueCode  string `json:"leagueCode"`
	Team        string `json:"team"`
	Points      int    `json:"points"`
	Source      string `json:"source"`
	MatchedName string `json:"matchedName,omitempty"`
	Error       string `json:"error,omitempty"`
}

type compareDTO struct {
	LeagueCode string    `json:"leagueCode"`
	Home       pointsDTO `json:"home"`
	Away       pointsDTO `json:"away"`
}

type sideProjectionDTO struct {
	Team            string   `json:"team"`
	CurrentPoints   int      `json:"currentPoints"`
	Source          string   `json:"source"`
	Error           string   `json:"error,omitempty"`
	Predictions     []string `json:"predictions"`
	PredictedPoints int      `json:"predictedPoints"`
	TotalPoints     int      `json:"totalPoints"`
}

type projectionDTO struct {
	LeagueCode string            `json:"leagueCode"`
	Home       sideProjectionDTO `json:"home"`
	Away       sideProjectionDTO `json:"away"`
	Leader     string            `json:"leader"`
	Margin     int               `json:"margin"`
	Summary    string            `json:"summary"`
}

type fixtureDTO struct {
	ID              int64  `json:"id"`
	Opponent        string `json:"opponent"`
	OpponentLogo    string `json:"opponentLogo"`
	Home            bool   `json:"home"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	League          string `json:"league"`
	CompetitionCode string `json:"competitionCode"`
	Gameweek        int    `json:"gameweek,omitempty"`
}

type fixtureListDTO struct {
	TeamID       int64        `json:"teamId"`
	LeagueFilter string       `json:"leagueFilter,omitempty"`
	Fixtures     []fixtureDTO `json:"fixtures"`
	FromCache    bool         `json:"fromCache"`
	CacheStatus  string       `json:"cacheStatus,omitempty"`
}

type normalizedNameDTO struct {
	Input      string `json:"input"`
	Normalized string `json:"normalized"`
	Canonical  string `json:"canonical"`
	Aliased    bool   `json:"aliased"`
}

type missingTeamDTO struct {
	TeamID               int64    `json:"teamId"`
	Name                 string   `json:"name"`
	Normalized           string   `json:"normalized"`
	SuggestedAliasTarget string   `json:"suggestedAliasTarget,omitempty"`
	KnownManualKeys      []string `json:"knownManualKeys"`
}

type leagueMissingDTO struct {
	LeagueCode   string           `json:"leagueCode"`
	TeamsChecked int              `json:"teamsChecked"`
	MissingCount int              `json:"missingCount"`
	Missing      []missingTeamDTO `json:"missing"`
	Error        string           `json:"error,omitempty"`
}

type missingPointsDTO struct {
	GeneratedAt  string             `json:"generatedAt"`
	OK           bool               `json:"ok"`
	TotalMissing int                `json:"totalMissing"`
	FailedCount  int                `json:"failedCount"`
	Leagues      []leagueMissingDTO `json:"leagues"`
}

type rateLimitDTO struct {
	RequestsAvailable *int   `json:"requestsAvailable"`
	ResetSeconds      *int   `json:"resetSeconds"`
	ObservedAt        string `json:"observedAt,omitempty"`
}

type providerStatusDTO struct {
	Configured   bool         `json:"configured"`
	Reachable    bool         `json:"reachable"`
	StatusCode   int          `json:"statusCode,omitempty"`
	LatencyMS    int64        `json:"latencyMs"`
	CircuitState string       `json:"circuitState,omitempty"`
	RateLimit    rateLimitDTO `json:"rateLimit"`
	CheckedAt    string       `json:"checkedAt,omitempty"`
	Error        string       `json:"error,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{Code: v.Code, Name: v.Name, CountryCode: v.CountryCode}
}

func teamListToDTO(v team.Listing) teamListDTO {
	items := make([]teamDTO, 0, len(v.Teams))
	for _, t := range v.Teams {
		items = append(items, teamDTO{
			ID:         t.ID,
			Name:       t.Name,
			ShortName:  t.DisplayShortName(),
			TLA:        t.TLA,
			Logo:       t.Crest,
			LeagueCode: t.LeagueCode,
		})
	}

	return teamListDTO{
		LeagueCode:   v.LeagueCode,
		Teams:        items,
		FromCache:    v.Status.FromCache(),
		CacheStatus:  string(v.Status),
		FetchedAt:    formatOptionalTime(v.FetchedAt),
		RefreshError: v.RefreshError,
	}
}

func standingsToDTO(v leaguestanding.Table) standingsDTO {
	rows := make([]standingDTO, 0, len(v.Rows))
	for _, row := range v.Rows {
		shortName := row.Team.ShortName
		if shortName == "" {
			shortName = row.Team.Name
		}
		rows = append(rows, standingDTO{
			Position: row.Position,
			Team: standingTeamDTO{
				ID:        row.Team.ID,
				Name:      row.Team.Name,
				ShortName: shortName,
				TLA:       row.Team.TLA,
				Crest:     row.Team.Crest,
			},
			PlayedGames:    row.Played,
			Won:            row.Won,
			Draw:           row.Draw,
			Lost:           row.Lost,
			Points:         row.Points,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: row.GoalDifference,
			Form:           row.Form,
		})
	}

	return standingsDTO{
		LeagueCode:   v.LeagueCode,
		Standings:    rows,
		FromCache:    v.FromCache(),
		CacheStatus:  string(v.Status),
		FetchedAt:    formatOptionalTime(v.FetchedAt),
		RefreshError: v.RefreshError,
	}
}

func resolutionToDTO(v points.Resolution) pointsDTO {
	return pointsDTO{
		LeagueCode:  v.LeagueCode,
		Team:        v.TeamName,
		Points:      v.Points,
		Source:      string(v.Source),
		MatchedName: v.MatchedName,
		Error:       v.Error,
	}
}

func sideProjectionToDTO(v usecase.SideProjection) sideProjectionDTO {
	predictions := make([]string, 0, len(v.Predictions))
	for _, outcome := range v.Predictions {
		predictions = append(predictions, string(outcome))
	}

	return sideProjectionDTO{
		Team:            v.Team,
		CurrentPoints:   v.Current.Points,
		Source:          string(v.Current.Source),
		Error:           v.Current.Error,
		Predictions:     predictions,
		PredictedPoints: v.Predicted,
		TotalPoints:     v.Total,
	}
}

func projectionToDTO(v usecase.Projection) projectionDTO {
	return projectionDTO{
		LeagueCode: v.LeagueCode,
		Home:       sideProjectionToDTO(v.Home),
		Away:       sideProjectionToDTO(v.Away),
		Leader:     v.Leader,
		Margin:     v.Margin,
		Summary:    v.Summary,
	}
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, f := range items {
		out = append(out, fixtureDTO{
			ID:              f.ID,
			Opponent:        f.Opponent,
			OpponentLogo:    f.OpponentLogo,
			Home:            f.Home,
			Date:            f.Date(),
			Time:            f.Time(),
			League:          f.League,
			CompetitionCode: f.CompetitionCode,
			Gameweek:        f.Gameweek,
		})
	}
	return out
}

func missingPointsToDTO(v usecase.MissingPointsReport) missingPointsDTO {
	leagues := make([]leagueMissingDTO, 0, len(v.Leagues))
	for _, item := range v.Leagues {
		missing := make([]missingTeamDTO, 0, len(item.Missing))
		for _, m := range item.Missing {
			keys := m.KnownManualKeys
			if keys == nil {
				keys = []string{}
			}
			missing = append(missing, missingTeamDTO{
				TeamID:               m.TeamID,
				Name:                 m.Name,
				Normalized:           m.Normalized,
				SuggestedAliasTarget: m.SuggestedAliasTarget,
				KnownManualKeys:      keys,
			})
		}
		leagues = append(leagues, leagueMissingDTO{
			LeagueCode:   item.LeagueCode,
			TeamsChecked: item.TeamsChecked,
			MissingCount: len(item.Missing),
			Missing:      missing,
			Error:        item.Error,
		})
	}

	return missingPointsDTO{
		GeneratedAt:  formatOptionalTime(v.GeneratedAt),
		OK:           v.OK(),
		TotalMissing: v.TotalMissing,
		FailedCount:  v.FailedCount,
		Leagues:      leagues,
	}
}

func providerStatusToDTO(v provider.Status) providerStatusDTO {
	return providerStatusDTO{
		Configured:   v.Configured,
		Reachable:    v.Reachable,
		StatusCode:   v.StatusCode,
		LatencyMS:    v.Latency.Milliseconds(),
		CircuitState: v.CircuitState,
		RateLimit: rateLimitDTO{
			RequestsAvailable: v.RateLimit.RequestsAvailable,
			ResetSeconds:      v.RateLimit.ResetSeconds,
			ObservedAt:        formatOptionalTime(v.RateLimit.ObservedAt),
		},
		CheckedAt: formatOptionalTime(v.CheckedAt),
		Error:     v.Error,
	}
}

func formatOptionalTime(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
