package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/manualpoints"
	"github.com/riskibarqy/fixture-compare/internal/domain/points"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/platform/metrics"
	"github.com/sourcegraph/conc"
)

const DefaultPointsResolveTimeout = 3 * time.Second

type PointsConfig struct {
	// ManualOnly skips live standings entirely.
	ManualOnly     bool
	ResolveTimeout time.Duration
}

// Comparison holds the resolutions of two teams of the same league.
type Comparison struct {
	LeagueCode string
	Home       points.Resolution
	Away       points.Resolution
}

// PointsService answers how many points a team has: live standings first,
// the curated manual table otherwise. Resolution never fails; the worst
// answer is zero points from the manual source.
type PointsService struct {
	standingRepo leaguestanding.Repository
	manualRepo   manualpoints.Repository
	aliases      *teamname.AliasTable
	cfg          PointsConfig
	logger       *logging.Logger
}

// NewPointsService builds the resolver. A nil standingRepo means no live
// provider is configured and every lookup goes to the manual table.
func NewPointsService(
	standingRepo leaguestanding.Repository,
	manualRepo manualpoints.Repository,
	aliases *teamname.AliasTable,
	cfg PointsConfig,
	logger *logging.Logger,
) *PointsService {
	if aliases == nil {
		aliases = teamname.DefaultAliasTable()
	}
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = DefaultPointsResolveTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &PointsService{
		standingRepo: standingRepo,
		manualRepo:   manualRepo,
		aliases:      aliases,
		cfg:          cfg,
		logger:       logger,
	}
}

func (s *PointsService) LiveEnabled() bool {
	return !s.cfg.ManualOnly && s.standingRepo != nil
}

func (s *PointsService) ResolvePoints(ctx context.Context, leagueCode, teamName string) points.Resolution {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.ResolvePoints")
	defer span.End()

	code := league.NormalizeCode(leagueCode)
	res := points.Resolution{
		LeagueCode: code,
		TeamName:   teamName,
		Source:     points.SourceManual,
	}
	if strings.TrimSpace(teamName) == "" {
		metrics.RecordPointsResolution(string(res.Source), false)
		return res
	}

	var liveErr error
	if s.LiveEnabled() {
		row, found, err := s.lookupLive(ctx, code, teamName)
		if err == nil && found {
			res.Points = row.Points
			res.Source = points.SourceStandings
			res.MatchedName = row.Team.Name
			metrics.RecordPointsResolution(string(res.Source), false)
			return res
		}
		liveErr = err
	}

	if match, ok := s.lookupManual(ctx, code, teamName); ok {
		res.Points = match.Points
		res.MatchedName = match.Key
	}
	if liveErr != nil {
		res.Error = provider.Reason(liveErr)
	}

	metrics.RecordPointsResolution(string(res.Source), liveErr != nil)
	return res
}

// Compare resolves both teams concurrently.
func (s *PointsService) Compare(ctx context.Context, leagueCode, homeTeam, awayTeam string) (Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PointsService.Compare")
	defer span.End()

	if strings.TrimSpace(homeTeam) == "" || strings.TrimSpace(awayTeam) == "" {
		return Comparison{}, fmt.Errorf("%w: home and away teams are required", ErrInvalidInput)
	}

	out := Comparison{LeagueCode: league.NormalizeCode(leagueCode)}
	var wg conc.WaitGroup
	wg.Go(func() { out.Home = s.ResolvePoints(ctx, leagueCode, homeTeam) })
	wg.Go(func() { out.Away = s.ResolvePoints(ctx, leagueCode, awayTeam) })
	wg.Wait()

	return out, nil
}

type liveStandings struct {
	table leaguestanding.Table
	err   error
}

func (s *PointsService) lookupLive(ctx context.Context, leagueCode, teamName string) (leaguestanding.Standing, bool, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.cfg.ResolveTimeout)
	defer cancel()

	done := make(chan liveStandings, 1)
	go func() {
		table, err := s.standingRepo.ListByLeague(fetchCtx, leagueCode)
		done <- liveStandings{table: table, err: err}
	}()

	var result liveStandings
	select {
	case result = <-done:
	case <-fetchCtx.Done():
		result.err = fmt.Errorf("%w: live standings lookup: %v", ErrDependencyUnavailable, fetchCtx.Err())
	}
	if result.err != nil {
		s.logger.WarnContext(ctx, "live standings unavailable, falling back to manual points",
			"league", leagueCode,
			"team", teamName,
			"error", result.err,
		)
		return leaguestanding.Standing{}, false, result.err
	}

	row, ok := leaguestanding.FindByTeamName(result.table.Rows, teamName, s.aliases)
	return row, ok, nil
}

func (s *PointsService) lookupManual(ctx context.Context, leagueCode, teamName string) (manualpoints.Match, bool) {
	if s.manualRepo == nil {
		return manualpoints.Match{}, false
	}

	table, err := s.manualRepo.GetByLeague(ctx, leagueCode)
	if err != nil {
		s.logger.WarnContext(ctx, "manual points table unavailable", "league", leagueCode, "error", err)
		return manualpoints.Match{}, false
	}

	return table.Lookup(teamName, s.aliases)
}
