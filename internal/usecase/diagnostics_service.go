package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/manualpoints"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
)

const (
	defaultDiagnosticsWorkers = 4
	maxKnownManualKeys        = 50
)

// MissingTeam is a provider team the manual table cannot resolve.
type MissingTeam struct {
	TeamID               int64
	Name                 string
	Normalized           string
	SuggestedAliasTarget string
	KnownManualKeys      []string
}

type LeagueMissingReport struct {
	LeagueCode   string
	TeamsChecked int
	Missing      []MissingTeam
	Error        string
}

type MissingPointsReport struct {
	GeneratedAt  time.Time
	Leagues      []LeagueMissingReport
	TotalMissing int
	FailedCount  int
}

// OK reports whether every league was checked and nothing is missing.
func (r MissingPointsReport) OK() bool {
	return r.TotalMissing == 0 && r.FailedCount == 0
}

type DiagnosticsService struct {
	teamRepo   team.Repository
	manualRepo manualpoints.Repository
	aliases    *teamname.AliasTable
	workers    int
	logger     *logging.Logger
	now        func() time.Time
}

func NewDiagnosticsService(
	teamRepo team.Repository,
	manualRepo manualpoints.Repository,
	aliases *teamname.AliasTable,
	workers int,
	logger *logging.Logger,
) *DiagnosticsService {
	if aliases == nil {
		aliases = teamname.DefaultAliasTable()
	}
	if workers <= 0 {
		workers = defaultDiagnosticsWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &DiagnosticsService{
		teamRepo:   teamRepo,
		manualRepo: manualRepo,
		aliases:    aliases,
		workers:    workers,
		logger:     logger,
		now:        time.Now,
	}
}

// MissingPoints lists, per league, the provider teams whose names do not
// resolve in the manual points table. A league whose teams cannot be fetched
// is reported with its error instead of failing the whole report.
func (s *DiagnosticsService) MissingPoints(ctx context.Context, leagueCodes []string) (MissingPointsReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DiagnosticsService.MissingPoints")
	defer span.End()

	codes, err := normalizeLeagueCodes(leagueCodes)
	if err != nil {
		return MissingPointsReport{}, err
	}

	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return MissingPointsReport{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	reports := make([]LeagueMissingReport, len(codes))
	var workers sync.WaitGroup
	for i, code := range codes {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			reports[i] = s.checkLeague(ctx, code)
		}); err != nil {
			workers.Done()
			return MissingPointsReport{}, fmt.Errorf("submit league check to worker pool: %w", err)
		}
	}
	workers.Wait()

	report := MissingPointsReport{
		GeneratedAt: s.now().UTC(),
		Leagues:     reports,
	}
	for _, item := range reports {
		report.TotalMissing += len(item.Missing)
		if item.Error != "" {
			report.FailedCount++
		}
	}
	return report, nil
}

func (s *DiagnosticsService) checkLeague(ctx context.Context, leagueCode string) LeagueMissingReport {
	report := LeagueMissingReport{LeagueCode: leagueCode, Missing: []MissingTeam{}}

	listing, err := s.teamRepo.ListByLeague(ctx, leagueCode)
	if err != nil {
		s.logger.WarnContext(ctx, "missing points check could not list teams", "league", leagueCode, "error", err)
		report.Error = provider.Reason(err)
		return report
	}

	var table manualpoints.Table
	if s.manualRepo != nil {
		table, err = s.manualRepo.GetByLeague(ctx, leagueCode)
		if err != nil {
			report.Error = fmt.Sprintf("load manual points: %v", err)
			return report
		}
	}

	keys := table.Keys()
	if len(keys) > maxKnownManualKeys {
		keys = keys[:maxKnownManualKeys]
	}

	report.TeamsChecked = len(listing.Teams)
	for _, item := range listing.Teams {
		if _, ok := table.Lookup(item.Name, s.aliases); ok {
			continue
		}

		normalized := teamname.Normalize(item.Name)
		missing := MissingTeam{
			TeamID:          item.ID,
			Name:            item.Name,
			Normalized:      normalized,
			KnownManualKeys: keys,
		}
		if target := s.aliases.Resolve(normalized); target != normalized {
			missing.SuggestedAliasTarget = target
		}
		report.Missing = append(report.Missing, missing)
	}

	return report
}

func normalizeLeagueCodes(leagueCodes []string) ([]string, error) {
	if len(leagueCodes) == 0 {
		return league.SupportedCodes(), nil
	}

	seen := make(map[string]struct{}, len(leagueCodes))
	out := make([]string, 0, len(leagueCodes))
	for _, raw := range leagueCodes {
		code := league.NormalizeCode(raw)
		if code == "" {
			continue
		}
		if _, ok := league.Lookup(code); !ok {
			return nil, fmt.Errorf("%w: unsupported league=%s", ErrInvalidInput, code)
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	if len(out) == 0 {
		return league.SupportedCodes(), nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		return leagueOrder(out[i]) < leagueOrder(out[j])
	})
	return out, nil
}

func leagueOrder(code string) int {
	for i, item := range league.SupportedCodes() {
		if item == code {
			return i
		}
	}
	return len(league.SupportedCodes())
}
