package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/fixture-compare/external/footballdata"
	"github.com/riskibarqy/fixture-compare/internal/config"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/teamname"
	cacherepo "github.com/riskibarqy/fixture-compare/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fixture-compare/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fixture-compare/internal/interfaces/httpapi"
	"github.com/riskibarqy/fixture-compare/internal/platform/cache"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/platform/resilience"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
)

// Services is the wired use case layer shared by the HTTP server and the CLI tools.
type Services struct {
	League         *usecase.LeagueService
	Team           *usecase.TeamService
	LeagueStanding *usecase.LeagueStandingService
	Fixture        *usecase.FixtureService
	Points         *usecase.PointsService
	Projection     *usecase.ProjectionService
	TeamName       *usecase.TeamNameService
	Diagnostics    *usecase.DiagnosticsService
	ProviderStatus *usecase.ProviderStatusService

	sweeper *cache.Sweeper
}

func NewServices(cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	manualRepo, err := memory.LoadManualPointsRepository()
	if err != nil {
		return nil, fmt.Errorf("load manual points: %w", err)
	}

	aliases := teamname.DefaultAliasTable()
	for _, dup := range aliases.Duplicates() {
		logger.Warn("duplicate team alias", "key", dup.Key, "previous", dup.Previous, "current", dup.Current)
	}

	client := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL:       cfg.FootballDataBaseURL,
		Token:         cfg.FootballDataToken,
		Timeout:       cfg.FootballDataTimeout,
		RetryBackoffs: cfg.FootballDataRetryBackoffs,
		Logger:        logger.Component("footballdata"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.FootballDataCircuitEnabled,
			FailureThreshold: cfg.FootballDataCircuitFailureCount,
			OpenTimeout:      cfg.FootballDataCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.FootballDataCircuitHalfOpenMaxReq,
		},
	})

	storeOpts := []cache.Option{
		cache.WithMaxEntries(cfg.CacheMaxEntries),
		cache.WithStaleRetention(cfg.CacheStaleRetention),
	}
	standingsStore := cache.NewStore(cfg.CacheStandingsTTL, storeOpts...)
	teamsStore := cache.NewStore(cfg.CacheTeamsTTL, storeOpts...)
	fixturesStore := cache.NewStore(cfg.CacheFixturesTTL, storeOpts...)

	cacheLogger := logger.Component("cache")
	leagueRepo := memory.NewLeagueRepository(league.Supported())
	standingRepo := cacherepo.NewStandingRepository(client, standingsStore, cacheLogger)
	teamRepo := cacherepo.NewTeamRepository(client, teamsStore, cacheLogger)
	fixtureRepo := cacherepo.NewFixtureRepository(client, fixturesStore, cacheLogger)

	// Without a token live lookups can only fail, so points resolve from the manual table.
	var liveStandings leaguestanding.Repository = standingRepo
	if !client.Configured() {
		logger.Warn("football-data token not set, points resolve from the manual table only")
		liveStandings = nil
	}

	pointsSvc := usecase.NewPointsService(
		liveStandings,
		manualRepo,
		aliases,
		usecase.PointsConfig{
			ManualOnly:     cfg.PointsManualOnly,
			ResolveTimeout: cfg.PointsResolveTimeout,
		},
		logger.Component("points"),
	)

	return &Services{
		League:         usecase.NewLeagueService(leagueRepo),
		Team:           usecase.NewTeamService(leagueRepo, teamRepo),
		LeagueStanding: usecase.NewLeagueStandingService(leagueRepo, standingRepo),
		Fixture:        usecase.NewFixtureService(fixtureRepo),
		Points:         pointsSvc,
		Projection:     usecase.NewProjectionService(pointsSvc),
		TeamName:       usecase.NewTeamNameService(aliases),
		Diagnostics: usecase.NewDiagnosticsService(
			teamRepo,
			manualRepo,
			aliases,
			cfg.DiagnosticsWorkers,
			logger.Component("diagnostics"),
		),
		ProviderStatus: usecase.NewProviderStatusService(client),
		sweeper: cache.NewSweeper(logger.Component("cache_sweeper"), map[string]*cache.Store{
			"standings": standingsStore,
			"teams":     teamsStore,
			"fixtures":  fixturesStore,
		}),
	}, nil
}

// App owns the HTTP server and the background cache sweeper.
type App struct {
	Server   *http.Server
	services *Services
	schedule string
	logger   *logging.Logger
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	services, err := NewServices(cfg, logger)
	if err != nil {
		return nil, err
	}

	handler := httpapi.NewHandler(
		services.League,
		services.Team,
		services.LeagueStanding,
		services.Fixture,
		services.Points,
		services.Projection,
		services.TeamName,
		services.Diagnostics,
		services.ProviderStatus,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.MetricsEnabled)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		services: services,
		schedule: cfg.CacheSweepSchedule,
		logger:   logger,
	}, nil
}

// StartBackground schedules the cache sweeper.
func (a *App) StartBackground() error {
	return a.services.sweeper.Start(a.schedule)
}

// Shutdown drains the HTTP server, then stops the sweeper.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Server.Shutdown(ctx)
	a.services.sweeper.Stop(ctx)
	return err
}
