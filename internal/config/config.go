package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                            string
	ServiceName                       string
	ServiceVersion                    string
	HTTPAddr                          string
	ReadTimeout                       time.Duration
	WriteTimeout                      time.Duration
	ShutdownTimeout                   time.Duration
	LogLevel                          logging.Level
	CORSAllowedOrigins                []string
	FootballDataBaseURL               string
	FootballDataToken                 string
	FootballDataTimeout               time.Duration
	FootballDataRetryBackoffs         []time.Duration
	FootballDataCircuitEnabled        bool
	FootballDataCircuitFailureCount   int
	FootballDataCircuitOpenTimeout    time.Duration
	FootballDataCircuitHalfOpenMaxReq int
	PointsManualOnly                  bool
	PointsResolveTimeout              time.Duration
	CacheStandingsTTL                 time.Duration
	CacheTeamsTTL                     time.Duration
	CacheFixturesTTL                  time.Duration
	CacheMaxEntries                   int
	CacheStaleRetention               time.Duration
	CacheSweepSchedule                string
	DiagnosticsWorkers                int
	MetricsEnabled                    bool
	PprofEnabled                      bool
	PprofAddr                         string
	UptraceEnabled                    bool
	UptraceDSN                        string
	PyroscopeEnabled                  bool
	PyroscopeServerAddress            string
	PyroscopeAppName                  string
	PyroscopeAuthToken                string
	PyroscopeBasicAuthUser            string
	PyroscopeBasicAuthPassword        string
	PyroscopeUploadRate               time.Duration
}

// FootballDataConfigured reports whether a provider token is present.
func (c Config) FootballDataConfigured() bool {
	return strings.TrimSpace(c.FootballDataToken) != ""
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	logLevel, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}

	readTimeout, err := getEnvAsPositiveDuration("APP_READ_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	writeTimeout, err := getEnvAsPositiveDuration("APP_WRITE_TIMEOUT", "15s")
	if err != nil {
		return Config{}, err
	}
	shutdownTimeout, err := getEnvAsPositiveDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := getEnvAsPositiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	footballDataTimeout, err := getEnvAsPositiveDuration("FOOTBALL_DATA_TIMEOUT", "10s")
	if err != nil {
		return Config{}, err
	}
	footballDataRetryBackoffs, err := parseDurationList(getEnv("FOOTBALL_DATA_RETRY_BACKOFFS", "200ms,500ms"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_RETRY_BACKOFFS: %w", err)
	}
	footballDataCircuitEnabled, err := strconv.ParseBool(getEnv("FOOTBALL_DATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_ENABLED: %w", err)
	}
	footballDataCircuitFailureCount, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if footballDataCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	footballDataCircuitOpenTimeout, err := getEnvAsPositiveDuration("FOOTBALL_DATA_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	footballDataCircuitHalfOpenMaxReq, err := getEnvAsInt("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if footballDataCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pointsManualOnly, err := strconv.ParseBool(getEnv("POINTS_MANUAL_ONLY", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse POINTS_MANUAL_ONLY: %w", err)
	}
	pointsResolveTimeout, err := getEnvAsPositiveDuration("POINTS_RESOLVE_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}

	cacheStandingsTTL, err := getEnvAsPositiveDuration("CACHE_STANDINGS_TTL", "60m")
	if err != nil {
		return Config{}, err
	}
	cacheTeamsTTL, err := getEnvAsPositiveDuration("CACHE_TEAMS_TTL", "60m")
	if err != nil {
		return Config{}, err
	}
	cacheFixturesTTL, err := getEnvAsPositiveDuration("CACHE_FIXTURES_TTL", "10m")
	if err != nil {
		return Config{}, err
	}
	cacheMaxEntries, err := getEnvAsInt("CACHE_MAX_ENTRIES", 512)
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_MAX_ENTRIES: %w", err)
	}
	if cacheMaxEntries < 0 {
		return Config{}, fmt.Errorf("CACHE_MAX_ENTRIES must be >= 0")
	}
	cacheStaleRetention, err := time.ParseDuration(getEnv("CACHE_STALE_RETENTION", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_STALE_RETENTION: %w", err)
	}
	if cacheStaleRetention < 0 {
		return Config{}, fmt.Errorf("CACHE_STALE_RETENTION must be >= 0")
	}

	diagnosticsWorkers, err := getEnvAsInt("DIAGNOSTICS_WORKERS", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse DIAGNOSTICS_WORKERS: %w", err)
	}
	if diagnosticsWorkers < 1 {
		return Config{}, fmt.Errorf("DIAGNOSTICS_WORKERS must be >= 1")
	}

	cfg := Config{
		AppEnv:                            appEnv,
		ServiceName:                       getEnv("APP_SERVICE_NAME", "fixture-compare-api"),
		ServiceVersion:                    getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                          getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                       readTimeout,
		WriteTimeout:                      writeTimeout,
		ShutdownTimeout:                   shutdownTimeout,
		LogLevel:                          logLevel,
		CORSAllowedOrigins:                splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		FootballDataBaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", "https://api.football-data.org/v4")), "/"),
		FootballDataToken:                 strings.TrimSpace(getEnv("FOOTBALL_DATA_API_TOKEN", getEnv("FOOTBALL_API_TOKEN", ""))),
		FootballDataTimeout:               footballDataTimeout,
		FootballDataRetryBackoffs:         footballDataRetryBackoffs,
		FootballDataCircuitEnabled:        footballDataCircuitEnabled,
		FootballDataCircuitFailureCount:   footballDataCircuitFailureCount,
		FootballDataCircuitOpenTimeout:    footballDataCircuitOpenTimeout,
		FootballDataCircuitHalfOpenMaxReq: footballDataCircuitHalfOpenMaxReq,
		PointsManualOnly:                  pointsManualOnly,
		PointsResolveTimeout:              pointsResolveTimeout,
		CacheStandingsTTL:                 cacheStandingsTTL,
		CacheTeamsTTL:                     cacheTeamsTTL,
		CacheFixturesTTL:                  cacheFixturesTTL,
		CacheMaxEntries:                   cacheMaxEntries,
		CacheStaleRetention:               cacheStaleRetention,
		CacheSweepSchedule:                strings.TrimSpace(getEnv("CACHE_SWEEP_SCHEDULE", "@every 15m")),
		DiagnosticsWorkers:                diagnosticsWorkers,
		MetricsEnabled:                    metricsEnabled,
		PprofEnabled:                      pprofEnabled,
		PprofAddr:                         pprofAddr,
		UptraceEnabled:                    uptraceEnabled,
		UptraceDSN:                        uptraceDSN,
		PyroscopeEnabled:                  pyroscopeEnabled,
		PyroscopeServerAddress:            pyroscopeServerAddress,
		PyroscopeAuthToken:                strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:            strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:               pyroscopeUploadRate,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.FootballDataBaseURL == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_BASE_URL cannot be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsPositiveDuration(key, fallback string) (time.Duration, error) {
	out, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if out <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

// parseDurationList reads a comma separated retry schedule. "none" disables retries.
func parseDurationList(raw string) ([]time.Duration, error) {
	if strings.EqualFold(strings.TrimSpace(raw), "none") {
		return []time.Duration{}, nil
	}

	items := splitCSV(raw)
	out := make([]time.Duration, 0, len(items))
	for _, item := range items {
		d, err := time.ParseDuration(item)
		if err != nil {
			return nil, err
		}
		if d < 0 {
			return nil, fmt.Errorf("duration %q must be >= 0", item)
		}
		out = append(out, d)
	}
	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
