package footballdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fixture-compare/internal/domain/fixture"
	"github.com/riskibarqy/fixture-compare/internal/domain/league"
	"github.com/riskibarqy/fixture-compare/internal/domain/leaguestanding"
	"github.com/riskibarqy/fixture-compare/internal/domain/provider"
	"github.com/riskibarqy/fixture-compare/internal/domain/team"
	"github.com/riskibarqy/fixture-compare/internal/platform/logging"
	"github.com/riskibarqy/fixture-compare/internal/platform/metrics"
	"github.com/riskibarqy/fixture-compare/internal/platform/resilience"
	"github.com/riskibarqy/fixture-compare/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	DefaultBaseURL = "https://api.football-data.org/v4"

	headerAuthToken         = "X-Auth-Token"
	headerRequestsAvailable = "X-Requests-Available-Minute"
	headerCounterReset      = "X-RequestCounter-Reset"

	standingTypeTotal = "TOTAL"
	maxBodyBytes      = 6 << 20
	userAgent         = "fixture-compare"
)

var errTransient = crerr.New("football-data transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	RetryBackoffs  []time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the football-data.org v4 API. Transport failures are
// retried on the configured schedule; HTTP error statuses are returned as
// *provider.UpstreamError without retrying.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	token         string
	retryBackoffs []time.Duration
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
	flight        resilience.SingleFlight
	now           func() time.Time

	rateMu    sync.RWMutex
	rateLimit provider.RateLimit
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 10 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	backoffs := cfg.RetryBackoffs
	if backoffs == nil {
		backoffs = resilience.DefaultRetryBackoffs()
	}

	return &Client{
		httpClient:    httpClient,
		baseURL:       baseURL,
		token:         strings.TrimSpace(cfg.Token),
		retryBackoffs: append([]time.Duration(nil), backoffs...),
		logger:        logger,
		breaker:       resilience.NewCircuitBreakerFromConfig(cfg.CircuitBreaker),
		flight:        resilience.SingleFlight{Timeout: fetchBudget(httpClient.Timeout, backoffs)},
		now:           time.Now,
	}
}

// fetchBudget is the longest a shared fetch may run: every attempt at the
// HTTP timeout plus every retry wait.
func fetchBudget(attemptTimeout time.Duration, backoffs []time.Duration) time.Duration {
	budget := attemptTimeout * time.Duration(len(backoffs)+1)
	for _, wait := range backoffs {
		budget += wait
	}
	return budget
}

// Configured reports whether an API token is set.
func (c *Client) Configured() bool {
	return c.token != ""
}

func (c *Client) FetchStandings(ctx context.Context, leagueCode string) ([]leaguestanding.Standing, error) {
	code := league.NormalizeCode(leagueCode)
	if code == "" {
		return nil, fmt.Errorf("%w: league code is required", usecase.ErrInvalidInput)
	}

	var envelope standingsEnvelope
	path := "/competitions/" + url.PathEscape(code) + "/standings"
	if err := c.doJSON(ctx, "standings", path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch standings league=%s: %w", code, err)
	}

	return mapStandings(code, envelope), nil
}

func (c *Client) FetchTeams(ctx context.Context, leagueCode string) ([]team.Team, error) {
	code := league.NormalizeCode(leagueCode)
	if code == "" {
		return nil, fmt.Errorf("%w: league code is required", usecase.ErrInvalidInput)
	}

	var envelope teamsEnvelope
	path := "/competitions/" + url.PathEscape(code) + "/teams"
	if err := c.doJSON(ctx, "teams", path, nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch teams league=%s: %w", code, err)
	}

	out := make([]team.Team, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		if item.ID <= 0 || strings.TrimSpace(item.Name) == "" {
			continue
		}
		out = append(out, team.Team{
			ID:         item.ID,
			LeagueCode: code,
			Name:       strings.TrimSpace(item.Name),
			ShortName:  strings.TrimSpace(item.ShortName),
			TLA:        strings.TrimSpace(item.TLA),
			Crest:      strings.TrimSpace(item.Crest),
		})
	}
	return out, nil
}

func (c *Client) FetchTeamMatches(ctx context.Context, teamID int64) ([]fixture.Match, error) {
	if teamID <= 0 {
		return nil, fmt.Errorf("%w: team id must be greater than zero", usecase.ErrInvalidInput)
	}

	query := url.Values{}
	query.Set("status", fixture.StatusScheduled+","+fixture.StatusFinished)

	var envelope matchesEnvelope
	path := "/teams/" + strconv.FormatInt(teamID, 10) + "/matches"
	if err := c.doJSON(ctx, "matches", path, query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch matches team_id=%d: %w", teamID, err)
	}

	out := make([]fixture.Match, 0, len(envelope.Matches))
	for _, item := range envelope.Matches {
		out = append(out, mapMatch(item))
	}
	return out, nil
}

// Status probes the provider with HEAD /competitions. It never returns an
// error; failures are described in the returned status.
func (c *Client) Status(ctx context.Context) provider.Status {
	status := provider.Status{
		Configured:   c.Configured(),
		CircuitState: string(c.breaker.State()),
		CheckedAt:    c.now().UTC(),
	}
	if !status.Configured {
		status.Error = "football-data api token is not set"
		status.RateLimit = c.RateLimit()
		return status
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/competitions", nil)
	if err != nil {
		status.Error = fmt.Sprintf("build request: %v", err)
		return status
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	status.Latency = time.Since(start)
	if err != nil {
		metrics.RecordProviderRequest("status", "transport_error", status.Latency)
		status.Error = c.sanitize(err.Error())
		status.RateLimit = c.RateLimit()
		return status
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()

	c.captureRateLimit(ctx, resp.Header)
	metrics.RecordProviderRequest("status", strconv.Itoa(resp.StatusCode), status.Latency)
	status.StatusCode = resp.StatusCode
	status.Reachable = resp.StatusCode >= 200 && resp.StatusCode < 300
	if !status.Reachable {
		status.Error = http.StatusText(resp.StatusCode)
	}
	status.RateLimit = c.RateLimit()
	return status
}

// RateLimit returns the last quota snapshot seen on any response.
func (c *Client) RateLimit() provider.RateLimit {
	c.rateMu.RLock()
	defer c.rateMu.RUnlock()
	return c.rateLimit
}

func (c *Client) doJSON(ctx context.Context, endpoint, path string, query url.Values, target any) error {
	if !c.Configured() {
		return fmt.Errorf("%w: football-data api token is not set", usecase.ErrNotConfigured)
	}

	fullURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	start := time.Now()
	out, err, _ := c.flight.Do(ctx, fullURL, func(fetchCtx context.Context) (any, error) {
		var raw []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			raw, reqErr = resilience.Retry(fetchCtx, c.retryBackoffs, func() ([]byte, error) {
				return c.executeRequest(fetchCtx, path, fullURL)
			}, func(retryErr error, wait time.Duration) {
				c.logger.WarnContext(fetchCtx, "football-data request failed, retrying", "path", path, "wait", wait.String(), "error", retryErr)
			})
			return reqErr
		}, isCircuitFailure)
		return raw, execErr
	})
	metrics.RecordProviderRequest(endpoint, requestResult(err), time.Since(start))
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "football-data circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return fmt.Errorf("%w: football data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		if isCircuitFailure(err) {
			c.logger.WarnContext(ctx, "football-data request failed", "path", path, "error", err)
			return fmt.Errorf("%w: %w", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, path, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, resilience.Permanent(fmt.Errorf("build request: %w", err))
	}
	c.decorate(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, resilience.Permanent(ctxErr)
		}
		return nil, fmt.Errorf("%w: send request: %s", errTransient, c.sanitize(err.Error()))
	}
	defer resp.Body.Close()

	c.captureRateLimit(ctx, resp.Header)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes)); err != nil {
		return nil, fmt.Errorf("%w: read response body: %v", errTransient, err)
	}
	raw := append([]byte(nil), buf.B...)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	return nil, resilience.Permanent(&provider.UpstreamError{
		StatusCode: resp.StatusCode,
		Message:    upstreamMessage(raw),
		Path:       path,
	})
}

func (c *Client) decorate(req *http.Request) {
	req.Header.Set(headerAuthToken, c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
}

func (c *Client) captureRateLimit(ctx context.Context, header http.Header) {
	available, hasAvailable := parseHeaderInt(header.Get(headerRequestsAvailable))
	reset, hasReset := parseHeaderInt(header.Get(headerCounterReset))
	if !hasAvailable && !hasReset {
		return
	}

	snapshot := provider.RateLimit{ObservedAt: c.now().UTC()}
	if hasAvailable {
		snapshot.RequestsAvailable = &available
		metrics.RecordRequestsAvailable(available)
	}
	if hasReset {
		snapshot.ResetSeconds = &reset
	}

	c.rateMu.Lock()
	c.rateLimit = snapshot
	c.rateMu.Unlock()

	if snapshot.Exhausted() {
		c.logger.WarnContext(ctx, "football-data minute quota exhausted", "reset_seconds", reset)
	}
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return value
}

func mapStandings(code string, envelope standingsEnvelope) []leaguestanding.Standing {
	if len(envelope.Standings) == 0 {
		return []leaguestanding.Standing{}
	}

	group := envelope.Standings[0]
	for _, item := range envelope.Standings {
		if strings.EqualFold(item.Type, standingTypeTotal) {
			group = item
			break
		}
	}

	out := make([]leaguestanding.Standing, 0, len(group.Table))
	for _, row := range group.Table {
		goalDifference := row.GoalsFor - row.GoalsAgainst
		if row.GoalDifference != nil {
			goalDifference = *row.GoalDifference
		}
		form := ""
		if row.Form != nil {
			form = *row.Form
		}

		name := strings.TrimSpace(row.Team.Name)
		if name == "" {
			name = "Unknown"
		}
		out = append(out, leaguestanding.Standing{
			LeagueCode: code,
			Position:   row.Position,
			Team: leaguestanding.TeamRef{
				ID:        row.Team.ID,
				Name:      name,
				ShortName: firstNonEmpty(row.Team.ShortName, name),
				TLA:       strings.TrimSpace(row.Team.TLA),
				Crest:     strings.TrimSpace(row.Team.Crest),
			},
			Played:         row.PlayedGames,
			Won:            row.Won,
			Draw:           row.Draw,
			Lost:           row.Lost,
			GoalsFor:       row.GoalsFor,
			GoalsAgainst:   row.GoalsAgainst,
			GoalDifference: goalDifference,
			Points:         row.Points,
			Form:           form,
		})
	}
	return out
}

func mapMatch(item matchItem) fixture.Match {
	m := fixture.Match{
		ID:              item.ID,
		CompetitionCode: strings.TrimSpace(item.Competition.Code),
		CompetitionName: strings.TrimSpace(item.Competition.Name),
		Status:          strings.TrimSpace(item.Status),
		HomeTeam: fixture.TeamRef{
			ID:    item.HomeTeam.ID,
			Name:  strings.TrimSpace(item.HomeTeam.Name),
			Crest: strings.TrimSpace(item.HomeTeam.Crest),
		},
		AwayTeam: fixture.TeamRef{
			ID:    item.AwayTeam.ID,
			Name:  strings.TrimSpace(item.AwayTeam.Name),
			Crest: strings.TrimSpace(item.AwayTeam.Crest),
		},
	}
	if item.Matchday != nil {
		m.Matchday = *item.Matchday
	}
	if kickoff, err := time.Parse(time.RFC3339, strings.TrimSpace(item.UTCDate)); err == nil {
		m.KickoffAt = kickoff.UTC()
	}
	return m
}

func upstreamMessage(raw []byte) string {
	var body errorEnvelope
	if err := sonic.Unmarshal(raw, &body); err == nil {
		if message := strings.TrimSpace(body.Message); message != "" {
			return message
		}
	}
	return abbreviateBody(raw)
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, errTransient) {
		return true
	}
	var upstreamErr *provider.UpstreamError
	if stderrors.As(err, &upstreamErr) {
		return upstreamErr.StatusCode == http.StatusTooManyRequests || upstreamErr.StatusCode >= http.StatusInternalServerError
	}
	return false
}

func requestResult(err error) string {
	if err == nil {
		return "ok"
	}
	var upstreamErr *provider.UpstreamError
	switch {
	case stderrors.As(err, &upstreamErr):
		return strconv.Itoa(upstreamErr.StatusCode)
	case stderrors.Is(err, resilience.ErrCircuitOpen):
		return "circuit_open"
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "transport_error"
	}
}

func parseHeaderInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
