package sportmonks

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/fixture"
	"github.com/matchdaylabs/fantasy-engine/internal/domain/scoring"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/logging"
	"github.com/matchdaylabs/fantasy-engine/internal/platform/resilience"
	"github.com/matchdaylabs/fantasy-engine/internal/usecase"
)

const (
	defaultBaseURL = "https://api.sportmonks.com/v3/football"
	defaultSeason  = "latest"
)

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errSportMonksTransient = crerr.New("sportmonks transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	LeagueID       int64
	Season         string
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	leagueID       int64
	season         string
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
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
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	season := strings.TrimSpace(cfg.Season)
	if season == "" {
		season = defaultSeason
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		leagueID:       cfg.LeagueID,
		season:         season,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// ListFixtures returns every fixture of the given round. An empty round on
// the provider side yields an empty slice, not an error.
func (c *Client) ListFixtures(ctx context.Context, round int) ([]fixture.Fixture, error) {
	if round <= 0 {
		return nil, fmt.Errorf("round must be greater than zero")
	}

	query := map[string]string{
		"leagues": strconv.FormatInt(c.leagueID, 10),
		"season":  c.season,
		"round":   strconv.Itoa(round),
	}

	var envelope fixturesEnvelope
	if _, err := c.doJSON(ctx, "/fixtures", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch fixtures round=%d: %w", round, err)
	}

	out := make([]fixture.Fixture, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		if item.ID <= 0 {
			continue
		}
		home, away := item.clubRefIDs()
		row := fixture.Fixture{
			ExternalID:    item.ID,
			HomeClubRefID: home,
			AwayClubRefID: away,
			Status:        fixture.NormalizeStatus(item.status()),
		}
		if parsed := parseProviderDateTime(item.StartingAt); parsed != nil {
			row.KickoffAt = *parsed
		}
		out = append(out, row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].KickoffAt.Equal(out[j].KickoffAt) {
			return out[i].KickoffAt.Before(out[j].KickoffAt)
		}
		return out[i].ExternalID < out[j].ExternalID
	})

	return out, nil
}

// ListFixtureIDs returns the external ids of the round's fixtures, in
// kickoff order.
func (c *Client) ListFixtureIDs(ctx context.Context, round int) ([]int64, error) {
	fixtures, err := c.ListFixtures(ctx, round)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(fixtures))
	for _, item := range fixtures {
		ids = append(ids, item.ExternalID)
	}
	return ids, nil
}

// FetchPlayerStats returns a player's stat line for one fixture. The second
// return value is false when the provider has no line for the pair, which is
// normal for players whose club is not in the fixture or who did not feature.
func (c *Client) FetchPlayerStats(ctx context.Context, fixtureID, playerRefID int64) (scoring.MatchStats, bool, error) {
	if fixtureID <= 0 || playerRefID <= 0 {
		return scoring.MatchStats{}, false, fmt.Errorf("fixture and player ids must be greater than zero")
	}

	path := fmt.Sprintf("/fixtures/%d/player-stats/%d", fixtureID, playerRefID)

	var envelope playerStatsEnvelope
	if _, err := c.doJSON(ctx, path, nil, &envelope); err != nil {
		return scoring.MatchStats{}, false, fmt.Errorf("fetch player stats fixture_id=%d player_ref_id=%d: %w", fixtureID, playerRefID, err)
	}
	if envelope.Data == nil {
		return scoring.MatchStats{}, false, nil
	}
	return *envelope.Data, true, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) ([]byte, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "sportmonks circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	values.Set("api_token", c.token)

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isSportMonksCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return nil, fmt.Errorf("decode provider payload: %w", err)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errSportMonksTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errSportMonksTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else {
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSportMonksTransient, resp.StatusCode, abbreviateBody(raw))
				} else {
					return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportmonks request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	value = apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
	return value
}

func parseProviderDateTime(raw string) *time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil
	}

	layouts := []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z07:00",
		time.RFC3339,
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			v := parsed.UTC()
			return &v
		}
	}
	return nil
}

func isSportMonksCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSportMonksTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("api_token") {
		query.Set("api_token", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
