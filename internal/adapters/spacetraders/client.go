package spacetraders

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

const (
	DefaultBaseURL = "https://api.spacetraders.io/v2"

	maxResponseBytes = 4 << 20
	pageLimit        = 20
)

// Client talks to the SpaceTraders v2 HTTP API. Requests are never retried.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Limiter        *rate.Limiter
	RequestTimeout time.Duration
	UserAgent      string
}

// NewLimiter paces requests at perSecond with a burst of the same size.
func NewLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func (c Client) RegisterAgent(ctx context.Context, accountToken string, callsign domain.Callsign, faction domain.Faction) (domain.Registration, error) {
	body := registerRequest{Symbol: string(callsign), Faction: faction.Symbol()}

	var out envelope[registerResponse]
	if err := c.do(ctx, http.MethodPost, accountToken, body, &out, nil, "register"); err != nil {
		return domain.Registration{}, err
	}
	if out.Data.Token == "" {
		return domain.Registration{}, errors.New("register response missing token")
	}

	return domain.Registration{Token: out.Data.Token, Agent: out.Data.Agent.toDomain()}, nil
}

func (c Client) GetAgent(ctx context.Context, token string) (domain.Agent, error) {
	var out envelope[agentJSON]
	if err := c.do(ctx, http.MethodGet, token, nil, &out, nil, "my", "agent"); err != nil {
		return domain.Agent{}, err
	}
	return out.Data.toDomain(), nil
}

func (c Client) ListContracts(ctx context.Context, token string) ([]domain.Contract, error) {
	items, err := paginate[contractJSON](ctx, c, token, nil, "my", "contracts")
	if err != nil {
		return nil, err
	}

	contracts := make([]domain.Contract, 0, len(items))
	for _, item := range items {
		contracts = append(contracts, item.toDomain())
	}
	return contracts, nil
}

func (c Client) GetContract(ctx context.Context, token string, id string) (domain.Contract, error) {
	var out envelope[contractJSON]
	if err := c.do(ctx, http.MethodGet, token, nil, &out, nil, "my", "contracts", id); err != nil {
		return domain.Contract{}, err
	}
	return out.Data.toDomain(), nil
}

func (c Client) AcceptContract(ctx context.Context, token string, id string) (domain.Contract, error) {
	var out envelope[acceptResponse]
	if err := c.do(ctx, http.MethodPost, token, struct{}{}, &out, nil, "my", "contracts", id, "accept"); err != nil {
		return domain.Contract{}, err
	}
	return out.Data.Contract.toDomain(), nil
}

func (c Client) ListWaypoints(ctx context.Context, token string, query domain.WaypointQuery) ([]domain.Waypoint, error) {
	if query.System == "" {
		return nil, errors.New("system symbol is required")
	}

	filters := url.Values{}
	if query.Type != nil {
		filters.Set("type", query.Type.Symbol())
	}
	if query.Trait != nil {
		filters.Set("traits", query.Trait.Symbol())
	}

	items, err := paginate[waypointJSON](ctx, c, token, filters, "systems", query.System, "waypoints")
	if err != nil {
		return nil, err
	}

	waypoints := make([]domain.Waypoint, 0, len(items))
	for _, item := range items {
		waypoints = append(waypoints, item.toDomain())
	}
	return waypoints, nil
}

func (c Client) GetWaypoint(ctx context.Context, token string, symbol string) (domain.Waypoint, error) {
	system, err := domain.SystemOfWaypoint(symbol)
	if err != nil {
		return domain.Waypoint{}, err
	}

	var out envelope[waypointJSON]
	if err := c.do(ctx, http.MethodGet, token, nil, &out, nil, "systems", system, "waypoints", symbol); err != nil {
		return domain.Waypoint{}, err
	}
	return out.Data.toDomain(), nil
}

func paginate[T any](ctx context.Context, c Client, token string, filters url.Values, segments ...string) ([]T, error) {
	var items []T
	for page := 1; ; page++ {
		query := url.Values{}
		for key, values := range filters {
			query[key] = values
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(pageLimit))

		var out envelope[[]T]
		if err := c.do(ctx, http.MethodGet, token, nil, &out, query, segments...); err != nil {
			return nil, err
		}
		items = append(items, out.Data...)

		if out.Meta == nil || len(out.Data) == 0 || len(items) >= out.Meta.Total {
			return items, nil
		}
	}
}

func (c Client) do(ctx context.Context, method string, token string, body any, out any, query url.Values, segments ...string) error {
	endpoint, err := c.endpoint(query, segments...)
	if err != nil {
		return err
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("wait for rate limiter: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	limited := io.LimitReader(resp.Body, maxResponseBytes)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp.StatusCode, limited)
	}

	if err := json.NewDecoder(limited).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}

func (c Client) endpoint(query url.Values, segments ...string) (string, error) {
	baseURL := c.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint := parsed.JoinPath(segments...)
	if len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String(), nil
}

func (c Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func decodeAPIError(statusCode int, body io.Reader) error {
	apiErr := &APIError{StatusCode: statusCode}

	var payload errorEnvelope
	if err := json.NewDecoder(body).Decode(&payload); err == nil {
		apiErr.Message = payload.Error.Message
		apiErr.Code = payload.Error.Code
	}
	return apiErr
}
