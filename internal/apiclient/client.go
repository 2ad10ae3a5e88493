package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"roleradar-dashboard/internal/domain"
)

const (
	SummaryPath       = "/api/summary"
	CompaniesPath     = "/api/companies"
	OpportunitiesPath = "/api/opportunities"
)

var (
	// ErrTransport covers unreachable hosts, cancelled requests and
	// non-2xx responses.
	ErrTransport = errors.New("apiclient: transport")
	// ErrDecode means the body was not the expected JSON.
	ErrDecode = errors.New("apiclient: decode")
)

type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	// Timeout bounds each request; zero means no per-request deadline.
	Timeout time.Duration
	Limiter *HostLimiter
}

// Client reads the dashboard endpoints of the RoleRadar API.
type Client struct {
	base    *url.URL
	hc      *http.Client
	timeout time.Duration
	limiter *HostLimiter
}

func New(cfg Config) (*Client, error) {
	raw := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, fmt.Errorf("apiclient: base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("apiclient: invalid base url %q", cfg.BaseURL)
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}
	return &Client{base: base, hc: hc, timeout: cfg.Timeout, limiter: cfg.Limiter}, nil
}

func (c *Client) Summary(ctx context.Context) (domain.Summary, error) {
	var s domain.Summary
	err := c.getJSON(ctx, SummaryPath, nil, &s)
	return s, err
}

func (c *Client) Companies(ctx context.Context, limit int) ([]domain.Company, error) {
	var out []domain.Company
	err := c.getJSON(ctx, CompaniesPath, limitQuery(limit), &out)
	return out, err
}

func (c *Client) Opportunities(ctx context.Context, limit int) ([]domain.Opportunity, error) {
	var out []domain.Opportunity
	err := c.getJSON(ctx, OpportunitiesPath, limitQuery(limit), &out)
	return out, err
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + path
	u.RawQuery = q.Encode()
	return u.String()
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	u := c.endpoint(path, q)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if err := c.limiter.WaitURL(ctx, u); err != nil {
		return fmt.Errorf("%w: rate limit wait %s: %w", ErrTransport, path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request %s: %w", ErrTransport, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "RoleRadarDashboard/1.0")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: get %s: %w", ErrTransport, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: get %s: status %d: %s", ErrTransport, path, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return nil
}
