// Package upstream is the HTTP client for the shoe record server's JSON API.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	domainauth "github.com/shoetrack/shoetrack-ui/internal/domain/auth"
	apperrors "github.com/shoetrack/shoetrack-ui/internal/errors"
	"github.com/shoetrack/shoetrack-ui/internal/observability/metrics"
)

const maxResponseBytes = 4 << 20

// Config describes how to reach the record server.
type Config struct {
	BaseURL   string
	APIPrefix string
	Timeout   time.Duration
	APIKey    string
	// Client supplies the transport. Its Jar is replaced per call.
	Client  *http.Client
	Metrics metrics.Sink
	Logger  *slog.Logger
}

// Client implements the ports gateways against the record server.
// It is safe for concurrent use; no per-user state is kept on it.
type Client struct {
	base    *url.URL
	prefix  string
	apiKey  string
	client  *http.Client
	metrics metrics.Sink
	logger  *slog.Logger
}

// NewClient validates cfg and builds a client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if raw == "" {
		return nil, errors.New("upstream base url is required")
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse upstream base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("upstream base url must be http(s), got %q", base.Scheme)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	sink := cfg.Metrics
	if sink == nil {
		sink = metrics.Noop{}
	}

	prefix := strings.Trim(strings.TrimSpace(cfg.APIPrefix), "/")
	if prefix != "" {
		prefix = "/" + prefix
	}

	return &Client{
		base:    base,
		prefix:  prefix,
		apiKey:  strings.TrimSpace(cfg.APIKey),
		client:  hc,
		metrics: sink,
		logger:  logger.With("component", "upstream"),
	}, nil
}

// request is one call to the record server.
type request struct {
	name   string // metric and log label
	method string
	path   string // escaped, relative to the API prefix
	query  url.Values
	body   any
	creds  *domainauth.Credentials
}

// response is a completed exchange. Transport failures never produce one.
type response struct {
	name    string
	status  int
	body    []byte
	cookies []domainauth.UpstreamCookie
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.base.String() + c.prefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) newJar(creds *domainauth.Credentials) (*cookiejar.Jar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	if creds != nil && len(creds.Cookies) > 0 {
		cookies := make([]*http.Cookie, 0, len(creds.Cookies))
		for _, ck := range creds.Cookies {
			path := ck.Path
			if path == "" {
				path = "/"
			}
			cookies = append(cookies, &http.Cookie{Name: ck.Name, Value: ck.Value, Path: path})
		}
		jar.SetCookies(c.base, cookies)
	}
	return jar, nil
}

func (c *Client) send(ctx context.Context, req request) (*response, error) {
	start := time.Now()

	jar, err := c.newJar(req.creds)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "prepare upstream request")
	}

	var body io.Reader
	if req.body != nil {
		payload, marshalErr := json.Marshal(req.body)
		if marshalErr != nil {
			return nil, apperrors.Wrap(marshalErr, apperrors.ErrCodeInternal, "encode upstream request")
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.endpoint(req.path, req.query), body)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "create upstream request")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set("X-API-Key", c.apiKey)
	}

	hc := *c.client
	hc.Jar = jar

	resp, err := hc.Do(httpReq)
	if err != nil {
		mapped := apperrors.MapTransportError(err)
		c.metrics.UpstreamRequest(req.name, metrics.ResultError, time.Since(start), mapped)
		if !apperrors.IsCanceled(mapped) {
			c.logger.WarnContext(ctx, "upstream request failed", "endpoint", req.name, "error", err)
		}
		return nil, mapped
	}

	raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	closeErr := resp.Body.Close()
	if readErr != nil {
		mapped := apperrors.MapTransportError(errors.Join(readErr, closeErr))
		c.metrics.UpstreamRequest(req.name, metrics.ResultError, time.Since(start), mapped)
		c.logger.WarnContext(ctx, "upstream response read failed", "endpoint", req.name, "error", readErr)
		return nil, mapped
	}

	out := &response{name: req.name, status: resp.StatusCode, body: raw}
	for _, ck := range jar.Cookies(c.base) {
		out.cookies = append(out.cookies, domainauth.UpstreamCookie{Name: ck.Name, Value: ck.Value, Path: "/"})
	}

	result := metrics.ResultSuccess
	if !out.ok() {
		result = metrics.ResultRejected
	}
	c.metrics.UpstreamRequest(req.name, result, time.Since(start), nil)
	c.logger.DebugContext(ctx, "upstream request", "endpoint", req.name, "status", resp.StatusCode,
		"duration", time.Since(start))

	return out, nil
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

// decode unmarshals a successful body into out.
func (r *response) decode(out any) error {
	if err := r.err(); err != nil {
		return err
	}
	if err := json.Unmarshal(r.body, out); err != nil {
		return apperrors.Wrapf(err, apperrors.ErrCodeUnavailable, "%s", apperrors.GenericFailureMessage)
	}
	return nil
}

// result interprets a {success, message} envelope and returns the message.
func (r *response) result() (string, error) {
	var env envelope
	if err := r.decode(&env); err != nil {
		return "", err
	}
	if env.Success != nil && !*env.Success {
		return "", newAPIError(r.status, env.text(), r.name)
	}
	return env.Message, nil
}
