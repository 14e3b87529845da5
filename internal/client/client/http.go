package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/models"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/client/tokenstore"
	"github.com/chrisogonas/careerpilot-ai-frontend/internal/logging"
)

const (
	DefaultBaseURL = "http://localhost:8000/api/v1"
	DefaultTimeout = 30 * time.Second

	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 1 << 20
)

type HTTPClient struct {
	baseURL string
	hc      *http.Client
	tokens  tokenstore.Store
	log     logging.Logger
	limiter *rate.Limiter
}

type Option func(*HTTPClient)

// WithTimeout bounds every request. Zero disables the timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.hc.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.hc = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.log = l }
}

// WithRateLimit caps outgoing requests per second. Values <= 0 leave the
// client unlimited.
func WithRateLimit(rps float64) Option {
	return func(c *HTTPClient) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func NewHTTPClient(baseURL string, tokens tokenstore.Store, opts ...Option) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: DefaultTimeout},
		tokens:  tokens,
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// do sends one request. in is encoded as the JSON body when non-nil; out,
// when non-nil, receives the decoded 2xx body and is checked against the
// contract if it implements models.ContractChecker.
func (c *HTTPClient) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}

	token, err := c.tokens.Get(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("%w: could not reach %s: %v", ErrUnavailable, c.baseURL, err)
	}
	defer resp.Body.Close()

	c.log.Debug(ctx, "request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", reqID,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode %s %s: %v", ErrContractViolation, method, path, err)
	}

	if cc, ok := out.(models.ContractChecker); ok {
		if err := cc.CheckContract(); err != nil {
			return fmt.Errorf("%s %s: %w", method, path, err)
		}
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &models.APIError{}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	// an undecodable body leaves the fields empty and Error() falls back
	_ = json.Unmarshal(data, apiErr)
	apiErr.StatusCode = resp.StatusCode
	if resp.StatusCode == http.StatusUnauthorized {
		apiErr.Cause = ErrUnauthorized
	}
	return apiErr
}

func call[T any](ctx context.Context, c *HTTPClient, method, path string, in any) (T, error) {
	var out T
	err := c.do(ctx, method, path, nil, in, &out)
	return out, err
}

func (c *HTTPClient) saveToken(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := c.tokens.Set(ctx, token); err != nil {
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	return nil
}

func (c *HTTPClient) clearToken(ctx context.Context) error {
	if err := c.tokens.Clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrTokenStore, err)
	}
	return nil
}

func resourcePath(collection, id string, rest ...string) string {
	p := collection + "/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}
