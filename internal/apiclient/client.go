package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/jwalitptl/clinic-console/pkg/apierror"
	"github.com/jwalitptl/clinic-console/pkg/metrics"
)

// Client is the shared transport under the three entity clients. It
// carries no retry and no idempotency guarantee: a failed call reports
// its error and leaves the caller's state alone.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
	metrics *metrics.Metrics
}

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit rate.Limit
	RateBurst int
	Logger    zerolog.Logger
	Metrics   *metrics.Metrics
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 15 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = rate.Inf
	}
	if opts.RateBurst <= 0 {
		opts.RateBurst = 1
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		log:     opts.Logger,
		metrics: opts.Metrics,
	}
}

// remoteError is the flat error body the collection API returns.
type remoteError struct {
	Message string `json:"message"`
}

func (c *Client) do(ctx context.Context, entity, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apierror.New(apierror.KindRemote, "request rate limit wait aborted", err)
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return apierror.New(apierror.KindRemote, "failed to encode request body", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apierror.New(apierror.KindRemote, "failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.RequestLatency.WithLabelValues(entity, method).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.countRequest(entity, method, "error")
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return apierror.New(apierror.KindRemote, fmt.Sprintf("request to %s failed", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.countRequest(entity, method, strconv.Itoa(resp.StatusCode))
		var remote remoteError
		if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil || remote.Message == "" {
			remote.Message = fmt.Sprintf("remote API returned status %d", resp.StatusCode)
		}
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Str("remote_message", remote.Message).Msg("remote error")
		return apierror.FromRemote(resp.StatusCode, remote.Message, nil)
	}

	c.countRequest(entity, method, strconv.Itoa(resp.StatusCode))
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apierror.New(apierror.KindRemote, "failed to decode response body", err)
	}
	return nil
}

func (c *Client) countRequest(entity, method, status string) {
	if c.metrics != nil {
		c.metrics.RequestsTotal.WithLabelValues(entity, method, status).Inc()
	}
}
