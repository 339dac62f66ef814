// Package projectapi is the HTTP client for the solar project backend.
//
// The backend exposes JSON endpoints for calculation and checkout. Responses
// are decoded regardless of status code; only transport failures and bodies
// that are not JSON are reported as errors.
package projectapi

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

	apperrors "github.com/louisbranch/solcalc/internal/services/web/platform/errors"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/louisbranch/solcalc/internal/services/web/integration/projectapi"
	maxResponseBytes    = 1 << 20
)

// Location is a site coordinate in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// CalculateRequest is the body of POST /api/calculate.
type CalculateRequest struct {
	ProjectName string   `json:"project_name"`
	Location    Location `json:"location"`
	LidarData   string   `json:"lidar_data"`
}

// CalculateResponse is the subset of the calculation reply the web uses.
type CalculateResponse struct {
	ProjectID string `json:"project_id"`
	Status    string `json:"status,omitempty"`
}

// CheckoutRequest is the body of POST /api/checkout.
type CheckoutRequest struct {
	ProjectID string `json:"project_id"`
}

// CheckoutResponse is the subset of the checkout reply the web uses.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// Client calls the project backend over HTTP.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for backend calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		if tp != nil {
			c.tracer = tp.Tracer(instrumentationName)
		}
	}
}

// WithPropagator overrides the global text map propagator.
func WithPropagator(p propagation.TextMapPropagator) Option {
	return func(c *Client) {
		c.propagator = p
	}
}

// NewClient builds a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("backend base url is required")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("backend base url %q must use http or https", baseURL)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("backend base url %q must include a host", baseURL)
	}
	c := &Client{
		baseURL:    parsed,
		httpClient: http.DefaultClient,
		tracer:     otel.GetTracerProvider().Tracer(instrumentationName),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() *url.URL {
	if c == nil || c.baseURL == nil {
		return nil
	}
	copied := *c.baseURL
	return &copied
}

// Calculate submits a project for calculation.
func (c *Client) Calculate(ctx context.Context, req CalculateRequest) (CalculateResponse, error) {
	var resp CalculateResponse
	if err := c.postJSON(ctx, "calculate", routepath.APICalculate, req, &resp); err != nil {
		return CalculateResponse{}, err
	}
	return resp, nil
}

// Checkout opens a checkout session for a calculated project.
func (c *Client) Checkout(ctx context.Context, projectID string) (CheckoutResponse, error) {
	var resp CheckoutResponse
	if err := c.postJSON(ctx, "checkout", routepath.APICheckout, CheckoutRequest{ProjectID: projectID}, &resp); err != nil {
		return CheckoutResponse{}, err
	}
	return resp, nil
}

func (c *Client) postJSON(ctx context.Context, operation string, path string, in any, out any) (err error) {
	if c == nil {
		return apperrors.E(apperrors.KindUnavailable, "project backend is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, span := c.tracer.Start(ctx, "projectapi."+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodPost),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", operation, err)
	}
	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	c.textMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	res, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, operation+" request", err)
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return apperrors.Wrap(apperrors.KindUnavailable, "read "+operation+" response", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperrors.Wrap(apperrors.KindMalformed, "decode "+operation+" response", err)
	}
	return nil
}

func (c *Client) textMapPropagator() propagation.TextMapPropagator {
	if c.propagator != nil {
		return c.propagator
	}
	return otel.GetTextMapPropagator()
}
