package graph

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/machinebox/graphql"

	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	ProviderName = "graphql"

	DefaultEndpoint    = "https://graphql.contentful.com/content/v1"
	DefaultEnvironment = "master"
)

// Config carries the space coordinates and credentials of the graph API.
type Config struct {
	SpaceID      string
	Environment  string
	AccessToken  string
	PreviewToken string
	Preview      bool
	Endpoint     string
}

// Option mutates the service at construction time.
type Option func(*Service)

// WithHTTPClient overrides the HTTP client used for requests. Its transport is
// wrapped so non-2xx responses surface as status errors.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRequestID overrides the correlation id generator.
func WithRequestID(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.requestID = fn
		}
	}
}

// Service reads content through parameterized graph queries.
type Service struct {
	endpoint   string
	token      string
	preview    bool
	httpClient *http.Client
	client     *graphql.Client
	logger     interfaces.Logger
	requestID  func() string
}

var _ content.Service = (*Service)(nil)

// NewService builds a graph API client for cfg.
func NewService(cfg Config, opts ...Option) *Service {
	base := strings.TrimSpace(cfg.Endpoint)
	if base == "" {
		base = DefaultEndpoint
	}
	env := strings.TrimSpace(cfg.Environment)
	if env == "" {
		env = DefaultEnvironment
	}
	token := cfg.AccessToken
	if cfg.Preview {
		token = cfg.PreviewToken
	}

	s := &Service{
		endpoint:   strings.TrimRight(base, "/") + "/spaces/" + url.PathEscape(cfg.SpaceID) + "/environments/" + url.PathEscape(env),
		token:      token,
		preview:    cfg.Preview,
		httpClient: http.DefaultClient,
		logger:     logging.NoOp(),
		requestID:  uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	wrapped := *s.httpClient
	wrapped.Transport = statusTransport{next: s.httpClient.Transport}
	s.client = graphql.NewClient(s.endpoint, graphql.WithHTTPClient(&wrapped))
	return s
}

// Provider reports the content source flavor.
func (s *Service) Provider() string {
	return ProviderName
}

// Endpoint returns the space/environment URL queries are posted to.
func (s *Service) Endpoint() string {
	return s.endpoint
}

// run posts query with vars and decodes the data member into out.
func (s *Service) run(ctx context.Context, operation, contentType, query string, vars map[string]any, out any) error {
	requestID := s.requestID()
	logger := logging.WithFields(
		logging.WithContentContext(s.logger, ProviderName, contentType),
		map[string]any{"request_id": requestID, "operation": operation},
	)

	req := graphql.NewRequest(query)
	for key, value := range vars {
		req.Var(key, value)
	}
	req.Var("preview", s.preview)
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("X-Request-Id", requestID)

	logger.Debug("content query", "endpoint", s.endpoint, "preview", s.preview)

	if err := s.client.Run(ctx, req, out); err != nil {
		return s.classify(logger, operation, err)
	}

	logger.Debug("content query completed")
	return nil
}

func (s *Service) classify(logger interfaces.Logger, operation string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var statusErr *content.StatusError
	if errors.As(err, &statusErr) {
		logger.Warn("content query rejected", "status", statusErr.StatusCode)
		return content.NewStatusError(statusErr.StatusCode, statusErr.Status, operation)
	}

	logger.Error("content query failed", "error", err)
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return content.WrapTransport(err, operation)
	}
	return content.WrapQuery(err, operation)
}

// statusTransport turns non-2xx responses into *content.StatusError before
// the graph client tries to decode them.
type statusTransport struct {
	next http.RoundTripper
}

func (t statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.next
	if next == nil {
		next = http.DefaultTransport
	}
	resp, err := next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil, &content.StatusError{StatusCode: resp.StatusCode, Status: statusText(resp)}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(resp.Status)
	if code, rest, found := strings.Cut(text, " "); found && code != "" && strings.Trim(code, "0123456789") == "" {
		text = strings.TrimSpace(rest)
	}
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
