package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-storefront/internal/content"
	"github.com/goliatone/go-storefront/internal/logging"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	ProviderName = "rest"

	DefaultBaseURL        = "https://cdn.contentful.com"
	DefaultPreviewBaseURL = "https://preview.contentful.com"
	DefaultEnvironment    = "master"
)

// Config carries the space coordinates and credentials of the delivery API.
type Config struct {
	SpaceID        string
	Environment    string
	AccessToken    string
	PreviewToken   string
	Preview        bool
	BaseURL        string
	PreviewBaseURL string
}

// Option mutates the service at construction time.
type Option func(*Service)

// WithHTTPClient overrides the HTTP client used for requests.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Service) {
		if client != nil {
			s.http = client
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

// Service reads content through the flat entries endpoint and normalizes the
// linked side-tables into the content model.
type Service struct {
	endpoint  string
	token     string
	preview   bool
	http      *http.Client
	logger    interfaces.Logger
	requestID func() string
}

var _ content.Service = (*Service)(nil)

// NewService builds a delivery API client for cfg.
func NewService(cfg Config, opts ...Option) *Service {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	token := cfg.AccessToken
	if cfg.Preview {
		base = strings.TrimSpace(cfg.PreviewBaseURL)
		if base == "" {
			base = DefaultPreviewBaseURL
		}
		token = cfg.PreviewToken
	}
	env := strings.TrimSpace(cfg.Environment)
	if env == "" {
		env = DefaultEnvironment
	}

	s := &Service{
		endpoint:  strings.TrimRight(base, "/") + "/spaces/" + url.PathEscape(cfg.SpaceID) + "/environments/" + url.PathEscape(env),
		token:     token,
		preview:   cfg.Preview,
		http:      http.DefaultClient,
		logger:    logging.NoOp(),
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Provider reports the content source flavor.
func (s *Service) Provider() string {
	return ProviderName
}

// Endpoint returns the space/environment URL requests are issued against.
func (s *Service) Endpoint() string {
	return s.endpoint
}

type query struct {
	contentType string
	include     int
	order       string
	slug        string
	categoryID  string
	limit       int
	skip        int
}

func (q query) values() url.Values {
	values := url.Values{}
	values.Set("content_type", q.contentType)
	values.Set("include", strconv.Itoa(q.include))
	if q.order != "" {
		values.Set("order", q.order)
	}
	if q.slug != "" {
		values.Set("fields.slug", q.slug)
	}
	if q.categoryID != "" {
		values.Set("fields.category.sys.id", q.categoryID)
	}
	if q.limit > 0 {
		values.Set("limit", strconv.Itoa(q.limit))
	}
	if q.skip > 0 {
		values.Set("skip", strconv.Itoa(q.skip))
	}
	return values
}

// fetch issues GET {endpoint}/entries and decodes the collection into out.
func (s *Service) fetch(ctx context.Context, operation string, q query, out any) error {
	requestID := s.requestID()
	logger := logging.WithFields(
		logging.WithContentContext(s.logger, ProviderName, q.contentType),
		map[string]any{"request_id": requestID, "operation": operation},
	)

	target := s.endpoint + "/entries?" + q.values().Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return content.WrapTransport(err, operation)
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	logger.Debug("content request", "url", target, "preview", s.preview)

	resp, err := s.http.Do(req)
	if err != nil {
		logger.Error("content request failed", "error", err)
		return content.WrapTransport(err, operation)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("content request rejected", "status", resp.StatusCode)
		return content.NewStatusError(resp.StatusCode, statusText(resp), operation)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("content response malformed", "error", err)
		return content.WrapDecode(err, operation)
	}

	logger.Debug("content response", "status", resp.StatusCode)
	return nil
}

// statusText strips the numeric code net/http puts in front of Status.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(resp.Status)
	code := strconv.Itoa(resp.StatusCode)
	if strings.HasPrefix(text, code) {
		text = strings.TrimSpace(strings.TrimPrefix(text, code))
	}
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
