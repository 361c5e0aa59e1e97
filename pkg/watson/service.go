// Package watson is the shared service core for the Watson API
// clients: endpoint and credential configuration, request building,
// response decoding, and error mapping. Service clients embed *Service
// and layer their operations on top.
package watson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/cognitivekit/go-watson/internal/httpc"
	"github.com/cognitivekit/go-watson/internal/log"
)

// transactionHeader carries a client-generated ID the service echoes
// back, for correlating requests in support tickets.
const transactionHeader = "X-Global-Transaction-Id"

// Service is the shared base for Watson API clients.
type Service struct {
	// Name identifies the service ("assistant", "speech_to_text").
	Name string

	// URL is the resolved service endpoint.
	URL string

	// Version is the API version date sent with every request.
	Version string

	auth      Authenticator
	client    *http.Client
	logger    *slog.Logger
	userAgent string
	headers   http.Header
	breaker   *gobreaker.CircuitBreaker

	requests atomic.Int64
	failures atomic.Int64
}

// NewService creates the shared base for a service client. defaultURL
// is used when the config does not carry an endpoint.
func NewService(name, defaultURL string, cfg *Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	u := cfg.URL
	if u == "" {
		u = defaultURL
	}
	if u == "" {
		return nil, ErrMissingURL
	}

	auth := cfg.Authenticator
	if auth == nil {
		auth = &NoAuthAuthenticator{}
	}

	client := cfg.HTTPClient
	if client == nil {
		client = httpc.Client
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.L()
	}

	s := &Service{
		Name:      name,
		URL:       strings.TrimSuffix(u, "/"),
		Version:   cfg.Version,
		auth:      auth,
		client:    client,
		logger:    logger.With("component", "watson."+name),
		userAgent: cfg.UserAgent,
		headers:   cfg.DefaultHeaders,
	}
	if s.userAgent == "" {
		s.userAgent = UserAgent()
	}
	if cfg.EnableBreaker {
		s.breaker = newBreaker(name, cfg.BreakerTimeout)
	}
	return s, nil
}

// Authenticator returns the configured authenticator. The WebSocket
// recognize path signs its handshake with it.
func (s *Service) Authenticator() Authenticator { return s.auth }

// Logger returns the service logger.
func (s *Service) Logger() *slog.Logger { return s.logger }

// NewRequest creates a request builder rooted at the service endpoint,
// with the version query parameter and default headers applied.
func (s *Service) NewRequest(method string, segments []string, params ...string) *Builder {
	b := NewRequest(method, s.URL, segments, params...)
	b.Query("version", s.Version)
	for name, values := range s.headers {
		for _, v := range values {
			b.header.Add(name, v)
		}
	}
	b.Header("User-Agent", s.userAgent)
	b.Header(transactionHeader, uuid.NewString())
	return b
}

// Do builds and sends the request, decoding a JSON response into
// result. A nil result drains and discards the body, for operations
// that answer with no content.
func (s *Service) Do(ctx context.Context, b *Builder, result any) error {
	req, err := b.Build(ctx)
	if err != nil {
		return err
	}
	if err := s.auth.Authenticate(req); err != nil {
		return err
	}

	s.requests.Add(1)
	s.logger.Debug("request",
		"method", req.Method,
		"path", req.URL.Path,
		"transaction_id", req.Header.Get(transactionHeader),
	)

	resp, err := s.send(req)
	if err != nil {
		s.failures.Add(1)
		return err
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.failures.Add(1)
		return s.decodeError(resp)
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		s.failures.Add(1)
		return fmt.Errorf("watson: decode %s response: %w", s.Name, err)
	}
	return nil
}

// send dispatches through the circuit breaker when one is configured.
// Client errors (4xx) never trip the breaker; they count as successes
// from its point of view.
func (s *Service) send(req *http.Request) (*http.Response, error) {
	if s.breaker == nil {
		return s.client.Do(req)
	}
	v, err := s.breaker.Execute(func() (any, error) {
		resp, err := s.client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= 500 {
			// Surface the response but record a breaker failure.
			return resp, &APIError{StatusCode: resp.StatusCode}
		}
		return resp, nil
	})
	if resp, ok := v.(*http.Response); ok {
		return resp, nil
	}
	return nil, fmt.Errorf("watson: %s unavailable: %w", s.Name, err)
}

// errorBody is the vendor's error response shape. Some services report
// the message under "error", others under "error_message".
type errorBody struct {
	Error           string `json:"error"`
	ErrorMessage    string `json:"error_message"`
	Code            int    `json:"code"`
	CodeDescription string `json:"code_description"`
}

func (s *Service) decodeError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode:    resp.StatusCode,
		TransactionID: resp.Header.Get(transactionHeader),
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err == nil && len(body) > 0 {
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil {
			apiErr.Message = eb.Error
			if apiErr.Message == "" {
				apiErr.Message = eb.ErrorMessage
			}
			apiErr.Code = eb.Code
			apiErr.Description = eb.CodeDescription
		}
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(body))
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	s.logger.Debug("request failed",
		"status", resp.StatusCode,
		"message", apiErr.Message,
		"transaction_id", apiErr.TransactionID,
	)
	return apiErr
}

// Stats reports request counters for the client.
type Stats struct {
	Requests int64
	Failures int64
}

// Stats returns a snapshot of the request counters.
func (s *Service) Stats() Stats {
	return Stats{
		Requests: s.requests.Load(),
		Failures: s.failures.Load(),
	}
}
