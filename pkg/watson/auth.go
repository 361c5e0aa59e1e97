package watson

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/cognitivekit/go-watson/internal/httpc"
)

// DefaultIAMURL is the IBM Cloud IAM token exchange endpoint.
const DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"

// iamGrantType is the IAM grant for exchanging an API key for a token.
const iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"

// Authenticator adds credentials to an outgoing request.
type Authenticator interface {
	Authenticate(req *http.Request) error
}

// BasicAuthenticator authenticates with a username and password.
type BasicAuthenticator struct {
	Username string
	Password string
}

// Authenticate sets the Authorization header using HTTP basic auth.
func (a *BasicAuthenticator) Authenticate(req *http.Request) error {
	if a.Username == "" || a.Password == "" {
		return ErrMissingCredentials
	}
	req.SetBasicAuth(a.Username, a.Password)
	return nil
}

// BearerAuthenticator authenticates with a caller-managed access token.
// The caller accepts responsibility for refreshing the token before it
// expires; the service answers 401 once it has.
type BearerAuthenticator struct {
	Token string
}

// Authenticate sets the Authorization header with the bearer token.
func (a *BearerAuthenticator) Authenticate(req *http.Request) error {
	if a.Token == "" {
		return ErrMissingCredentials
	}
	req.Header.Set("Authorization", "Bearer "+a.Token)
	return nil
}

// NoAuthAuthenticator performs no authentication. Useful against local
// mocks and pre-authenticated gateways.
type NoAuthAuthenticator struct{}

// Authenticate is a no-op.
func (a *NoAuthAuthenticator) Authenticate(req *http.Request) error { return nil }

// IAMAuthenticator exchanges an IBM Cloud API key for a short-lived IAM
// access token and caches it across requests. Token reuse and refresh
// are delegated to oauth2.ReuseTokenSource.
type IAMAuthenticator struct {
	apiKey string
	url    string
	client *http.Client

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewIAMAuthenticator creates an IAM authenticator for the given API key.
func NewIAMAuthenticator(apiKey string) *IAMAuthenticator {
	return &IAMAuthenticator{
		apiKey: apiKey,
		url:    DefaultIAMURL,
		client: httpc.Client,
	}
}

// SetURL overrides the IAM token endpoint. Used for staging environments
// and tests.
func (a *IAMAuthenticator) SetURL(url string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.url = url
	a.source = nil
}

// SetClient overrides the HTTP client used for token exchange.
func (a *IAMAuthenticator) SetClient(client *http.Client) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.client = client
	a.source = nil
}

// Authenticate sets the Authorization header with a cached or freshly
// fetched IAM token.
func (a *IAMAuthenticator) Authenticate(req *http.Request) error {
	if a.apiKey == "" {
		return ErrMissingCredentials
	}
	tok, err := a.tokenSource().Token()
	if err != nil {
		return fmt.Errorf("watson: IAM token exchange failed: %w", err)
	}
	tok.SetAuthHeader(req)
	return nil
}

func (a *IAMAuthenticator) tokenSource() oauth2.TokenSource {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.source == nil {
		a.source = oauth2.ReuseTokenSource(nil, &iamTokenFetcher{
			apiKey: a.apiKey,
			url:    a.url,
			client: a.client,
		})
	}
	return a.source
}

// iamTokenFetcher performs the raw apikey grant. ReuseTokenSource calls
// it only when the cached token is missing or expired.
type iamTokenFetcher struct {
	apiKey string
	url    string
	client *http.Client
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

func (f *iamTokenFetcher) Token() (*oauth2.Token, error) {
	form := url.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", f.apiKey)
	form.Set("response_type", "cloud_iam")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// The IAM endpoint expects these fixed client credentials for the
	// apikey grant.
	req.SetBasicAuth("bx", "bx")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}

	var tok iamTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decode IAM token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, ErrMissingCredentials
	}

	expiry := time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	if tok.Expiration > 0 {
		expiry = time.Unix(tok.Expiration, 0)
	}
	return &oauth2.Token{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		Expiry:      expiry,
	}, nil
}
