// Package assistantv1 is a client for the Watson Assistant v1 API:
// dialog runtime (message) and workspace authoring (intents, entities,
// values, synonyms, dialog nodes, logs, skill snapshots).
//
// Every operation takes a context and an options struct mirroring the
// vendor's request schema. Optional fields are pointers; nil means the
// field is omitted and the service applies its default.
package assistantv1

import (
	"github.com/cognitivekit/go-watson/pkg/watson"
)

const (
	// ServiceName is the credential prefix for environment resolution.
	ServiceName = "assistant"

	// DefaultURL is the public endpoint of the Assistant service.
	DefaultURL = "https://gateway.watsonplatform.net/assistant/api"
)

// Assistant is the Watson Assistant v1 client. It is safe for
// concurrent use.
type Assistant struct {
	service *watson.Service
}

// New creates an Assistant client. A version date is required:
//
//	assistant, err := assistantv1.New(
//	    watson.WithVersion("2018-02-16"),
//	    watson.WithIAMAPIKey(apiKey),
//	)
func New(opts ...watson.Option) (*Assistant, error) {
	cfg := watson.DefaultConfig()
	cfg.Apply(opts...)

	service, err := watson.NewService(ServiceName, DefaultURL, cfg)
	if err != nil {
		return nil, err
	}
	return &Assistant{service: service}, nil
}

// NewFromEnvironment creates an Assistant client with the endpoint and
// credentials resolved from ASSISTANT_* environment variables or an
// ibm-credentials.env file. Additional options override the resolved
// values.
func NewFromEnvironment(opts ...watson.Option) (*Assistant, error) {
	merged := append([]watson.Option{watson.FromEnvironment(ServiceName)}, opts...)
	return New(merged...)
}

// Service exposes the underlying service base, for default headers and
// request statistics.
func (a *Assistant) Service() *watson.Service { return a.service }

// pageOptions are the paging query parameters shared by the list
// operations.
type pageOptions struct {
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

func (p *pageOptions) apply(b *watson.Builder) {
	if p.PageLimit != nil {
		b.QueryInt("page_limit", *p.PageLimit)
	}
	if p.IncludeCount != nil {
		b.QueryBool("include_count", *p.IncludeCount)
	}
	if p.Sort != "" {
		b.Query("sort", p.Sort)
	}
	if p.Cursor != "" {
		b.Query("cursor", p.Cursor)
	}
	if p.IncludeAudit != nil {
		b.QueryBool("include_audit", *p.IncludeAudit)
	}
}

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional request fields.
func Int(i int64) *int64 { return &i }
