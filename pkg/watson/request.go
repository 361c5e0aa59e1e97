package watson

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Builder composes a single HTTP request: path segments interleaved
// with escaped path parameters, query parameters, headers, and an
// optional body. Errors are deferred until Build so call sites can
// chain without checking each step.
type Builder struct {
	method   string
	baseURL  string
	segments []string
	params   []string
	query    url.Values
	header   http.Header
	body     io.Reader
	err      error
}

// NewRequest creates a request builder. Path segments are appended in
// order, with the matching path parameter escaped and inserted after
// each segment: segments {"v1/workspaces", "message"} with params
// {workspaceID} yields /v1/workspaces/{workspaceID}/message.
func NewRequest(method, baseURL string, segments []string, params ...string) *Builder {
	b := &Builder{
		method:   method,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		segments: segments,
		params:   params,
		query:    url.Values{},
		header:   http.Header{},
	}
	if len(params) > len(segments) {
		b.err = fmt.Errorf("watson: %d path parameters for %d segments", len(params), len(segments))
	}
	for _, p := range params {
		if p == "" {
			b.err = MissingField("path parameter")
		}
	}
	return b
}

// Query adds a query parameter.
func (b *Builder) Query(name, value string) *Builder {
	b.query.Add(name, value)
	return b
}

// QueryBool adds a boolean query parameter.
func (b *Builder) QueryBool(name string, value bool) *Builder {
	return b.Query(name, strconv.FormatBool(value))
}

// QueryInt adds an integer query parameter.
func (b *Builder) QueryInt(name string, value int64) *Builder {
	return b.Query(name, strconv.FormatInt(value, 10))
}

// QueryFloat adds a floating-point query parameter.
func (b *Builder) QueryFloat(name string, value float64) *Builder {
	return b.Query(name, strconv.FormatFloat(value, 'f', -1, 64))
}

// Header sets a request header.
func (b *Builder) Header(name, value string) *Builder {
	b.header.Set(name, value)
	return b
}

// JSON sets a JSON request body.
func (b *Builder) JSON(v any) *Builder {
	data, err := json.Marshal(v)
	if err != nil {
		b.err = fmt.Errorf("watson: marshal request body: %w", err)
		return b
	}
	b.body = bytes.NewReader(data)
	b.header.Set("Content-Type", "application/json")
	return b
}

// Text sets a plain-text request body.
func (b *Builder) Text(s string) *Builder {
	b.body = strings.NewReader(s)
	b.header.Set("Content-Type", "text/plain")
	return b
}

// Binary sets a raw request body with an explicit content type.
// Audio uploads go through here.
func (b *Builder) Binary(r io.Reader, contentType string) *Builder {
	b.body = r
	b.header.Set("Content-Type", contentType)
	return b
}

// Path returns the encoded request path without the base URL or query.
func (b *Builder) Path() string {
	var sb strings.Builder
	for i, seg := range b.segments {
		sb.WriteByte('/')
		sb.WriteString(seg)
		if i < len(b.params) {
			sb.WriteByte('/')
			sb.WriteString(url.PathEscape(b.params[i]))
		}
	}
	return sb.String()
}

// Build constructs the http.Request.
func (b *Builder) Build(ctx context.Context) (*http.Request, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.baseURL == "" {
		return nil, ErrMissingURL
	}

	u := b.baseURL + b.Path()
	if enc := b.query.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, b.method, u, b.body)
	if err != nil {
		return nil, fmt.Errorf("watson: build request: %w", err)
	}
	for name, values := range b.header {
		req.Header[name] = values
	}
	return req, nil
}
