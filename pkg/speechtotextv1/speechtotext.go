// Package speechtotextv1 is a client for the Watson Speech to Text v1
// API: synchronous and asynchronous transcription over REST, language
// model customization, and streaming recognition over WebSocket.
//
// REST calls take a context and an options struct. Streaming goes
// through RecognizeUsingWebSocket with a RecognizeCallback.
package speechtotextv1

import (
	"github.com/cognitivekit/go-watson/pkg/watson"
)

const (
	// ServiceName is the credential prefix for environment resolution.
	ServiceName = "speech_to_text"

	// DefaultURL is the public endpoint of the Speech to Text service.
	DefaultURL = "https://stream.watsonplatform.net/speech-to-text/api"
)

// SpeechToText is the Watson Speech to Text v1 client. It is safe for
// concurrent use; each WebSocket session created from it is not.
type SpeechToText struct {
	service *watson.Service
}

// New creates a SpeechToText client.
func New(opts ...watson.Option) (*SpeechToText, error) {
	cfg := watson.DefaultConfig()
	cfg.Apply(opts...)

	service, err := watson.NewService(ServiceName, DefaultURL, cfg)
	if err != nil {
		return nil, err
	}
	return &SpeechToText{service: service}, nil
}

// NewFromEnvironment creates a SpeechToText client with the endpoint
// and credentials resolved from SPEECH_TO_TEXT_* environment variables
// or an ibm-credentials.env file. Additional options override the
// resolved values.
func NewFromEnvironment(opts ...watson.Option) (*SpeechToText, error) {
	merged := append([]watson.Option{watson.FromEnvironment(ServiceName)}, opts...)
	return New(merged...)
}

// Service exposes the underlying service base, for default headers and
// request statistics.
func (s *SpeechToText) Service() *watson.Service { return s.service }

// Bool returns a pointer to b, for optional request fields.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to i, for optional request fields.
func Int(i int64) *int64 { return &i }

// Float returns a pointer to f, for optional request fields.
func Float(f float64) *float64 { return &f }
