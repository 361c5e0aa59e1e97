package speechtotextv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// CreateSession creates a recognition session that locks a model and
// engine instance for a sequence of requests. An empty model uses the
// service default.
func (s *SpeechToText) CreateSession(ctx context.Context, model string) (*SpeechSession, error) {
	b := s.service.NewRequest(http.MethodPost, []string{"v1/sessions"})
	if model != "" {
		b.Query("model", model)
	}

	var session SpeechSession
	if err := s.service.Do(ctx, b, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// GetRecognizeStatus reports whether a session can accept a new
// recognition request.
func (s *SpeechToText) GetRecognizeStatus(ctx context.Context, sessionID string) (*SessionStatus, error) {
	if sessionID == "" {
		return nil, watson.MissingField("session_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/sessions", "recognize"}, sessionID)

	var status SessionStatus
	if err := s.service.Do(ctx, b, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// DeleteSession deletes a recognition session.
func (s *SpeechToText) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return watson.MissingField("session_id")
	}
	b := s.service.NewRequest(http.MethodDelete, []string{"v1/sessions"}, sessionID)
	return s.service.Do(ctx, b, nil)
}
