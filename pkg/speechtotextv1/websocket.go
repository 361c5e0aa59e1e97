package speechtotextv1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cognitivekit/go-watson/internal/audio"
	"github.com/cognitivekit/go-watson/pkg/watson"
)

const (
	handshakeTimeout  = 10 * time.Second
	keepaliveInterval = 20 * time.Second
	writeTimeout      = 10 * time.Second
)

// ConnectionState represents the WebSocket session state.
type ConnectionState int

const (
	// StateDisconnected indicates no active connection.
	StateDisconnected ConnectionState = iota
	// StateConnecting indicates the handshake is in progress.
	StateConnecting
	// StateConnected indicates an active session.
	StateConnected
)

// String returns a human-readable connection state.
func (s ConnectionState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// startMessage opens a recognition exchange on the WebSocket.
type startMessage struct {
	Action                    string   `json:"action"`
	ContentType               string   `json:"content-type"`
	Continuous                *bool    `json:"continuous,omitempty"`
	InactivityTimeout         *int64   `json:"inactivity_timeout,omitempty"`
	Keywords                  []string `json:"keywords,omitempty"`
	KeywordsThreshold         *float64 `json:"keywords_threshold,omitempty"`
	MaxAlternatives           *int64   `json:"max_alternatives,omitempty"`
	WordAlternativesThreshold *float64 `json:"word_alternatives_threshold,omitempty"`
	WordConfidence            *bool    `json:"word_confidence,omitempty"`
	Timestamps                *bool    `json:"timestamps,omitempty"`
	ProfanityFilter           *bool    `json:"profanity_filter,omitempty"`
	SmartFormatting           *bool    `json:"smart_formatting,omitempty"`
	SpeakerLabels             *bool    `json:"speaker_labels,omitempty"`
	InterimResults            *bool    `json:"interim_results,omitempty"`
}

// wsEvent is a server event on the recognition WebSocket.
type wsEvent struct {
	State         string         `json:"state"`
	Error         string         `json:"error"`
	Results       []Transcript   `json:"results"`
	ResultIndex   int64          `json:"result_index"`
	SpeakerLabels []SpeakerLabel `json:"speaker_labels"`
	Warnings      []string       `json:"warnings"`
}

// wsRecognizer is a single-use WebSocket recognition session.
type wsRecognizer struct {
	conn     *websocket.Conn
	callback RecognizeCallback
	logger   *slog.Logger

	wsMu sync.Mutex // guards writes to conn

	mu    sync.Mutex
	state ConnectionState
	err   error

	// listening is signaled once the service accepts audio.
	listening chan struct{}
	// done is closed when the reader exits.
	done      chan struct{}
	closeOnce sync.Once

	framesSent     atomic.Int64
	eventsReceived atomic.Int64
}

// RecognizeUsingWebSocket transcribes audio over a streaming WebSocket
// session. The call blocks until the service delivers the final result
// or the context ends; events arrive on the callback as they happen.
// With InterimResults enabled, OnTranscription also fires for non-final
// hypotheses.
func (s *SpeechToText) RecognizeUsingWebSocket(ctx context.Context, opts *RecognizeOptions, callback RecognizeCallback) error {
	if callback == nil {
		return ErrNilCallback
	}
	if opts == nil {
		return watson.ErrNilOptions
	}
	if opts.Audio == nil {
		return ErrNilAudio
	}

	data, err := io.ReadAll(opts.Audio)
	if err != nil {
		return fmt.Errorf("speechtotext: read audio: %w", err)
	}
	contentType := opts.ContentType
	if contentType == "" {
		contentType = audio.SniffContentType(data)
	}

	conn, err := s.dialRecognize(ctx, opts)
	if err != nil {
		return err
	}

	r := &wsRecognizer{
		conn:      conn,
		callback:  callback,
		logger:    s.service.Logger().With("transport", "websocket"),
		state:     StateConnected,
		listening: make(chan struct{}),
		done:      make(chan struct{}),
	}
	callback.OnConnected()

	go r.readLoop()
	go r.keepAlive()
	defer func() {
		r.close()
		<-r.done
		callback.OnDisconnected()
	}()

	start := &startMessage{
		Action:                    "start",
		ContentType:               contentType,
		Continuous:                opts.Continuous,
		InactivityTimeout:         opts.InactivityTimeout,
		Keywords:                  opts.Keywords,
		KeywordsThreshold:         opts.KeywordsThreshold,
		MaxAlternatives:           opts.MaxAlternatives,
		WordAlternativesThreshold: opts.WordAlternativesThreshold,
		WordConfidence:            opts.WordConfidence,
		Timestamps:                opts.Timestamps,
		ProfanityFilter:           opts.ProfanityFilter,
		SmartFormatting:           opts.SmartFormatting,
		SpeakerLabels:             opts.SpeakerLabels,
		InterimResults:            opts.InterimResults,
	}
	if err := r.writeJSON(start); err != nil {
		return err
	}

	// The service answers the start message with a listening event;
	// audio sent before that is dropped.
	select {
	case <-r.listening:
	case <-r.done:
		return r.firstError(ErrConnectionClosed)
	case <-ctx.Done():
		return ctx.Err()
	}

	for _, frame := range audio.Chunks(data, audio.DefaultChunkSize) {
		if err := r.writeBinary(frame); err != nil {
			return err
		}
		r.framesSent.Add(1)
	}
	if err := r.writeJSON(map[string]string{"action": "stop"}); err != nil {
		return err
	}

	// A second listening event marks the end of the utterance; the
	// reader exits after dispatching it.
	select {
	case <-r.done:
		return r.firstError(nil)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// dialRecognize opens the WebSocket to /v1/recognize, signing the
// handshake with the service authenticator.
func (s *SpeechToText) dialRecognize(ctx context.Context, opts *RecognizeOptions) (*websocket.Conn, error) {
	endpoint := s.service.URL
	endpoint = strings.Replace(endpoint, "https://", "wss://", 1)
	endpoint = strings.Replace(endpoint, "http://", "ws://", 1)

	wsURL, err := url.Parse(endpoint + "/v1/recognize")
	if err != nil {
		return nil, fmt.Errorf("speechtotext: invalid endpoint: %w", err)
	}
	q := wsURL.Query()
	if opts.Model != "" {
		q.Set("model", opts.Model)
	}
	if opts.LanguageCustomizationID != "" {
		q.Set("language_customization_id", opts.LanguageCustomizationID)
	}
	wsURL.RawQuery = q.Encode()

	// Authenticators operate on http.Request; sign a stand-in and
	// carry its headers into the handshake.
	signed, err := http.NewRequestWithContext(ctx, http.MethodGet, s.service.URL, nil)
	if err != nil {
		return nil, err
	}
	if err := s.service.Authenticator().Authenticate(signed); err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, resp, err := dialer.DialContext(ctx, wsURL.String(), signed.Header)
	if err != nil {
		if resp != nil {
			return nil, NewConnectionError(
				fmt.Sprintf("dial failed with status %d", resp.StatusCode),
				err,
				resp.StatusCode >= 500,
			)
		}
		return nil, NewConnectionError("dial failed", err, true)
	}
	return conn, nil
}

// readLoop dispatches server events to the callback until the session
// ends. It runs on its own goroutine; callback methods fire here.
func (r *wsRecognizer) readLoop() {
	defer close(r.done)
	defer func() {
		r.mu.Lock()
		r.state = StateDisconnected
		r.mu.Unlock()
	}()

	listened := false
	for {
		_, data, err := r.conn.ReadMessage()
		if err != nil {
			if r.State() == StateDisconnected ||
				websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return
			}
			connErr := NewConnectionError("read failed", err, true)
			r.setErr(connErr)
			r.callback.OnError(connErr)
			return
		}
		r.eventsReceived.Add(1)

		var event wsEvent
		if err := json.Unmarshal(data, &event); err != nil {
			r.logger.Debug("skipping malformed event", "error", err)
			continue
		}

		switch {
		case event.Error != "":
			r.callback.OnError(fmt.Errorf("speechtotext: service error: %s", event.Error))

		case event.State == "listening":
			r.callback.OnListening()
			if listened {
				// Second listening event: the utterance is done.
				return
			}
			listened = true
			close(r.listening)

		case len(event.Results) > 0 || len(event.SpeakerLabels) > 0:
			r.callback.OnTranscription(&SpeechResults{
				Results:       event.Results,
				ResultIndex:   event.ResultIndex,
				SpeakerLabels: event.SpeakerLabels,
				Warnings:      event.Warnings,
			})
		}
	}
}

// keepAlive pings the service during long transcriptions.
func (r *wsRecognizer) keepAlive() {
	ticker := time.NewTicker(keepaliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case <-ticker.C:
			r.wsMu.Lock()
			err := r.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout))
			r.wsMu.Unlock()
			if err != nil {
				return
			}
		}
	}
}

func (r *wsRecognizer) writeJSON(v any) error {
	r.wsMu.Lock()
	defer r.wsMu.Unlock()
	r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := r.conn.WriteJSON(v); err != nil {
		return NewConnectionError("send failed", err, true)
	}
	return nil
}

func (r *wsRecognizer) writeBinary(frame []byte) error {
	r.wsMu.Lock()
	defer r.wsMu.Unlock()
	r.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := r.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
		return NewConnectionError("send audio failed", err, true)
	}
	return nil
}

// State returns the current connection state.
func (r *wsRecognizer) State() ConnectionState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *wsRecognizer) setErr(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
	}
}

// firstError returns the first fatal session error, or fallback when
// the session ended without one.
func (r *wsRecognizer) firstError(fallback error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	return fallback
}

// close shuts the connection down. Safe to call more than once.
func (r *wsRecognizer) close() {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.state = StateDisconnected
		r.mu.Unlock()

		r.wsMu.Lock()
		r.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		r.wsMu.Unlock()
		r.conn.Close()
	})
}
