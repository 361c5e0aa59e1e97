package speechtotextv1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// collectCallback records session events for assertions.
type collectCallback struct {
	mu sync.Mutex

	connected    bool
	listening    int
	results      []*SpeechResults
	errs         []error
	disconnected bool
}

func (c *collectCallback) OnConnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = true
}

func (c *collectCallback) OnListening() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listening++
}

func (c *collectCallback) OnTranscription(results *SpeechResults) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, results)
}

func (c *collectCallback) OnError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errs = append(c.errs, err)
}

func (c *collectCallback) OnDisconnected() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
}

// recognizeHandler emulates the vendor's recognize WebSocket: answer
// the start action with a listening event, consume audio frames until
// the stop action, then deliver results and a final listening event.
func recognizeHandler(t *testing.T, results string) http.Handler {
	t.Helper()
	upgrader := websocket.Upgrader{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, pass, ok := r.BasicAuth(); !ok || user != "user" || pass != "pass" {
			t.Error("handshake missing basic auth")
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		var start startMessage
		if err := conn.ReadJSON(&start); err != nil {
			t.Errorf("reading start message: %v", err)
			return
		}
		if start.Action != "start" || start.ContentType == "" {
			t.Errorf("unexpected start message %+v", start)
		}

		conn.WriteMessage(websocket.TextMessage, []byte(`{"state": "listening"}`))

		frames := 0
		for {
			msgType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if msgType == websocket.BinaryMessage {
				frames++
				continue
			}
			var action map[string]string
			if json.Unmarshal(data, &action) == nil && action["action"] == "stop" {
				break
			}
		}
		if frames == 0 {
			t.Error("no audio frames received before stop")
		}

		conn.WriteMessage(websocket.TextMessage, []byte(results))
		conn.WriteMessage(websocket.TextMessage, []byte(`{"state": "listening"}`))
	})
}

func newWSClient(t *testing.T, handler http.Handler) *SpeechToText {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	stt, err := New(
		watson.WithURL(server.URL),
		watson.WithVersion("2018-02-16"),
		watson.WithBasicAuth("user", "pass"),
	)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return stt
}

func TestRecognizeUsingWebSocket(t *testing.T) {
	t.Run("full session", func(t *testing.T) {
		stt := newWSClient(t, recognizeHandler(t, `{
			"result_index": 0,
			"results": [{
				"final": true,
				"alternatives": [{"transcript": "hello world", "confidence": 0.93}]
			}]
		}`))

		callback := &collectCallback{}
		err := stt.RecognizeUsingWebSocket(context.Background(), &RecognizeOptions{
			Audio:       bytes.NewReader(make([]byte, 100*1024)),
			ContentType: "audio/l16; rate=16000",
			Model:       ModelEnUSBroadband,
		}, callback)
		if err != nil {
			t.Fatalf("RecognizeUsingWebSocket failed: %v", err)
		}

		callback.mu.Lock()
		defer callback.mu.Unlock()
		if !callback.connected {
			t.Error("OnConnected not fired")
		}
		if callback.listening != 2 {
			t.Errorf("expected 2 listening events, got %d", callback.listening)
		}
		if len(callback.results) != 1 {
			t.Fatalf("expected 1 result event, got %d", len(callback.results))
		}
		alt := callback.results[0].Results[0].Alternatives[0]
		if alt.Transcript != "hello world" {
			t.Errorf("unexpected transcript %q", alt.Transcript)
		}
		if !callback.disconnected {
			t.Error("OnDisconnected not fired")
		}
		if len(callback.errs) != 0 {
			t.Errorf("unexpected errors %v", callback.errs)
		}
	})

	t.Run("service error event", func(t *testing.T) {
		upgrader := websocket.Upgrader{}
		stt := newWSClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()

			var start startMessage
			conn.ReadJSON(&start)
			conn.WriteMessage(websocket.TextMessage, []byte(`{"state": "listening"}`))

			for {
				msgType, data, err := conn.ReadMessage()
				if err != nil {
					return
				}
				var action map[string]string
				if msgType == websocket.TextMessage &&
					json.Unmarshal(data, &action) == nil && action["action"] == "stop" {
					break
				}
			}
			conn.WriteMessage(websocket.TextMessage, []byte(`{"error": "unable to transcode data stream"}`))
			conn.WriteMessage(websocket.TextMessage, []byte(`{"state": "listening"}`))
		}))

		callback := &collectCallback{}
		err := stt.RecognizeUsingWebSocket(context.Background(), &RecognizeOptions{
			Audio:       bytes.NewReader([]byte{0x00, 0x01}),
			ContentType: "audio/wav",
		}, callback)
		if err != nil {
			t.Fatalf("RecognizeUsingWebSocket failed: %v", err)
		}

		callback.mu.Lock()
		defer callback.mu.Unlock()
		if len(callback.errs) != 1 {
			t.Fatalf("expected 1 error event, got %v", callback.errs)
		}
	})

	t.Run("dial failure is a connection error", func(t *testing.T) {
		stt := newWSClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}))

		err := stt.RecognizeUsingWebSocket(context.Background(), &RecognizeOptions{
			Audio:       bytes.NewReader([]byte{0x00}),
			ContentType: "audio/wav",
		}, &BaseRecognizeCallback{})

		var connErr *ConnectionError
		if !errors.As(err, &connErr) {
			t.Fatalf("expected ConnectionError, got %v", err)
		}
		if !connErr.IsRetryable() {
			t.Error("503 handshake failure should be retryable")
		}
	})

	t.Run("validates inputs", func(t *testing.T) {
		stt := newWSClient(t, http.NotFoundHandler())

		if err := stt.RecognizeUsingWebSocket(context.Background(), &RecognizeOptions{}, nil); !errors.Is(err, ErrNilCallback) {
			t.Errorf("expected ErrNilCallback, got %v", err)
		}
		if err := stt.RecognizeUsingWebSocket(context.Background(), nil, &BaseRecognizeCallback{}); !errors.Is(err, watson.ErrNilOptions) {
			t.Errorf("expected ErrNilOptions, got %v", err)
		}
		if err := stt.RecognizeUsingWebSocket(context.Background(), &RecognizeOptions{}, &BaseRecognizeCallback{}); !errors.Is(err, ErrNilAudio) {
			t.Errorf("expected ErrNilAudio, got %v", err)
		}
	})

	t.Run("context cancellation ends the session", func(t *testing.T) {
		upgrader := websocket.Upgrader{}
		stt := newWSClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			conn, err := upgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()

			var start startMessage
			conn.ReadJSON(&start)
			conn.WriteMessage(websocket.TextMessage, []byte(`{"state": "listening"}`))
			// Never send results: the client has to give up.
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}))

		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		err := stt.RecognizeUsingWebSocket(ctx, &RecognizeOptions{
			Audio:       bytes.NewReader([]byte{0x00}),
			ContentType: "audio/wav",
		}, &BaseRecognizeCallback{})
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
	})
}
