package speechtotextv1

// RecognizeCallback receives the events of a WebSocket recognition
// session. Methods are invoked from the session's reader goroutine, so
// implementations must not block for long and must synchronize any
// shared state of their own.
type RecognizeCallback interface {
	// OnConnected fires once the WebSocket handshake completes.
	OnConnected()

	// OnListening fires when the service is ready for audio, and
	// again after the final result of each utterance.
	OnListening()

	// OnTranscription fires for each result event. With interim
	// results enabled, non-final hypotheses arrive here too.
	OnTranscription(results *SpeechResults)

	// OnError fires for service error events and read failures.
	OnError(err error)

	// OnDisconnected fires once when the session ends, after the
	// last event.
	OnDisconnected()
}

// BaseRecognizeCallback provides no-op defaults. Embed it and override
// the events of interest:
//
//	type printer struct {
//	    speechtotextv1.BaseRecognizeCallback
//	}
//
//	func (printer) OnTranscription(results *speechtotextv1.SpeechResults) {
//	    ...
//	}
type BaseRecognizeCallback struct{}

// OnConnected is a no-op.
func (BaseRecognizeCallback) OnConnected() {}

// OnListening is a no-op.
func (BaseRecognizeCallback) OnListening() {}

// OnTranscription is a no-op.
func (BaseRecognizeCallback) OnTranscription(*SpeechResults) {}

// OnError is a no-op.
func (BaseRecognizeCallback) OnError(error) {}

// OnDisconnected is a no-op.
func (BaseRecognizeCallback) OnDisconnected() {}
