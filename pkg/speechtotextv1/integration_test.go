//go:build integration

package speechtotextv1

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// These tests require real service credentials and make actual API
// calls. Run with: go test -tags=integration -v ./pkg/speechtotextv1/...

func newIntegrationClient(t *testing.T) *SpeechToText {
	t.Helper()
	if os.Getenv("SPEECH_TO_TEXT_APIKEY") == "" && os.Getenv("SPEECH_TO_TEXT_USERNAME") == "" {
		t.Skip("SPEECH_TO_TEXT_APIKEY or SPEECH_TO_TEXT_USERNAME required")
	}

	stt, err := NewFromEnvironment(watson.WithVersion("2018-02-16"))
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return stt
}

func TestModelsIntegration(t *testing.T) {
	stt := newIntegrationClient(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	set, err := stt.ListModels(ctx)
	if err != nil {
		t.Fatalf("ListModels failed: %v", err)
	}
	if len(set.Models) == 0 {
		t.Fatal("expected at least one base model")
	}

	model, err := stt.GetModel(ctx, ModelEnUSBroadband)
	if err != nil {
		t.Fatalf("GetModel failed: %v", err)
	}
	if model.Rate != 16000 {
		t.Errorf("expected 16000 Hz, got %d", model.Rate)
	}
}

func TestRecognizeIntegration(t *testing.T) {
	stt := newIntegrationClient(t)

	audioFile := os.Getenv("SPEECH_TO_TEXT_AUDIO")
	if audioFile == "" {
		t.Skip("SPEECH_TO_TEXT_AUDIO (path to a WAV file) required")
	}

	f, err := os.Open(audioFile)
	if err != nil {
		t.Fatalf("opening audio: %v", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	results, err := stt.Recognize(ctx, &RecognizeOptions{
		Audio:      f,
		Timestamps: Bool(true),
	})
	if err != nil {
		t.Fatalf("Recognize failed: %v", err)
	}
	if len(results.Results) == 0 {
		t.Fatal("expected at least one transcript")
	}
	t.Logf("transcript: %s", results.Results[0].Alternatives[0].Transcript)
}
