// Command transcribe streams an audio file through the Speech to Text
// WebSocket recognizer and prints transcripts as they arrive.
//
// Usage:
//
//	SPEECH_TO_TEXT_APIKEY=... go run ./cmd/transcribe/ -file audio.wav
//
// Flags:
//
//	-file     Audio file to transcribe (required)
//	-model    Base model (default en-US_BroadbandModel)
//	-interim  Print non-final hypotheses as they form
//	-version  API version date (default 2018-02-16)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cognitivekit/go-watson/internal/log"
	"github.com/cognitivekit/go-watson/pkg/speechtotextv1"
	"github.com/cognitivekit/go-watson/pkg/watson"
)

var (
	file    = flag.String("file", "", "Audio file to transcribe (required)")
	model   = flag.String("model", speechtotextv1.ModelEnUSBroadband, "Base model")
	interim = flag.Bool("interim", false, "Print non-final hypotheses as they form")
	version = flag.String("version", "2018-02-16", "API version date")
)

// printer writes transcripts to stdout as the service delivers them.
type printer struct {
	speechtotextv1.BaseRecognizeCallback
}

func (printer) OnListening() {
	fmt.Fprintln(os.Stderr, "listening...")
}

func (printer) OnTranscription(results *speechtotextv1.SpeechResults) {
	for _, result := range results.Results {
		if len(result.Alternatives) == 0 {
			continue
		}
		if result.Final {
			fmt.Println(result.Alternatives[0].Transcript)
		} else if *interim {
			fmt.Printf("\t... %s\n", result.Alternatives[0].Transcript)
		}
	}
}

func (printer) OnError(err error) {
	fmt.Fprintf(os.Stderr, "recognition error: %v\n", err)
}

func main() {
	flag.Parse()
	log.Init(os.Getenv("WATSON_LOG_LEVEL"))

	if *file == "" {
		fmt.Fprintln(os.Stderr, "-file is required")
		os.Exit(1)
	}

	f, err := os.Open(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening audio: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	stt, err := speechtotextv1.NewFromEnvironment(watson.WithVersion(*version))
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating client: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	opts := &speechtotextv1.RecognizeOptions{
		Audio:          f,
		Model:          *model,
		InterimResults: speechtotextv1.Bool(*interim),
		Timestamps:     speechtotextv1.Bool(true),
	}
	if err := stt.RecognizeUsingWebSocket(ctx, opts, printer{}); err != nil {
		fmt.Fprintf(os.Stderr, "transcription failed: %v\n", err)
		os.Exit(1)
	}
}
