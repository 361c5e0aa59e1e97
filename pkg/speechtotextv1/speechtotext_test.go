package speechtotextv1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cognitivekit/go-watson/internal/audio"
	"github.com/cognitivekit/go-watson/pkg/watson"
)

func newTestClient(t *testing.T, handler http.Handler) *SpeechToText {
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

func TestModels(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/models" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"models": [
				{"name": "en-US_BroadbandModel", "language": "en-US", "rate": 16000},
				{"name": "es-ES_BroadbandModel", "language": "es-ES", "rate": 16000}
			]}`))
		}))

		set, err := stt.ListModels(context.Background())
		if err != nil {
			t.Fatalf("ListModels failed: %v", err)
		}
		if len(set.Models) != 2 || set.Models[0].Name != ModelEnUSBroadband {
			t.Errorf("unexpected models %+v", set.Models)
		}
	})

	t.Run("get", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/models/en-US_BroadbandModel" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{
				"name": "en-US_BroadbandModel",
				"rate": 16000,
				"supported_features": {"custom_language_model": true, "speaker_labels": true}
			}`))
		}))

		model, err := stt.GetModel(context.Background(), ModelEnUSBroadband)
		if err != nil {
			t.Fatalf("GetModel failed: %v", err)
		}
		if model.SupportedFeatures == nil || !model.SupportedFeatures.SpeakerLabels {
			t.Errorf("unexpected model %+v", model)
		}

		if _, err := stt.GetModel(context.Background(), ""); !errors.Is(err, watson.ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestSessions(t *testing.T) {
	stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/sessions":
			if r.URL.Query().Get("model") != ModelEnUSBroadband {
				t.Errorf("unexpected model query %q", r.URL.Query().Get("model"))
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"session_id": "sess-1", "new_session_uri": "/v1/sessions/sess-1"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/sessions/sess-1/recognize":
			w.Write([]byte(`{"session": {"state": "initialized"}}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/sessions/sess-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	session, err := stt.CreateSession(context.Background(), ModelEnUSBroadband)
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}
	if session.SessionID != "sess-1" {
		t.Errorf("unexpected session %+v", session)
	}

	status, err := stt.GetRecognizeStatus(context.Background(), session.SessionID)
	if err != nil {
		t.Fatalf("GetRecognizeStatus failed: %v", err)
	}
	if status.Session.State != SessionStateInitialized {
		t.Errorf("unexpected status %+v", status)
	}

	if err := stt.DeleteSession(context.Background(), session.SessionID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
}

func TestRecognize(t *testing.T) {
	wav, err := audio.EncodeWAV(make([]int16, 1600), 16000)
	if err != nil {
		t.Fatalf("encoding test audio: %v", err)
	}

	t.Run("sniffs content type and decodes results", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/recognize" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if ct := r.Header.Get("Content-Type"); ct != "audio/wav" {
				t.Errorf("expected audio/wav, got %q", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if !bytes.Equal(body, wav) {
				t.Errorf("audio body mismatch: %d bytes", len(body))
			}
			q := r.URL.Query()
			if q.Get("timestamps") != "true" || q.Get("word_confidence") != "true" {
				t.Errorf("unexpected query %v", q)
			}
			w.Write([]byte(`{
				"result_index": 0,
				"results": [{
					"final": true,
					"alternatives": [{
						"transcript": "hello world",
						"confidence": 0.93,
						"timestamps": [["hello", 0.1, 0.5], ["world", 0.6, 1.1]],
						"word_confidence": [["hello", 0.95], ["world", 0.91]]
					}]
				}]
			}`))
		}))

		results, err := stt.Recognize(context.Background(), &RecognizeOptions{
			Audio:          bytes.NewReader(wav),
			Timestamps:     Bool(true),
			WordConfidence: Bool(true),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		alt := results.Results[0].Alternatives[0]
		if alt.Transcript != "hello world" {
			t.Errorf("unexpected transcript %q", alt.Transcript)
		}
		if len(alt.Timestamps) != 2 || alt.Timestamps[1].Word != "world" || alt.Timestamps[1].End != 1.1 {
			t.Errorf("unexpected timestamps %+v", alt.Timestamps)
		}
		if len(alt.WordConfidence) != 2 || alt.WordConfidence[0].Confidence != 0.95 {
			t.Errorf("unexpected word confidence %+v", alt.WordConfidence)
		}
	})

	t.Run("keyword spotting parameters", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			if q.Get("keywords") != "rain,tornadoes" || q.Get("keywords_threshold") != "0.7" {
				t.Errorf("unexpected query %v", q)
			}
			if q.Get("continuous") != "true" || q.Get("inactivity_timeout") != "500" {
				t.Errorf("unexpected query %v", q)
			}
			w.Write([]byte(`{
				"results": [{
					"final": true,
					"alternatives": [{"transcript": "heavy rain"}],
					"keywords_result": {
						"rain": [{"normalized_text": "rain", "start_time": 1.0, "end_time": 1.4, "confidence": 0.9}]
					}
				}]
			}`))
		}))

		results, err := stt.Recognize(context.Background(), &RecognizeOptions{
			Audio:             bytes.NewReader(wav),
			ContentType:       "audio/wav",
			Continuous:        Bool(true),
			InactivityTimeout: Int(500),
			Keywords:          []string{"rain", "tornadoes"},
			KeywordsThreshold: Float(0.7),
		})
		if err != nil {
			t.Fatalf("Recognize failed: %v", err)
		}
		spotted := results.Results[0].KeywordsResult["rain"]
		if len(spotted) != 1 || spotted[0].Confidence != 0.9 {
			t.Errorf("unexpected keywords result %+v", spotted)
		}
	})

	t.Run("missing audio rejected", func(t *testing.T) {
		stt := newTestClient(t, http.NotFoundHandler())
		if _, err := stt.Recognize(context.Background(), &RecognizeOptions{}); !errors.Is(err, ErrNilAudio) {
			t.Errorf("expected ErrNilAudio, got %v", err)
		}
		if _, err := stt.Recognize(context.Background(), nil); !errors.Is(err, watson.ErrNilOptions) {
			t.Errorf("expected ErrNilOptions, got %v", err)
		}
	})
}

func TestJobs(t *testing.T) {
	t.Run("create and wait", func(t *testing.T) {
		polls := 0
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/v1/recognitions":
				q := r.URL.Query()
				if q.Get("callback_url") != "https://example.test/hook" {
					t.Errorf("unexpected query %v", q)
				}
				if q.Get("events") != "recognitions.completed,recognitions.failed" {
					t.Errorf("unexpected events %q", q.Get("events"))
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"id": "job-1", "status": "waiting"}`))
			case r.Method == http.MethodGet && r.URL.Path == "/v1/recognitions/job-1":
				polls++
				if polls < 2 {
					w.Write([]byte(`{"id": "job-1", "status": "processing"}`))
					return
				}
				w.Write([]byte(`{
					"id": "job-1",
					"status": "completed",
					"results": [{"results": [{"final": true, "alternatives": [{"transcript": "done"}]}]}]
				}`))
			default:
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
		}))

		job, err := stt.CreateJob(context.Background(), &CreateJobOptions{
			RecognizeOptions: RecognizeOptions{
				Audio:       strings.NewReader("RIFFxxxxWAVE"),
				ContentType: "audio/wav",
			},
			CallbackURL: "https://example.test/hook",
			Events:      []string{"recognitions.completed", "recognitions.failed"},
		})
		if err != nil {
			t.Fatalf("CreateJob failed: %v", err)
		}
		if job.Status != JobStatusWaiting {
			t.Errorf("unexpected job %+v", job)
		}

		done, err := stt.WaitForJob(context.Background(), job.ID, 5*time.Millisecond)
		if err != nil {
			t.Fatalf("WaitForJob failed: %v", err)
		}
		if done.Status != JobStatusCompleted || len(done.Results) != 1 {
			t.Errorf("unexpected job %+v", done)
		}
	})

	t.Run("wait honors context", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": "job-1", "status": "processing"}`))
		}))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := stt.WaitForJob(ctx, "job-1", 5*time.Millisecond); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected DeadlineExceeded, got %v", err)
		}
	})

	t.Run("register callback", func(t *testing.T) {
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/register_callback" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			q := r.URL.Query()
			if q.Get("callback_url") != "https://example.test/hook" || q.Get("user_secret") != "s3cret" {
				t.Errorf("unexpected query %v", q)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"status": "created", "url": "https://example.test/hook"}`))
		}))

		status, err := stt.RegisterCallback(context.Background(), "https://example.test/hook", "s3cret")
		if err != nil {
			t.Fatalf("RegisterCallback failed: %v", err)
		}
		if status.Status != CallbackStatusCreated {
			t.Errorf("unexpected status %+v", status)
		}
	})
}

func TestLanguageModels(t *testing.T) {
	t.Run("create train wait", func(t *testing.T) {
		polls := 0
		stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch {
			case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations":
				var body map[string]string
				json.NewDecoder(r.Body).Decode(&body)
				if body["name"] != "weather" || body["base_model_name"] != ModelEnUSBroadband {
					t.Errorf("unexpected body %+v", body)
				}
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"customization_id": "cust-1"}`))
			case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations/cust-1/train":
				w.Write([]byte(`{}`))
			case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/cust-1":
				polls++
				status := LanguageModelStatusTraining
				if polls >= 2 {
					status = LanguageModelStatusAvailable
				}
				w.Write([]byte(`{"customization_id": "cust-1", "status": "` + status + `"}`))
			default:
				t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			}
		}))

		model, err := stt.CreateLanguageModel(context.Background(), &CreateLanguageModelOptions{
			Name:          "weather",
			BaseModelName: ModelEnUSBroadband,
		})
		if err != nil {
			t.Fatalf("CreateLanguageModel failed: %v", err)
		}

		if err := stt.TrainLanguageModel(context.Background(), model.CustomizationID, ""); err != nil {
			t.Fatalf("TrainLanguageModel failed: %v", err)
		}

		trained, err := stt.WaitForLanguageModel(context.Background(), model.CustomizationID, 5*time.Millisecond)
		if err != nil {
			t.Fatalf("WaitForLanguageModel failed: %v", err)
		}
		if trained.Status != LanguageModelStatusAvailable {
			t.Errorf("unexpected model %+v", trained)
		}
	})

	t.Run("required fields", func(t *testing.T) {
		stt := newTestClient(t, http.NotFoundHandler())
		_, err := stt.CreateLanguageModel(context.Background(), &CreateLanguageModelOptions{Name: "weather"})
		if !errors.Is(err, watson.ErrMissingField) {
			t.Errorf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestCorpora(t *testing.T) {
	stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v1/customizations/cust-1/corpora/weather":
			if r.URL.Query().Get("allow_overwrite") != "true" {
				t.Error("expected allow_overwrite=true")
			}
			if ct := r.Header.Get("Content-Type"); ct != "text/plain" {
				t.Errorf("expected text/plain, got %q", ct)
			}
			body, _ := io.ReadAll(r.Body)
			if string(body) != "heavy rain expected tomorrow" {
				t.Errorf("unexpected corpus body %q", body)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/cust-1/corpora/weather":
			w.Write([]byte(`{"name": "weather", "total_words": 4, "status": "analyzed"}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/cust-1/corpora":
			w.Write([]byte(`{"corpora": [{"name": "weather", "status": "analyzed"}]}`))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))

	err := stt.AddCorpus(context.Background(), &AddCorpusOptions{
		CustomizationID: "cust-1",
		CorpusName:      "weather",
		CorpusText:      strings.NewReader("heavy rain expected tomorrow"),
		AllowOverwrite:  true,
	})
	if err != nil {
		t.Fatalf("AddCorpus failed: %v", err)
	}

	corpus, err := stt.GetCorpus(context.Background(), "cust-1", "weather")
	if err != nil {
		t.Fatalf("GetCorpus failed: %v", err)
	}
	if corpus.Status != CorpusStatusAnalyzed || corpus.TotalWords != 4 {
		t.Errorf("unexpected corpus %+v", corpus)
	}

	corpora, err := stt.ListCorpora(context.Background(), "cust-1")
	if err != nil {
		t.Fatalf("ListCorpora failed: %v", err)
	}
	if len(corpora.Corpora) != 1 {
		t.Errorf("unexpected corpora %+v", corpora)
	}
}

func TestWords(t *testing.T) {
	stt := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/v1/customizations/cust-1/words/NCAA":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			if sounds, ok := body["sounds_like"].([]any); !ok || len(sounds) != 2 {
				t.Errorf("unexpected body %+v", body)
			}
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && r.URL.Path == "/v1/customizations/cust-1/words":
			q := r.URL.Query()
			if q.Get("word_type") != WordTypeUser {
				t.Errorf("unexpected word_type %q", q.Get("word_type"))
			}
			w.Write([]byte(`{"words": [{"word": "NCAA", "sounds_like": ["N. C. A. A.", "N. C. double A."]}]}`))
		case r.Method == http.MethodDelete && r.URL.Path == "/v1/customizations/cust-1/words/NCAA":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))

	err := stt.AddWord(context.Background(), "cust-1", &Word{
		Word:       "NCAA",
		SoundsLike: []string{"N. C. A. A.", "N. C. double A."},
		DisplayAs:  "NCAA",
	})
	if err != nil {
		t.Fatalf("AddWord failed: %v", err)
	}

	words, err := stt.ListWords(context.Background(), &ListWordsOptions{
		CustomizationID: "cust-1",
		WordType:        WordTypeUser,
	})
	if err != nil {
		t.Fatalf("ListWords failed: %v", err)
	}
	if len(words.Words) != 1 || words.Words[0].Word != "NCAA" {
		t.Errorf("unexpected words %+v", words)
	}

	if err := stt.DeleteWord(context.Background(), "cust-1", "NCAA"); err != nil {
		t.Fatalf("DeleteWord failed: %v", err)
	}
}

func TestTimestampUnmarshal(t *testing.T) {
	t.Run("rejects short arrays", func(t *testing.T) {
		var ts Timestamp
		if err := json.Unmarshal([]byte(`["hello", 0.1]`), &ts); err == nil {
			t.Error("expected error for 2-element timestamp")
		}
	})

	t.Run("round-trips", func(t *testing.T) {
		ts := Timestamp{Word: "hello", Start: 0.1, End: 0.5}
		data, err := json.Marshal(ts)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `["hello",0.1,0.5]` {
			t.Errorf("unexpected encoding %s", data)
		}
	})
}
