package speechtotextv1

import (
	"encoding/json"
	"fmt"
)

// SpeechModel describes a base recognition model.
type SpeechModel struct {
	Name              string             `json:"name"`
	Language          string             `json:"language,omitempty"`
	Rate              int64              `json:"rate,omitempty"`
	URL               string             `json:"url,omitempty"`
	Description       string             `json:"description,omitempty"`
	SupportedFeatures *SupportedFeatures `json:"supported_features,omitempty"`
}

// SupportedFeatures lists the optional capabilities of a model.
type SupportedFeatures struct {
	CustomLanguageModel bool `json:"custom_language_model"`
	SpeakerLabels       bool `json:"speaker_labels"`
}

// Well-known base models.
const (
	ModelEnUSBroadband  = "en-US_BroadbandModel"
	ModelEnUSNarrowband = "en-US_NarrowbandModel"
	ModelEnGBBroadband  = "en-GB_BroadbandModel"
	ModelEsESBroadband  = "es-ES_BroadbandModel"
	ModelJaJPBroadband  = "ja-JP_BroadbandModel"
)

// SpeechModelSet is the response of ListModels.
type SpeechModelSet struct {
	Models []SpeechModel `json:"models"`
}

// SpeechSession is a legacy recognition session.
type SpeechSession struct {
	SessionID     string `json:"session_id"`
	NewSessionURI string `json:"new_session_uri,omitempty"`
	Recognize     string `json:"recognize,omitempty"`
	RecognizeWS   string `json:"recognizeWS,omitempty"`
	ObserveResult string `json:"observe_result,omitempty"`
}

// SessionStatus reports whether a session can accept a new
// recognition request.
type SessionStatus struct {
	Session struct {
		State         string `json:"state"`
		Model         string `json:"model,omitempty"`
		Recognize     string `json:"recognize,omitempty"`
		RecognizeWS   string `json:"recognizeWS,omitempty"`
		ObserveResult string `json:"observe_result,omitempty"`
	} `json:"session"`
}

// Session states.
const (
	SessionStateInitialized = "initialized"
	SessionStateProcessing  = "processing"
)

// Timestamp is the start and end time of a word within the audio. The
// wire form is a heterogeneous array: ["word", start, end].
type Timestamp struct {
	Word  string
	Start float64
	End   float64
}

// UnmarshalJSON decodes the ["word", start, end] array form.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("speechtotext: timestamp has %d elements, want 3", len(raw))
	}
	word, ok := raw[0].(string)
	if !ok {
		return fmt.Errorf("speechtotext: timestamp word is %T, want string", raw[0])
	}
	start, ok := raw[1].(float64)
	if !ok {
		return fmt.Errorf("speechtotext: timestamp start is %T, want number", raw[1])
	}
	end, ok := raw[2].(float64)
	if !ok {
		return fmt.Errorf("speechtotext: timestamp end is %T, want number", raw[2])
	}
	t.Word, t.Start, t.End = word, start, end
	return nil
}

// MarshalJSON encodes the array form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Word, t.Start, t.End})
}

// WordConfidence is the recognizer's confidence in a word. The wire
// form is ["word", confidence].
type WordConfidence struct {
	Word       string
	Confidence float64
}

// UnmarshalJSON decodes the ["word", confidence] array form.
func (w *WordConfidence) UnmarshalJSON(data []byte) error {
	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("speechtotext: word confidence has %d elements, want 2", len(raw))
	}
	word, ok := raw[0].(string)
	if !ok {
		return fmt.Errorf("speechtotext: word confidence word is %T, want string", raw[0])
	}
	confidence, ok := raw[1].(float64)
	if !ok {
		return fmt.Errorf("speechtotext: word confidence value is %T, want number", raw[1])
	}
	w.Word, w.Confidence = word, confidence
	return nil
}

// MarshalJSON encodes the array form.
func (w WordConfidence) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{w.Word, w.Confidence})
}

// SpeechAlternative is one hypothesis for a transcript.
type SpeechAlternative struct {
	Transcript     string           `json:"transcript"`
	Confidence     float64          `json:"confidence,omitempty"`
	Timestamps     []Timestamp      `json:"timestamps,omitempty"`
	WordConfidence []WordConfidence `json:"word_confidence,omitempty"`
}

// KeywordResult is one spotted occurrence of a keyword.
type KeywordResult struct {
	NormalizedText string  `json:"normalized_text"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	Confidence     float64 `json:"confidence"`
}

// WordAlternative is one hypothesis for a word.
type WordAlternative struct {
	Word       string  `json:"word"`
	Confidence float64 `json:"confidence"`
}

// WordAlternativeResults are the hypotheses for a time span.
type WordAlternativeResults struct {
	StartTime    float64           `json:"start_time"`
	EndTime      float64           `json:"end_time"`
	Alternatives []WordAlternative `json:"alternatives"`
}

// Transcript is one recognized segment of the audio.
type Transcript struct {
	Final            bool                       `json:"final"`
	Alternatives     []SpeechAlternative        `json:"alternatives"`
	KeywordsResult   map[string][]KeywordResult `json:"keywords_result,omitempty"`
	WordAlternatives []WordAlternativeResults   `json:"word_alternatives,omitempty"`
}

// SpeakerLabel assigns a segment of audio to a speaker.
type SpeakerLabel struct {
	From       float64 `json:"from"`
	To         float64 `json:"to"`
	Speaker    int64   `json:"speaker"`
	Confidence float64 `json:"confidence"`
	Final      bool    `json:"final"`
}

// SpeechResults is the recognition result set for a request or for one
// WebSocket result event.
type SpeechResults struct {
	Results       []Transcript   `json:"results,omitempty"`
	ResultIndex   int64          `json:"result_index,omitempty"`
	SpeakerLabels []SpeakerLabel `json:"speaker_labels,omitempty"`
	Warnings      []string       `json:"warnings,omitempty"`
}

// RecognitionJob is an asynchronous recognition request.
type RecognitionJob struct {
	ID        string          `json:"id"`
	Status    string          `json:"status,omitempty"`
	Created   string          `json:"created,omitempty"`
	Updated   string          `json:"updated,omitempty"`
	URL       string          `json:"url,omitempty"`
	UserToken string          `json:"user_token,omitempty"`
	Results   []SpeechResults `json:"results,omitempty"`
	Warnings  []string        `json:"warnings,omitempty"`
}

// Recognition job statuses.
const (
	JobStatusWaiting    = "waiting"
	JobStatusProcessing = "processing"
	JobStatusCompleted  = "completed"
	JobStatusFailed     = "failed"
)

// RecognitionJobs is the response of ListJobs.
type RecognitionJobs struct {
	Recognitions []RecognitionJob `json:"recognitions"`
}

// RegisterStatus is the response of RegisterCallback.
type RegisterStatus struct {
	Status string `json:"status"`
	URL    string `json:"url"`
}

// Callback registration statuses.
const (
	CallbackStatusCreated        = "created"
	CallbackStatusAlreadyCreated = "already created"
)

// LanguageModel is a custom language model.
type LanguageModel struct {
	CustomizationID string   `json:"customization_id"`
	Created         string   `json:"created,omitempty"`
	Language        string   `json:"language,omitempty"`
	Dialect         string   `json:"dialect,omitempty"`
	Owner           string   `json:"owner,omitempty"`
	Name            string   `json:"name,omitempty"`
	Description     string   `json:"description,omitempty"`
	BaseModelName   string   `json:"base_model_name,omitempty"`
	Status          string   `json:"status,omitempty"`
	Progress        int64    `json:"progress,omitempty"`
	Error           string   `json:"error,omitempty"`
	Warnings        string   `json:"warnings,omitempty"`
	Versions        []string `json:"versions,omitempty"`
}

// Language model statuses.
const (
	LanguageModelStatusPending   = "pending"
	LanguageModelStatusReady     = "ready"
	LanguageModelStatusTraining  = "training"
	LanguageModelStatusAvailable = "available"
	LanguageModelStatusUpgrading = "upgrading"
	LanguageModelStatusFailed    = "failed"
)

// LanguageModels is the response of ListLanguageModels.
type LanguageModels struct {
	Customizations []LanguageModel `json:"customizations"`
}

// Corpus is a text corpus uploaded to a custom language model.
type Corpus struct {
	Name                 string `json:"name"`
	TotalWords           int64  `json:"total_words,omitempty"`
	OutOfVocabularyWords int64  `json:"out_of_vocabulary_words,omitempty"`
	Status               string `json:"status,omitempty"`
	Error                string `json:"error,omitempty"`
}

// Corpus statuses.
const (
	CorpusStatusAnalyzed       = "analyzed"
	CorpusStatusBeingProcessed = "being_processed"
	CorpusStatusUndetermined   = "undetermined"
)

// Corpora is the response of ListCorpora.
type Corpora struct {
	Corpora []Corpus `json:"corpora"`
}

// WordError describes a problem with a custom word.
type WordError struct {
	Element string `json:"element"`
}

// Word is a custom word in a language model.
type Word struct {
	Word       string      `json:"word"`
	SoundsLike []string    `json:"sounds_like,omitempty"`
	DisplayAs  string      `json:"display_as,omitempty"`
	Count      int64       `json:"count,omitempty"`
	Source     []string    `json:"source,omitempty"`
	Error      []WordError `json:"error,omitempty"`
}

// Words is the response of ListWords.
type Words struct {
	Words []Word `json:"words"`
}

// Word types for ListWords filtering.
const (
	WordTypeAll     = "all"
	WordTypeUser    = "user"
	WordTypeCorpora = "corpora"
)
