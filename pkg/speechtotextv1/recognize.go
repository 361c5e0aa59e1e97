package speechtotextv1

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/cognitivekit/go-watson/internal/audio"
	"github.com/cognitivekit/go-watson/pkg/watson"
)

// RecognizeOptions tune a recognition request. The same options drive
// the REST Recognize call (as query parameters) and the WebSocket
// start message (as JSON fields). Optional fields are pointers; nil
// means the service default applies.
type RecognizeOptions struct {
	// Audio is the audio source. Required.
	Audio io.Reader

	// ContentType is the audio MIME type. When empty it is sniffed
	// from the first bytes of the audio.
	ContentType string

	// Model selects the base model, for example ModelEnUSBroadband.
	Model string

	// LanguageCustomizationID applies a custom language model.
	LanguageCustomizationID string

	// Continuous transcribes past the first pause.
	Continuous *bool

	// InactivityTimeout is the seconds of silence after which the
	// request ends. -1 means no timeout.
	InactivityTimeout *int64

	// Keywords to spot, with KeywordsThreshold as the minimum
	// confidence for a match.
	Keywords          []string
	KeywordsThreshold *float64

	// MaxAlternatives is the number of transcript hypotheses to
	// return per segment.
	MaxAlternatives *int64

	// WordAlternativesThreshold enables word alternatives above the
	// given confidence.
	WordAlternativesThreshold *float64

	WordConfidence  *bool
	Timestamps      *bool
	ProfanityFilter *bool
	SmartFormatting *bool
	SpeakerLabels   *bool

	// InterimResults returns non-final hypotheses as they form.
	// WebSocket sessions only; the REST call ignores it.
	InterimResults *bool
}

// applyQuery adds the recognize tuning parameters to a REST request.
func (o *RecognizeOptions) applyQuery(b *watson.Builder) {
	if o.Model != "" {
		b.Query("model", o.Model)
	}
	if o.LanguageCustomizationID != "" {
		b.Query("language_customization_id", o.LanguageCustomizationID)
	}
	if o.Continuous != nil {
		b.QueryBool("continuous", *o.Continuous)
	}
	if o.InactivityTimeout != nil {
		b.QueryInt("inactivity_timeout", *o.InactivityTimeout)
	}
	if len(o.Keywords) > 0 {
		b.Query("keywords", strings.Join(o.Keywords, ","))
	}
	if o.KeywordsThreshold != nil {
		b.QueryFloat("keywords_threshold", *o.KeywordsThreshold)
	}
	if o.MaxAlternatives != nil {
		b.QueryInt("max_alternatives", *o.MaxAlternatives)
	}
	if o.WordAlternativesThreshold != nil {
		b.QueryFloat("word_alternatives_threshold", *o.WordAlternativesThreshold)
	}
	if o.WordConfidence != nil {
		b.QueryBool("word_confidence", *o.WordConfidence)
	}
	if o.Timestamps != nil {
		b.QueryBool("timestamps", *o.Timestamps)
	}
	if o.ProfanityFilter != nil {
		b.QueryBool("profanity_filter", *o.ProfanityFilter)
	}
	if o.SmartFormatting != nil {
		b.QueryBool("smart_formatting", *o.SmartFormatting)
	}
	if o.SpeakerLabels != nil {
		b.QueryBool("speaker_labels", *o.SpeakerLabels)
	}
}

// resolveAudio reads the audio when the content type must be sniffed,
// returning the body to send and its content type.
func (o *RecognizeOptions) resolveAudio() (io.Reader, string, error) {
	if o.Audio == nil {
		return nil, "", ErrNilAudio
	}
	if o.ContentType != "" {
		return o.Audio, o.ContentType, nil
	}

	data, err := io.ReadAll(o.Audio)
	if err != nil {
		return nil, "", err
	}
	return bytes.NewReader(data), audio.SniffContentType(data), nil
}

// Recognize transcribes audio in one synchronous request. Audio up to
// 100 MB is accepted; for longer audio use CreateJob or a WebSocket
// session.
func (s *SpeechToText) Recognize(ctx context.Context, opts *RecognizeOptions) (*SpeechResults, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	body, contentType, err := opts.resolveAudio()
	if err != nil {
		return nil, err
	}

	b := s.service.NewRequest(http.MethodPost, []string{"v1/recognize"})
	opts.applyQuery(b)
	b.Binary(body, contentType)

	var results SpeechResults
	if err := s.service.Do(ctx, b, &results); err != nil {
		return nil, err
	}
	return &results, nil
}
