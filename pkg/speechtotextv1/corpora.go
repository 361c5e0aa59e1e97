package speechtotextv1

import (
	"context"
	"io"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// ListCorpora lists the corpora of a custom language model.
func (s *SpeechToText) ListCorpora(ctx context.Context, customizationID string) (*Corpora, error) {
	if customizationID == "" {
		return nil, watson.MissingField("customization_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/customizations", "corpora"}, customizationID)

	var corpora Corpora
	if err := s.service.Do(ctx, b, &corpora); err != nil {
		return nil, err
	}
	return &corpora, nil
}

// GetCorpus gets information about a corpus, including its analysis
// status and word counts.
func (s *SpeechToText) GetCorpus(ctx context.Context, customizationID, corpusName string) (*Corpus, error) {
	if customizationID == "" {
		return nil, watson.MissingField("customization_id")
	}
	if corpusName == "" {
		return nil, watson.MissingField("corpus_name")
	}

	b := s.service.NewRequest(http.MethodGet,
		[]string{"v1/customizations", "corpora"}, customizationID, corpusName)

	var corpus Corpus
	if err := s.service.Do(ctx, b, &corpus); err != nil {
		return nil, err
	}
	return &corpus, nil
}

// AddCorpusOptions are the parameters for AddCorpus.
type AddCorpusOptions struct {
	CustomizationID string // required
	CorpusName      string // required

	// CorpusText is the plain-text corpus body. Required.
	CorpusText io.Reader

	// AllowOverwrite replaces an existing corpus of the same name.
	AllowOverwrite bool
}

// AddCorpus uploads a plain-text corpus to a custom language model.
// The service analyzes it asynchronously; poll GetCorpus until the
// status is analyzed, then train the model.
func (s *SpeechToText) AddCorpus(ctx context.Context, opts *AddCorpusOptions) error {
	if opts == nil {
		return watson.ErrNilOptions
	}
	if opts.CustomizationID == "" {
		return watson.MissingField("customization_id")
	}
	if opts.CorpusName == "" {
		return watson.MissingField("corpus_name")
	}
	if opts.CorpusText == nil {
		return watson.MissingField("corpus_text")
	}

	b := s.service.NewRequest(http.MethodPost,
		[]string{"v1/customizations", "corpora"}, opts.CustomizationID, opts.CorpusName)
	if opts.AllowOverwrite {
		b.QueryBool("allow_overwrite", true)
	}
	b.Binary(opts.CorpusText, "text/plain")

	return s.service.Do(ctx, b, nil)
}

// DeleteCorpus removes a corpus from a custom language model. Words
// the corpus contributed stay until the model is retrained.
func (s *SpeechToText) DeleteCorpus(ctx context.Context, customizationID, corpusName string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	if corpusName == "" {
		return watson.MissingField("corpus_name")
	}
	b := s.service.NewRequest(http.MethodDelete,
		[]string{"v1/customizations", "corpora"}, customizationID, corpusName)
	return s.service.Do(ctx, b, nil)
}
