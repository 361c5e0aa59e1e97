package speechtotextv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// ListWordsOptions are the parameters for ListWords.
type ListWordsOptions struct {
	CustomizationID string // required

	// WordType filters by origin: WordTypeAll, WordTypeUser, or
	// WordTypeCorpora. Empty means all.
	WordType string

	// Sort orders the list: "alphabetical" or "count", with an
	// optional +/- prefix.
	Sort string
}

// ListWords lists the words of a custom language model.
func (s *SpeechToText) ListWords(ctx context.Context, opts *ListWordsOptions) (*Words, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.CustomizationID == "" {
		return nil, watson.MissingField("customization_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/customizations", "words"}, opts.CustomizationID)
	if opts.WordType != "" {
		b.Query("word_type", opts.WordType)
	}
	if opts.Sort != "" {
		b.Query("sort", opts.Sort)
	}

	var words Words
	if err := s.service.Do(ctx, b, &words); err != nil {
		return nil, err
	}
	return &words, nil
}

// GetWord gets information about a word in a custom language model.
func (s *SpeechToText) GetWord(ctx context.Context, customizationID, wordName string) (*Word, error) {
	if customizationID == "" {
		return nil, watson.MissingField("customization_id")
	}
	if wordName == "" {
		return nil, watson.MissingField("word_name")
	}

	b := s.service.NewRequest(http.MethodGet,
		[]string{"v1/customizations", "words"}, customizationID, wordName)

	var word Word
	if err := s.service.Do(ctx, b, &word); err != nil {
		return nil, err
	}
	return &word, nil
}

type wordBody struct {
	Word       string   `json:"word,omitempty"`
	SoundsLike []string `json:"sounds_like,omitempty"`
	DisplayAs  string   `json:"display_as,omitempty"`
}

type wordsBody struct {
	Words []wordBody `json:"words"`
}

// AddWord adds or updates a single word in a custom language model.
func (s *SpeechToText) AddWord(ctx context.Context, customizationID string, word *Word) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	if word == nil || word.Word == "" {
		return watson.MissingField("word")
	}

	b := s.service.NewRequest(http.MethodPut,
		[]string{"v1/customizations", "words"}, customizationID, word.Word)
	b.JSON(&wordBody{
		SoundsLike: word.SoundsLike,
		DisplayAs:  word.DisplayAs,
	})
	return s.service.Do(ctx, b, nil)
}

// AddWords adds or updates a batch of words in a custom language
// model. The service processes the batch asynchronously; check for
// per-word errors with ListWords.
func (s *SpeechToText) AddWords(ctx context.Context, customizationID string, words []Word) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	if len(words) == 0 {
		return watson.MissingField("words")
	}

	body := wordsBody{Words: make([]wordBody, 0, len(words))}
	for _, w := range words {
		body.Words = append(body.Words, wordBody{
			Word:       w.Word,
			SoundsLike: w.SoundsLike,
			DisplayAs:  w.DisplayAs,
		})
	}

	b := s.service.NewRequest(http.MethodPost, []string{"v1/customizations", "words"}, customizationID)
	b.JSON(&body)
	return s.service.Do(ctx, b, nil)
}

// DeleteWord removes a word from a custom language model.
func (s *SpeechToText) DeleteWord(ctx context.Context, customizationID, wordName string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	if wordName == "" {
		return watson.MissingField("word_name")
	}
	b := s.service.NewRequest(http.MethodDelete,
		[]string{"v1/customizations", "words"}, customizationID, wordName)
	return s.service.Do(ctx, b, nil)
}
