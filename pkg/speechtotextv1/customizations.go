package speechtotextv1

import (
	"context"
	"net/http"
	"time"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// CreateLanguageModelOptions are the parameters for
// CreateLanguageModel.
type CreateLanguageModelOptions struct {
	// Name of the new custom model. Required.
	Name string

	// BaseModelName is the base model to customize, for example
	// ModelEnUSBroadband. Required.
	BaseModelName string

	// Dialect of the language, when the base model supports more
	// than one.
	Dialect string

	Description string
}

type createLanguageModelBody struct {
	Name          string `json:"name"`
	BaseModelName string `json:"base_model_name"`
	Dialect       string `json:"dialect,omitempty"`
	Description   string `json:"description,omitempty"`
}

// CreateLanguageModel creates a custom language model for a base
// model. The new model is empty; add corpora or words, then train it.
func (s *SpeechToText) CreateLanguageModel(ctx context.Context, opts *CreateLanguageModelOptions) (*LanguageModel, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.Name == "" {
		return nil, watson.MissingField("name")
	}
	if opts.BaseModelName == "" {
		return nil, watson.MissingField("base_model_name")
	}

	b := s.service.NewRequest(http.MethodPost, []string{"v1/customizations"})
	b.JSON(&createLanguageModelBody{
		Name:          opts.Name,
		BaseModelName: opts.BaseModelName,
		Dialect:       opts.Dialect,
		Description:   opts.Description,
	})

	var model LanguageModel
	if err := s.service.Do(ctx, b, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// GetLanguageModel gets information about a custom language model.
func (s *SpeechToText) GetLanguageModel(ctx context.Context, customizationID string) (*LanguageModel, error) {
	if customizationID == "" {
		return nil, watson.MissingField("customization_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/customizations"}, customizationID)

	var model LanguageModel
	if err := s.service.Do(ctx, b, &model); err != nil {
		return nil, err
	}
	return &model, nil
}

// ListLanguageModels lists custom language models. A non-empty
// language restricts the list to models for that language.
func (s *SpeechToText) ListLanguageModels(ctx context.Context, language string) (*LanguageModels, error) {
	b := s.service.NewRequest(http.MethodGet, []string{"v1/customizations"})
	if language != "" {
		b.Query("language", language)
	}

	var models LanguageModels
	if err := s.service.Do(ctx, b, &models); err != nil {
		return nil, err
	}
	return &models, nil
}

// DeleteLanguageModel deletes a custom language model.
func (s *SpeechToText) DeleteLanguageModel(ctx context.Context, customizationID string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	b := s.service.NewRequest(http.MethodDelete, []string{"v1/customizations"}, customizationID)
	return s.service.Do(ctx, b, nil)
}

// TrainLanguageModel starts training on the model's current corpora
// and words. Training is asynchronous; poll with GetLanguageModel or
// WaitForLanguageModel. wordTypeToAdd selects which out-of-vocabulary
// words enter the model ("all" or "user"); empty uses the default.
func (s *SpeechToText) TrainLanguageModel(ctx context.Context, customizationID, wordTypeToAdd string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	b := s.service.NewRequest(http.MethodPost, []string{"v1/customizations", "train"}, customizationID)
	if wordTypeToAdd != "" {
		b.Query("word_type_to_add", wordTypeToAdd)
	}
	return s.service.Do(ctx, b, nil)
}

// ResetLanguageModel removes all corpora and words from a custom
// model, returning it to its post-create state.
func (s *SpeechToText) ResetLanguageModel(ctx context.Context, customizationID string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	b := s.service.NewRequest(http.MethodPost, []string{"v1/customizations", "reset"}, customizationID)
	return s.service.Do(ctx, b, nil)
}

// UpgradeLanguageModel upgrades a custom model to the latest version
// of its base model.
func (s *SpeechToText) UpgradeLanguageModel(ctx context.Context, customizationID string) error {
	if customizationID == "" {
		return watson.MissingField("customization_id")
	}
	b := s.service.NewRequest(http.MethodPost, []string{"v1/customizations", "upgrade_model"}, customizationID)
	return s.service.Do(ctx, b, nil)
}

// WaitForLanguageModel polls a custom model until it leaves a
// transient state (pending, training, upgrading), or the context ends.
// interval is the time between polls; zero means 5 seconds.
func (s *SpeechToText) WaitForLanguageModel(ctx context.Context, customizationID string, interval time.Duration) (*LanguageModel, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		model, err := s.GetLanguageModel(ctx, customizationID)
		if err != nil {
			return nil, err
		}
		switch model.Status {
		case LanguageModelStatusPending, LanguageModelStatusTraining, LanguageModelStatusUpgrading:
		default:
			return model, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
