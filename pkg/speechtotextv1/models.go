package speechtotextv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// ListModels lists the base recognition models available to the
// service instance.
func (s *SpeechToText) ListModels(ctx context.Context) (*SpeechModelSet, error) {
	b := s.service.NewRequest(http.MethodGet, []string{"v1/models"})

	var set SpeechModelSet
	if err := s.service.Do(ctx, b, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

// GetModel gets information about a base model by name, for example
// ModelEnUSBroadband.
func (s *SpeechToText) GetModel(ctx context.Context, modelID string) (*SpeechModel, error) {
	if modelID == "" {
		return nil, watson.MissingField("model_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/models"}, modelID)

	var model SpeechModel
	if err := s.service.Do(ctx, b, &model); err != nil {
		return nil, err
	}
	return &model, nil
}
