package speechtotextv1

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// CreateJobOptions are the parameters for CreateJob, on top of the
// recognize tuning options.
type CreateJobOptions struct {
	RecognizeOptions

	// CallbackURL is a registered callback notified about the job.
	// When empty the job must be polled with GetJob.
	CallbackURL string

	// Events selects which notifications the callback receives:
	// recognitions.started, recognitions.completed,
	// recognitions.completed_with_results, recognitions.failed.
	Events []string

	// UserToken is included in callback notifications to identify
	// the job.
	UserToken string

	// ResultsTTL is how many minutes the results stay available
	// after the job completes.
	ResultsTTL *int64
}

// CreateJob submits audio for asynchronous recognition. The returned
// job carries the ID to poll with GetJob or WaitForJob.
func (s *SpeechToText) CreateJob(ctx context.Context, opts *CreateJobOptions) (*RecognitionJob, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	body, contentType, err := opts.resolveAudio()
	if err != nil {
		return nil, err
	}

	b := s.service.NewRequest(http.MethodPost, []string{"v1/recognitions"})
	opts.applyQuery(b)
	if opts.CallbackURL != "" {
		b.Query("callback_url", opts.CallbackURL)
	}
	if len(opts.Events) > 0 {
		b.Query("events", strings.Join(opts.Events, ","))
	}
	if opts.UserToken != "" {
		b.Query("user_token", opts.UserToken)
	}
	if opts.ResultsTTL != nil {
		b.QueryInt("results_ttl", *opts.ResultsTTL)
	}
	b.Binary(body, contentType)

	var job RecognitionJob
	if err := s.service.Do(ctx, b, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// GetJob gets the status of a recognition job, including results once
// the job completes.
func (s *SpeechToText) GetJob(ctx context.Context, jobID string) (*RecognitionJob, error) {
	if jobID == "" {
		return nil, watson.MissingField("job_id")
	}

	b := s.service.NewRequest(http.MethodGet, []string{"v1/recognitions"}, jobID)

	var job RecognitionJob
	if err := s.service.Do(ctx, b, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs lists the recognition jobs owned by the service instance.
func (s *SpeechToText) ListJobs(ctx context.Context) (*RecognitionJobs, error) {
	b := s.service.NewRequest(http.MethodGet, []string{"v1/recognitions"})

	var jobs RecognitionJobs
	if err := s.service.Do(ctx, b, &jobs); err != nil {
		return nil, err
	}
	return &jobs, nil
}

// DeleteJob deletes a recognition job and its results.
func (s *SpeechToText) DeleteJob(ctx context.Context, jobID string) error {
	if jobID == "" {
		return watson.MissingField("job_id")
	}
	b := s.service.NewRequest(http.MethodDelete, []string{"v1/recognitions"}, jobID)
	return s.service.Do(ctx, b, nil)
}

// RegisterCallback allowlists a callback URL for job notifications.
// The service challenges the URL before accepting it; userSecret, when
// set, keys the X-Callback-Signature header on notifications.
func (s *SpeechToText) RegisterCallback(ctx context.Context, callbackURL, userSecret string) (*RegisterStatus, error) {
	if callbackURL == "" {
		return nil, watson.MissingField("callback_url")
	}

	b := s.service.NewRequest(http.MethodPost, []string{"v1/register_callback"})
	b.Query("callback_url", callbackURL)
	if userSecret != "" {
		b.Query("user_secret", userSecret)
	}

	var status RegisterStatus
	if err := s.service.Do(ctx, b, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// UnregisterCallback removes a callback URL from the allowlist.
func (s *SpeechToText) UnregisterCallback(ctx context.Context, callbackURL string) error {
	if callbackURL == "" {
		return watson.MissingField("callback_url")
	}
	b := s.service.NewRequest(http.MethodPost, []string{"v1/unregister_callback"})
	b.Query("callback_url", callbackURL)
	return s.service.Do(ctx, b, nil)
}

// WaitForJob polls a job until it completes or fails, or the context
// ends. interval is the time between polls; zero means 5 seconds.
func (s *SpeechToText) WaitForJob(ctx context.Context, jobID string, interval time.Duration) (*RecognitionJob, error) {
	if interval <= 0 {
		interval = 5 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		job, err := s.GetJob(ctx, jobID)
		if err != nil {
			return nil, err
		}
		switch job.Status {
		case JobStatusCompleted, JobStatusFailed:
			return job, nil
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}
