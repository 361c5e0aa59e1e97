package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type exampleBody struct {
	Text     string    `json:"text,omitempty"`
	Mentions []Mention `json:"mentions,omitempty"`
}

// CreateExampleOptions are the parameters for CreateExample.
type CreateExampleOptions struct {
	WorkspaceID string // required
	Intent      string // required

	// Text is the user input example. Required.
	Text string

	// Mentions marks contextual entity occurrences within the text.
	Mentions []Mention
}

// CreateExample adds a new user input example to an intent.
func (a *Assistant) CreateExample(ctx context.Context, opts *CreateExampleOptions) (*Example, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}
	if opts.Text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "intents", "examples"}, opts.WorkspaceID, opts.Intent)
	b.JSON(&exampleBody{Text: opts.Text, Mentions: opts.Mentions})

	var ex Example
	if err := a.service.Do(ctx, b, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// GetExampleOptions are the parameters for GetExample.
type GetExampleOptions struct {
	WorkspaceID  string // required
	Intent       string // required
	Text         string // required
	IncludeAudit *bool
}

// GetExample gets information about a user input example.
func (a *Assistant) GetExample(ctx context.Context, opts *GetExampleOptions) (*Example, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}
	if opts.Text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "intents", "examples"}, opts.WorkspaceID, opts.Intent, opts.Text)
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var ex Example
	if err := a.service.Do(ctx, b, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// ListExamplesOptions are the parameters for ListExamples.
type ListExamplesOptions struct {
	WorkspaceID  string // required
	Intent       string // required
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListExamples lists the user input examples for an intent.
func (a *Assistant) ListExamples(ctx context.Context, opts *ListExamplesOptions) (*ExampleCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "intents", "examples"}, opts.WorkspaceID, opts.Intent)
	(&pageOptions{
		PageLimit:    opts.PageLimit,
		IncludeCount: opts.IncludeCount,
		Sort:         opts.Sort,
		Cursor:       opts.Cursor,
		IncludeAudit: opts.IncludeAudit,
	}).apply(b)

	var col ExampleCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateExampleOptions are the parameters for UpdateExample.
type UpdateExampleOptions struct {
	WorkspaceID string // required
	Intent      string // required
	Text        string // required

	NewText     string
	NewMentions []Mention
}

// UpdateExample updates the text of a user input example.
func (a *Assistant) UpdateExample(ctx context.Context, opts *UpdateExampleOptions) (*Example, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}
	if opts.Text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "intents", "examples"}, opts.WorkspaceID, opts.Intent, opts.Text)
	b.JSON(&exampleBody{Text: opts.NewText, Mentions: opts.NewMentions})

	var ex Example
	if err := a.service.Do(ctx, b, &ex); err != nil {
		return nil, err
	}
	return &ex, nil
}

// DeleteExample deletes a user input example from an intent.
func (a *Assistant) DeleteExample(ctx context.Context, workspaceID, intent, text string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if intent == "" {
		return watson.MissingField("intent")
	}
	if text == "" {
		return watson.MissingField("text")
	}
	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workspaces", "intents", "examples"}, workspaceID, intent, text)
	return a.service.Do(ctx, b, nil)
}
