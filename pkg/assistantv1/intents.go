package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type intentBody struct {
	Intent      string    `json:"intent,omitempty"`
	Description string    `json:"description,omitempty"`
	Examples    []Example `json:"examples,omitempty"`
}

// CreateIntentOptions are the parameters for CreateIntent.
type CreateIntentOptions struct {
	// WorkspaceID identifies the workspace. Required.
	WorkspaceID string

	// Intent is the name of the new intent. Required.
	Intent string

	Description string
	Examples    []Example
}

// CreateIntent creates a new intent in a workspace.
func (a *Assistant) CreateIntent(ctx context.Context, opts *CreateIntentOptions) (*Intent, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "intents"}, opts.WorkspaceID)
	b.JSON(&intentBody{
		Intent:      opts.Intent,
		Description: opts.Description,
		Examples:    opts.Examples,
	})

	var intent Intent
	if err := a.service.Do(ctx, b, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// GetIntentOptions are the parameters for GetIntent.
type GetIntentOptions struct {
	WorkspaceID  string // required
	Intent       string // required
	Export       *bool
	IncludeAudit *bool
}

// GetIntent gets information about an intent, optionally including all
// of its examples.
func (a *Assistant) GetIntent(ctx context.Context, opts *GetIntentOptions) (*Intent, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "intents"}, opts.WorkspaceID, opts.Intent)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var intent Intent
	if err := a.service.Do(ctx, b, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// ListIntentsOptions are the parameters for ListIntents.
type ListIntentsOptions struct {
	WorkspaceID  string // required
	Export       *bool
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListIntents lists the intents for a workspace.
func (a *Assistant) ListIntents(ctx context.Context, opts *ListIntentsOptions) (*IntentCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "intents"}, opts.WorkspaceID)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	(&pageOptions{
		PageLimit:    opts.PageLimit,
		IncludeCount: opts.IncludeCount,
		Sort:         opts.Sort,
		Cursor:       opts.Cursor,
		IncludeAudit: opts.IncludeAudit,
	}).apply(b)

	var col IntentCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateIntentOptions are the parameters for UpdateIntent. New* fields
// replace the corresponding intent content when set.
type UpdateIntentOptions struct {
	WorkspaceID string // required
	Intent      string // required

	NewIntent      string
	NewDescription string
	NewExamples    []Example
}

// UpdateIntent updates an existing intent with new or modified data.
func (a *Assistant) UpdateIntent(ctx context.Context, opts *UpdateIntentOptions) (*Intent, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Intent == "" {
		return nil, watson.MissingField("intent")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "intents"}, opts.WorkspaceID, opts.Intent)
	b.JSON(&intentBody{
		Intent:      opts.NewIntent,
		Description: opts.NewDescription,
		Examples:    opts.NewExamples,
	})

	var intent Intent
	if err := a.service.Do(ctx, b, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// DeleteIntent deletes an intent from a workspace.
func (a *Assistant) DeleteIntent(ctx context.Context, workspaceID, intent string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if intent == "" {
		return watson.MissingField("intent")
	}
	b := a.service.NewRequest(http.MethodDelete, []string{"v1/workspaces", "intents"}, workspaceID, intent)
	return a.service.Do(ctx, b, nil)
}
