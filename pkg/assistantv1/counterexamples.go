package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type counterexampleBody struct {
	Text string `json:"text,omitempty"`
}

// CreateCounterexample marks a user input as irrelevant input.
func (a *Assistant) CreateCounterexample(ctx context.Context, workspaceID, text string) (*Counterexample, error) {
	if workspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "counterexamples"}, workspaceID)
	b.JSON(&counterexampleBody{Text: text})

	var cx Counterexample
	if err := a.service.Do(ctx, b, &cx); err != nil {
		return nil, err
	}
	return &cx, nil
}

// GetCounterexampleOptions are the parameters for GetCounterexample.
type GetCounterexampleOptions struct {
	WorkspaceID  string // required
	Text         string // required
	IncludeAudit *bool
}

// GetCounterexample gets information about a counterexample.
func (a *Assistant) GetCounterexample(ctx context.Context, opts *GetCounterexampleOptions) (*Counterexample, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "counterexamples"}, opts.WorkspaceID, opts.Text)
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var cx Counterexample
	if err := a.service.Do(ctx, b, &cx); err != nil {
		return nil, err
	}
	return &cx, nil
}

// ListCounterexamplesOptions are the parameters for ListCounterexamples.
type ListCounterexamplesOptions struct {
	WorkspaceID  string // required
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListCounterexamples lists the counterexamples for a workspace.
func (a *Assistant) ListCounterexamples(ctx context.Context, opts *ListCounterexamplesOptions) (*CounterexampleCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "counterexamples"}, opts.WorkspaceID)
	(&pageOptions{
		PageLimit:    opts.PageLimit,
		IncludeCount: opts.IncludeCount,
		Sort:         opts.Sort,
		Cursor:       opts.Cursor,
		IncludeAudit: opts.IncludeAudit,
	}).apply(b)

	var col CounterexampleCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateCounterexample updates the text of a counterexample.
func (a *Assistant) UpdateCounterexample(ctx context.Context, workspaceID, text, newText string) (*Counterexample, error) {
	if workspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if text == "" {
		return nil, watson.MissingField("text")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "counterexamples"}, workspaceID, text)
	b.JSON(&counterexampleBody{Text: newText})

	var cx Counterexample
	if err := a.service.Do(ctx, b, &cx); err != nil {
		return nil, err
	}
	return &cx, nil
}

// DeleteCounterexample deletes a counterexample from a workspace.
func (a *Assistant) DeleteCounterexample(ctx context.Context, workspaceID, text string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if text == "" {
		return watson.MissingField("text")
	}
	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workspaces", "counterexamples"}, workspaceID, text)
	return a.service.Do(ctx, b, nil)
}
