package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type synonymBody struct {
	Synonym string `json:"synonym,omitempty"`
}

// CreateSynonym adds a new synonym to an entity value.
func (a *Assistant) CreateSynonym(ctx context.Context, workspaceID, entity, value, synonym string) (*Synonym, error) {
	if err := validateSynonymPath(workspaceID, entity, value); err != nil {
		return nil, err
	}
	if synonym == "" {
		return nil, watson.MissingField("synonym")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "entities", "values", "synonyms"}, workspaceID, entity, value)
	b.JSON(&synonymBody{Synonym: synonym})

	var syn Synonym
	if err := a.service.Do(ctx, b, &syn); err != nil {
		return nil, err
	}
	return &syn, nil
}

// GetSynonymOptions are the parameters for GetSynonym.
type GetSynonymOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Value        string // required
	Synonym      string // required
	IncludeAudit *bool
}

// GetSynonym gets information about a synonym of an entity value.
func (a *Assistant) GetSynonym(ctx context.Context, opts *GetSynonymOptions) (*Synonym, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if err := validateSynonymPath(opts.WorkspaceID, opts.Entity, opts.Value); err != nil {
		return nil, err
	}
	if opts.Synonym == "" {
		return nil, watson.MissingField("synonym")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "entities", "values", "synonyms"},
		opts.WorkspaceID, opts.Entity, opts.Value, opts.Synonym)
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var syn Synonym
	if err := a.service.Do(ctx, b, &syn); err != nil {
		return nil, err
	}
	return &syn, nil
}

// ListSynonymsOptions are the parameters for ListSynonyms.
type ListSynonymsOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Value        string // required
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListSynonyms lists the synonyms for an entity value.
func (a *Assistant) ListSynonyms(ctx context.Context, opts *ListSynonymsOptions) (*SynonymCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if err := validateSynonymPath(opts.WorkspaceID, opts.Entity, opts.Value); err != nil {
		return nil, err
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "entities", "values", "synonyms"},
		opts.WorkspaceID, opts.Entity, opts.Value)
	(&pageOptions{
		PageLimit:    opts.PageLimit,
		IncludeCount: opts.IncludeCount,
		Sort:         opts.Sort,
		Cursor:       opts.Cursor,
		IncludeAudit: opts.IncludeAudit,
	}).apply(b)

	var col SynonymCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateSynonym updates a synonym of an entity value.
func (a *Assistant) UpdateSynonym(ctx context.Context, workspaceID, entity, value, synonym, newSynonym string) (*Synonym, error) {
	if err := validateSynonymPath(workspaceID, entity, value); err != nil {
		return nil, err
	}
	if synonym == "" {
		return nil, watson.MissingField("synonym")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "entities", "values", "synonyms"},
		workspaceID, entity, value, synonym)
	b.JSON(&synonymBody{Synonym: newSynonym})

	var syn Synonym
	if err := a.service.Do(ctx, b, &syn); err != nil {
		return nil, err
	}
	return &syn, nil
}

// DeleteSynonym deletes a synonym from an entity value.
func (a *Assistant) DeleteSynonym(ctx context.Context, workspaceID, entity, value, synonym string) error {
	if err := validateSynonymPath(workspaceID, entity, value); err != nil {
		return err
	}
	if synonym == "" {
		return watson.MissingField("synonym")
	}
	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workspaces", "entities", "values", "synonyms"},
		workspaceID, entity, value, synonym)
	return a.service.Do(ctx, b, nil)
}

func validateSynonymPath(workspaceID, entity, value string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if entity == "" {
		return watson.MissingField("entity")
	}
	if value == "" {
		return watson.MissingField("value")
	}
	return nil
}
