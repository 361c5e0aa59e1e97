package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type valueBody struct {
	Value    string         `json:"value,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
	Type     string         `json:"type,omitempty"`
}

// CreateValueOptions are the parameters for CreateValue.
type CreateValueOptions struct {
	WorkspaceID string // required
	Entity      string // required

	// Value is the text of the new value. Required.
	Value string

	Metadata map[string]any
	Synonyms []string
	Patterns []string

	// Type selects how the value is matched: ValueTypeSynonyms or
	// ValueTypePatterns. Defaults to synonyms server-side.
	Type string
}

// CreateValue creates a new value for an entity.
func (a *Assistant) CreateValue(ctx context.Context, opts *CreateValueOptions) (*Value, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}
	if opts.Value == "" {
		return nil, watson.MissingField("value")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "entities", "values"}, opts.WorkspaceID, opts.Entity)
	b.JSON(&valueBody{
		Value:    opts.Value,
		Metadata: opts.Metadata,
		Synonyms: opts.Synonyms,
		Patterns: opts.Patterns,
		Type:     opts.Type,
	})

	var value Value
	if err := a.service.Do(ctx, b, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

// GetValueOptions are the parameters for GetValue.
type GetValueOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Value        string // required
	Export       *bool
	IncludeAudit *bool
}

// GetValue gets information about an entity value.
func (a *Assistant) GetValue(ctx context.Context, opts *GetValueOptions) (*Value, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}
	if opts.Value == "" {
		return nil, watson.MissingField("value")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "entities", "values"}, opts.WorkspaceID, opts.Entity, opts.Value)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var value Value
	if err := a.service.Do(ctx, b, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

// ListValuesOptions are the parameters for ListValues.
type ListValuesOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Export       *bool
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListValues lists the values for an entity.
func (a *Assistant) ListValues(ctx context.Context, opts *ListValuesOptions) (*ValueCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "entities", "values"}, opts.WorkspaceID, opts.Entity)
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

	var col ValueCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateValueOptions are the parameters for UpdateValue.
type UpdateValueOptions struct {
	WorkspaceID string // required
	Entity      string // required
	Value       string // required

	NewValue    string
	NewMetadata map[string]any
	NewSynonyms []string
	NewPatterns []string
	NewType     string
}

// UpdateValue updates an existing entity value with new or modified
// data.
func (a *Assistant) UpdateValue(ctx context.Context, opts *UpdateValueOptions) (*Value, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}
	if opts.Value == "" {
		return nil, watson.MissingField("value")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "entities", "values"}, opts.WorkspaceID, opts.Entity, opts.Value)
	b.JSON(&valueBody{
		Value:    opts.NewValue,
		Metadata: opts.NewMetadata,
		Synonyms: opts.NewSynonyms,
		Patterns: opts.NewPatterns,
		Type:     opts.NewType,
	})

	var value Value
	if err := a.service.Do(ctx, b, &value); err != nil {
		return nil, err
	}
	return &value, nil
}

// DeleteValue deletes a value from an entity.
func (a *Assistant) DeleteValue(ctx context.Context, workspaceID, entity, value string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if entity == "" {
		return watson.MissingField("entity")
	}
	if value == "" {
		return watson.MissingField("value")
	}
	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workspaces", "entities", "values"}, workspaceID, entity, value)
	return a.service.Do(ctx, b, nil)
}
