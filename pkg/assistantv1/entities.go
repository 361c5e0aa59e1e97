package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type entityBody struct {
	Entity      string         `json:"entity,omitempty"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	Values      []Value        `json:"values,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
}

// CreateEntityOptions are the parameters for CreateEntity.
type CreateEntityOptions struct {
	WorkspaceID string // required

	// Entity is the name of the new entity. Required.
	Entity string

	Description string
	Metadata    map[string]any
	Values      []Value
	FuzzyMatch  *bool
}

// CreateEntity creates a new entity in a workspace.
func (a *Assistant) CreateEntity(ctx context.Context, opts *CreateEntityOptions) (*Entity, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "entities"}, opts.WorkspaceID)
	b.JSON(&entityBody{
		Entity:      opts.Entity,
		Description: opts.Description,
		Metadata:    opts.Metadata,
		Values:      opts.Values,
		FuzzyMatch:  opts.FuzzyMatch,
	})

	var entity Entity
	if err := a.service.Do(ctx, b, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// GetEntityOptions are the parameters for GetEntity.
type GetEntityOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Export       *bool
	IncludeAudit *bool
}

// GetEntity gets information about an entity, optionally including all
// of its values.
func (a *Assistant) GetEntity(ctx context.Context, opts *GetEntityOptions) (*Entity, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "entities"}, opts.WorkspaceID, opts.Entity)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var entity Entity
	if err := a.service.Do(ctx, b, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// ListEntitiesOptions are the parameters for ListEntities.
type ListEntitiesOptions struct {
	WorkspaceID  string // required
	Export       *bool
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListEntities lists the entities for a workspace.
func (a *Assistant) ListEntities(ctx context.Context, opts *ListEntitiesOptions) (*EntityCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "entities"}, opts.WorkspaceID)
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

	var col EntityCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateEntityOptions are the parameters for UpdateEntity.
type UpdateEntityOptions struct {
	WorkspaceID string // required
	Entity      string // required

	NewEntity      string
	NewDescription string
	NewMetadata    map[string]any
	NewValues      []Value
	NewFuzzyMatch  *bool
}

// UpdateEntity updates an existing entity with new or modified data.
func (a *Assistant) UpdateEntity(ctx context.Context, opts *UpdateEntityOptions) (*Entity, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.Entity == "" {
		return nil, watson.MissingField("entity")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "entities"}, opts.WorkspaceID, opts.Entity)
	b.JSON(&entityBody{
		Entity:      opts.NewEntity,
		Description: opts.NewDescription,
		Metadata:    opts.NewMetadata,
		Values:      opts.NewValues,
		FuzzyMatch:  opts.NewFuzzyMatch,
	})

	var entity Entity
	if err := a.service.Do(ctx, b, &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// DeleteEntity deletes an entity from a workspace.
func (a *Assistant) DeleteEntity(ctx context.Context, workspaceID, entity string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if entity == "" {
		return watson.MissingField("entity")
	}
	b := a.service.NewRequest(http.MethodDelete, []string{"v1/workspaces", "entities"}, workspaceID, entity)
	return a.service.Do(ctx, b, nil)
}

// ListMentionsOptions are the parameters for ListMentions.
type ListMentionsOptions struct {
	WorkspaceID  string // required
	Entity       string // required
	Export       *bool
	IncludeAudit *bool
}

// ListMentions lists the occurrences of a contextual entity across the
// intent user input examples.
func (a *Assistant) ListMentions(ctx context.Context, opts *ListMentionsOptions) (*EntityMentionCollection, error) {
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
		[]string{"v1/workspaces", "entities", "mentions"}, opts.WorkspaceID, opts.Entity)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var col EntityMentionCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}
