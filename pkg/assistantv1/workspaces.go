package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// workspaceBody is the create/update request body.
type workspaceBody struct {
	Name            string                  `json:"name,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Language        string                  `json:"language,omitempty"`
	Intents         []Intent                `json:"intents,omitempty"`
	Entities        []Entity                `json:"entities,omitempty"`
	DialogNodes     []DialogNode            `json:"dialog_nodes,omitempty"`
	Counterexamples []Counterexample        `json:"counterexamples,omitempty"`
	Metadata        map[string]any          `json:"metadata,omitempty"`
	LearningOptOut  *bool                   `json:"learning_opt_out,omitempty"`
	SystemSettings  WorkspaceSystemSettings `json:"system_settings,omitempty"`
}

// CreateWorkspaceOptions are the parameters for CreateWorkspace. All
// fields are optional; an empty options value creates an empty
// workspace.
type CreateWorkspaceOptions struct {
	Name            string
	Description     string
	Language        string
	Intents         []Intent
	Entities        []Entity
	DialogNodes     []DialogNode
	Counterexamples []Counterexample
	Metadata        map[string]any
	LearningOptOut  *bool
	SystemSettings  WorkspaceSystemSettings
}

// CreateWorkspace creates a workspace from component objects. This
// operation is limited to 30 requests per 30 minutes.
func (a *Assistant) CreateWorkspace(ctx context.Context, opts *CreateWorkspaceOptions) (*Workspace, error) {
	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces"})
	if opts != nil {
		b.JSON(&workspaceBody{
			Name:            opts.Name,
			Description:     opts.Description,
			Language:        opts.Language,
			Intents:         opts.Intents,
			Entities:        opts.Entities,
			DialogNodes:     opts.DialogNodes,
			Counterexamples: opts.Counterexamples,
			Metadata:        opts.Metadata,
			LearningOptOut:  opts.LearningOptOut,
			SystemSettings:  opts.SystemSettings,
		})
	} else {
		b.JSON(&workspaceBody{})
	}

	var ws Workspace
	if err := a.service.Do(ctx, b, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// GetWorkspaceOptions are the parameters for GetWorkspace.
type GetWorkspaceOptions struct {
	// WorkspaceID identifies the workspace. Required.
	WorkspaceID string

	// Export includes all workspace content in the response. With
	// export the rate limit drops from 6000 requests per 5 minutes to
	// 20 per 30 minutes.
	Export *bool

	// IncludeAudit includes created/updated timestamps.
	IncludeAudit *bool
}

// GetWorkspace gets information about a workspace, optionally
// including all content.
func (a *Assistant) GetWorkspace(ctx context.Context, opts *GetWorkspaceOptions) (*Workspace, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces"}, opts.WorkspaceID)
	if opts.Export != nil {
		b.QueryBool("export", *opts.Export)
	}
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var ws Workspace
	if err := a.service.Do(ctx, b, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// ListWorkspacesOptions are the parameters for ListWorkspaces. A nil
// options value lists with service defaults.
type ListWorkspacesOptions struct {
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListWorkspaces lists the workspaces in the service instance.
func (a *Assistant) ListWorkspaces(ctx context.Context, opts *ListWorkspacesOptions) (*WorkspaceCollection, error) {
	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces"})
	if opts != nil {
		(&pageOptions{
			PageLimit:    opts.PageLimit,
			IncludeCount: opts.IncludeCount,
			Sort:         opts.Sort,
			Cursor:       opts.Cursor,
			IncludeAudit: opts.IncludeAudit,
		}).apply(b)
	}

	var col WorkspaceCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateWorkspaceOptions are the parameters for UpdateWorkspace.
type UpdateWorkspaceOptions struct {
	// WorkspaceID identifies the workspace. Required.
	WorkspaceID string

	Name            string
	Description     string
	Language        string
	Intents         []Intent
	Entities        []Entity
	DialogNodes     []DialogNode
	Counterexamples []Counterexample
	Metadata        map[string]any
	LearningOptOut  *bool
	SystemSettings  WorkspaceSystemSettings

	// Append adds the provided elements to the existing workspace
	// content instead of replacing it.
	Append *bool
}

// UpdateWorkspace updates a workspace with new or modified content.
func (a *Assistant) UpdateWorkspace(ctx context.Context, opts *UpdateWorkspaceOptions) (*Workspace, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces"}, opts.WorkspaceID)
	if opts.Append != nil {
		b.QueryBool("append", *opts.Append)
	}
	b.JSON(&workspaceBody{
		Name:            opts.Name,
		Description:     opts.Description,
		Language:        opts.Language,
		Intents:         opts.Intents,
		Entities:        opts.Entities,
		DialogNodes:     opts.DialogNodes,
		Counterexamples: opts.Counterexamples,
		Metadata:        opts.Metadata,
		LearningOptOut:  opts.LearningOptOut,
		SystemSettings:  opts.SystemSettings,
	})

	var ws Workspace
	if err := a.service.Do(ctx, b, &ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// DeleteWorkspace deletes a workspace.
func (a *Assistant) DeleteWorkspace(ctx context.Context, workspaceID string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	b := a.service.NewRequest(http.MethodDelete, []string{"v1/workspaces"}, workspaceID)
	return a.service.Do(ctx, b, nil)
}

// DeleteUserData deletes all data associated with a customer ID, as
// passed in the X-Watson-Metadata header on earlier requests. The
// method has no effect if no data is associated with the customer ID.
func (a *Assistant) DeleteUserData(ctx context.Context, customerID string) error {
	if customerID == "" {
		return watson.MissingField("customer_id")
	}
	b := a.service.NewRequest(http.MethodDelete, []string{"v1/user_data"})
	b.Query("customer_id", customerID)
	return a.service.Do(ctx, b, nil)
}
