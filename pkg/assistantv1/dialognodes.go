package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

type dialogNodeBody struct {
	DialogNode      string              `json:"dialog_node,omitempty"`
	Description     string              `json:"description,omitempty"`
	Conditions      string              `json:"conditions,omitempty"`
	Parent          string              `json:"parent,omitempty"`
	PreviousSibling string              `json:"previous_sibling,omitempty"`
	Output          map[string]any      `json:"output,omitempty"`
	Context         Context             `json:"context,omitempty"`
	Metadata        map[string]any      `json:"metadata,omitempty"`
	NextStep        *DialogNodeNextStep `json:"next_step,omitempty"`
	Actions         []DialogNodeAction  `json:"actions,omitempty"`
	Title           string              `json:"title,omitempty"`
	Type            string              `json:"type,omitempty"`
	EventName       string              `json:"event_name,omitempty"`
	Variable        string              `json:"variable,omitempty"`
	DigressIn       string              `json:"digress_in,omitempty"`
	DigressOut      string              `json:"digress_out,omitempty"`
	DigressOutSlots string              `json:"digress_out_slots,omitempty"`
	UserLabel       string              `json:"user_label,omitempty"`
}

// CreateDialogNodeOptions are the parameters for CreateDialogNode.
type CreateDialogNodeOptions struct {
	WorkspaceID string // required

	// DialogNode is the ID of the new node. Required.
	DialogNode string

	Description     string
	Conditions      string
	Parent          string
	PreviousSibling string
	Output          map[string]any
	Context         Context
	Metadata        map[string]any
	NextStep        *DialogNodeNextStep
	Actions         []DialogNodeAction
	Title           string
	Type            string
	EventName       string
	Variable        string
	DigressIn       string
	DigressOut      string
	DigressOutSlots string
	UserLabel       string
}

// CreateDialogNode creates a new dialog node in a workspace.
func (a *Assistant) CreateDialogNode(ctx context.Context, opts *CreateDialogNodeOptions) (*DialogNode, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.DialogNode == "" {
		return nil, watson.MissingField("dialog_node")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "dialog_nodes"}, opts.WorkspaceID)
	b.JSON(&dialogNodeBody{
		DialogNode:      opts.DialogNode,
		Description:     opts.Description,
		Conditions:      opts.Conditions,
		Parent:          opts.Parent,
		PreviousSibling: opts.PreviousSibling,
		Output:          opts.Output,
		Context:         opts.Context,
		Metadata:        opts.Metadata,
		NextStep:        opts.NextStep,
		Actions:         opts.Actions,
		Title:           opts.Title,
		Type:            opts.Type,
		EventName:       opts.EventName,
		Variable:        opts.Variable,
		DigressIn:       opts.DigressIn,
		DigressOut:      opts.DigressOut,
		DigressOutSlots: opts.DigressOutSlots,
		UserLabel:       opts.UserLabel,
	})

	var node DialogNode
	if err := a.service.Do(ctx, b, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// GetDialogNodeOptions are the parameters for GetDialogNode.
type GetDialogNodeOptions struct {
	WorkspaceID  string // required
	DialogNode   string // required
	IncludeAudit *bool
}

// GetDialogNode gets information about a dialog node.
func (a *Assistant) GetDialogNode(ctx context.Context, opts *GetDialogNodeOptions) (*DialogNode, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.DialogNode == "" {
		return nil, watson.MissingField("dialog_node")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workspaces", "dialog_nodes"}, opts.WorkspaceID, opts.DialogNode)
	if opts.IncludeAudit != nil {
		b.QueryBool("include_audit", *opts.IncludeAudit)
	}

	var node DialogNode
	if err := a.service.Do(ctx, b, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// ListDialogNodesOptions are the parameters for ListDialogNodes.
type ListDialogNodesOptions struct {
	WorkspaceID  string // required
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

// ListDialogNodes lists the dialog nodes for a workspace.
func (a *Assistant) ListDialogNodes(ctx context.Context, opts *ListDialogNodesOptions) (*DialogNodeCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "dialog_nodes"}, opts.WorkspaceID)
	(&pageOptions{
		PageLimit:    opts.PageLimit,
		IncludeCount: opts.IncludeCount,
		Sort:         opts.Sort,
		Cursor:       opts.Cursor,
		IncludeAudit: opts.IncludeAudit,
	}).apply(b)

	var col DialogNodeCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// UpdateDialogNodeOptions are the parameters for UpdateDialogNode.
type UpdateDialogNodeOptions struct {
	WorkspaceID string // required
	DialogNode  string // required

	NewDialogNode      string
	NewDescription     string
	NewConditions      string
	NewParent          string
	NewPreviousSibling string
	NewOutput          map[string]any
	NewContext         Context
	NewMetadata        map[string]any
	NewNextStep        *DialogNodeNextStep
	NewActions         []DialogNodeAction
	NewTitle           string
	NewType            string
	NewEventName       string
	NewVariable        string
	NewDigressIn       string
	NewDigressOut      string
	NewDigressOutSlots string
	NewUserLabel       string
}

// UpdateDialogNode updates an existing dialog node with new or
// modified data.
func (a *Assistant) UpdateDialogNode(ctx context.Context, opts *UpdateDialogNodeOptions) (*DialogNode, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}
	if opts.DialogNode == "" {
		return nil, watson.MissingField("dialog_node")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workspaces", "dialog_nodes"}, opts.WorkspaceID, opts.DialogNode)
	b.JSON(&dialogNodeBody{
		DialogNode:      opts.NewDialogNode,
		Description:     opts.NewDescription,
		Conditions:      opts.NewConditions,
		Parent:          opts.NewParent,
		PreviousSibling: opts.NewPreviousSibling,
		Output:          opts.NewOutput,
		Context:         opts.NewContext,
		Metadata:        opts.NewMetadata,
		NextStep:        opts.NewNextStep,
		Actions:         opts.NewActions,
		Title:           opts.NewTitle,
		Type:            opts.NewType,
		EventName:       opts.NewEventName,
		Variable:        opts.NewVariable,
		DigressIn:       opts.NewDigressIn,
		DigressOut:      opts.NewDigressOut,
		DigressOutSlots: opts.NewDigressOutSlots,
		UserLabel:       opts.NewUserLabel,
	})

	var node DialogNode
	if err := a.service.Do(ctx, b, &node); err != nil {
		return nil, err
	}
	return &node, nil
}

// DeleteDialogNode deletes a dialog node from a workspace.
func (a *Assistant) DeleteDialogNode(ctx context.Context, workspaceID, dialogNode string) error {
	if workspaceID == "" {
		return watson.MissingField("workspace_id")
	}
	if dialogNode == "" {
		return watson.MissingField("dialog_node")
	}
	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workspaces", "dialog_nodes"}, workspaceID, dialogNode)
	return a.service.Do(ctx, b, nil)
}
