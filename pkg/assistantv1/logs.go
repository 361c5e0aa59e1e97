package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// ListLogsOptions are the parameters for ListLogs.
type ListLogsOptions struct {
	WorkspaceID string // required
	Sort        string
	Filter      string
	PageLimit   *int64
	Cursor      string
}

// ListLogs lists the message events from the log of a workspace.
func (a *Assistant) ListLogs(ctx context.Context, opts *ListLogsOptions) (*LogCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workspaces", "logs"}, opts.WorkspaceID)
	if opts.Sort != "" {
		b.Query("sort", opts.Sort)
	}
	if opts.Filter != "" {
		b.Query("filter", opts.Filter)
	}
	if opts.PageLimit != nil {
		b.QueryInt("page_limit", *opts.PageLimit)
	}
	if opts.Cursor != "" {
		b.Query("cursor", opts.Cursor)
	}

	var col LogCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// ListAllLogsOptions are the parameters for ListAllLogs.
type ListAllLogsOptions struct {
	// Filter selects the log events. A filter naming a workspace_id,
	// request.context.system.assistant_id, or request.context.
	// metadata.deployment is required by the service.
	Filter string

	Sort      string
	PageLimit *int64
	Cursor    string
}

// ListAllLogs lists the message events from the logs of all workspaces
// in the service instance.
func (a *Assistant) ListAllLogs(ctx context.Context, opts *ListAllLogsOptions) (*LogCollection, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.Filter == "" {
		return nil, watson.MissingField("filter")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/logs"})
	b.Query("filter", opts.Filter)
	if opts.Sort != "" {
		b.Query("sort", opts.Sort)
	}
	if opts.PageLimit != nil {
		b.QueryInt("page_limit", *opts.PageLimit)
	}
	if opts.Cursor != "" {
		b.Query("cursor", opts.Cursor)
	}

	var col LogCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}
