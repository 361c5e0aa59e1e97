package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// MessageOptions are the parameters for Message.
type MessageOptions struct {
	// WorkspaceID identifies the workspace. Required.
	WorkspaceID string

	// Input is the user input for this turn.
	Input *MessageInput

	// AlternateIntents requests all matching intents instead of the
	// single best match.
	AlternateIntents *bool

	// Context is the dialog state from the previous turn. Pass the
	// context of the previous response to continue a conversation.
	Context Context

	// Entities overrides entity detection for this turn.
	Entities []RuntimeEntity

	// Intents overrides intent detection for this turn.
	Intents []RuntimeIntent

	// Output carries dialog output from the previous turn.
	Output *OutputData

	// NodesVisitedDetails includes extra diagnostics about visited
	// dialog nodes in the response.
	NodesVisitedDetails *bool
}

// Message sends user input to a workspace and returns the dialog
// response. There is no rate limit for this operation.
func (a *Assistant) Message(ctx context.Context, opts *MessageOptions) (*MessageResponse, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.WorkspaceID == "" {
		return nil, watson.MissingField("workspace_id")
	}

	b := a.service.NewRequest(http.MethodPost, []string{"v1/workspaces", "message"}, opts.WorkspaceID)
	if opts.NodesVisitedDetails != nil {
		b.QueryBool("nodes_visited_details", *opts.NodesVisitedDetails)
	}
	b.JSON(&MessageRequest{
		Input:            opts.Input,
		AlternateIntents: opts.AlternateIntents,
		Context:          opts.Context,
		Entities:         opts.Entities,
		Intents:          opts.Intents,
		Output:           opts.Output,
	})

	var resp MessageResponse
	if err := a.service.Do(ctx, b, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
