package assistantv1

import (
	"context"
	"net/http"

	"github.com/cognitivekit/go-watson/pkg/watson"
)

// Skill versioning API: definitions track a workspace-backed skill,
// snapshots are immutable versions of a definition.

// CreateSnapshot creates a new version (snapshot) of a skill
// definition.
func (a *Assistant) CreateSnapshot(ctx context.Context, definitionID, description string) (*Snapshot, error) {
	if definitionID == "" {
		return nil, watson.MissingField("definition_id")
	}

	b := a.service.NewRequest(http.MethodPost,
		[]string{"v1/workers/definitions", "snapshots"}, definitionID)
	b.JSON(map[string]string{"description": description})

	var snap Snapshot
	if err := a.service.Do(ctx, b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GetSnapshotOptions are the parameters for GetSnapshot.
type GetSnapshotOptions struct {
	DefinitionID string // required
	SnapshotID   string // required

	// Export includes the snapshot's workspace data in the response.
	Export bool
}

// GetSnapshot fetches a snapshot, optionally with its exported
// workspace data.
func (a *Assistant) GetSnapshot(ctx context.Context, opts *GetSnapshotOptions) (*Snapshot, error) {
	if opts == nil {
		return nil, watson.ErrNilOptions
	}
	if opts.DefinitionID == "" {
		return nil, watson.MissingField("definition_id")
	}
	if opts.SnapshotID == "" {
		return nil, watson.MissingField("snapshot_id")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workers/definitions", "snapshots"}, opts.DefinitionID, opts.SnapshotID)
	if opts.Export {
		b.Query("export", "true")
	}

	var snap Snapshot
	if err := a.service.Do(ctx, b, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListSnapshots lists all snapshots of a definition.
func (a *Assistant) ListSnapshots(ctx context.Context, definitionID string) (*SnapshotCollection, error) {
	if definitionID == "" {
		return nil, watson.MissingField("definition_id")
	}

	b := a.service.NewRequest(http.MethodGet,
		[]string{"v1/workers/definitions", "snapshots"}, definitionID)

	var col SnapshotCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}

// DeleteSnapshot removes a snapshot from its definition. The snapshot
// must carry the worker definition ID and snapshot ID it was fetched
// with.
func (a *Assistant) DeleteSnapshot(ctx context.Context, snapshot *Snapshot) error {
	if snapshot == nil {
		return watson.ErrNilOptions
	}
	if snapshot.WorkerDefinitionID == "" {
		return watson.MissingField("worker_definition_id")
	}
	if snapshot.ID == "" {
		return watson.MissingField("id")
	}

	b := a.service.NewRequest(http.MethodDelete,
		[]string{"v1/workers/definitions", "snapshots"}, snapshot.WorkerDefinitionID, snapshot.ID)
	return a.service.Do(ctx, b, nil)
}

// GetDefinition fetches a skill definition by ID.
func (a *Assistant) GetDefinition(ctx context.Context, definitionID string) (*Definition, error) {
	if definitionID == "" {
		return nil, watson.MissingField("definition_id")
	}

	b := a.service.NewRequest(http.MethodGet, []string{"v1/workers/definitions"}, definitionID)

	var def Definition
	if err := a.service.Do(ctx, b, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

// ListDefinitions lists all skill definitions in the service instance.
func (a *Assistant) ListDefinitions(ctx context.Context) (*DefinitionCollection, error) {
	b := a.service.NewRequest(http.MethodGet, []string{"v1/workers/definitions"})

	var col DefinitionCollection
	if err := a.service.Do(ctx, b, &col); err != nil {
		return nil, err
	}
	return &col, nil
}
