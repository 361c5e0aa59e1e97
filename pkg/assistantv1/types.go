package assistantv1

// Model types mirror the vendor's JSON schema field-for-field. They are
// constructed by deserializing responses; the service owns all
// invariants.

// Pagination reports the paging state of a collection response.
type Pagination struct {
	RefreshURL    string `json:"refresh_url,omitempty"`
	NextURL       string `json:"next_url,omitempty"`
	Total         int64  `json:"total,omitempty"`
	Matched       int64  `json:"matched,omitempty"`
	RefreshCursor string `json:"refresh_cursor,omitempty"`
	NextCursor    string `json:"next_cursor,omitempty"`
}

// Context is the dialog state passed between message turns. The
// conversation_id and system entries are service-managed; everything
// else is application state.
type Context map[string]any

// MessageInput is the user input for a message turn.
type MessageInput struct {
	Text string `json:"text"`
}

// RuntimeIntent is an intent detected in user input.
type RuntimeIntent struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

// CaptureGroup is a matched pattern group within an entity value.
type CaptureGroup struct {
	Group    string  `json:"group"`
	Location []int64 `json:"location,omitempty"`
}

// RuntimeEntity is an entity detected in user input.
type RuntimeEntity struct {
	Entity     string         `json:"entity"`
	Location   []int64        `json:"location"`
	Value      string         `json:"value"`
	Confidence float64        `json:"confidence,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Groups     []CaptureGroup `json:"groups,omitempty"`
}

// LogMessage is a processing warning or error attached to output.
type LogMessage struct {
	Level string `json:"level"`
	Msg   string `json:"msg"`
}

// DialogNodeVisitedDetails describes one node visited during a turn.
type DialogNodeVisitedDetails struct {
	DialogNode string `json:"dialog_node,omitempty"`
	Title      string `json:"title,omitempty"`
	Conditions string `json:"conditions,omitempty"`
}

// OutputData is the dialog output for a message turn.
type OutputData struct {
	LogMessages         []LogMessage               `json:"log_messages,omitempty"`
	Text                []string                   `json:"text,omitempty"`
	NodesVisited        []string                   `json:"nodes_visited,omitempty"`
	NodesVisitedDetails []DialogNodeVisitedDetails `json:"nodes_visited_details,omitempty"`
}

// MessageRequest is the message request body.
type MessageRequest struct {
	Input            *MessageInput   `json:"input,omitempty"`
	AlternateIntents *bool           `json:"alternate_intents,omitempty"`
	Context          Context         `json:"context,omitempty"`
	Entities         []RuntimeEntity `json:"entities,omitempty"`
	Intents          []RuntimeIntent `json:"intents,omitempty"`
	Output           *OutputData     `json:"output,omitempty"`
}

// MessageResponse is the dialog response for a message turn.
type MessageResponse struct {
	Input            *MessageInput   `json:"input,omitempty"`
	Intents          []RuntimeIntent `json:"intents"`
	Entities         []RuntimeEntity `json:"entities"`
	AlternateIntents bool            `json:"alternate_intents,omitempty"`
	Context          Context         `json:"context,omitempty"`
	Output           *OutputData     `json:"output,omitempty"`
}

// WorkspaceSystemSettings holds workspace-level behavior toggles. The
// service adds keys over time, so the shape is left open.
type WorkspaceSystemSettings map[string]any

// Workspace is a dialog workspace. Export fields (Intents, Entities,
// DialogNodes, Counterexamples) are populated only when the operation
// was called with export=true.
type Workspace struct {
	Name            string                  `json:"name,omitempty"`
	Language        string                  `json:"language,omitempty"`
	Created         string                  `json:"created,omitempty"`
	Updated         string                  `json:"updated,omitempty"`
	WorkspaceID     string                  `json:"workspace_id,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Metadata        map[string]any          `json:"metadata,omitempty"`
	LearningOptOut  bool                    `json:"learning_opt_out,omitempty"`
	SystemSettings  WorkspaceSystemSettings `json:"system_settings,omitempty"`
	Status          string                  `json:"status,omitempty"`
	Intents         []Intent                `json:"intents,omitempty"`
	Entities        []Entity                `json:"entities,omitempty"`
	Counterexamples []Counterexample        `json:"counterexamples,omitempty"`
	DialogNodes     []DialogNode            `json:"dialog_nodes,omitempty"`
}

// Workspace training statuses.
const (
	WorkspaceStatusAvailable   = "Available"
	WorkspaceStatusFailed      = "Failed"
	WorkspaceStatusNonExistent = "Non Existent"
	WorkspaceStatusTraining    = "Training"
	WorkspaceStatusUnavailable = "Unavailable"
)

// WorkspaceCollection is a page of workspaces.
type WorkspaceCollection struct {
	Workspaces []Workspace `json:"workspaces"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Mention is an occurrence of a contextual entity within an example.
type Mention struct {
	Entity   string  `json:"entity"`
	Location []int64 `json:"location"`
}

// Example is a user input example for an intent.
type Example struct {
	Text     string    `json:"text"`
	Mentions []Mention `json:"mentions,omitempty"`
	Created  string    `json:"created,omitempty"`
	Updated  string    `json:"updated,omitempty"`
}

// ExampleCollection is a page of examples.
type ExampleCollection struct {
	Examples   []Example   `json:"examples"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Intent groups user input examples under a training label. Examples
// are populated only for export operations.
type Intent struct {
	Intent      string    `json:"intent"`
	Description string    `json:"description,omitempty"`
	Created     string    `json:"created,omitempty"`
	Updated     string    `json:"updated,omitempty"`
	Examples    []Example `json:"examples,omitempty"`
}

// IntentCollection is a page of intents.
type IntentCollection struct {
	Intents    []Intent    `json:"intents"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Counterexample is an input marked as irrelevant.
type Counterexample struct {
	Text    string `json:"text"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// CounterexampleCollection is a page of counterexamples.
type CounterexampleCollection struct {
	Counterexamples []Counterexample `json:"counterexamples"`
	Pagination      *Pagination      `json:"pagination,omitempty"`
}

// Synonym is an alternate spelling of an entity value.
type Synonym struct {
	Synonym string `json:"synonym"`
	Created string `json:"created,omitempty"`
	Updated string `json:"updated,omitempty"`
}

// SynonymCollection is a page of synonyms.
type SynonymCollection struct {
	Synonyms   []Synonym   `json:"synonyms"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Value is an entity value, matched by synonyms or patterns.
type Value struct {
	Value    string         `json:"value"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Type     string         `json:"type,omitempty"`
	Synonyms []string       `json:"synonyms,omitempty"`
	Patterns []string       `json:"patterns,omitempty"`
	Created  string         `json:"created,omitempty"`
	Updated  string         `json:"updated,omitempty"`
}

// Value types.
const (
	ValueTypeSynonyms = "synonyms"
	ValueTypePatterns = "patterns"
)

// ValueCollection is a page of entity values.
type ValueCollection struct {
	Values     []Value     `json:"values"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Entity is a dialog entity. Values are populated only for export
// operations.
type Entity struct {
	Entity      string         `json:"entity"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty"`
	Created     string         `json:"created,omitempty"`
	Updated     string         `json:"updated,omitempty"`
	Values      []Value        `json:"values,omitempty"`
}

// EntityCollection is a page of entities.
type EntityCollection struct {
	Entities   []Entity    `json:"entities"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// EntityMention is an occurrence of a contextual entity in an intent
// user input example.
type EntityMention struct {
	Text     string  `json:"text"`
	Intent   string  `json:"intent"`
	Location []int64 `json:"location"`
}

// EntityMentionCollection is the set of mentions for an entity.
type EntityMentionCollection struct {
	Examples   []EntityMention `json:"examples"`
	Pagination *Pagination     `json:"pagination,omitempty"`
}

// DialogNodeNextStep describes what to do after a node executes.
type DialogNodeNextStep struct {
	Behavior   string `json:"behavior"`
	DialogNode string `json:"dialog_node,omitempty"`
	Selector   string `json:"selector,omitempty"`
}

// DialogNodeAction is a programmatic call made when a node executes.
type DialogNodeAction struct {
	Name           string         `json:"name"`
	Type           string         `json:"type,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	ResultVariable string         `json:"result_variable"`
	Credentials    string         `json:"credentials,omitempty"`
}

// DialogNode is one node of the dialog tree.
type DialogNode struct {
	DialogNode      string              `json:"dialog_node"`
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
	Created         string              `json:"created,omitempty"`
	Updated         string              `json:"updated,omitempty"`
}

// Dialog node types.
const (
	DialogNodeTypeStandard          = "standard"
	DialogNodeTypeEventHandler      = "event_handler"
	DialogNodeTypeFrame             = "frame"
	DialogNodeTypeSlot              = "slot"
	DialogNodeTypeResponseCondition = "response_condition"
	DialogNodeTypeFolder            = "folder"
)

// DialogNodeCollection is a page of dialog nodes.
type DialogNodeCollection struct {
	DialogNodes []DialogNode `json:"dialog_nodes"`
	Pagination  *Pagination  `json:"pagination,omitempty"`
}

// LogEntry is one request/response pair from the workspace log.
type LogEntry struct {
	Request           *MessageRequest  `json:"request"`
	Response          *MessageResponse `json:"response"`
	LogID             string           `json:"log_id"`
	RequestTimestamp  string           `json:"request_timestamp"`
	ResponseTimestamp string           `json:"response_timestamp"`
	WorkspaceID       string           `json:"workspace_id"`
	Language          string           `json:"language"`
}

// LogPagination reports the paging state of a log collection.
type LogPagination struct {
	NextURL    string `json:"next_url,omitempty"`
	Matched    int64  `json:"matched,omitempty"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// LogCollection is a page of log events.
type LogCollection struct {
	Logs       []LogEntry     `json:"logs"`
	Pagination *LogPagination `json:"pagination,omitempty"`
}

// SnapshotCounts summarizes the content of a snapshot.
type SnapshotCounts struct {
	Intents     int64 `json:"intents,omitempty"`
	Entities    int64 `json:"entities,omitempty"`
	DialogNodes int64 `json:"dialog_nodes,omitempty"`
}

// Snapshot is an immutable version of a skill definition.
type Snapshot struct {
	ID                 string          `json:"id,omitempty"`
	Description        string          `json:"description,omitempty"`
	SnapshotName       string          `json:"snapshot_name,omitempty"`
	WorkspaceID        string          `json:"workspace_id,omitempty"`
	WorkerDefinitionID string          `json:"worker_definition_id,omitempty"`
	ReferenceID        string          `json:"reference_id,omitempty"`
	TenantID           string          `json:"tenant_id,omitempty"`
	TimestampCreated   string          `json:"timestamp_created,omitempty"`
	Counts             *SnapshotCounts `json:"counts,omitempty"`
	ExportedData       map[string]any  `json:"exported_data,omitempty"`
}

// SnapshotCollection is the set of snapshots for a definition.
type SnapshotCollection struct {
	Snapshots []Snapshot `json:"snapshots"`
}

// DefinitionConfig links a definition to its backing workspace.
type DefinitionConfig struct {
	WorkspaceID string `json:"workspace_id,omitempty"`
}

// Definition is a skill definition tracked by the versioning API.
type Definition struct {
	ID               string            `json:"id,omitempty"`
	Name             string            `json:"name,omitempty"`
	WorkerTemplateID string            `json:"worker_template_id,omitempty"`
	Config           *DefinitionConfig `json:"config,omitempty"`
	TenantID         string            `json:"tenant_id,omitempty"`
	Version          string            `json:"version,omitempty"`
	Description      string            `json:"description,omitempty"`
	SkillReference   string            `json:"skill_reference,omitempty"`
	NextSkillVersion string            `json:"next_skill_version,omitempty"`
	TimestampCreated string            `json:"timestamp_created,omitempty"`
	TimestampModified string           `json:"timestamp_modified,omitempty"`
}

// DefinitionCollection is the set of skill definitions.
type DefinitionCollection struct {
	Definitions []Definition `json:"definitions"`
}
