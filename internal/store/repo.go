package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/profile"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData captures the full viewer state at a point in time.
type SnapshotData struct {
	Version int                 `json:"version"`
	Profile profile.UserProfile `json:"profile"`
}

// Snapshot represents a point-in-time capture of viewer state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages viewer state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// SnapshotKeep is how many snapshots ProfileRepo retains on save.
const SnapshotKeep = 20

// ProfileRepo persists the viewer profile on top of snapshots.
type ProfileRepo interface {
	// Load returns the profile from the latest snapshot, or a fresh
	// profile if none exists yet.
	Load(ctx context.Context) (*profile.UserProfile, error)

	// Save snapshots the profile and prunes old snapshots.
	Save(ctx context.Context, p *profile.UserProfile) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// AssessmentEventData captures one scored reflection assessment.
type AssessmentEventData struct {
	StageLabel    string
	Change        string
	Quality       float64
	ResponseCount int
	Scores        map[string]float64
}

// StageEventData captures a level transition.
type StageEventData struct {
	FromStage string
	ToStage   string
	Change    string
	Trigger   string
}

// StageEventRecord is a stored stage transition.
type StageEventRecord struct {
	Sequence  int64
	Timestamp time.Time
	FromStage string
	ToStage   string
	Change    string
	Trigger   string
}

// BadgeEventData captures a badge award.
type BadgeEventData struct {
	BadgeID   string
	BadgeName string
	Kind      string
}

// JourneyEventData captures a completed journey.
type JourneyEventData struct {
	JourneyID    string
	ArtworkTitle string
	StageLabel   string
	StepCount    int
	DurationSecs int
	Cached       bool
	AtMuseum     bool
}

// LLMPurposeUsage aggregates token usage per request purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM request event by ID.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendAssessment records a scored reflection assessment.
	AppendAssessment(ctx context.Context, data AssessmentEventData) error

	// AppendStageChange records a level transition.
	AppendStageChange(ctx context.Context, data StageEventData) error

	// QueryStageEvents returns stage transitions, most recent first.
	QueryStageEvents(ctx context.Context, opts QueryOpts) ([]StageEventRecord, error)

	// AppendBadgeEvent records a badge award.
	AppendBadgeEvent(ctx context.Context, data BadgeEventData) error

	// AppendJourneyEvent records a completed journey.
	AppendJourneyEvent(ctx context.Context, data JourneyEventData) error
}

// GalleryRecord is a completed journey stored in the personal gallery.
// The journey document is opaque to the store.
type GalleryRecord struct {
	JourneyID   string
	Title       string
	Artist      string
	StageLabel  string
	CompletedAt time.Time
	Data        json.RawMessage
}

// GalleryRepo manages the personal gallery and the journey cache.
type GalleryRepo interface {
	// SaveEntry stores a completed journey. Saving the same journey ID
	// twice is an error.
	SaveEntry(ctx context.Context, rec GalleryRecord) error

	// ListEntries returns gallery entries, most recently completed first.
	ListEntries(ctx context.Context, limit int) ([]GalleryRecord, error)

	// CountEntries returns the number of gallery entries.
	CountEntries(ctx context.Context) (int, error)

	// CacheGet returns the cached journey document for key, or nil.
	CacheGet(ctx context.Context, key string) (json.RawMessage, error)

	// CachePut stores a journey document under key, replacing any
	// previous entry.
	CachePut(ctx context.Context, key string, data json.RawMessage) error
}
