// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentEventsColumns holds the columns for the "assessment_events" table.
	AssessmentEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "stage_label", Type: field.TypeString},
		{Name: "change", Type: field.TypeString},
		{Name: "quality", Type: field.TypeFloat64},
		{Name: "response_count", Type: field.TypeInt, Default: 0},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
	}
	// AssessmentEventsTable holds the schema information for the "assessment_events" table.
	AssessmentEventsTable = &schema.Table{
		Name:       "assessment_events",
		Columns:    AssessmentEventsColumns,
		PrimaryKey: []*schema.Column{AssessmentEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessmentevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[1]},
			},
			{
				Name:    "assessmentevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[2]},
			},
			{
				Name:    "assessmentevent_change",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[4]},
			},
			{
				Name:    "assessmentevent_stage_label",
				Unique:  false,
				Columns: []*schema.Column{AssessmentEventsColumns[3]},
			},
		},
	}
	// BadgeEventsColumns holds the columns for the "badge_events" table.
	BadgeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "badge_id", Type: field.TypeString},
		{Name: "badge_name", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
	}
	// BadgeEventsTable holds the schema information for the "badge_events" table.
	BadgeEventsTable = &schema.Table{
		Name:       "badge_events",
		Columns:    BadgeEventsColumns,
		PrimaryKey: []*schema.Column{BadgeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "badgeevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[1]},
			},
			{
				Name:    "badgeevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[2]},
			},
			{
				Name:    "badgeevent_badge_id",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[3]},
			},
			{
				Name:    "badgeevent_kind",
				Unique:  false,
				Columns: []*schema.Column{BadgeEventsColumns[5]},
			},
		},
	}
	// GalleryEntriesColumns holds the columns for the "gallery_entries" table.
	GalleryEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "journey_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Default: ""},
		{Name: "artist", Type: field.TypeString, Default: ""},
		{Name: "stage_label", Type: field.TypeString},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// GalleryEntriesTable holds the schema information for the "gallery_entries" table.
	GalleryEntriesTable = &schema.Table{
		Name:       "gallery_entries",
		Columns:    GalleryEntriesColumns,
		PrimaryKey: []*schema.Column{GalleryEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "galleryentry_completed_at",
				Unique:  false,
				Columns: []*schema.Column{GalleryEntriesColumns[5]},
			},
		},
	}
	// JourneyCachesColumns holds the columns for the "journey_caches" table.
	JourneyCachesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "cache_key", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// JourneyCachesTable holds the schema information for the "journey_caches" table.
	JourneyCachesTable = &schema.Table{
		Name:       "journey_caches",
		Columns:    JourneyCachesColumns,
		PrimaryKey: []*schema.Column{JourneyCachesColumns[0]},
	}
	// JourneyEventsColumns holds the columns for the "journey_events" table.
	JourneyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "journey_id", Type: field.TypeString},
		{Name: "artwork_title", Type: field.TypeString, Default: ""},
		{Name: "stage_label", Type: field.TypeString},
		{Name: "step_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
		{Name: "cached", Type: field.TypeBool, Default: false},
		{Name: "at_museum", Type: field.TypeBool, Default: false},
	}
	// JourneyEventsTable holds the schema information for the "journey_events" table.
	JourneyEventsTable = &schema.Table{
		Name:       "journey_events",
		Columns:    JourneyEventsColumns,
		PrimaryKey: []*schema.Column{JourneyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "journeyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[1]},
			},
			{
				Name:    "journeyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[2]},
			},
			{
				Name:    "journeyevent_journey_id",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[3]},
			},
			{
				Name:    "journeyevent_stage_label",
				Unique:  false,
				Columns: []*schema.Column{JourneyEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StageEventsColumns holds the columns for the "stage_events" table.
	StageEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "from_stage", Type: field.TypeString},
		{Name: "to_stage", Type: field.TypeString},
		{Name: "change", Type: field.TypeString},
		{Name: "trigger", Type: field.TypeString},
	}
	// StageEventsTable holds the schema information for the "stage_events" table.
	StageEventsTable = &schema.Table{
		Name:       "stage_events",
		Columns:    StageEventsColumns,
		PrimaryKey: []*schema.Column{StageEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "stageevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[1]},
			},
			{
				Name:    "stageevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[2]},
			},
			{
				Name:    "stageevent_trigger",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[6]},
			},
			{
				Name:    "stageevent_change",
				Unique:  false,
				Columns: []*schema.Column{StageEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentEventsTable,
		BadgeEventsTable,
		GalleryEntriesTable,
		JourneyCachesTable,
		JourneyEventsTable,
		LlmRequestEventsTable,
		SnapshotsTable,
		StageEventsTable,
	}
)

func init() {
}
