// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AssessmentEvent is the predicate function for assessmentevent builders.
type AssessmentEvent func(*sql.Selector)

// BadgeEvent is the predicate function for badgeevent builders.
type BadgeEvent func(*sql.Selector)

// GalleryEntry is the predicate function for galleryentry builders.
type GalleryEntry func(*sql.Selector)

// JourneyCache is the predicate function for journeycache builders.
type JourneyCache func(*sql.Selector)

// JourneyEvent is the predicate function for journeyevent builders.
type JourneyEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StageEvent is the predicate function for stageevent builders.
type StageEvent func(*sql.Selector)
