// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/aayasso/SlowMA-MVP/ent/assessmentevent"
	"github.com/aayasso/SlowMA-MVP/ent/badgeevent"
	"github.com/aayasso/SlowMA-MVP/ent/galleryentry"
	"github.com/aayasso/SlowMA-MVP/ent/journeycache"
	"github.com/aayasso/SlowMA-MVP/ent/journeyevent"
	"github.com/aayasso/SlowMA-MVP/ent/llmrequestevent"
	"github.com/aayasso/SlowMA-MVP/ent/schema"
	"github.com/aayasso/SlowMA-MVP/ent/snapshot"
	"github.com/aayasso/SlowMA-MVP/ent/stageevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmenteventMixin := schema.AssessmentEvent{}.Mixin()
	assessmenteventMixinFields0 := assessmenteventMixin[0].Fields()
	_ = assessmenteventMixinFields0
	assessmenteventFields := schema.AssessmentEvent{}.Fields()
	_ = assessmenteventFields
	// assessmenteventDescTimestamp is the schema descriptor for timestamp field.
	assessmenteventDescTimestamp := assessmenteventMixinFields0[1].Descriptor()
	// assessmentevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	assessmentevent.DefaultTimestamp = assessmenteventDescTimestamp.Default.(func() time.Time)
	// assessmenteventDescResponseCount is the schema descriptor for response_count field.
	assessmenteventDescResponseCount := assessmenteventFields[3].Descriptor()
	// assessmentevent.DefaultResponseCount holds the default value on creation for the response_count field.
	assessmentevent.DefaultResponseCount = assessmenteventDescResponseCount.Default.(int)
	badgeeventMixin := schema.BadgeEvent{}.Mixin()
	badgeeventMixinFields0 := badgeeventMixin[0].Fields()
	_ = badgeeventMixinFields0
	badgeeventFields := schema.BadgeEvent{}.Fields()
	_ = badgeeventFields
	// badgeeventDescTimestamp is the schema descriptor for timestamp field.
	badgeeventDescTimestamp := badgeeventMixinFields0[1].Descriptor()
	// badgeevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	badgeevent.DefaultTimestamp = badgeeventDescTimestamp.Default.(func() time.Time)
	// badgeeventDescBadgeID is the schema descriptor for badge_id field.
	badgeeventDescBadgeID := badgeeventFields[0].Descriptor()
	// badgeevent.BadgeIDValidator is a validator for the "badge_id" field. It is called by the builders before save.
	badgeevent.BadgeIDValidator = badgeeventDescBadgeID.Validators[0].(func(string) error)
	// badgeeventDescBadgeName is the schema descriptor for badge_name field.
	badgeeventDescBadgeName := badgeeventFields[1].Descriptor()
	// badgeevent.BadgeNameValidator is a validator for the "badge_name" field. It is called by the builders before save.
	badgeevent.BadgeNameValidator = badgeeventDescBadgeName.Validators[0].(func(string) error)
	galleryentryFields := schema.GalleryEntry{}.Fields()
	_ = galleryentryFields
	// galleryentryDescJourneyID is the schema descriptor for journey_id field.
	galleryentryDescJourneyID := galleryentryFields[0].Descriptor()
	// galleryentry.JourneyIDValidator is a validator for the "journey_id" field. It is called by the builders before save.
	galleryentry.JourneyIDValidator = galleryentryDescJourneyID.Validators[0].(func(string) error)
	// galleryentryDescTitle is the schema descriptor for title field.
	galleryentryDescTitle := galleryentryFields[1].Descriptor()
	// galleryentry.DefaultTitle holds the default value on creation for the title field.
	galleryentry.DefaultTitle = galleryentryDescTitle.Default.(string)
	// galleryentryDescArtist is the schema descriptor for artist field.
	galleryentryDescArtist := galleryentryFields[2].Descriptor()
	// galleryentry.DefaultArtist holds the default value on creation for the artist field.
	galleryentry.DefaultArtist = galleryentryDescArtist.Default.(string)
	// galleryentryDescCompletedAt is the schema descriptor for completed_at field.
	galleryentryDescCompletedAt := galleryentryFields[4].Descriptor()
	// galleryentry.DefaultCompletedAt holds the default value on creation for the completed_at field.
	galleryentry.DefaultCompletedAt = galleryentryDescCompletedAt.Default.(func() time.Time)
	journeycacheFields := schema.JourneyCache{}.Fields()
	_ = journeycacheFields
	// journeycacheDescCacheKey is the schema descriptor for cache_key field.
	journeycacheDescCacheKey := journeycacheFields[0].Descriptor()
	// journeycache.CacheKeyValidator is a validator for the "cache_key" field. It is called by the builders before save.
	journeycache.CacheKeyValidator = journeycacheDescCacheKey.Validators[0].(func(string) error)
	// journeycacheDescCreatedAt is the schema descriptor for created_at field.
	journeycacheDescCreatedAt := journeycacheFields[1].Descriptor()
	// journeycache.DefaultCreatedAt holds the default value on creation for the created_at field.
	journeycache.DefaultCreatedAt = journeycacheDescCreatedAt.Default.(func() time.Time)
	journeyeventMixin := schema.JourneyEvent{}.Mixin()
	journeyeventMixinFields0 := journeyeventMixin[0].Fields()
	_ = journeyeventMixinFields0
	journeyeventFields := schema.JourneyEvent{}.Fields()
	_ = journeyeventFields
	// journeyeventDescTimestamp is the schema descriptor for timestamp field.
	journeyeventDescTimestamp := journeyeventMixinFields0[1].Descriptor()
	// journeyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	journeyevent.DefaultTimestamp = journeyeventDescTimestamp.Default.(func() time.Time)
	// journeyeventDescJourneyID is the schema descriptor for journey_id field.
	journeyeventDescJourneyID := journeyeventFields[0].Descriptor()
	// journeyevent.JourneyIDValidator is a validator for the "journey_id" field. It is called by the builders before save.
	journeyevent.JourneyIDValidator = journeyeventDescJourneyID.Validators[0].(func(string) error)
	// journeyeventDescArtworkTitle is the schema descriptor for artwork_title field.
	journeyeventDescArtworkTitle := journeyeventFields[1].Descriptor()
	// journeyevent.DefaultArtworkTitle holds the default value on creation for the artwork_title field.
	journeyevent.DefaultArtworkTitle = journeyeventDescArtworkTitle.Default.(string)
	// journeyeventDescStepCount is the schema descriptor for step_count field.
	journeyeventDescStepCount := journeyeventFields[3].Descriptor()
	// journeyevent.DefaultStepCount holds the default value on creation for the step_count field.
	journeyevent.DefaultStepCount = journeyeventDescStepCount.Default.(int)
	// journeyeventDescDurationSecs is the schema descriptor for duration_secs field.
	journeyeventDescDurationSecs := journeyeventFields[4].Descriptor()
	// journeyevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	journeyevent.DefaultDurationSecs = journeyeventDescDurationSecs.Default.(int)
	// journeyeventDescCached is the schema descriptor for cached field.
	journeyeventDescCached := journeyeventFields[5].Descriptor()
	// journeyevent.DefaultCached holds the default value on creation for the cached field.
	journeyevent.DefaultCached = journeyeventDescCached.Default.(bool)
	// journeyeventDescAtMuseum is the schema descriptor for at_museum field.
	journeyeventDescAtMuseum := journeyeventFields[6].Descriptor()
	// journeyevent.DefaultAtMuseum holds the default value on creation for the at_museum field.
	journeyevent.DefaultAtMuseum = journeyeventDescAtMuseum.Default.(bool)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	stageeventMixin := schema.StageEvent{}.Mixin()
	stageeventMixinFields0 := stageeventMixin[0].Fields()
	_ = stageeventMixinFields0
	stageeventFields := schema.StageEvent{}.Fields()
	_ = stageeventFields
	// stageeventDescTimestamp is the schema descriptor for timestamp field.
	stageeventDescTimestamp := stageeventMixinFields0[1].Descriptor()
	// stageevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	stageevent.DefaultTimestamp = stageeventDescTimestamp.Default.(func() time.Time)
}
