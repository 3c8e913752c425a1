package engagement

// BadgeKind identifies the milestone family a badge belongs to.
type BadgeKind string

const (
	BadgeTime    BadgeKind = "time_spent"
	BadgeMuseum  BadgeKind = "museum_visitor"
	BadgeQuality BadgeKind = "quality_engagement"
	BadgeStage   BadgeKind = "stage_progression"
)

// BadgeInfo is the static metadata for a badge id.
type BadgeInfo struct {
	ID          string
	Name        string
	Icon        string
	Description string
}

type timeMilestone struct {
	minutes int
	id      string
	name    string
	icon    string
}

type countMilestone struct {
	count int
	id    string
	name  string
	icon  string
}

type qualityMilestone struct {
	avg  float64
	id   string
	name string
	icon string
}

type stageMilestone struct {
	stage int
	id    string
	name  string
	icon  string
}

var timeMilestones = []timeMilestone{
	{30, "time_30min", "First 30 Minutes", "⏱️"},
	{60, "time_1hour", "One Hour of Slow Looking", "🕐"},
	{180, "time_3hours", "Three Hours Invested", "⏰"},
	{300, "time_5hours", "Five Hours Dedicated", "🌟"},
	{600, "time_10hours", "Ten Hours Master", "👑"},
}

var museumMilestones = []countMilestone{
	{1, "museum_first", "First Museum Visit", "🏛️"},
	{5, "museum_5", "Museum Explorer", "🎨"},
	{10, "museum_10", "Gallery Regular", "🖼️"},
	{25, "museum_25", "Art Pilgrim", "🌍"},
}

// Quality badges look at the average of the last qualityWindow scores.
const qualityWindow = 5

var qualityMilestones = []qualityMilestone{
	{70, "quality_good", "Quality Observer", "👁️"},
	{80, "quality_great", "Keen Eye", "🔍"},
	{90, "quality_excellent", "Master Observer", "💎"},
}

var stageMilestones = []stageMilestone{
	{2, "stage_2", "Constructive Thinker", "🌱"},
	{3, "stage_3", "Analytical Mind", "🧠"},
	{4, "stage_4", "Interpretive Vision", "🎭"},
	{5, "stage_5", "Re-creative Master", "✨"},
}

// badgeDescriptions supplements the milestone tables for lookups.
var badgeDescriptions = map[string]string{
	"time_30min":        "Spent 30 minutes slow looking",
	"time_1hour":        "Dedicated one full hour",
	"time_3hours":       "Three hours of mindful observation",
	"time_5hours":       "Five hours exploring art",
	"time_10hours":      "Ten hours of deep looking",
	"museum_first":      "Used SlowMA at a museum",
	"museum_5":          "Five museum visits",
	"museum_10":         "Ten museum visits",
	"museum_25":         "Twenty-five museum visits",
	"quality_good":      "Consistent quality engagement",
	"quality_great":     "High quality observations",
	"quality_excellent": "Exceptional engagement quality",
	"stage_2":           "Reached the Constructive stage",
	"stage_3":           "Reached the Classifying stage",
	"stage_4":           "Reached the Interpretive stage",
	"stage_5":           "Reached the Re-creative stage",
}

// BadgeByID returns metadata for a badge id, falling back to a generic
// entry for unknown ids.
func BadgeByID(id string) BadgeInfo {
	name, icon := "", ""
	for _, m := range timeMilestones {
		if m.id == id {
			name, icon = m.name, m.icon
		}
	}
	for _, m := range museumMilestones {
		if m.id == id {
			name, icon = m.name, m.icon
		}
	}
	for _, m := range qualityMilestones {
		if m.id == id {
			name, icon = m.name, m.icon
		}
	}
	for _, m := range stageMilestones {
		if m.id == id {
			name, icon = m.name, m.icon
		}
	}
	if name == "" {
		return BadgeInfo{ID: id, Name: "Unknown", Icon: "❓"}
	}
	return BadgeInfo{ID: id, Name: name, Icon: icon, Description: badgeDescriptions[id]}
}
