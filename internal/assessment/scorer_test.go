package assessment

import (
	"strings"
	"testing"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func TestScoreResponse_MinLengthFilter(t *testing.T) {
	tests := []struct {
		name string
		text string
		ok   bool
	}{
		{"empty", "", false},
		{"whitespace only", "         \n\t  ", false},
		{"nine chars after trim", "  short!!   ", false},
		{"ten chars scores", "long enoug", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := ScoreResponse(tt.text, stage.Initial())
			if ok != tt.ok {
				t.Errorf("ScoreResponse(%q) ok = %v, want %v", tt.text, ok, tt.ok)
			}
		})
	}
}

func TestScoreResponse_ThreeIndicatorsPerStage(t *testing.T) {
	text := "I notice the colors and patterns because the technique suggests a universal story together."
	for s := 1; s <= 5; s++ {
		set, ok := ScoreResponse(text, stage.Level{Stage: s, Substage: 1})
		if !ok {
			t.Fatalf("stage %d: response unexpectedly filtered", s)
		}
		if len(set) != 3 {
			t.Errorf("stage %d: indicator count = %d, want 3", s, len(set))
		}
		for _, name := range IndicatorNames(s) {
			if _, present := set[name]; !present {
				t.Errorf("stage %d: missing indicator %q", s, name)
			}
		}
	}
}

func TestScoreResponse_Clamping(t *testing.T) {
	// A response stuffed with stage-1 keywords must still clamp at 100.
	text := strings.Repeat("i feel my story reminds me of my experience ", 40)
	set, ok := ScoreResponse(text, stage.Initial())
	if !ok {
		t.Fatal("response filtered")
	}
	for name, v := range set {
		if v < 0 || v > 100 {
			t.Errorf("indicator %s = %v, outside [0,100]", name, v)
		}
	}
	if set["personal_connection"] != 100 {
		t.Errorf("personal_connection = %v, want clamped 100", set["personal_connection"])
	}
}

func TestScoreResponse_RepeatedKeywordCountsEachTime(t *testing.T) {
	once, _ := ScoreResponse("the pattern here is interesting to look at", stage.Level{Stage: 2, Substage: 1})
	twice, _ := ScoreResponse("the pattern repeats a pattern in this work", stage.Level{Stage: 2, Substage: 1})
	if twice["pattern_recognition"] <= once["pattern_recognition"] {
		t.Errorf("two pattern hits (%v) should outscore one (%v)",
			twice["pattern_recognition"], once["pattern_recognition"])
	}
}

func TestScoreResponse_CaseInsensitive(t *testing.T) {
	lower, _ := ScoreResponse("the texture and color feel striking to me", stage.Initial())
	upper, _ := ScoreResponse("THE TEXTURE AND COLOR FEEL STRIKING TO ME", stage.Initial())
	for name := range lower {
		if lower[name] != upper[name] {
			t.Errorf("indicator %s: lower %v != upper %v", name, lower[name], upper[name])
		}
	}
}

func TestScoreResponse_OverlappingKeywords(t *testing.T) {
	// "feel" appears in both stage-1 keyword lists; one word feeds both
	// indicators.
	set, _ := ScoreResponse("feel feel feel feel along here", stage.Initial())
	if set["personal_connection"] == 0 || set["emotional_engagement"] == 0 {
		t.Errorf("expected 'feel' to score on both indicators, got %v", set)
	}
}

func TestScoreResponse_LengthBlend(t *testing.T) {
	// storytelling blends word count at 2.0 per word, capped at 50.
	short := "story story x" // 3 words, 2 hits
	long := "story story " + strings.Repeat("word ", 60)

	s1, _ := ScoreResponse(short, stage.Initial())
	s2, _ := ScoreResponse(long, stage.Initial())

	if s2["storytelling"] <= s1["storytelling"] {
		t.Errorf("longer response storytelling %v should exceed shorter %v",
			s2["storytelling"], s1["storytelling"])
	}
	// 2 hits * 10 + cap 50 = 70.
	if s2["storytelling"] != 70 {
		t.Errorf("storytelling = %v, want 70 (2 hits + capped length credit)", s2["storytelling"])
	}
}

func TestScoreResponse_UnknownStageUsesStageOneCatalog(t *testing.T) {
	set, ok := ScoreResponse("this reminds me of a story i remember", stage.Level{Stage: 99, Substage: 1})
	if !ok {
		t.Fatal("response filtered")
	}
	if _, present := set["personal_connection"]; !present {
		t.Errorf("unknown stage should score stage-1 indicators, got %v", set)
	}
}

func TestScoreResponse_Deterministic(t *testing.T) {
	text := "I notice how the light and color create a mood that reminds me of summer evenings."
	level := stage.Level{Stage: 2, Substage: 2}
	a, _ := ScoreResponse(text, level)
	b, _ := ScoreResponse(text, level)
	for name := range a {
		if a[name] != b[name] {
			t.Errorf("indicator %s differs between identical calls: %v vs %v", name, a[name], b[name])
		}
	}
}
