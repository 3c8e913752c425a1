package assessment

import (
	"reflect"
	"strings"
	"testing"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// richResponse is keyword-dense enough to clear the progression threshold
// at any stage when repeated across activities.
func richResponse(stageNum int) string {
	var b strings.Builder
	for _, ind := range IndicatorsFor(stageNum) {
		for _, kw := range ind.Keywords {
			b.WriteString(kw)
			b.WriteString(" ")
			b.WriteString(kw)
			b.WriteString(" ")
		}
	}
	return b.String()
}

func TestAssess_EmptyResponsesMaintains(t *testing.T) {
	res := Assess(nil, stage.Level{Stage: 2, Substage: 2})
	if res.Quality != NeutralQuality {
		t.Errorf("Quality = %v, want %v", res.Quality, NeutralQuality)
	}
	if res.Change != stage.ChangeMaintenance {
		t.Errorf("Change = %s, want maintenance", res.Change)
	}
	if res.Level != (stage.Level{Stage: 2, Substage: 2}) {
		t.Errorf("Level = %v, want unchanged 2.2", res.Level)
	}
	if len(res.Scores) != 0 {
		t.Errorf("Scores = %v, want empty", res.Scores)
	}
}

func TestAssess_ShortResponsesAreSkipped(t *testing.T) {
	responses := map[string]string{
		"a1": "meh",
		"a2": richResponse(1),
	}
	res := Assess(responses, stage.Initial())
	if _, present := res.Scores["a1"]; present {
		t.Error("sub-minimum response produced a score set")
	}
	if _, present := res.Scores["a2"]; !present {
		t.Error("valid response missing from score map")
	}
}

func TestAssess_ProgressionAcrossStageBoundary(t *testing.T) {
	responses := map[string]string{
		"a1": richResponse(2),
		"a2": richResponse(2),
	}
	res := Assess(responses, stage.Level{Stage: 2, Substage: 3})
	if res.Quality < stage.ProgressionThreshold {
		t.Fatalf("Quality = %v, expected >= %v for this fixture", res.Quality, stage.ProgressionThreshold)
	}
	if res.Level != (stage.Level{Stage: 3, Substage: 1}) {
		t.Errorf("Level = %v, want 3.1", res.Level)
	}
	if res.Change != stage.ChangeProgression {
		t.Errorf("Change = %s, want progression", res.Change)
	}
	if !strings.Contains(res.Feedback, "Classifying") {
		t.Errorf("stage-crossing feedback should name the new stage, got %q", res.Feedback)
	}
}

func TestAssess_RegressionAcrossStageBoundary(t *testing.T) {
	// A long but keyword-empty response scores low at stage 3 (no length
	// blend on two of three indicators, heavy discount).
	responses := map[string]string{
		"a1": "zzz qqq vvv kkk bbb nnn mmm ppp rrr ttt",
	}
	res := Assess(responses, stage.Level{Stage: 3, Substage: 1})
	if res.Quality > stage.RegressionThreshold {
		t.Fatalf("Quality = %v, expected <= %v for this fixture", res.Quality, stage.RegressionThreshold)
	}
	if res.Level != (stage.Level{Stage: 2, Substage: 3}) {
		t.Errorf("Level = %v, want 2.3", res.Level)
	}
	if res.Change != stage.ChangeRegression {
		t.Errorf("Change = %s, want regression", res.Change)
	}
}

func TestAssess_FloorHolds(t *testing.T) {
	responses := map[string]string{"a1": "zzz qqq vvv kkk bbb nnn"}
	res := Assess(responses, stage.Initial())
	if res.Level != stage.Initial() {
		t.Errorf("Level = %v, want 1.1", res.Level)
	}
	if res.Change != stage.ChangeMaintenance {
		t.Errorf("Change = %s, want maintenance at floor", res.Change)
	}
}

func TestAssess_Deterministic(t *testing.T) {
	responses := map[string]string{
		"a1": "I feel this painting tells a story about my own experience of summer.",
		"a2": "The mood is beautiful and striking, it reminds me of home.",
	}
	level := stage.Initial()
	a := Assess(responses, level)
	b := Assess(responses, level)

	if a.Quality != b.Quality || a.Level != b.Level || a.Change != b.Change || a.Feedback != b.Feedback {
		t.Errorf("identical calls disagree: %+v vs %+v", a, b)
	}
	if !reflect.DeepEqual(a.Scores, b.Scores) {
		t.Errorf("score maps differ: %v vs %v", a.Scores, b.Scores)
	}
}

func TestAssess_QualityAlwaysInRange(t *testing.T) {
	inputs := []map[string]string{
		nil,
		{"a": strings.Repeat(richResponse(1), 3)},
		{"a": "zzzzzzzzzzzz"},
		{"a": richResponse(5), "b": "short", "c": ""},
	}
	for s := 1; s <= 5; s++ {
		for _, in := range inputs {
			res := Assess(in, stage.Level{Stage: s, Substage: 2})
			if res.Quality < 0 || res.Quality > 100 {
				t.Errorf("stage %d: quality %v outside [0,100]", s, res.Quality)
			}
		}
	}
}

func TestFeedback_Templates(t *testing.T) {
	tests := []struct {
		name string
		kind stage.ChangeKind
		from stage.Level
		to   stage.Level
		want string
	}{
		{"stage increase congratulates", stage.ChangeProgression, stage.Level{Stage: 1, Substage: 3}, stage.Level{Stage: 2, Substage: 1}, "Congratulations"},
		{"substage progress encourages", stage.ChangeProgression, stage.Level{Stage: 1, Substage: 1}, stage.Level{Stage: 1, Substage: 2}, "Great progress"},
		{"regression reassures", stage.ChangeRegression, stage.Level{Stage: 3, Substage: 1}, stage.Level{Stage: 2, Substage: 3}, "isn't always linear"},
		{"maintenance stays neutral", stage.ChangeMaintenance, stage.Level{Stage: 2, Substage: 2}, stage.Level{Stage: 2, Substage: 2}, "Keep practicing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Feedback(tt.kind, tt.from, tt.to)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Feedback = %q, want substring %q", got, tt.want)
			}
		})
	}
}
