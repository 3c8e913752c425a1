package assessment

import (
	"testing"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func TestAggregateQuality_EmptyIsNeutral(t *testing.T) {
	if got := AggregateQuality(nil, stage.Initial()); got != NeutralQuality {
		t.Errorf("AggregateQuality(nil) = %v, want %v", got, NeutralQuality)
	}
	if got := AggregateQuality(map[string]ScoreSet{}, stage.Initial()); got != NeutralQuality {
		t.Errorf("AggregateQuality(empty) = %v, want %v", got, NeutralQuality)
	}
}

func TestAggregateQuality_MeanAcrossActivities(t *testing.T) {
	scores := map[string]ScoreSet{
		"a1": {"x": 60, "y": 80},
		"a2": {"x": 100},
	}
	// Mean of 60, 80, 100 = 80; stage 1 discount is 1.0.
	if got := AggregateQuality(scores, stage.Initial()); got != 80 {
		t.Errorf("AggregateQuality = %v, want 80", got)
	}
}

func TestAggregateQuality_StageDiscount(t *testing.T) {
	scores := map[string]ScoreSet{"a": {"x": 100, "y": 100, "z": 100}}
	tests := []struct {
		stage int
		want  float64
	}{
		{1, 100}, {2, 95}, {3, 90}, {4, 85}, {5, 80},
	}
	for _, tt := range tests {
		got := AggregateQuality(scores, stage.Level{Stage: tt.stage, Substage: 1})
		if got != tt.want {
			t.Errorf("stage %d: AggregateQuality = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestAggregateQuality_Clamped(t *testing.T) {
	scores := map[string]ScoreSet{"a": {"x": 100}}
	for s := 1; s <= 5; s++ {
		got := AggregateQuality(scores, stage.Level{Stage: s, Substage: 1})
		if got < 0 || got > 100 {
			t.Errorf("stage %d: quality %v outside [0,100]", s, got)
		}
	}
}
