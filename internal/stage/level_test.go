package stage

import "testing"

func TestAdvance_Progression(t *testing.T) {
	tests := []struct {
		name    string
		current Level
		quality float64
		want    Level
		kind    ChangeKind
	}{
		{"substage step", Level{1, 1}, 80, Level{1, 2}, ChangeProgression},
		{"substage boundary crosses stage", Level{2, 3}, 80, Level{3, 1}, ChangeProgression},
		{"exact threshold progresses", Level{1, 1}, 75.0, Level{1, 2}, ChangeProgression},
		{"just below threshold holds", Level{1, 1}, 74.99, Level{1, 1}, ChangeMaintenance},
		{"ceiling holds", Level{5, 3}, 95, Level{5, 3}, ChangeMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := Advance(tt.current, tt.quality)
			if got != tt.want {
				t.Errorf("Advance(%v, %v) level = %v, want %v", tt.current, tt.quality, got, tt.want)
			}
			if kind != tt.kind {
				t.Errorf("Advance(%v, %v) kind = %s, want %s", tt.current, tt.quality, kind, tt.kind)
			}
		})
	}
}

func TestAdvance_Regression(t *testing.T) {
	tests := []struct {
		name    string
		current Level
		quality float64
		want    Level
		kind    ChangeKind
	}{
		{"substage step down", Level{3, 2}, 30, Level{3, 1}, ChangeRegression},
		{"substage boundary drops stage", Level{3, 1}, 35, Level{2, 3}, ChangeRegression},
		{"exact threshold regresses", Level{2, 2}, 40.0, Level{2, 1}, ChangeRegression},
		{"just above threshold holds", Level{2, 2}, 40.01, Level{2, 2}, ChangeMaintenance},
		{"floor holds", Level{1, 1}, 20, Level{1, 1}, ChangeMaintenance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, kind := Advance(tt.current, tt.quality)
			if got != tt.want {
				t.Errorf("Advance(%v, %v) level = %v, want %v", tt.current, tt.quality, got, tt.want)
			}
			if kind != tt.kind {
				t.Errorf("Advance(%v, %v) kind = %s, want %s", tt.current, tt.quality, kind, tt.kind)
			}
		})
	}
}

func TestAdvance_MidBandMaintains(t *testing.T) {
	for _, q := range []float64{40.5, 50, 60, 74.9} {
		got, kind := Advance(Level{3, 2}, q)
		if got != (Level{3, 2}) || kind != ChangeMaintenance {
			t.Errorf("Advance(3.2, %v) = %v %s, want 3.2 maintenance", q, got, kind)
		}
	}
}

func TestAdvance_TerminalIdempotence(t *testing.T) {
	// Repeated high scores at the ceiling never move the level.
	l := Level{5, 3}
	for i := 0; i < 5; i++ {
		next, kind := Advance(l, 90)
		if next != l || kind != ChangeMaintenance {
			t.Fatalf("iteration %d: Advance(5.3, 90) = %v %s", i, next, kind)
		}
		l = next
	}

	// Repeated low scores at the floor never move the level.
	l = Level{1, 1}
	for i := 0; i < 5; i++ {
		next, kind := Advance(l, 10)
		if next != l || kind != ChangeMaintenance {
			t.Fatalf("iteration %d: Advance(1.1, 10) = %v %s", i, next, kind)
		}
		l = next
	}
}

func TestRegress_SingleStep(t *testing.T) {
	tests := []struct {
		current Level
		want    Level
		kind    ChangeKind
	}{
		{Level{4, 3}, Level{4, 2}, ChangeRegression},
		{Level{4, 1}, Level{3, 3}, ChangeRegression},
		{Level{1, 2}, Level{1, 1}, ChangeRegression},
		{Level{1, 1}, Level{1, 1}, ChangeMaintenance},
	}
	for _, tt := range tests {
		got, kind := Regress(tt.current)
		if got != tt.want || kind != tt.kind {
			t.Errorf("Regress(%v) = %v %s, want %v %s", tt.current, got, kind, tt.want, tt.kind)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   Level
		want Level
	}{
		{Level{0, 0}, Level{1, 1}},
		{Level{6, 4}, Level{5, 3}},
		{Level{3, 2}, Level{3, 2}},
		{Level{-1, 7}, Level{1, 3}},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDifficultyDiscount(t *testing.T) {
	tests := []struct {
		stage int
		want  float64
	}{
		{1, 1.00}, {2, 0.95}, {3, 0.90}, {4, 0.85}, {5, 0.80},
		{0, 1.00}, {9, 1.00}, // unknown stages use the stage-1 factor
	}
	for _, tt := range tests {
		if got := DifficultyDiscount(tt.stage); got != tt.want {
			t.Errorf("DifficultyDiscount(%d) = %v, want %v", tt.stage, got, tt.want)
		}
	}
}

func TestLabel(t *testing.T) {
	if got := (Level{2, 3}).Label(); got != "2.3" {
		t.Errorf("Label() = %q, want \"2.3\"", got)
	}
}
