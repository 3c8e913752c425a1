package stageguide

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func TestStageGuideOpensAtViewerStage(t *testing.T) {
	s := New(stage.Level{Stage: 3, Substage: 2})
	if s.selected != 2 {
		t.Errorf("selected = %d, want 2", s.selected)
	}
	view := s.View(80, 30)
	if !strings.Contains(view, "you are here") {
		t.Error("view missing current-stage marker")
	}
	if !strings.Contains(view, stage.Name(3)) {
		t.Error("view missing selected stage detail")
	}
}

func TestStageGuideBrowseBounds(t *testing.T) {
	s := New(stage.Initial())

	scr, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s = scr.(*StageGuideScreen)
	if s.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", s.selected)
	}

	for i := 0; i < 10; i++ {
		scr, _ = s.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
		s = scr.(*StageGuideScreen)
	}
	if s.selected != stage.MaxStage-1 {
		t.Errorf("selected = %d after overshoot, want %d", s.selected, stage.MaxStage-1)
	}
}

func TestStageGuideListsAllStages(t *testing.T) {
	view := New(stage.Initial()).View(100, 30)
	for i := 1; i <= stage.MaxStage; i++ {
		if !strings.Contains(view, stage.Name(i)) {
			t.Errorf("view missing stage %d (%s)", i, stage.Name(i))
		}
	}
}
