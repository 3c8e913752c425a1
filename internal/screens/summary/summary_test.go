package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aayasso/SlowMA-MVP/internal/assessment"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

func testResult(change stage.ChangeKind) assessment.Result {
	return assessment.Result{
		Level:    stage.Level{Stage: 2, Substage: 2},
		Change:   change,
		Quality:  78,
		Feedback: "Your observations are growing more specific.",
	}
}

func testScreen(change stage.ChangeKind, awards []profile.Achievement) *SummaryScreen {
	j := &journey.Journey{Artwork: journey.Artwork{Title: "Water Lilies"}}
	return New(j, testResult(change), awards, 312, 3)
}

func TestSummaryTitle(t *testing.T) {
	s := testScreen(stage.ChangeMaintenance, nil)
	if s.Title() != "Journey Summary" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestSummaryViewProgression(t *testing.T) {
	s := testScreen(stage.ChangeProgression, nil)
	view := s.View(80, 24)

	if !strings.Contains(view, "Water Lilies") {
		t.Error("view missing artwork title")
	}
	if !strings.Contains(view, "Moved up to stage 2.2") {
		t.Error("view missing progression line")
	}
	if !strings.Contains(view, "5:12") {
		t.Error("view missing duration")
	}
	if !strings.Contains(view, "more specific") {
		t.Error("view missing feedback text")
	}
}

func TestSummaryViewRegression(t *testing.T) {
	view := testScreen(stage.ChangeRegression, nil).View(80, 24)
	if !strings.Contains(view, "Eased back to stage 2.2") {
		t.Error("view missing regression line")
	}
}

func TestSummaryViewMaintenance(t *testing.T) {
	view := testScreen(stage.ChangeMaintenance, nil).View(80, 24)
	if !strings.Contains(view, "Holding steady at stage 2.2") {
		t.Error("view missing maintenance line")
	}
	if strings.Contains(view, "Badges earned") {
		t.Error("badge section shown without awards")
	}
}

func TestSummaryViewBadges(t *testing.T) {
	awards := []profile.Achievement{
		{BadgeID: "time_30min", Name: "First 30 Minutes", Icon: "⏱️", EarnedAt: time.Now()},
	}
	view := testScreen(stage.ChangeProgression, awards).View(80, 24)
	if !strings.Contains(view, "Badges earned") || !strings.Contains(view, "First 30 Minutes") {
		t.Error("view missing badge section")
	}
}

func TestSummaryViewIndicatorBreakdown(t *testing.T) {
	s := testScreen(stage.ChangeMaintenance, nil)
	s.result.Scores = map[string]assessment.ScoreSet{
		"act-1": {"observational_detail": 80, "pattern_recognition": 40},
		"act-2": {"observational_detail": 60},
	}
	view := s.View(80, 30)

	if !strings.Contains(view, "What your reflections showed") {
		t.Error("view missing indicator section")
	}
	if !strings.Contains(view, "observational detail") {
		t.Error("view missing humanized indicator name")
	}
	if !strings.Contains(view, " 70") {
		t.Error("view missing averaged indicator score")
	}
}

func TestSummaryEnterPopsToRoot(t *testing.T) {
	s := testScreen(stage.ChangeMaintenance, nil)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected navigation command on enter")
	}
}
