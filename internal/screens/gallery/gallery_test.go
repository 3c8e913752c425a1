package gallery

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/aayasso/SlowMA-MVP/internal/store"
)

func loaded(t *testing.T, entries []store.GalleryRecord) *GalleryScreen {
	t.Helper()
	g := New(nil)
	s, _ := g.Update(entriesLoadedMsg{Entries: entries})
	return s.(*GalleryScreen)
}

func testEntries() []store.GalleryRecord {
	now := time.Now()
	return []store.GalleryRecord{
		{JourneyID: "j-2", Title: "Guernica", Artist: "Pablo Picasso", StageLabel: "3.1", CompletedAt: now},
		{JourneyID: "j-1", Title: "The Kiss", Artist: "Gustav Klimt", StageLabel: "2.3", CompletedAt: now.Add(-24 * time.Hour)},
	}
}

func TestGalleryEmptyView(t *testing.T) {
	g := loaded(t, nil)
	view := g.View(80, 24)
	if !strings.Contains(view, "gallery is empty") {
		t.Error("expected empty gallery message")
	}
}

func TestGalleryListView(t *testing.T) {
	g := loaded(t, testEntries())
	view := g.View(80, 24)
	if !strings.Contains(view, "Guernica") || !strings.Contains(view, "The Kiss") {
		t.Error("view missing entries")
	}
	if !strings.Contains(view, "2 artwork(s)") {
		t.Error("view missing count line")
	}
}

func TestGalleryNavigationBounds(t *testing.T) {
	g := loaded(t, testEntries())

	s, _ := g.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	g = s.(*GalleryScreen)
	if g.selected != 0 {
		t.Errorf("selected = %d after up at top, want 0", g.selected)
	}

	s, _ = g.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	g = s.(*GalleryScreen)
	if g.selected != 1 {
		t.Errorf("selected = %d after down, want 1", g.selected)
	}

	s, _ = g.Update(tea.KeyPressMsg{Code: 'j', Text: "j"})
	g = s.(*GalleryScreen)
	if g.selected != 1 {
		t.Errorf("selected = %d after down at bottom, want 1", g.selected)
	}
}

func TestGalleryUntitledFallback(t *testing.T) {
	g := loaded(t, []store.GalleryRecord{{JourneyID: "j-3", StageLabel: "1.1", CompletedAt: time.Now()}})
	if !strings.Contains(g.View(80, 24), "Untitled artwork") {
		t.Error("expected untitled fallback")
	}
}
