package artwork

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestArtworkMuseumToggle(t *testing.T) {
	a := New(nil, nil, nil, nil)
	if a.atMuseum {
		t.Fatal("at-museum should start off")
	}

	s, _ := a.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	a = s.(*ArtworkScreen)
	if !a.atMuseum {
		t.Error("ctrl+t did not enable the museum flag")
	}
	if !strings.Contains(a.View(80, 24), "[✓] I'm standing in front of this piece") {
		t.Error("view missing checked museum marker")
	}

	s, _ = a.Update(tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl})
	a = s.(*ArtworkScreen)
	if a.atMuseum {
		t.Error("second ctrl+t did not clear the museum flag")
	}
	if !strings.Contains(a.View(80, 24), "[ ] I'm standing in front of this piece") {
		t.Error("view missing unchecked museum marker")
	}
}

func TestArtworkPlainMGoesToInput(t *testing.T) {
	a := New(nil, nil, nil, nil)
	s, _ := a.Update(tea.KeyPressMsg{Code: 'm', Text: "m"})
	a = s.(*ArtworkScreen)
	if a.atMuseum {
		t.Error("typing 'm' in the path toggled the museum flag")
	}
	if !strings.Contains(a.input.Value(), "m") {
		t.Errorf("input lost the keystroke: %q", a.input.Value())
	}
}
