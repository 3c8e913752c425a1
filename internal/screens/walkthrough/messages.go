package walkthrough

import (
	"time"

	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

// journeyReadyMsg is sent when journey generation finishes.
type journeyReadyMsg struct {
	Journey *journey.Journey
	Cached  bool
	Level   stage.Level
	Err     error
}

// timerTickMsg is sent every second during the look-away countdown.
type timerTickMsg time.Time
