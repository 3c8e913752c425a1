package reflection

import (
	"context"
	"testing"

	"github.com/aayasso/SlowMA-MVP/internal/engagement"
	"github.com/aayasso/SlowMA-MVP/internal/journey"
	"github.com/aayasso/SlowMA-MVP/internal/profile"
	"github.com/aayasso/SlowMA-MVP/internal/stage"
)

type fakeProfileRepo struct {
	p     *profile.UserProfile
	saved *profile.UserProfile
}

func (f *fakeProfileRepo) Load(ctx context.Context) (*profile.UserProfile, error) {
	return f.p, nil
}

func (f *fakeProfileRepo) Save(ctx context.Context, p *profile.UserProfile) error {
	f.saved = p
	return nil
}

func foldScreen(atMuseum bool) (*ReflectionScreen, *fakeProfileRepo) {
	repo := &fakeProfileRepo{p: profile.New()}
	svc := journey.NewService(nil, nil, nil, journey.DefaultConfig())
	badgeSvc := engagement.NewBadgeService(nil)
	j := &journey.Journey{JourneyID: "j-1", HousenStage: 1, HousenSubstage: 1}

	r := New(svc, repo, nil, badgeSvc, j, stage.Initial(), 120, false, atMuseum)
	r.responses = map[string]string{
		"act-1": "I noticed the light pooling in the corner and it felt calm.",
	}
	return r, repo
}

func TestRunAssessment_MuseumVisitCounted(t *testing.T) {
	r, repo := foldScreen(true)

	msg := r.runAssessment()()
	done, ok := msg.(assessmentDoneMsg)
	if !ok {
		t.Fatalf("message type %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("unexpected error: %v", done.Err)
	}

	if repo.saved == nil {
		t.Fatal("profile was not saved")
	}
	if repo.saved.MuseumVisits != 1 {
		t.Errorf("MuseumVisits = %d, want 1", repo.saved.MuseumVisits)
	}

	found := false
	for _, a := range done.Awards {
		if a.BadgeID == "museum_first" {
			found = true
		}
	}
	if !found {
		t.Errorf("first museum visit did not award museum_first: %+v", done.Awards)
	}
}

func TestRunAssessment_NoMuseumVisitAtHome(t *testing.T) {
	r, repo := foldScreen(false)

	msg := r.runAssessment()()
	done, ok := msg.(assessmentDoneMsg)
	if !ok {
		t.Fatalf("message type %T", msg)
	}
	if done.Err != nil {
		t.Fatalf("unexpected error: %v", done.Err)
	}

	if repo.saved.MuseumVisits != 0 {
		t.Errorf("MuseumVisits = %d, want 0", repo.saved.MuseumVisits)
	}
	for _, a := range done.Awards {
		if a.BadgeID == "museum_first" {
			t.Error("museum badge awarded for a journey at home")
		}
	}
}
