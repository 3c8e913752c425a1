package stage

import "testing"

func TestDescribe(t *testing.T) {
	d := Describe(3, 2)
	if d.Name != "Classifying" {
		t.Errorf("Name = %q, want Classifying", d.Name)
	}
	if d.SubstageName != "Developing" {
		t.Errorf("SubstageName = %q, want Developing", d.SubstageName)
	}
	if len(d.Characteristics) != 4 {
		t.Errorf("Characteristics count = %d, want 4", len(d.Characteristics))
	}
}

func TestDescribe_UnknownStageFallsBack(t *testing.T) {
	d := Describe(42, 1)
	if d.Name != "Accountive" {
		t.Errorf("unknown stage Name = %q, want Accountive (stage-1 fallback)", d.Name)
	}
	if d.Stage != 1 {
		t.Errorf("unknown stage Stage = %d, want 1", d.Stage)
	}
}

func TestDescribe_UnknownSubstage(t *testing.T) {
	d := Describe(2, 9)
	if d.SubstageName != "Unknown" {
		t.Errorf("SubstageName = %q, want Unknown", d.SubstageName)
	}
}

func TestName(t *testing.T) {
	want := []string{"Accountive", "Constructive", "Classifying", "Interpretive", "Re-creative"}
	for i, w := range want {
		if got := Name(i + 1); got != w {
			t.Errorf("Name(%d) = %q, want %q", i+1, got, w)
		}
	}
}

func TestAllDescriptions(t *testing.T) {
	all := AllDescriptions(1)
	if len(all) != 5 {
		t.Fatalf("len = %d, want 5", len(all))
	}
	for i, d := range all {
		if d.Stage != i+1 {
			t.Errorf("entry %d Stage = %d", i, d.Stage)
		}
	}
}
