package stage

import "fmt"

// Level is a position in the Housen aesthetic development model:
// a stage (1-5) plus a substage (1-3) within it.
type Level struct {
	Stage    int
	Substage int
}

// ChangeKind describes the direction of a level transition.
type ChangeKind string

const (
	ChangeProgression ChangeKind = "progression"
	ChangeRegression  ChangeKind = "regression"
	ChangeMaintenance ChangeKind = "maintenance"
)

// Progression and regression thresholds on the 0-100 quality score.
// Both boundaries are inclusive.
const (
	ProgressionThreshold = 75.0
	RegressionThreshold  = 40.0
)

const (
	MinStage    = 1
	MaxStage    = 5
	MinSubstage = 1
	MaxSubstage = 3
)

// Initial is the level every new viewer starts at.
func Initial() Level {
	return Level{Stage: MinStage, Substage: MinSubstage}
}

// Clamp forces a level into the valid range. Out-of-range input comes
// only from hand-edited or corrupted persistence, so the nearest valid
// level is always an acceptable answer.
func Clamp(l Level) Level {
	if l.Stage < MinStage {
		l.Stage = MinStage
	}
	if l.Stage > MaxStage {
		l.Stage = MaxStage
	}
	if l.Substage < MinSubstage {
		l.Substage = MinSubstage
	}
	if l.Substage > MaxSubstage {
		l.Substage = MaxSubstage
	}
	return l
}

// Label returns the "stage.substage" display form, e.g. "2.3".
func (l Level) Label() string {
	return fmt.Sprintf("%d.%d", l.Stage, l.Substage)
}

// AtCeiling reports whether the level is the terminal top state (5.3).
func (l Level) AtCeiling() bool {
	return l.Stage == MaxStage && l.Substage == MaxSubstage
}

// AtFloor reports whether the level is the terminal bottom state (1.1).
func (l Level) AtFloor() bool {
	return l.Stage == MinStage && l.Substage == MinSubstage
}

// Advance applies one assessment outcome to a level. Stage transitions
// only happen at substage boundaries: progressing past substage 3 enters
// the next stage at substage 1, regressing below substage 1 drops to the
// previous stage at substage 3. The ceiling (5.3) and floor (1.1) absorb
// further movement as maintenance.
func Advance(current Level, quality float64) (Level, ChangeKind) {
	current = Clamp(current)

	switch {
	case quality >= ProgressionThreshold:
		if current.Substage == MaxSubstage && current.Stage < MaxStage {
			return Level{Stage: current.Stage + 1, Substage: MinSubstage}, ChangeProgression
		}
		if current.Substage < MaxSubstage {
			return Level{Stage: current.Stage, Substage: current.Substage + 1}, ChangeProgression
		}
		return current, ChangeMaintenance

	case quality <= RegressionThreshold:
		return Regress(current)

	default:
		return current, ChangeMaintenance
	}
}

// Regress applies a single regression step: decrement the substage, or
// drop to the previous stage at substage 3. At the floor it is a no-op
// reported as maintenance. The inactivity monitor shares this rule with
// the assessment path.
func Regress(current Level) (Level, ChangeKind) {
	current = Clamp(current)

	if current.Substage > MinSubstage {
		return Level{Stage: current.Stage, Substage: current.Substage - 1}, ChangeRegression
	}
	if current.Stage > MinStage {
		return Level{Stage: current.Stage - 1, Substage: MaxSubstage}, ChangeRegression
	}
	return current, ChangeMaintenance
}

// DifficultyDiscount returns the factor applied to the mean indicator
// score: higher stages are judged more strictly. Unknown stages use the
// stage-1 factor.
func DifficultyDiscount(stageNum int) float64 {
	switch stageNum {
	case 2:
		return 0.95
	case 3:
		return 0.90
	case 4:
		return 0.85
	case 5:
		return 0.80
	default:
		return 1.00
	}
}
