package balance

// Milestone ids.
const (
	MilestoneFirstBlood   = "first_blood"
	MilestoneCombo10      = "combo_10"
	MilestonePerfect25    = "perfect_25"
	MilestoneWave5        = "wave_5"
	MilestoneCastle3      = "castle_3"
	MilestoneFlawlessWave = "flawless_wave"
)

// ProgressSnapshot is the input to CheckMilestones.
type ProgressSnapshot struct {
	Kills           int
	MaxCombo        int
	PerfectWords    int
	WavesCleared    int
	CastleLevel     int
	FlawlessCleared bool // at least one wave cleared without a breach
}

type milestoneRule struct {
	id   string
	pass func(p ProgressSnapshot) bool
}

// Checked in this order; newly reached ids come back in the same order.
var milestoneRules = []milestoneRule{
	{MilestoneFirstBlood, func(p ProgressSnapshot) bool { return p.Kills >= 1 }},
	{MilestoneCombo10, func(p ProgressSnapshot) bool { return p.MaxCombo >= 10 }},
	{MilestonePerfect25, func(p ProgressSnapshot) bool { return p.PerfectWords >= 25 }},
	{MilestoneWave5, func(p ProgressSnapshot) bool { return p.WavesCleared >= 5 }},
	{MilestoneCastle3, func(p ProgressSnapshot) bool { return p.CastleLevel >= 3 }},
	{MilestoneFlawlessWave, func(p ProgressSnapshot) bool { return p.FlawlessCleared }},
}

// CheckMilestones returns the recorded list extended with every milestone that
// is reached and not yet recorded, plus the newly added ids. Calling it again
// with the returned list and the same snapshot adds nothing.
func CheckMilestones(p ProgressSnapshot, recorded []string) (updated []string, added []string) {
	have := make(map[string]bool, len(recorded))
	for _, id := range recorded {
		have[id] = true
	}
	updated = append([]string(nil), recorded...)
	for _, rule := range milestoneRules {
		if have[rule.id] || !rule.pass(p) {
			continue
		}
		updated = append(updated, rule.id)
		added = append(added, rule.id)
		have[rule.id] = true
	}
	return updated, added
}
