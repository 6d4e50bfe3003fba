package component

// TargetMode is a turret targeting priority.
type TargetMode string

const (
	TargetNearest   TargetMode = "nearest"
	TargetStrongest TargetMode = "strongest"
	TargetWeakest   TargetMode = "weakest"
	TargetFastest   TargetMode = "fastest"
	TargetFirst     TargetMode = "first"
	TargetLast      TargetMode = "last"
)

// Turret is mounted on a slot. Only the economy creates, upgrades or removes it.
type Turret struct {
	TypeID   string
	Level    int
	Cooldown float64 // Оставшееся время до следующего выстрела
}

// TurretSlot is a fixed position in the layout.
type TurretSlot struct {
	ID       int
	Lane     int
	X, Y     int
	Unlocked bool
	Mode     TargetMode
	Turret   *Turret
}

// Empty reports whether no turret is mounted.
func (s *TurretSlot) Empty() bool {
	return s.Turret == nil
}
