package system

import (
	"fmt"
	"log"
	"math"

	"go-typing-defense/internal/balance"
	"go-typing-defense/internal/component"
	"go-typing-defense/internal/config"
	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/entity"
	"go-typing-defense/internal/event"
)

// Passive ids derived from castle levels.
const (
	PassiveRegen     = "regen"
	PassiveArmor     = "armor"
	PassiveGoldBonus = "gold_bonus"
	PassiveSlots     = "slots"
)

// CommandResult is returned by every economy command. Failure is a normal
// outcome and leaves the state untouched.
type CommandResult struct {
	Success bool
	Cost    defs.Cost
	Refund  defs.Cost
	Message string
}

func fail(format string, args ...any) CommandResult {
	return CommandResult{Message: fmt.Sprintf(format, args...)}
}

// EconomySystem owns resources, turrets on slots and the castle.
type EconomySystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	cfg             *defs.GameConfig
}

func NewEconomySystem(world *entity.World, eventDispatcher *event.Dispatcher, cfg *defs.GameConfig) *EconomySystem {
	return &EconomySystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
	}
}

// Day is the cumulative wave number used by caps and rewards.
func (s *EconomySystem) Day() int {
	w := s.world.State.Wave
	return w.Cycle*w.Total + w.Index
}

// --- ресурсы ---

// AddGold credits (or debits, when negative) gold and applies caps.
func (s *EconomySystem) AddGold(amount int, reason string) {
	if amount == 0 {
		return
	}
	st := s.world.State
	st.Resources[defs.ResourceGold] += amount
	s.eventDispatcher.Publish(st.Time, event.GoldChangedPayload{Delta: amount, Total: st.Resources.Gold(), Reason: reason})
	s.ApplyCaps()
}

// Grant credits every resource of c and applies caps once.
func (s *EconomySystem) Grant(c defs.Cost, reason string) {
	st := s.world.State
	for _, k := range defs.ResourceKinds {
		if v := c[k]; v != 0 {
			st.Resources[k] += v
		}
	}
	if g := c.Gold(); g != 0 {
		s.eventDispatcher.Publish(st.Time, event.GoldChangedPayload{Delta: g, Total: st.Resources.Gold(), Reason: reason})
	}
	s.ApplyCaps()
}

func (s *EconomySystem) spend(c defs.Cost, reason string) {
	st := s.world.State
	for _, k := range defs.ResourceKinds {
		st.Resources[k] -= c[k]
	}
	if g := c.Gold(); g != 0 {
		s.eventDispatcher.Publish(st.Time, event.GoldChangedPayload{Delta: -g, Total: st.Resources.Gold(), Reason: reason})
	}
}

// ApplyCaps clamps resources to the day caps. Trimmed gold turns into score.
func (s *EconomySystem) ApplyCaps() {
	st := s.world.State
	capped, trimmed := balance.CapResources(st.Resources, s.Day())
	if len(trimmed) == 0 {
		return
	}
	for _, k := range defs.ResourceKinds {
		t, ok := trimmed[k]
		if !ok {
			continue
		}
		st.Resources[k] = capped[k]
		converted := 0
		if k == defs.ResourceGold {
			converted = t
			st.Score += t
		}
		s.eventDispatcher.Publish(st.Time, event.ResourceCappedPayload{Resource: k, Trimmed: t, Converted: converted})
	}
}

// --- турели ---

// TurretLevelCost is the cost of reaching a level: the explicit level row
// when present, the base cost at level 1, the upgrade curve otherwise.
func TurretLevelCost(a *defs.TurretArchetype, level int) defs.Cost {
	if row, ok := a.Level(level); ok && len(row.Cost) > 0 {
		return row.Cost
	}
	if level <= 1 {
		return a.BaseCost
	}
	return balance.UpgradeCost(a.BaseCost, level-1)
}

// TurretStats are the effective combat numbers of a turret at a level.
type TurretStats struct {
	Damage   int
	FireRate float64
	Range    int
}

func StatsFor(a *defs.TurretArchetype, level int) TurretStats {
	st := TurretStats{
		Damage:   balance.TowerDamage(a.BaseDamage, level),
		FireRate: a.FireRate,
		Range:    a.Range,
	}
	if row, ok := a.Level(level); ok {
		if row.Damage > 0 {
			st.Damage = row.Damage
		}
		if row.FireRate > 0 {
			st.FireRate = row.FireRate
		}
		if row.Range > 0 {
			st.Range = row.Range
		}
	}
	return st
}

func (s *EconomySystem) slotFor(slotID int) (*component.TurretSlot, CommandResult, bool) {
	slot, ok := s.world.Slot(slotID)
	if !ok {
		return nil, fail("slot %d does not exist", slotID), false
	}
	if !slot.Unlocked {
		return nil, fail("slot %d is locked", slotID), false
	}
	return slot, CommandResult{}, true
}

// PlaceTurret mounts a level-1 turret on an unlocked empty slot.
func (s *EconomySystem) PlaceTurret(slotID int, typeID string) CommandResult {
	slot, res, ok := s.slotFor(slotID)
	if !ok {
		return res
	}
	if !slot.Empty() {
		return fail("slot %d is occupied", slotID)
	}
	arch, ok := s.cfg.Turret(typeID)
	if !ok {
		return fail("unknown turret %q", typeID)
	}
	cost := TurretLevelCost(arch, 1)
	if !s.world.State.Resources.CanAfford(cost) {
		return fail("not enough resources for %s", arch.Name)
	}

	s.spend(cost, "turret_placed")
	slot.Turret = &component.Turret{TypeID: arch.ID, Level: 1}
	s.eventDispatcher.Publish(s.world.State.Time, event.TurretPayload{
		Kind: event.TurretPlaced, SlotID: slot.ID, TypeID: arch.ID, Level: 1, Cost: cost.Gold(),
	})
	return CommandResult{Success: true, Cost: cost}
}

// UpgradeTurret advances the turret on a slot by one level.
func (s *EconomySystem) UpgradeTurret(slotID int) CommandResult {
	slot, res, ok := s.slotFor(slotID)
	if !ok {
		return res
	}
	if slot.Empty() {
		return fail("slot %d has no turret", slotID)
	}
	arch := s.mustTurret(slot.Turret.TypeID)
	if slot.Turret.Level >= arch.MaxLevel {
		return fail("%s is at max level", arch.Name)
	}
	next := slot.Turret.Level + 1
	cost := TurretLevelCost(arch, next)
	if !s.world.State.Resources.CanAfford(cost) {
		return fail("not enough resources to upgrade %s", arch.Name)
	}

	s.spend(cost, "turret_upgraded")
	slot.Turret.Level = next
	s.eventDispatcher.Publish(s.world.State.Time, event.TurretPayload{
		Kind: event.TurretUpgraded, SlotID: slot.ID, TypeID: arch.ID, Level: next, Cost: cost.Gold(),
	})
	return CommandResult{Success: true, Cost: cost}
}

// DowngradeTurret refunds the current level's cost and drops one level,
// removing the turret below level 1.
func (s *EconomySystem) DowngradeTurret(slotID int) CommandResult {
	if !s.cfg.Features.TurretDowngrade {
		return fail("turret downgrade is disabled")
	}
	slot, res, ok := s.slotFor(slotID)
	if !ok {
		return res
	}
	if slot.Empty() {
		return fail("slot %d has no turret", slotID)
	}
	arch := s.mustTurret(slot.Turret.TypeID)
	refund := TurretLevelCost(arch, slot.Turret.Level)

	level := slot.Turret.Level - 1
	if level < 1 {
		slot.Turret = nil
	} else {
		slot.Turret.Level = level
	}
	s.eventDispatcher.Publish(s.world.State.Time, event.TurretPayload{
		Kind: event.TurretDowngraded, SlotID: slot.ID, TypeID: arch.ID, Level: level, Refund: refund.Gold(),
	})
	s.Grant(refund, "turret_refund")
	return CommandResult{Success: true, Refund: refund}
}

// SetTargetMode changes a slot's targeting priority.
func (s *EconomySystem) SetTargetMode(slotID int, mode component.TargetMode) CommandResult {
	slot, ok := s.world.Slot(slotID)
	if !ok {
		return fail("slot %d does not exist", slotID)
	}
	switch mode {
	case component.TargetNearest, component.TargetStrongest, component.TargetWeakest,
		component.TargetFastest, component.TargetFirst, component.TargetLast:
	default:
		return fail("unknown target mode %q", mode)
	}
	slot.Mode = mode
	return CommandResult{Success: true}
}

func (s *EconomySystem) mustTurret(id string) *defs.TurretArchetype {
	arch, ok := s.cfg.Turret(id)
	if !ok {
		panic(fmt.Sprintf("economy: mounted turret %q has no archetype", id))
	}
	return arch
}

// --- замок ---

// NewCastleState builds the level-1 castle. A config without level 1 is a bug.
func NewCastleState(cfg *defs.GameConfig) component.CastleState {
	lvl, ok := cfg.CastleLevel(1)
	if !ok {
		panic("economy: castle level 1 is not defined")
	}
	c := component.CastleState{Level: 1, Health: float64(lvl.MaxHealth)}
	applyCastleLevel(&c, lvl, nil)
	return c
}

func applyCastleLevel(c *component.CastleState, lvl, prev *defs.CastleLevel) {
	c.Level = lvl.Level
	c.MaxHealth = lvl.MaxHealth
	c.Armor = lvl.Armor
	c.RegenPerSecond = lvl.RegenPerSecond
	c.GoldBonusPercent = lvl.GoldBonusPercent
	c.SlotUnlocks = lvl.SlotUnlocks
	c.NextUpgradeCost = nil
	if lvl.UpgradeCost > 0 {
		cost := lvl.UpgradeCost
		c.NextUpgradeCost = &cost
	}
	c.Passives = DerivePassives(lvl, prev)
}

// DerivePassives lists the castle passives of a level with their change
// against prev (nil for the first level).
func DerivePassives(lvl, prev *defs.CastleLevel) []component.Passive {
	values := func(l *defs.CastleLevel) [4]float64 {
		if l == nil {
			return [4]float64{}
		}
		return [4]float64{l.RegenPerSecond, float64(l.Armor), l.GoldBonusPercent, float64(l.SlotUnlocks)}
	}
	ids := [4]string{PassiveRegen, PassiveArmor, PassiveGoldBonus, PassiveSlots}
	cur, old := values(lvl), values(prev)
	out := make([]component.Passive, 0, len(ids))
	for i, id := range ids {
		if cur[i] == 0 && old[i] == 0 {
			continue
		}
		out = append(out, component.Passive{ID: id, Total: cur[i], Delta: cur[i] - old[i]})
	}
	return out
}

// UpgradeCastle raises the castle one level.
func (s *EconomySystem) UpgradeCastle() CommandResult {
	st := s.world.State
	c := &st.Castle
	cur, ok := s.cfg.CastleLevel(c.Level)
	if !ok {
		panic(fmt.Sprintf("economy: castle level %d is not defined", c.Level))
	}
	if c.NextUpgradeCost == nil {
		return fail("castle is at max level")
	}
	next, ok := s.cfg.CastleLevel(c.Level + 1)
	if !ok {
		return fail("castle is at max level")
	}
	cost := defs.Cost{defs.ResourceGold: *c.NextUpgradeCost}
	if !st.Resources.CanAfford(cost) {
		return fail("need %d gold to upgrade the castle", cost.Gold())
	}

	s.spend(cost, "castle_upgraded")
	oldMax := c.MaxHealth
	applyCastleLevel(c, next, cur)

	heal := (c.MaxHealth - oldMax) + int(math.Floor(float64(c.MaxHealth)*config.CastleUpgradeHealRatio))
	before := c.Health
	c.Health = math.Min(float64(c.MaxHealth), c.Health+float64(heal))
	healed := int(c.Health - before)

	s.eventDispatcher.Publish(st.Time, event.CastleUpgradedPayload{
		Level: c.Level, MaxHealth: c.MaxHealth, Cost: cost.Gold(), Healed: healed,
	})
	for _, p := range c.Passives {
		if p.Delta > config.PassiveEpsilon {
			s.eventDispatcher.Publish(st.Time, event.PassiveUnlockedPayload{ID: p.ID, Level: c.Level, Total: p.Total, Delta: p.Delta})
		}
	}
	s.RefreshSlotUnlocks()
	return CommandResult{Success: true, Cost: cost}
}

// RepairCastle heals the castle for gold, then starts the cooldown.
func (s *EconomySystem) RepairCastle() CommandResult {
	st := s.world.State
	c := &st.Castle
	switch {
	case c.Destroyed():
		return fail("castle is destroyed")
	case c.Missing() <= 0:
		return fail("castle is at full health")
	case c.RepairCooldown > 0:
		return fail("repair ready in %.0fs", math.Ceil(c.RepairCooldown))
	}
	cost := defs.Cost{defs.ResourceGold: s.cfg.Repair.Cost}
	if !st.Resources.CanAfford(cost) {
		return fail("need %d gold to repair", cost.Gold())
	}

	s.spend(cost, "castle_repaired")
	before := c.Health
	c.Health = math.Min(float64(c.MaxHealth), c.Health+float64(s.cfg.Repair.Amount))
	healed := c.Health - before
	c.RepairCooldown = s.cfg.Repair.Cooldown
	s.eventDispatcher.Publish(st.Time, event.CastleRepairedPayload{Healed: healed, Cost: cost.Gold(), Cooldown: c.RepairCooldown})
	return CommandResult{Success: true, Cost: cost}
}

// DamageCastle applies escape damage. At 0 health the match is lost.
func (s *EconomySystem) DamageCastle(amount int, from *component.Enemy) {
	st := s.world.State
	c := &st.Castle
	c.Health = math.Max(0, c.Health-float64(amount))
	s.eventDispatcher.Publish(st.Time, event.CastleDamagedPayload{EnemyID: from.ID, Amount: amount, Health: c.Health})
	if c.Destroyed() {
		EndMatch(s.world, s.eventDispatcher, component.StatusDefeat)
	}
}

// --- слоты ---

// RefreshSlotUnlocks unlocks slots whose wave has come, then as many of the
// remaining locked slots (config order) as the castle grants. Unlocks are permanent.
func (s *EconomySystem) RefreshSlotUnlocks() {
	st := s.world.State
	day := s.Day()
	grants := st.Castle.SlotUnlocks
	for _, def := range s.cfg.Slots {
		slot, ok := s.world.Slot(def.ID)
		if !ok {
			continue
		}
		if def.UnlockWave <= day {
			s.unlock(slot)
			continue
		}
		if grants > 0 {
			grants--
			s.unlock(slot)
		}
	}
}

func (s *EconomySystem) unlock(slot *component.TurretSlot) {
	if slot.Unlocked {
		return
	}
	slot.Unlocked = true
	s.eventDispatcher.Publish(s.world.State.Time, event.SlotUnlockedPayload{SlotID: slot.ID, Lane: slot.Lane})
}

// NewSlots builds the fixed slot layout; slots start locked.
func NewSlots(cfg *defs.GameConfig) []*component.TurretSlot {
	slots := make([]*component.TurretSlot, 0, len(cfg.Slots))
	for _, d := range cfg.Slots {
		slots = append(slots, &component.TurretSlot{ID: d.ID, Lane: d.Lane, X: d.X, Y: d.Y, Mode: component.TargetNearest})
	}
	return slots
}

// Update регенерирует замок и отсчитывает перезарядку ремонта.
func (s *EconomySystem) Update(deltaTime float64) {
	c := &s.world.State.Castle
	if c.RepairCooldown > 0 {
		c.RepairCooldown = math.Max(0, c.RepairCooldown-deltaTime)
	}
	if c.Destroyed() || c.RegenPerSecond <= 0 || c.Missing() <= 0 {
		return
	}
	c.Health = math.Min(float64(c.MaxHealth), c.Health+c.RegenPerSecond*deltaTime)
}

// logUnknown is used by systems that skip config entries instead of failing the tick.
func logUnknown(kind, id string) {
	log.Printf("Warning: unknown %s %q in config, skipping", kind, id)
}
