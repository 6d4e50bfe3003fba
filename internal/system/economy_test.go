package system

import (
	"testing"

	"go-typing-defense/internal/defs"
	"go-typing-defense/internal/event"
)

func TestUpgradeTurretExactGold(t *testing.T) {
	r := newRig(t)
	slot, _ := r.world.Slot(1)

	r.state().Resources[defs.ResourceGold] = 100
	if res := r.economy.PlaceTurret(1, "arrow"); !res.Success {
		t.Fatalf("expected placement to succeed: %s", res.Message)
	}

	r.state().Resources[defs.ResourceGold] = 179
	res := r.economy.UpgradeTurret(1)
	if res.Success {
		t.Fatal("expected upgrade to fail at 179 gold")
	}
	if gold := r.state().Resources.Gold(); gold != 179 || slot.Turret.Level != 1 {
		t.Errorf("expected gold 179 and level 1, got %d and %d", gold, slot.Turret.Level)
	}

	r.state().Resources[defs.ResourceGold] = 180
	res = r.economy.UpgradeTurret(1)
	if !res.Success {
		t.Fatalf("expected upgrade to succeed at 180 gold: %s", res.Message)
	}
	if gold := r.state().Resources.Gold(); gold != 0 || slot.Turret.Level != 2 {
		t.Errorf("expected gold 0 and level 2, got %d and %d", gold, slot.Turret.Level)
	}
	if res.Cost.Gold() != 180 {
		t.Errorf("expected cost 180, got %d", res.Cost.Gold())
	}
}

func TestPlaceTurretFailures(t *testing.T) {
	r := newRig(t)
	r.state().Resources[defs.ResourceGold] = 1000

	tests := []struct {
		name   string
		slot   int
		turret string
	}{
		{"missing slot", 99, "arrow"},
		{"locked slot", 4, "arrow"},
		{"unknown archetype", 1, "catapult"},
	}
	for _, tt := range tests {
		if res := r.economy.PlaceTurret(tt.slot, tt.turret); res.Success || res.Message == "" {
			t.Errorf("%s: expected a failure with a message, got %+v", tt.name, res)
		}
	}
	if gold := r.state().Resources.Gold(); gold != 1000 {
		t.Errorf("failed commands must not spend gold, got %d", gold)
	}

	r.economy.PlaceTurret(1, "arrow")
	if res := r.economy.PlaceTurret(1, "frost"); res.Success {
		t.Error("expected an occupied slot to be rejected")
	}
}

func TestUpgradeAtMaxLevelFails(t *testing.T) {
	r := newRig(t)
	r.state().Resources[defs.ResourceGold] = 100 + 180 + 260
	r.economy.PlaceTurret(1, "arrow")
	r.economy.UpgradeTurret(1)
	r.economy.UpgradeTurret(1)
	if res := r.economy.UpgradeTurret(1); res.Success {
		t.Error("expected max level upgrade to fail")
	}
}

func TestFormulaUpgradeCost(t *testing.T) {
	r := newRig(t)
	arch, _ := r.cfg.Turret("frost")
	// No level table: 120 * 1.5^1.
	if got := TurretLevelCost(arch, 2).Gold(); got != 180 {
		t.Errorf("expected 180, got %d", got)
	}
	if got := TurretLevelCost(arch, 1).Gold(); got != 120 {
		t.Errorf("expected base cost 120, got %d", got)
	}
}

func TestDowngradeRefundsAndRemoves(t *testing.T) {
	r := newRig(t)
	slot, _ := r.world.Slot(1)
	r.state().Resources[defs.ResourceGold] = 280
	r.economy.PlaceTurret(1, "arrow")
	r.economy.UpgradeTurret(1)

	res := r.economy.DowngradeTurret(1)
	if !res.Success || res.Refund.Gold() != 180 || slot.Turret.Level != 1 {
		t.Fatalf("expected refund 180 and level 1, got %+v level %d", res, slot.Turret.Level)
	}
	res = r.economy.DowngradeTurret(1)
	if !res.Success || res.Refund.Gold() != 100 || !slot.Empty() {
		t.Fatalf("expected refund 100 and an empty slot, got %+v", res)
	}
	if gold := r.state().Resources.Gold(); gold != 280 {
		t.Errorf("expected all gold back, got %d", gold)
	}

	r.cfg.Features.TurretDowngrade = false
	r.economy.PlaceTurret(1, "arrow")
	if res := r.economy.DowngradeTurret(1); res.Success {
		t.Error("expected downgrade to be rejected when disabled")
	}
}

func TestUpgradeCastle(t *testing.T) {
	r := newRig(t)
	c := &r.state().Castle
	r.state().Resources[defs.ResourceGold] = 149
	if res := r.economy.UpgradeCastle(); res.Success {
		t.Fatal("expected castle upgrade to fail at 149 gold")
	}

	r.state().Resources[defs.ResourceGold] = 150
	c.Health = 80
	res := r.economy.UpgradeCastle()
	if !res.Success {
		t.Fatalf("expected castle upgrade to succeed: %s", res.Message)
	}
	if c.Level != 2 || c.MaxHealth != 130 || c.Armor != 1 {
		t.Errorf("unexpected castle after upgrade: %+v", *c)
	}
	// 80 + (130-100) + floor(130*0.1) = 123.
	if c.Health != 123 {
		t.Errorf("expected health 123, got %f", c.Health)
	}
	if c.NextUpgradeCost == nil || *c.NextUpgradeCost != 250 {
		t.Errorf("expected next upgrade cost 250")
	}
	if n := r.count(event.PassiveUnlocked); n != 4 {
		t.Errorf("expected 4 passive unlocks, got %d", n)
	}
	if slot, _ := r.world.Slot(4); !slot.Unlocked {
		t.Error("expected the castle to unlock slot 4")
	}
}

func TestCastleMaxLevel(t *testing.T) {
	r := newRig(t)
	r.state().Resources[defs.ResourceGold] = 150 + 250 + 400
	for i := 0; i < 3; i++ {
		if res := r.economy.UpgradeCastle(); !res.Success {
			t.Fatalf("upgrade %d failed: %s", i+1, res.Message)
		}
	}
	if r.state().Castle.NextUpgradeCost != nil {
		t.Error("expected no next upgrade cost at max level")
	}
	if res := r.economy.UpgradeCastle(); res.Success {
		t.Error("expected upgrade at max level to fail")
	}
}

func TestRepairCastle(t *testing.T) {
	r := newRig(t)
	c := &r.state().Castle
	r.state().Resources[defs.ResourceGold] = 100

	if res := r.economy.RepairCastle(); res.Success {
		t.Error("expected repair at full health to fail")
	}
	c.Health = 50
	res := r.economy.RepairCastle()
	if !res.Success || c.Health != 80 || c.RepairCooldown != 20 {
		t.Fatalf("expected health 80 and cooldown 20, got %+v health %f cd %f", res, c.Health, c.RepairCooldown)
	}
	if gold := r.state().Resources.Gold(); gold != 60 {
		t.Errorf("expected 60 gold left, got %d", gold)
	}
	if res := r.economy.RepairCastle(); res.Success {
		t.Error("expected repair on cooldown to fail")
	}

	r.economy.Update(20)
	c.Health = 95
	res = r.economy.RepairCastle()
	if !res.Success || c.Health != 100 {
		t.Errorf("expected repair capped at missing health, got health %f", c.Health)
	}

	c.Health = 0
	r.economy.Update(20)
	if res := r.economy.RepairCastle(); res.Success {
		t.Error("expected repair of a destroyed castle to fail")
	}
}

func TestRepairReportsActualHeal(t *testing.T) {
	r := newRig(t)
	c := &r.state().Castle
	r.state().Resources[defs.ResourceGold] = 100
	c.Health = float64(c.MaxHealth) - 0.5

	if res := r.economy.RepairCastle(); !res.Success {
		t.Fatalf("expected repair to succeed, got %q", res.Message)
	}
	var healed float64 = -1
	for _, e := range r.events {
		if p, ok := e.Payload.(event.CastleRepairedPayload); ok {
			healed = p.Healed
		}
	}
	if healed != 0.5 {
		t.Errorf("expected 0.5 healed, got %f", healed)
	}
	if c.Health != float64(c.MaxHealth) {
		t.Errorf("expected full health, got %f", c.Health)
	}
}

func TestGoldCapConvertsToScore(t *testing.T) {
	r := newRig(t)
	r.economy.AddGold(600, "test")
	if gold := r.state().Resources.Gold(); gold != 500 {
		t.Errorf("expected gold capped at 500, got %d", gold)
	}
	if r.state().Score != 100 {
		t.Errorf("expected 100 score from the excess, got %d", r.state().Score)
	}
	if n := r.count(event.ResourceCapped); n != 1 {
		t.Errorf("expected 1 cap event, got %d", n)
	}
}

func TestCastleRegen(t *testing.T) {
	r := newRig(t)
	c := &r.state().Castle
	c.RegenPerSecond = 2
	c.Health = 99
	r.economy.Update(1)
	if c.Health != 100 {
		t.Errorf("expected regen capped at max, got %f", c.Health)
	}
}

func TestDamageCastleEndsMatch(t *testing.T) {
	r := newRig(t)
	e := r.addEnemy("axe", 1, 0, 1)
	r.economy.DamageCastle(500, e)
	if r.state().Status != "defeat" {
		t.Errorf("expected defeat, got %s", r.state().Status)
	}
	if n := r.count(event.MatchEnded); n != 1 {
		t.Errorf("expected 1 match-ended event, got %d", n)
	}
}
