package defs

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDefaultGameConfigValidates(t *testing.T) {
	cfg := DefaultGameConfig()
	if err := Validate(cfg); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if _, ok := cfg.Tier("warlord"); !ok {
		t.Errorf("expected warlord tier in default config")
	}
	arrow, ok := cfg.Turret("arrow")
	if !ok {
		t.Fatalf("expected arrow turret in default config")
	}
	lvl, ok := arrow.Level(2)
	if !ok || lvl.Cost.Gold() != 180 {
		t.Errorf("expected arrow level 2 cost 180, got %v (ok=%v)", lvl.Cost, ok)
	}
}

func TestLoadGameConfigYAMLMatchesDefault(t *testing.T) {
	cfg, err := LoadGameConfig("../../configs/default.yaml")
	if err != nil {
		t.Fatalf("load default.yaml: %v", err)
	}
	def := DefaultGameConfig()
	if len(cfg.Waves) != len(def.Waves) {
		t.Errorf("expected %d waves, got %d", len(def.Waves), len(cfg.Waves))
	}
	for i := range def.Waves {
		if cfg.Waves[i].EnemyCount() != def.Waves[i].EnemyCount() {
			t.Errorf("wave %d: expected %d enemies, got %d", i, def.Waves[i].EnemyCount(), cfg.Waves[i].EnemyCount())
		}
	}
	boss, ok := cfg.Tier("warlord")
	if !ok || boss.Boss == nil {
		t.Fatalf("expected warlord with boss block")
	}
	if got := boss.Boss.WithDefaults().ShieldSegments; got != 3 {
		t.Errorf("expected default shield segments 3, got %d", got)
	}
	if cfg.StartingResources.Gold() != 200 {
		t.Errorf("expected starting gold 200, got %d", cfg.StartingResources.Gold())
	}
}

func TestParseGameConfigJSON(t *testing.T) {
	data, err := json.Marshal(DefaultGameConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseGameConfig(data, ".json")
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if len(cfg.Turrets) != 5 {
		t.Errorf("expected 5 turrets, got %d", len(cfg.Turrets))
	}
}

func TestParseGameConfigRejectsUnknownFormat(t *testing.T) {
	if _, err := ParseGameConfig([]byte("lanes = 3"), ".toml"); err == nil {
		t.Fatal("expected error for .toml")
	}
}

func TestValidateReportsBrokenReferences(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.Waves[0].Spawns[0].Tier = "dragon"
	cfg.Slots[0].Lane = 9
	cfg.Words.Short = append(cfg.Words.Short, "Bad1")

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{`unknown tier "dragon"`, "slots[0].lane out of range", `word "Bad1"`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got %v", want, err)
		}
	}
}
