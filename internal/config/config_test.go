package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg HeraldConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHeraldConfig()) {
		t.Errorf("embedded defaults differ from DefaultHeraldConfig:\n got %+v\nwant %+v", cfg, DefaultHeraldConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultHeraldConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadCustomPathOverridesKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("grid:\n  cell_size: 180\nspawn:\n  distance: 900\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Grid.CellSize != 180 {
		t.Errorf("CellSize = %v, expected 180", cfg.Grid.CellSize)
	}
	if cfg.Spawn.Distance != 900 {
		t.Errorf("Spawn.Distance = %v, expected 900", cfg.Spawn.Distance)
	}
	// Untouched keys keep their defaults
	if cfg.Player.Radius != 20 {
		t.Errorf("Player.Radius = %v, expected default 20", cfg.Player.Radius)
	}
	if len(cfg.Missions.Stages) != 4 {
		t.Errorf("expected default mission table, got %d stages", len(cfg.Missions.Stages))
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero cell size", "grid:\n  cell_size: 0\n", "grid.cell_size"},
		{"negative clamp", "frame:\n  max_delta: -1\n", "frame.max_delta"},
		{"spawn floor", "spawn:\n  min_interval: 0\n", "spawn.min_interval"},
		{"chances", "spawn:\n  spitter_chance: 0.7\n  bat_chance: 0.5\n", "spitter_chance"},
		{"mission type", "missions:\n  stages:\n    - title: x\n      type: DANCE\n      target: 1\n", "DANCE"},
		{"negative cap", "pools:\n  max_size: -3\n", "pools.max_size"},
		{"reach beyond cell", "grid:\n  cell_size: 150\n", "grid.cell_size"},
		{"long combo reach", "melee:\n  reach_per_combo: 60\n", "melee.base_reach"},
		{"pushback grows", "enemies:\n  pushback_decay: 1\n", "enemies.pushback_decay"},
		{"pushback reverses", "enemies:\n  pushback_decay: -0.5\n", "enemies.pushback_decay"},
		{"corpse lifespan", "corpses:\n  lifespan: 0\n", "corpses.lifespan"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"", DifficultyVeteran, false},
		{"scavenger", DifficultyScavenger, false},
		{"APEX", DifficultyApex, false},
		{" Master ", DifficultyMaster, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParseDifficulty(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDifficulty(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyDifficulty(t *testing.T) {
	base := DefaultHeraldConfig()

	veteran := ApplyDifficulty(base, DifficultyVeteran)
	if !reflect.DeepEqual(veteran, base) {
		t.Error("veteran should leave the config untouched")
	}

	apex := ApplyDifficulty(base, DifficultyApex)
	if apex.Enemies.Crawler.HP <= base.Enemies.Crawler.HP {
		t.Errorf("apex crawler hp %v should exceed %v", apex.Enemies.Crawler.HP, base.Enemies.Crawler.HP)
	}
	if apex.Enemies.Bat.Damage <= base.Enemies.Bat.Damage {
		t.Errorf("apex bat damage %v should exceed %v", apex.Enemies.Bat.Damage, base.Enemies.Bat.Damage)
	}
	if base.Enemies.Crawler.HP != 30 {
		t.Error("ApplyDifficulty must not mutate its input")
	}

	if ModifiersFor(DifficultyScavenger).SpawnInterval <= 1 {
		t.Error("scavenger should spawn slower")
	}
	if ModifiersFor(DifficultyApex).SpawnInterval >= 1 {
		t.Error("apex should spawn faster")
	}
}
