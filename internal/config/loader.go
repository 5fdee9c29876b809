package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the search directories.
const FileName = "herald.yaml"

// Load loads the simulation tuning.
// Search order: customPath -> ~/.herald/configs/herald.yaml -> ./configs/herald.yaml -> embedded default.
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names.
func Load(customPath string) (HeraldConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HeraldConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HeraldConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultHeraldYAML)
	if err != nil {
		return DefaultHeraldConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (HeraldConfig, error) {
	cfg := DefaultHeraldConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HeraldConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HeraldConfig{}, err
	}
	return cfg, nil
}

// Validate reports tuning values the simulation cannot run with.
func (c HeraldConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("frame.max_delta", c.Frame.MaxDelta)
	positive("grid.cell_size", c.Grid.CellSize)
	positive("player.radius", c.Player.Radius)
	positive("player.start_stats.hp", c.Player.StartStats.HP)
	positive("player.start_stats.max_xp", c.Player.StartStats.MaxXP)
	positive("dash.duration", c.Dash.Duration)
	positive("melee.combo_window", c.Melee.ComboWindow)
	positive("spawn.min_interval", c.Spawn.MinInterval)
	positive("progression.xp_growth", c.Progression.XPGrowth)
	positive("corpses.lifespan", c.Corpses.Lifespan)

	// The broad phase only looks one cell out, so the longest swing must fit in a cell.
	if reach := c.Melee.BaseReach + 2*c.Melee.ReachPerCombo; reach > c.Grid.CellSize {
		errs = append(errs, fmt.Errorf("melee.base_reach + 2*melee.reach_per_combo (%v) must not exceed grid.cell_size (%v)", reach, c.Grid.CellSize))
	}
	if c.Enemies.PushbackDecay < 0 || c.Enemies.PushbackDecay >= 1 {
		errs = append(errs, fmt.Errorf("enemies.pushback_decay must be in [0, 1), got %v", c.Enemies.PushbackDecay))
	}

	if c.Pools.MaxSize < 0 {
		errs = append(errs, fmt.Errorf("pools.max_size must not be negative, got %d", c.Pools.MaxSize))
	}
	if c.Progression.NotificationCap < 1 {
		errs = append(errs, fmt.Errorf("progression.notification_cap must be at least 1, got %d", c.Progression.NotificationCap))
	}
	if c.Spawn.SpitterChance+c.Spawn.BatChance > 1 {
		errs = append(errs, errors.New("spawn.spitter_chance + spawn.bat_chance must not exceed 1"))
	}

	for i, st := range c.Missions.Stages {
		if err := st.validate(); err != nil {
			errs = append(errs, fmt.Errorf("missions.stages[%d]: %w", i, err))
		}
	}
	if err := c.Missions.Endgame.validate(); err != nil {
		errs = append(errs, fmt.Errorf("missions.endgame: %w", err))
	}

	return errors.Join(errs...)
}

func (s MissionStage) validate() error {
	switch s.Type {
	case "KILL", "COLLECT", "SURVIVE", "BOSS":
	default:
		return fmt.Errorf("unknown mission type %q", s.Type)
	}
	if s.Target <= 0 && s.TargetPerWave <= 0 {
		return errors.New("target must be positive")
	}
	return nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to a config file in the user's config directory.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".herald", "configs", filename)
}

// ConfigDir returns the user's config directory path.
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".herald", "configs")
}

// EnsureConfigDir creates the user config directory if it doesn't exist.
func EnsureConfigDir() error {
	dir := ConfigDir()
	if dir == "" {
		return errors.New("cannot determine home directory")
	}
	return os.MkdirAll(dir, 0o750)
}
