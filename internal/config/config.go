// Package config provides YAML-based tuning configuration and difficulty
// presets for the simulation.
package config

// HeraldConfig contains every tuning constant of the simulation.
type HeraldConfig struct {
	Frame       FrameConfig       `yaml:"frame"`
	Grid        GridConfig        `yaml:"grid"`
	Pools       PoolConfig        `yaml:"pools"`
	Player      PlayerConfig      `yaml:"player"`
	Dash        DashConfig        `yaml:"dash"`
	Melee       MeleeConfig       `yaml:"melee"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Minions     MinionConfig      `yaml:"minions"`
	Corpses     CorpseConfig      `yaml:"corpses"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Progression ProgressionConfig `yaml:"progression"`
	Missions    MissionsConfig    `yaml:"missions"`
}

// FrameConfig bounds the per-frame time step.
type FrameConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Seconds; larger host deltas are clamped
}

// GridConfig defines the broad-phase spatial grid.
type GridConfig struct {
	CellSize float64 `yaml:"cell_size"`
}

// PoolConfig defines starting capacities of the object pools.
type PoolConfig struct {
	Particles     int `yaml:"particles"`
	Projectiles   int `yaml:"projectiles"`
	FloatingTexts int `yaml:"floating_texts"`
	AfterImages   int `yaml:"after_images"`
	MaxSize       int `yaml:"max_size"` // 0 = unbounded growth; >0 evicts the oldest slot
}

// PlayerConfig defines the player body and the stats a run starts with.
type PlayerConfig struct {
	Radius     float64     `yaml:"radius"`
	StartStats StatsConfig `yaml:"start_stats"`
}

// StatsConfig is the initial stat block of a run.
type StatsConfig struct {
	HP        float64 `yaml:"hp"`
	Stamina   float64 `yaml:"stamina"`
	Mana      float64 `yaml:"mana"`
	MaxXP     float64 `yaml:"max_xp"`
	Might     int     `yaml:"might"`
	Fortitude int     `yaml:"fortitude"`
	Celerity  int     `yaml:"celerity"`
	Acuity    int     `yaml:"acuity"`
	Precision int     `yaml:"precision"`
	MinionCap int     `yaml:"minion_cap"`
}

// DashConfig defines the dash maneuver.
type DashConfig struct {
	Duration           float64 `yaml:"duration"`
	Speed              float64 `yaml:"speed"`
	StaminaThreshold   float64 `yaml:"stamina_threshold"`    // Stamina must exceed this to dash
	StaminaCost        float64 `yaml:"stamina_cost"`         // Charged once per dash
	DrainWindow        float64 `yaml:"drain_window"`         // Cost is charged while the dash timer is above this
	AfterImageInterval float64 `yaml:"after_image_interval"` // Seconds between trail images
	AfterImageLife     float64 `yaml:"after_image_life"`
}

// MeleeConfig defines the player's combo attack.
type MeleeConfig struct {
	ComboWindow   float64 `yaml:"combo_window"`
	BaseReach     float64 `yaml:"base_reach"`
	ReachPerCombo float64 `yaml:"reach_per_combo"`
	ArcHalfAngle  float64 `yaml:"arc_half_angle"` // Radians
	Pushback      float64 `yaml:"pushback"`
	HitParticles  int     `yaml:"hit_particles"`
}

// EnemyConfig holds the base numbers of one enemy variant before wave and
// difficulty scaling.
type EnemyConfig struct {
	HP         float64 `yaml:"hp"`
	Radius     float64 `yaml:"radius"`
	Speed      float64 `yaml:"speed"`
	Damage     float64 `yaml:"damage"` // Contact damage per second; projectile damage for spitters
	XP         float64 `yaml:"xp"`
	AggroRange float64 `yaml:"aggro_range"`
	Sprite     string  `yaml:"sprite"`
}

// SpitterConfig extends EnemyConfig with ranged-kiter behavior.
type SpitterConfig struct {
	EnemyConfig     `yaml:",inline"`
	RetreatDistance float64 `yaml:"retreat_distance"`
	Buffer          float64 `yaml:"buffer"`
	OrbitSpeed      float64 `yaml:"orbit_speed"`
	FireRange       float64 `yaml:"fire_range"`
	CooldownMin     float64 `yaml:"cooldown_min"`
	CooldownJitter  float64 `yaml:"cooldown_jitter"`
}

// BatConfig extends EnemyConfig with weaving-flyer behavior.
type BatConfig struct {
	EnemyConfig    `yaml:",inline"`
	WeaveAmplitude float64 `yaml:"weave_amplitude"`
	WeaveFrequency float64 `yaml:"weave_frequency"`
}

// BossConfig scales a crawler into the class-change boss.
type BossConfig struct {
	Title       string  `yaml:"title"`
	HPScale     float64 `yaml:"hp_scale"`
	RadiusScale float64 `yaml:"radius_scale"`
	DamageScale float64 `yaml:"damage_scale"`
	XP          float64 `yaml:"xp"`
	Sprite      string  `yaml:"sprite"`
}

// ProjectileConfig defines enemy projectiles.
type ProjectileConfig struct {
	Speed  float64 `yaml:"speed"`
	Life   float64 `yaml:"life"`
	Radius float64 `yaml:"radius"`
}

// EnemiesConfig groups all enemy tuning.
type EnemiesConfig struct {
	Crawler           EnemyConfig      `yaml:"crawler"`
	Spitter           SpitterConfig    `yaml:"spitter"`
	Bat               BatConfig        `yaml:"bat"`
	Boss              BossConfig       `yaml:"boss"`
	Projectile        ProjectileConfig `yaml:"projectile"`
	WaveScaling       float64          `yaml:"wave_scaling"`        // hp/damage multiplier per wave
	MinionThreatRange float64          `yaml:"minion_threat_range"` // Crawlers retarget minions closer than this
	PushbackDecay     float64          `yaml:"pushback_decay"`      // Per-frame multiplier
}

// MinionConfig defines reanimated minions.
type MinionConfig struct {
	Radius         float64 `yaml:"radius"`
	Speed          float64 `yaml:"speed"`
	Lifetime       float64 `yaml:"lifetime"`
	AcquireRange   float64 `yaml:"acquire_range"`
	MeleeRange     float64 `yaml:"melee_range"`
	StopDistance   float64 `yaml:"stop_distance"`
	DPSFactor      float64 `yaml:"dps_factor"`
	ManaCost       float64 `yaml:"mana_cost"`
	ReanimateRange float64 `yaml:"reanimate_range"`
}

// CorpseConfig defines corpses left by slain enemies.
type CorpseConfig struct {
	Lifespan float64 `yaml:"lifespan"`
	Radius   float64 `yaml:"radius"`
}

// SpawnConfig defines the enemy spawner.
type SpawnConfig struct {
	BaseInterval  float64 `yaml:"base_interval"`
	PerWave       float64 `yaml:"per_wave"` // Interval reduction per wave
	MinInterval   float64 `yaml:"min_interval"`
	Distance      float64 `yaml:"distance"` // Spawn ring radius around the player
	SpitterChance float64 `yaml:"spitter_chance"`
	BatChance     float64 `yaml:"bat_chance"`
}

// AttributeGain lists per-level attribute increments.
type AttributeGain struct {
	Might     int `yaml:"might"`
	Fortitude int `yaml:"fortitude"`
	Celerity  int `yaml:"celerity"`
	Acuity    int `yaml:"acuity"`
	Precision int `yaml:"precision"`
}

// ProgressionConfig defines leveling.
type ProgressionConfig struct {
	XPGrowth        float64       `yaml:"xp_growth"`
	PerLevel        AttributeGain `yaml:"per_level"`
	NotificationCap int           `yaml:"notification_cap"`
}

// MissionStage is one entry of the mission table.
type MissionStage struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description"` // May contain %d for the target
	Type           string   `yaml:"type"`        // KILL, COLLECT, SURVIVE or BOSS
	Target         float64  `yaml:"target"`
	TargetPerWave  float64  `yaml:"target_per_wave"`
	RewardXP       float64  `yaml:"reward_xp"`
	RewardPerWave  float64  `yaml:"reward_per_wave"`
	SpawnInterval  float64  `yaml:"spawn_interval"` // 0 = spawner default
	UnlocksClass   bool     `yaml:"unlocks_class"`
	InstallNotices []string `yaml:"install_notices"`
	CompleteNotice []string `yaml:"complete_notices"`
}

// MissionsConfig holds the ordered stage table and the repeating endgame
// template used once the table is exhausted.
type MissionsConfig struct {
	Delay   float64        `yaml:"delay"` // Seconds between completion and next install
	Stages  []MissionStage `yaml:"stages"`
	Endgame MissionStage   `yaml:"endgame"`
}
