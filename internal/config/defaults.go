package config

import (
	_ "embed"
)

//go:embed defaults/herald.yaml
var defaultHeraldYAML []byte

// DefaultHeraldConfig returns the hardcoded tuning used when no YAML source
// can be read. It mirrors defaults/herald.yaml.
func DefaultHeraldConfig() HeraldConfig {
	return HeraldConfig{
		Frame: FrameConfig{MaxDelta: 0.05},
		Grid:  GridConfig{CellSize: 200},
		Pools: PoolConfig{
			Particles:     200,
			Projectiles:   100,
			FloatingTexts: 30,
			AfterImages:   16,
			MaxSize:       0,
		},
		Player: PlayerConfig{
			Radius: 20,
			StartStats: StatsConfig{
				HP:        150,
				Stamina:   100,
				Mana:      50,
				MaxXP:     100,
				Might:     10,
				Fortitude: 10,
				Celerity:  10,
				Acuity:    10,
				Precision: 10,
				MinionCap: 3,
			},
		},
		Dash: DashConfig{
			Duration:           0.2,
			Speed:              1000,
			StaminaThreshold:   20,
			StaminaCost:        25,
			DrainWindow:        0.18,
			AfterImageInterval: 0.04,
			AfterImageLife:     0.2,
		},
		Melee: MeleeConfig{
			ComboWindow:   0.8,
			BaseReach:     110,
			ReachPerCombo: 25,
			ArcHalfAngle:  1.3,
			Pushback:      350,
			HitParticles:  3,
		},
		Enemies: EnemiesConfig{
			Crawler: EnemyConfig{HP: 30, Radius: 24, Speed: 100, Damage: 10, XP: 10, AggroRange: 800, Sprite: "enemy_crawler"},
			Spitter: SpitterConfig{
				EnemyConfig:     EnemyConfig{HP: 20, Radius: 20, Speed: 120, Damage: 5, XP: 10, AggroRange: 800, Sprite: "enemy_ranged"},
				RetreatDistance: 300,
				Buffer:          50,
				OrbitSpeed:      50,
				FireRange:       700,
				CooldownMin:     2,
				CooldownJitter:  1,
			},
			Bat: BatConfig{
				EnemyConfig:    EnemyConfig{HP: 15, Radius: 18, Speed: 220, Damage: 8, XP: 10, AggroRange: 800, Sprite: "enemy_bat"},
				WeaveAmplitude: 120,
				WeaveFrequency: 3,
			},
			Boss: BossConfig{
				Title:       "Crimson Captain",
				HPScale:     8,
				RadiusScale: 1.6,
				DamageScale: 2,
				XP:          100,
				Sprite:      "enemy_boss",
			},
			Projectile:        ProjectileConfig{Speed: 450, Life: 3, Radius: 6},
			WaveScaling:       0.1,
			MinionThreatRange: 300,
			PushbackDecay:     0.9,
		},
		Minions: MinionConfig{
			Radius:         20,
			Speed:          280,
			Lifetime:       30,
			AcquireRange:   600,
			MeleeRange:     30,
			StopDistance:   10,
			DPSFactor:      4,
			ManaCost:       10,
			ReanimateRange: 200,
		},
		Corpses: CorpseConfig{Lifespan: 5, Radius: 15},
		Spawn: SpawnConfig{
			BaseInterval:  2,
			PerWave:       0.05,
			MinInterval:   0.2,
			Distance:      700,
			SpitterChance: 0.2,
			BatChance:     0.2,
		},
		Progression: ProgressionConfig{
			XPGrowth: 1.2,
			PerLevel: AttributeGain{
				Might:     2,
				Fortitude: 1,
				Celerity:  1,
				Acuity:    1,
				Precision: 2,
			},
			NotificationCap: 5,
		},
		Missions: MissionsConfig{
			Delay: 3,
			Stages: []MissionStage{
				{
					Title:       "The Low-Tier Sweep",
					Description: "Purge %d Void-Crawlers to survive.",
					Type:        "KILL",
					Target:      5,
					RewardXP:    100,
				},
				{
					Title:          "Impossible Trial of Genesis",
					Description:    "SURVIVE FOR %d SECONDS.",
					Type:           "SURVIVE",
					Target:         45,
					RewardXP:       500,
					SpawnInterval:  0.5,
					InstallNotices: []string{"WARNING: STATUE GUARDIANS AWAKENED"},
					CompleteNotice: []string{"SYSTEM UNLOCKED: THE PRIME DIRECTIVE"},
				},
				{
					Title:       "The Daily Edict",
					Description: "Complete the list: %d Kills.",
					Type:        "KILL",
					Target:      15,
					RewardXP:    1000,
				},
				{
					Title:          "Trial of the Forgotten",
					Description:    "Defeat the Crimson Captain.",
					Type:           "BOSS",
					Target:         1,
					RewardXP:       5000,
					UnlocksClass:   true,
					InstallNotices: []string{"SYSTEM ALERT: HIDDEN QUEST DETECTED"},
					CompleteNotice: []string{"CLASS CHANGE: SHADOW WEAVER ACQUIRED", "SKILL UNLOCKED: SOUL HARVEST (E)"},
				},
			},
			Endgame: MissionStage{
				Title:         "The Monarch's War",
				Description:   "Defend against the Sovereigns. Purge %d.",
				Type:          "KILL",
				Target:        20,
				TargetPerWave: 5,
				RewardPerWave: 2000,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHeraldYAML
}
