package sim

import (
	"math"

	"github.com/vovakirdan/herald/internal/core"
)

// SpawnInterval is the seconds between spawns. It shrinks with the wave and
// never drops below floor.
func SpawnInterval(base, perWave, floor, factor float64, wave int) float64 {
	return math.Max(floor, (base-float64(wave)*perWave)*factor)
}

func (s *Simulation) currentSpawnInterval() float64 {
	sc := s.cfg.Spawn
	base := sc.BaseInterval
	if st := s.missions.StageConfig(s.missions.Stage()); st.SpawnInterval > 0 {
		base = st.SpawnInterval
	}
	return SpawnInterval(base, sc.PerWave, sc.MinInterval, s.mods.SpawnInterval, s.wave)
}

func (s *Simulation) updateSpawner(dt float64) {
	s.spawnTimer += dt
	if s.spawnTimer > s.currentSpawnInterval() {
		s.spawnTimer = 0
		s.spawnEnemy()
	}

	if m := s.missions.Current(); m != nil && m.Type == MissionBoss && !m.Completed && !s.bossAlive() {
		s.enemies = append(s.enemies, s.newBoss(s.spawnPoint()))
		s.log.Debug("boss spawned", "wave", s.wave)
	}
}

// spawnPoint picks a point on the spawn ring around the player.
func (s *Simulation) spawnPoint() core.Vec2 {
	angle := s.rng.Float64() * math.Pi * 2
	return s.player.Pos.Add(core.FromAngle(angle).Scale(s.cfg.Spawn.Distance))
}

func (s *Simulation) spawnEnemy() {
	pos := s.spawnPoint()
	roll := s.rng.Float64()
	v := VariantCrawler
	switch {
	case roll < s.cfg.Spawn.SpitterChance:
		v = VariantSpitter
	case roll < s.cfg.Spawn.SpitterChance+s.cfg.Spawn.BatChance:
		v = VariantBat
	}
	s.enemies = append(s.enemies, s.newEnemy(v, pos))
}

func (s *Simulation) bossAlive() bool {
	for _, e := range s.enemies {
		if e.Boss && !e.Dead {
			return true
		}
	}
	return false
}
