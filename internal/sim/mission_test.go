package sim

import (
	"testing"

	"github.com/vovakirdan/herald/internal/config"
	"github.com/vovakirdan/herald/internal/core"
)

func newTracker() *MissionTracker {
	return NewMissionTracker(config.DefaultHeraldConfig().Missions)
}

func TestMissionCompletesOnFifthKillOnce(t *testing.T) {
	tr := newTracker()
	m := tr.Install(1)
	if m.Type != MissionKill || m.Target != 5 {
		t.Fatalf("stage 0 should be KILL 5, got %s %f", m.Type, m.Target)
	}

	for i := 1; i <= 4; i++ {
		if tr.Progress(EventKill, 1) {
			t.Fatalf("mission completed early on kill %d", i)
		}
	}
	if !tr.Progress(EventKill, 1) {
		t.Fatal("mission should complete on the 5th kill")
	}
	if tr.Progress(EventKill, 1) {
		t.Error("completion must fire exactly once")
	}
	if !tr.Current().Completed {
		t.Error("mission should be marked completed")
	}
	if tr.Stage() != 1 {
		t.Errorf("Stage() = %d, expected 1", tr.Stage())
	}
}

func TestMissionIgnoresMismatchedEvents(t *testing.T) {
	tr := newTracker()
	if tr.Progress(EventKill, 1) {
		t.Error("progress without an installed mission must be ignored")
	}

	tr.Install(1)
	tr.Progress(EventSurviveTick, 10)
	tr.Progress(EventBossKill, 1)
	tr.Progress(EventCollect, 3)
	tr.Progress(EventKill, -2)

	if got := tr.Current().Current; got != 0 {
		t.Errorf("mismatched or negative events changed progress to %f", got)
	}
}

func TestMissionInstallDelay(t *testing.T) {
	tr := newTracker()
	tr.Install(1)
	tr.Progress(EventKill, 5)

	if !tr.Pending() {
		t.Fatal("a completed mission should leave the tracker pending")
	}
	if tr.Advance(2.9) {
		t.Error("next mission installed before the 3 s delay")
	}
	if !tr.Advance(0.2) {
		t.Error("next mission should be due after 3 s")
	}

	m := tr.Install(1)
	if m.Stage != 1 || m.Type != MissionSurvive || m.Target != 45 {
		t.Errorf("stage 1 should be SURVIVE 45, got %+v", m)
	}
	if m.Description != "SURVIVE FOR 45 SECONDS." {
		t.Errorf("description = %q", m.Description)
	}
}

func TestEndgameScalesWithWave(t *testing.T) {
	tr := newTracker()
	if !tr.IsEndgame(4) || tr.IsEndgame(3) {
		t.Fatal("stages past the table should be endgame")
	}

	m1 := tr.Build(4, 1)
	m3 := tr.Build(7, 3)
	if m1.Target != 25 || m1.RewardXP != 2000 {
		t.Errorf("wave 1 endgame = target %f reward %f, expected 25/2000", m1.Target, m1.RewardXP)
	}
	if m3.Target != 35 || m3.RewardXP != 6000 {
		t.Errorf("wave 3 endgame = target %f reward %f, expected 35/6000", m3.Target, m3.RewardXP)
	}
	if m1.Description != "Defend against the Sovereigns. Purge 25." {
		t.Errorf("description = %q", m1.Description)
	}
}

func TestSimulationMissionRewards(t *testing.T) {
	s := newTestSim(t, 5)
	quiet(s)

	for range 5 {
		s.progress(EventKill, 1)
	}
	if s.stats.Level != 2 {
		t.Errorf("100 reward xp should level up, level = %d", s.stats.Level)
	}
	if !containsNotice(s.notifications, "QUEST COMPLETED.") {
		t.Errorf("missing completion notice in %v", s.notifications)
	}

	// The next mission installs through Step once the delay runs out
	for range 70 {
		s.Step(0.05, core.Intents{})
	}
	m := s.missions.Current()
	if m.Stage != 1 || m.Completed {
		t.Fatalf("expected stage 1 installed, got %+v", m)
	}
	if !containsNotice(s.notifications, "WARNING: STATUE GUARDIANS AWAKENED") {
		t.Errorf("missing install warning in %v", s.notifications)
	}
	if !containsNotice(s.notifications, "NEW QUEST: Impossible Trial of Genesis") {
		t.Errorf("missing new quest notice in %v", s.notifications)
	}
}

func TestSurviveMissionTicks(t *testing.T) {
	s := newTestSim(t, 5)
	quiet(s)
	advanceToStage(s, 1)

	for range 44 * 20 {
		s.Step(0.05, core.Intents{})
	}
	if s.missions.Current().Completed {
		t.Fatal("survive mission completed before 45 s")
	}
	for range 21 {
		s.Step(0.05, core.Intents{})
	}
	if s.missions.Stage() != 2 {
		t.Errorf("survive mission should complete after 45 s, stage = %d", s.missions.Stage())
	}
}

func TestBossMissionNeedsTheBoss(t *testing.T) {
	s := newTestSim(t, 9)
	quiet(s)
	advanceToStage(s, 3)

	s.Step(1.0/60, core.Intents{})
	var boss *Enemy
	for _, e := range s.enemies {
		if e.Boss {
			boss = e
		}
	}
	if boss == nil {
		t.Fatal("boss should spawn during the boss mission")
	}
	crawler := s.newEnemy(VariantCrawler, core.V(0, 0))
	if boss.MaxHP != crawler.MaxHP*8 || boss.Radius != crawler.Radius*1.6 || boss.Sprite != "enemy_boss" {
		t.Errorf("boss not scaled from a crawler: %+v", boss)
	}

	// A regular kill does not count
	bat := s.addEnemy(VariantBat, core.V(500, 500))
	bat.TakeDamage(1e6, core.V(0, 0), 0)
	s.onEnemyDeath(bat)
	if s.missions.Current().Current != 0 {
		t.Fatal("a regular kill advanced the boss mission")
	}

	boss.TakeDamage(1e9, core.V(0, 0), 0)
	s.onEnemyDeath(boss)

	if !s.missions.Current().Completed {
		t.Fatal("killing the boss should complete the mission")
	}
	if s.class != ClassShadowWeaver {
		t.Error("boss mission should unlock the shadow weaver class")
	}
	if want := 10 + s.stats.Acuity/2; s.stats.MinionCap != want {
		t.Errorf("MinionCap = %d, expected %d", s.stats.MinionCap, want)
	}
}

func TestEndgameCompletionAdvancesWave(t *testing.T) {
	s := newTestSim(t, 11)
	quiet(s)
	advanceToStage(s, 4)

	m := s.missions.Current()
	if m.Target != 25 {
		t.Fatalf("first endgame target = %f, expected 25", m.Target)
	}
	s.progress(EventKill, 25)
	if s.wave != 2 {
		t.Errorf("wave = %d, expected 2", s.wave)
	}

	s.installMission()
	if got := s.missions.Current().Target; got != 30 {
		t.Errorf("next endgame target = %f, expected 30", got)
	}
}

func TestCollectFeedsCollectMissions(t *testing.T) {
	cfg := config.DefaultHeraldConfig()
	cfg.Missions.Stages = []config.MissionStage{
		{Title: "Harvest", Description: "Gather %d souls.", Type: "COLLECT", Target: 3, RewardXP: 10},
	}
	s := New(cfg, Options{Seed: 1})
	s.Start(config.DifficultyVeteran)
	quiet(s)

	s.Collect(2)
	if s.missions.Current().Completed {
		t.Fatal("2 of 3 souls should not complete")
	}
	s.Collect(1)
	if !s.missions.Current().Completed {
		t.Error("3 souls should complete the collect mission")
	}
}

func containsNotice(list []string, want string) bool {
	for _, n := range list {
		if n == want {
			return true
		}
	}
	return false
}
