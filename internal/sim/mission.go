package sim

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/herald/internal/config"
)

// MissionType is what a mission counts.
type MissionType string

const (
	MissionKill    MissionType = "KILL"
	MissionCollect MissionType = "COLLECT"
	MissionSurvive MissionType = "SURVIVE"
	MissionBoss    MissionType = "BOSS"
)

// Event is a progress signal fed to the active mission.
type Event uint8

const (
	EventKill Event = iota
	EventSurviveTick
	EventBossKill
	EventCollect
)

func (e Event) missionType() MissionType {
	switch e {
	case EventSurviveTick:
		return MissionSurvive
	case EventBossKill:
		return MissionBoss
	case EventCollect:
		return MissionCollect
	default:
		return MissionKill
	}
}

// Mission is one installed objective.
type Mission struct {
	Stage       int
	Title       string
	Description string
	Type        MissionType
	Target      float64
	Current     float64
	RewardXP    float64
	Completed   bool
}

// Progress returns Current/Target in [0, 1].
func (m Mission) Progress() float64 {
	if m.Target <= 0 {
		return 1
	}
	return min(1, m.Current/m.Target)
}

// MissionTracker is the stage state machine. The stage index only grows;
// after a completion the next stage installs once the delay has elapsed.
type MissionTracker struct {
	cfg     config.MissionsConfig
	stage   int
	current *Mission
	delay   float64
	pending bool
}

// NewMissionTracker creates a tracker at stage 0 with nothing installed.
func NewMissionTracker(cfg config.MissionsConfig) *MissionTracker {
	return &MissionTracker{cfg: cfg}
}

// Stage returns the index of the next mission to be installed, or of the
// active one while it is incomplete.
func (t *MissionTracker) Stage() int {
	return t.stage
}

// Current returns the installed mission, or nil.
func (t *MissionTracker) Current() *Mission {
	return t.current
}

// Pending reports whether a completed mission is waiting for its successor.
func (t *MissionTracker) Pending() bool {
	return t.pending
}

// IsEndgame reports whether stage is past the fixed table.
func (t *MissionTracker) IsEndgame(stage int) bool {
	return stage >= len(t.cfg.Stages)
}

// StageConfig returns the table entry for a stage; stages past the table use
// the endgame template.
func (t *MissionTracker) StageConfig(stage int) config.MissionStage {
	if stage >= 0 && stage < len(t.cfg.Stages) {
		return t.cfg.Stages[stage]
	}
	return t.cfg.Endgame
}

// Build instantiates the mission for a stage at the given wave.
func (t *MissionTracker) Build(stage, wave int) Mission {
	sc := t.StageConfig(stage)
	target := sc.Target + sc.TargetPerWave*float64(wave)
	desc := sc.Description
	if strings.Contains(desc, "%d") {
		desc = fmt.Sprintf(desc, int(target))
	}
	return Mission{
		Stage:       stage,
		Title:       sc.Title,
		Description: desc,
		Type:        MissionType(sc.Type),
		Target:      target,
		RewardXP:    sc.RewardXP + sc.RewardPerWave*float64(wave),
	}
}

// Install makes the current stage's mission active.
func (t *MissionTracker) Install(wave int) *Mission {
	m := t.Build(t.stage, wave)
	t.current = &m
	t.pending = false
	t.delay = 0
	return t.current
}

// Progress feeds an event to the active mission and reports whether this
// call completed it. Events are ignored when nothing is installed, the
// mission is already complete, the type does not match, or value is not positive.
func (t *MissionTracker) Progress(ev Event, value float64) bool {
	m := t.current
	if m == nil || m.Completed || value <= 0 || ev.missionType() != m.Type {
		return false
	}
	m.Current += value
	if m.Current < m.Target {
		return false
	}
	m.Completed = true
	t.stage++
	t.pending = true
	t.delay = t.cfg.Delay
	return true
}

// Advance runs the install countdown and reports when the next mission is due.
func (t *MissionTracker) Advance(dt float64) bool {
	if !t.pending {
		return false
	}
	t.delay -= dt
	return t.delay <= 0
}
