package system

import (
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// WaveSystem decides the match outcome and advances waves. Defeat is checked
// first so a tick that both kills the player and clears the last wave ends in
// defeat.
type WaveSystem struct {
	tuning *prefabs.Tuning
}

func NewWaveSystem(tuning *prefabs.Tuning) *WaveSystem {
	return &WaveSystem{tuning: tuning}
}

func (s *WaveSystem) Update(w *ecs.World) {
	if w == nil || s.tuning == nil {
		return
	}

	session, ok := sessionEntity(w)
	if !ok {
		return
	}
	match, ok := ecs.Get(w, session, component.MatchComponent.Kind())
	if !ok || match.Outcome.Terminal() {
		return
	}
	ws, ok := ecs.Get(w, session, component.WaveStateComponent.Kind())
	if !ok {
		return
	}

	if player, ok := findPlayer(w); ok {
		if player.health.Dead() || player.body.Position.Y > s.tuning.World.ScreenHeight {
			s.finish(w, session, match, component.OutcomeDefeat)
			return
		}
	}

	if ws.RemainingToSpawn != 0 || ws.AliveThisWave != 0 {
		return
	}

	if ws.Current >= s.tuning.TotalWaves() {
		s.finish(w, session, match, component.OutcomeVictory)
		return
	}

	from := ws.Current
	ws.Current++
	ws.Total = s.tuning.TotalWaves()
	ws.RemainingToSpawn = s.tuning.WaveSize(ws.Current)
	w.Events().Push(ecs.Event{Type: ecs.EventWaveAdvanced, Data: ecs.WaveEvent{From: from, To: ws.Current, ToSpawn: ws.RemainingToSpawn}})
}

func (s *WaveSystem) finish(w *ecs.World, session ecs.Entity, match *component.Match, outcome component.Outcome) {
	match.Outcome = outcome
	points := 0
	if score, ok := ecs.Get(w, session, component.ScoreComponent.Kind()); ok {
		points = score.Points
	}
	w.Events().Push(ecs.Event{Type: ecs.EventOutcome, Data: ecs.OutcomeEvent{Outcome: outcome, Score: points}})
}
