package sim

import (
	"log"
	"math"

	"github.com/milk9111/wavefall/common"
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/entity"
	"github.com/milk9111/wavefall/save"
	"github.com/milk9111/wavefall/weather"
)

// Snapshot captures the persisted subset of the game. Pickups, cooldowns and
// the random source are not part of the save format.
func (s *Simulation) Snapshot() save.GameState {
	st := save.GameState{
		StartTime: s.Elapsed(),
		Score:     int32(s.Score()),
		Valid:     true,
	}

	if body, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind()); ok {
		st.PlayerX = float32(body.Position.X)
		st.PlayerY = float32(body.Position.Y)
		st.PlayerVX = float32(body.Velocity.X)
		st.PlayerVY = float32(body.Velocity.Y)
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		st.PlayerHealth = int32(h.Current)
	}

	ecs.ForEach2(s.world, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, e *component.Enemy, b *component.Body) {
		st.Enemies = append(st.Enemies, save.EnemyRecord{
			X:    float32(b.Position.X),
			Y:    float32(b.Position.Y),
			Kind: int32(e.Kind),
		})
	})

	if ws, ok := ecs.Get(s.world, s.session, component.WaveStateComponent.Kind()); ok {
		st.Wave = int32(ws.Current)
		st.ToSpawn = int32(ws.RemainingToSpawn)
		st.AliveThisWave = int32(ws.AliveThisWave)
	}
	if wc, ok := ecs.Get(s.world, s.session, component.WeatherComponent.Kind()); ok {
		st.Weather = int32(wc.Cycle.Mode)
	}
	return st
}

// Restore replaces the running game with st. An invalid or inconsistent
// state leaves a fresh game in place and returns false.
func (s *Simulation) Restore(st save.GameState) bool {
	if err := s.reset(); err != nil {
		log.Printf("sim: restore: %v", err)
		return false
	}
	if !s.acceptable(st) {
		log.Printf("sim: restore: rejecting saved game (valid=%v wave=%d)", st.Valid, st.Wave)
		return false
	}

	clock, _ := ecs.Get(s.world, s.session, component.ClockComponent.Kind())
	clock.Tick = int64(math.Round(st.StartTime * clock.TickRate))
	now := clock.Now()

	body, _ := ecs.Get(s.world, s.player, component.BodyComponent.Kind())
	body.Position = common.Vec(float64(st.PlayerX), float64(st.PlayerY))
	body.Velocity = common.Vec(float64(st.PlayerVX), float64(st.PlayerVY))

	health, _ := ecs.Get(s.world, s.player, component.HealthComponent.Kind())
	health.Current = common.ClampInt(int(st.PlayerHealth), 0, health.Max)

	score, _ := ecs.Get(s.world, s.session, component.ScoreComponent.Kind())
	score.Points = int(st.Score)

	for _, rec := range st.Enemies {
		if _, err := entity.NewEnemy(s.world, s.tuning, component.EnemyKind(rec.Kind), float64(rec.X), float64(rec.Y)); err != nil {
			log.Printf("sim: restore enemy: %v", err)
		}
	}

	ws, _ := ecs.Get(s.world, s.session, component.WaveStateComponent.Kind())
	ws.Current = int(st.Wave)
	ws.RemainingToSpawn = int(st.ToSpawn)
	ws.AliveThisWave = min(int(st.AliveThisWave), len(st.Enemies))

	wc, _ := ecs.Get(s.world, s.session, component.WeatherComponent.Kind())
	if !wc.Cycle.SetMode(weather.Mode(st.Weather), now) {
		wc.Cycle.SetMode(weather.Day, now)
	}
	return true
}

func (s *Simulation) acceptable(st save.GameState) bool {
	if !st.Valid {
		return false
	}
	if st.Wave < 1 || int(st.Wave) > s.tuning.TotalWaves() {
		return false
	}
	if st.ToSpawn < 0 || st.AliveThisWave < 0 || st.StartTime < 0 {
		return false
	}
	for _, rec := range st.Enemies {
		if !component.EnemyKind(rec.Kind).Valid() {
			return false
		}
	}
	return true
}
