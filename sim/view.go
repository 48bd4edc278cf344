package sim

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/system"
	"github.com/milk9111/wavefall/weather"
)

// BodyView is the render-facing state of one entity.
type BodyView struct {
	Bounds     cp.BB
	FacingLeft bool
	OnGround   bool
	Moving     bool
	Health     int
	MaxHealth  int
	Kind       component.EnemyKind
	// Remaining is the lifetime left on a pickup, in seconds.
	Remaining float64
}

// View is a read-only copy of everything a frontend draws.
type View struct {
	ScreenWidth  float64
	ScreenHeight float64
	Platforms    []cp.BB

	Player      BodyView
	Attacking   bool
	AttackBox   cp.BB
	Enemies     []BodyView
	Pickups     []BodyView
	Score       int
	HighScore   int
	Wave        int
	TotalWaves  int
	ToSpawn     int
	Alive       int
	Weather     weather.Mode
	NextWeather float64
	Elapsed     float64
	Outcome     component.Outcome
}

func bodyView(b *component.Body) BodyView {
	return BodyView{
		Bounds:     b.Rect(),
		FacingLeft: b.FacingLeft(),
		OnGround:   b.OnGround,
		Moving:     b.Moving,
	}
}

func (s *Simulation) View() View {
	v := View{
		ScreenWidth:  s.tuning.World.ScreenWidth,
		ScreenHeight: s.tuning.World.ScreenHeight,
		Score:        s.Score(),
		HighScore:    s.highScore,
		Elapsed:      s.Elapsed(),
		Outcome:      s.Outcome(),
		TotalWaves:   s.tuning.TotalWaves(),
	}

	s.terrain.Each(func(_ int, bb cp.BB) bool {
		v.Platforms = append(v.Platforms, bb)
		return true
	})

	if b, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind()); ok {
		v.Player = bodyView(b)
		if m, ok := ecs.Get(s.world, s.player, component.MeleeComponent.Kind()); ok && m.Active {
			v.Attacking = true
			v.AttackBox = system.MeleeBox(b, m.Range)
		}
	}
	if h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind()); ok {
		v.Player.Health, v.Player.MaxHealth = h.Current, h.Max
	}

	ecs.ForEach3(s.world, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), component.HealthComponent.Kind(),
		func(_ ecs.Entity, e *component.Enemy, b *component.Body, h *component.Health) {
			bv := bodyView(b)
			bv.Kind = e.Kind
			bv.Health, bv.MaxHealth = h.Current, h.Max
			v.Enemies = append(v.Enemies, bv)
		})

	ecs.ForEach2(s.world, component.PickupComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, p *component.Pickup, b *component.Body) {
		bv := bodyView(b)
		bv.Remaining = max(0, p.Lifetime-(v.Elapsed-p.SpawnedAt))
		v.Pickups = append(v.Pickups, bv)
	})

	if ws, ok := ecs.Get(s.world, s.session, component.WaveStateComponent.Kind()); ok {
		v.Wave, v.ToSpawn, v.Alive = ws.Current, ws.RemainingToSpawn, ws.AliveThisWave
	}
	if wc, ok := ecs.Get(s.world, s.session, component.WeatherComponent.Kind()); ok {
		v.Weather = wc.Cycle.Mode
		v.NextWeather = wc.Cycle.Remaining(v.Elapsed)
	}
	return v
}
