package sim

import (
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/weather"
)

// FrameEvents summarizes what happened during one Advance.
type FrameEvents struct {
	Tick            int64
	Damage          []ecs.DamageEvent
	Spawned         []ecs.EnemySpawnedEvent
	Deaths          []ecs.EnemyKilledEvent
	PickupsSpawned  []ecs.PickupEvent
	PickupsConsumed []ecs.PickupEvent
	PickupsExpired  []ecs.PickupEvent
	WaveTransitions []ecs.WaveEvent
	// WeatherChanged is nil unless the mode flipped this tick.
	WeatherChanged *weather.Mode

	Outcome      component.Outcome
	Score        int
	HighScore    int
	NewHighScore bool
}

// Terminal reports whether the match is over.
func (f FrameEvents) Terminal() bool {
	return f.Outcome.Terminal()
}

func (f *FrameEvents) collect(evts []ecs.Event) {
	for _, evt := range evts {
		switch data := evt.Data.(type) {
		case ecs.DamageEvent:
			f.Damage = append(f.Damage, data)
		case ecs.EnemySpawnedEvent:
			f.Spawned = append(f.Spawned, data)
		case ecs.EnemyKilledEvent:
			f.Deaths = append(f.Deaths, data)
		case ecs.PickupEvent:
			switch evt.Type {
			case ecs.EventPickupSpawned:
				f.PickupsSpawned = append(f.PickupsSpawned, data)
			case ecs.EventPickupConsumed:
				f.PickupsConsumed = append(f.PickupsConsumed, data)
			case ecs.EventPickupExpired:
				f.PickupsExpired = append(f.PickupsExpired, data)
			}
		case ecs.WaveEvent:
			f.WaveTransitions = append(f.WaveTransitions, data)
		case ecs.WeatherEvent:
			mode := data.Mode
			f.WeatherChanged = &mode
		case ecs.OutcomeEvent:
			f.Outcome = data.Outcome
			f.Score = data.Score
		}
	}
}
