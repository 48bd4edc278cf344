package entity

import (
	"fmt"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/weather"
)

// NewSession creates the singleton holding match-wide state: clock, score,
// wave progress, outcome and weather. The first wave is armed immediately.
func NewSession(w *ecs.World, t *prefabs.Tuning) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.SessionTagComponent.Kind(), &component.SessionTag{}); err != nil {
		return 0, fmt.Errorf("session: add tag: %w", err)
	}

	if err := ecs.Add(w, entity, component.ClockComponent.Kind(), &component.Clock{TickRate: t.World.TickRate}); err != nil {
		return 0, fmt.Errorf("session: add clock: %w", err)
	}

	if err := ecs.Add(w, entity, component.ScoreComponent.Kind(), &component.Score{}); err != nil {
		return 0, fmt.Errorf("session: add score: %w", err)
	}

	if err := ecs.Add(w, entity, component.WaveStateComponent.Kind(), &component.WaveState{
		Current:          1,
		Total:            t.TotalWaves(),
		RemainingToSpawn: t.WaveSize(1),
	}); err != nil {
		return 0, fmt.Errorf("session: add wave state: %w", err)
	}

	if err := ecs.Add(w, entity, component.MatchComponent.Kind(), &component.Match{}); err != nil {
		return 0, fmt.Errorf("session: add match: %w", err)
	}

	if err := ecs.Add(w, entity, component.WeatherComponent.Kind(), &component.Weather{
		Cycle: weather.NewCycle(t.Weather.Interval, 0),
	}); err != nil {
		return 0, fmt.Errorf("session: add weather: %w", err)
	}

	return entity, nil
}
