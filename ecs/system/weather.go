package system

import (
	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
)

// WeatherSystem ticks the day/night cycle and reports mode changes.
type WeatherSystem struct{}

func NewWeatherSystem() *WeatherSystem {
	return &WeatherSystem{}
}

func (s *WeatherSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	t := now(w)
	ecs.ForEach(w, component.WeatherComponent.Kind(), func(_ ecs.Entity, wc *component.Weather) {
		if wc.Cycle.Update(t) {
			w.Events().Push(ecs.Event{Type: ecs.EventWeatherChanged, Data: ecs.WeatherEvent{Mode: wc.Cycle.Mode}})
		}
	})
}
