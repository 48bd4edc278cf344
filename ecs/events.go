package ecs

import (
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/weather"
)

// EventType names the gameplay events systems push during a tick.
type EventType string

const (
	EventPlayerDamaged  EventType = "player_damaged"
	EventEnemySpawned   EventType = "enemy_spawned"
	EventEnemyKilled    EventType = "enemy_killed"
	EventPickupSpawned  EventType = "pickup_spawned"
	EventPickupConsumed EventType = "pickup_consumed"
	EventPickupExpired  EventType = "pickup_expired"
	EventWaveAdvanced   EventType = "wave_advanced"
	EventWeatherChanged EventType = "weather_changed"
	EventOutcome        EventType = "outcome"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// DamageEvent records one contact hit on the player.
type DamageEvent struct {
	Source      Entity
	Amount      int
	HealthAfter int
}

// EnemySpawnedEvent is emitted when the spawner places an enemy.
type EnemySpawnedEvent struct {
	Entity Entity
	Kind   component.EnemyKind
	X, Y   float64
}

// EnemyKilledEvent is emitted when a dead enemy is removed.
type EnemyKilledEvent struct {
	Entity  Entity
	Kind    component.EnemyKind
	X, Y    float64
	Score   int
	Dropped bool
}

// PickupEvent covers pickup spawn, consumption and expiry.
type PickupEvent struct {
	Entity Entity
	X, Y   float64
	Healed int
}

// WaveEvent is emitted when the wave counter moves forward.
type WaveEvent struct {
	From, To int
	ToSpawn  int
}

// WeatherEvent carries the new weather mode.
type WeatherEvent struct {
	Mode weather.Mode
}

// OutcomeEvent is emitted once when the match ends.
type OutcomeEvent struct {
	Outcome component.Outcome
	Score   int
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
