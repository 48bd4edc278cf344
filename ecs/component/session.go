package component

import "github.com/milk9111/wavefall/weather"

// Clock counts ticks. Simulated time is derived from the tick count so it
// never drifts.
type Clock struct {
	Tick     int64
	TickRate float64
}

// Now returns the simulated seconds elapsed.
func (c *Clock) Now() float64 {
	if c == nil || c.TickRate <= 0 {
		return 0
	}
	return float64(c.Tick) / c.TickRate
}

var ClockComponent = NewComponent[Clock]()

type Score struct {
	Points int
}

var ScoreComponent = NewComponent[Score]()

// WaveState tracks the encounter. Current is 1-based.
type WaveState struct {
	Current          int
	Total            int
	RemainingToSpawn int
	AliveThisWave    int
}

var WaveStateComponent = NewComponent[WaveState]()

type Outcome int

const (
	OutcomePlaying Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "playing"
	}
}

func (o Outcome) Terminal() bool {
	return o == OutcomeVictory || o == OutcomeDefeat
}

type Match struct {
	Outcome Outcome
}

var MatchComponent = NewComponent[Match]()

type Weather struct {
	Cycle weather.Cycle
}

var WeatherComponent = NewComponent[Weather]()
