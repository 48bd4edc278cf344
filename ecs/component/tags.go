package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

// SessionTag marks the singleton that carries the clock, score, wave and
// weather state.
type SessionTag struct{}

var SessionTagComponent = NewComponent[SessionTag]()
