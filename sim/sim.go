// Package sim runs the wave-survival simulation one tick at a time. It owns
// the ECS world, the system schedule and the seeded random source; frontends
// feed it input and read back events and a render view.
package sim

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/wavefall/ecs"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/ecs/entity"
	"github.com/milk9111/wavefall/ecs/system"
	"github.com/milk9111/wavefall/levels"
	"github.com/milk9111/wavefall/prefabs"
	"github.com/milk9111/wavefall/terrain"
)

// Input is the player's control state for one tick. Attack should be true
// only on the tick the attack key went down.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	HighScore() int
	SetHighScore(score int) error
}

type Options struct {
	Seed int64
	// Tuning defaults to prefabs/tuning.yaml.
	Tuning *prefabs.Tuning
	// Level defaults to the embedded arena. Its platforms are measured in
	// the tuning tile size unless the level sets its own.
	Level      *levels.Level
	HighScores HighScoreStore
}

type Simulation struct {
	tuning     *prefabs.Tuning
	terrain    *terrain.Terrain
	seed       int64
	highScores HighScoreStore
	highScore  int

	rng       *rand.Rand
	world     *ecs.World
	scheduler *ecs.Scheduler
	enemies   *system.EnemySystem
	player    ecs.Entity
	session   ecs.Entity
}

func New(opts Options) (*Simulation, error) {
	var tuning *prefabs.Tuning
	if opts.Tuning == nil {
		t, err := prefabs.LoadTuning()
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		tuning = t
	} else {
		if err := opts.Tuning.Validate(); err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		tuning = opts.Tuning.Clone()
	}

	lvl := opts.Level
	if lvl == nil {
		l, err := levels.LoadLevelFromFS(levels.DefaultLevel)
		if err != nil {
			return nil, fmt.Errorf("sim: %w", err)
		}
		lvl = l
	}

	s := &Simulation{
		tuning:     tuning,
		terrain:    lvl.Terrain(tuning.World.TileSize),
		seed:       opts.Seed,
		highScores: opts.HighScores,
	}
	if s.highScores != nil {
		s.highScore = s.highScores.HighScore()
	}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// reset rebuilds the world for a fresh game with the same seed.
func (s *Simulation) reset() error {
	steerers, err := system.LoadSteerers(s.tuning)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	w := ecs.NewWorld()
	session, err := entity.NewSession(w, s.tuning)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	player, err := entity.NewPlayer(w, s.tuning)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	s.rng = rand.New(rand.NewSource(s.seed))
	s.enemies = system.NewEnemySystem(s.terrain, s.tuning, steerers)
	s.scheduler = ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewPlayerControllerSystem(s.terrain, s.tuning),
		system.NewWeatherSystem(),
		system.NewSpawnSystem(s.terrain, s.tuning, s.rng),
		s.enemies,
		system.NewEnemyCleanupSystem(s.tuning, s.rng),
		system.NewPickupSystem(s.terrain, s.tuning),
		system.NewWaveSystem(s.tuning),
	)
	s.world = w
	s.player = player
	s.session = session
	return nil
}

// Advance runs one tick. Once the match has ended it only reports the final
// state.
func (s *Simulation) Advance(in Input) FrameEvents {
	if s.Outcome().Terminal() {
		return s.frame()
	}

	if cur, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		*cur = component.Input(in)
	}

	s.scheduler.Update(s.world)

	fe := s.frame()
	fe.collect(s.world.Events().Drain())
	if fe.Outcome.Terminal() && fe.Score > s.highScore {
		s.highScore = fe.Score
		fe.NewHighScore = true
		if s.highScores != nil {
			if err := s.highScores.SetHighScore(fe.Score); err != nil {
				log.Printf("sim: store high score: %v", err)
			}
		}
	}
	fe.HighScore = s.highScore
	return fe
}

func (s *Simulation) frame() FrameEvents {
	return FrameEvents{
		Tick:      s.Tick(),
		Outcome:   s.Outcome(),
		Score:     s.Score(),
		HighScore: s.highScore,
	}
}

// SetTuning swaps in new constants. Live entities keep their kind stats;
// the player's controls, new spawns and all physics pick up the change.
func (s *Simulation) SetTuning(t *prefabs.Tuning) error {
	if t == nil {
		return fmt.Errorf("sim: nil tuning")
	}
	if err := t.Validate(); err != nil {
		return fmt.Errorf("sim: %w", err)
	}
	steerers, err := system.LoadSteerers(t)
	if err != nil {
		return fmt.Errorf("sim: %w", err)
	}

	*s.tuning = *t.Clone()
	s.enemies.SetSteerers(steerers)

	if ctrl, ok := ecs.Get(s.world, s.player, component.PlayerControlComponent.Kind()); ok {
		ctrl.Acceleration = s.tuning.Player.Acceleration
		ctrl.JumpImpulse = s.tuning.Player.JumpImpulse
		ctrl.MaxSpeed = s.tuning.Physics.MaxSpeed
	}
	if melee, ok := ecs.Get(s.world, s.player, component.MeleeComponent.Kind()); ok {
		melee.Damage = s.tuning.Player.Melee.Damage
		melee.Range = s.tuning.Player.Melee.Range
		melee.Cooldown = s.tuning.Player.Melee.Cooldown
	}
	return nil
}

func (s *Simulation) Seed() int64 {
	return s.seed
}

func (s *Simulation) Terrain() *terrain.Terrain {
	return s.terrain
}

// Tuning returns a copy of the active constants.
func (s *Simulation) Tuning() *prefabs.Tuning {
	return s.tuning.Clone()
}

func (s *Simulation) Tick() int64 {
	if c, ok := ecs.Get(s.world, s.session, component.ClockComponent.Kind()); ok {
		return c.Tick
	}
	return 0
}

// Elapsed returns the simulated seconds since the game started.
func (s *Simulation) Elapsed() float64 {
	if c, ok := ecs.Get(s.world, s.session, component.ClockComponent.Kind()); ok {
		return c.Now()
	}
	return 0
}

func (s *Simulation) Outcome() component.Outcome {
	if m, ok := ecs.Get(s.world, s.session, component.MatchComponent.Kind()); ok {
		return m.Outcome
	}
	return component.OutcomePlaying
}

func (s *Simulation) Score() int {
	if sc, ok := ecs.Get(s.world, s.session, component.ScoreComponent.Kind()); ok {
		return sc.Points
	}
	return 0
}

func (s *Simulation) HighScore() int {
	return s.highScore
}
