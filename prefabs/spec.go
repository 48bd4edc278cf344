package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// TuningFile is the prefab holding every gameplay constant.
const TuningFile = "tuning.yaml"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")

type Tuning struct {
	World   WorldSpec   `yaml:"world"`
	Physics PhysicsSpec `yaml:"physics"`
	Player  PlayerSpec  `yaml:"player"`
	Enemies EnemiesSpec `yaml:"enemies"`
	Pickups PickupSpec  `yaml:"pickups"`
	Waves   WaveSpec    `yaml:"waves"`
	Weather WeatherSpec `yaml:"weather"`
}

type WorldSpec struct {
	ScreenWidth  float64 `yaml:"screen_width"`
	ScreenHeight float64 `yaml:"screen_height"`
	TileSize     int     `yaml:"tile_size"`
	TickRate     float64 `yaml:"tick_rate"`
}

type PhysicsSpec struct {
	Gravity  float64 `yaml:"gravity"`
	Friction float64 `yaml:"friction"`
	MaxSpeed float64 `yaml:"max_speed"`
	SnapBand float64 `yaml:"snap_band"`
}

type BoundsSpec struct {
	Mode         string  `yaml:"mode"`
	Left         float64 `yaml:"left"`
	RightMargin  float64 `yaml:"right_margin"`
	RightSnap    float64 `yaml:"right_snap"`
	BottomMargin float64 `yaml:"bottom_margin"`
	BottomSnap   float64 `yaml:"bottom_snap"`
}

type MeleeSpec struct {
	Damage   int     `yaml:"damage"`
	Range    float64 `yaml:"range"`
	Cooldown float64 `yaml:"cooldown"`
}

type PlayerSpec struct {
	SpawnX       float64    `yaml:"spawn_x"`
	SpawnY       float64    `yaml:"spawn_y"`
	Width        int        `yaml:"width"`
	Height       int        `yaml:"height"`
	MaxHealth    int        `yaml:"max_health"`
	Acceleration float64    `yaml:"acceleration"`
	JumpImpulse  float64    `yaml:"jump_impulse"`
	Bounds       BoundsSpec `yaml:"bounds"`
	Melee        MeleeSpec  `yaml:"melee"`
}

type EnemyKindSpec struct {
	Speed       float64 `yaml:"speed"`
	Damage      int     `yaml:"damage"`
	Health      int     `yaml:"health"`
	SteerScript string  `yaml:"steer_script,omitempty"`
}

type EnemiesSpec struct {
	Width           int                      `yaml:"width"`
	Height          int                      `yaml:"height"`
	Cap             int                      `yaml:"cap"`
	Deadzone        float64                  `yaml:"deadzone"`
	ContactCooldown float64                  `yaml:"contact_cooldown"`
	KillScore       int                      `yaml:"kill_score"`
	DropChance      float64                  `yaml:"drop_chance"`
	Bounds          BoundsSpec               `yaml:"bounds"`
	Kinds           map[string]EnemyKindSpec `yaml:"kinds"`
}

type PickupSpec struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Heal     int        `yaml:"heal"`
	Lifetime float64    `yaml:"lifetime"`
	Bounds   BoundsSpec `yaml:"bounds"`
}

type WaveSpec struct {
	Schedule []int `yaml:"schedule"`
}

type WeatherSpec struct {
	Interval float64 `yaml:"interval"`
}

// DefaultTuning returns the built-in constants. Decoding starts from these so
// a tuning file only has to name what it changes.
func DefaultTuning() *Tuning {
	return &Tuning{
		World: WorldSpec{ScreenWidth: 800, ScreenHeight: 600, TileSize: 32, TickRate: 60},
		Physics: PhysicsSpec{
			Gravity:  0.5,
			Friction: 0.7,
			MaxSpeed: 5,
			SnapBand: 10,
		},
		Player: PlayerSpec{
			SpawnX:       96,
			SpawnY:       272,
			Width:        48,
			Height:       48,
			MaxHealth:    100,
			Acceleration: 0.8,
			JumpImpulse:  -13,
			Bounds:       BoundsSpec{Mode: "bounce", Left: 10, RightMargin: 30, RightSnap: 60, BottomMargin: 50, BottomSnap: 60},
			Melee:        MeleeSpec{Damage: 25, Range: 100, Cooldown: 0.5},
		},
		Enemies: EnemiesSpec{
			Width:           32,
			Height:          32,
			Cap:             5,
			Deadzone:        5,
			ContactCooldown: 1,
			KillScore:       100,
			DropChance:      0.5,
			Bounds:          BoundsSpec{Mode: "bounce", Left: 10, RightMargin: 30, RightSnap: 60, BottomMargin: 50, BottomSnap: 50},
			Kinds: map[string]EnemyKindSpec{
				"skirmisher": {Speed: 2, Damage: 5, Health: 50},
				"bulwark":    {Speed: 0.5, Damage: 10, Health: 100},
			},
		},
		Pickups: PickupSpec{
			Width:    16,
			Height:   16,
			Heal:     20,
			Lifetime: 10,
			Bounds:   BoundsSpec{Mode: "clamp"},
		},
		Waves:   WaveSpec{Schedule: []int{15, 20, 25, 30, 35}},
		Weather: WeatherSpec{Interval: 30},
	}
}

// LoadTuning reads tuning.yaml over the defaults and validates the result.
func LoadTuning() (*Tuning, error) {
	return LoadTuningFile(TuningFile)
}

func LoadTuningFile(filename string) (*Tuning, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	return t, nil
}

func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Clone returns a deep copy.
func (t *Tuning) Clone() *Tuning {
	if t == nil {
		return nil
	}
	c := *t
	c.Enemies.Kinds = make(map[string]EnemyKindSpec, len(t.Enemies.Kinds))
	for k, v := range t.Enemies.Kinds {
		c.Enemies.Kinds[k] = v
	}
	c.Waves.Schedule = append([]int(nil), t.Waves.Schedule...)
	return &c
}

// Kind returns the tuning for an enemy kind by name.
func (t *Tuning) Kind(name string) (EnemyKindSpec, bool) {
	spec, ok := t.Enemies.Kinds[name]
	return spec, ok
}

// TotalWaves is the length of the wave schedule.
func (t *Tuning) TotalWaves() int {
	return len(t.Waves.Schedule)
}

// WaveSize returns the spawn budget for a 1-based wave number.
func (t *Tuning) WaveSize(wave int) int {
	if wave < 1 || wave > len(t.Waves.Schedule) {
		return 0
	}
	return t.Waves.Schedule[wave-1]
}

func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidTuning}, args...)...))
		}
	}

	check(t.World.ScreenWidth > 0 && t.World.ScreenHeight > 0, "screen size %vx%v", t.World.ScreenWidth, t.World.ScreenHeight)
	check(t.World.TileSize > 0, "tile_size %d", t.World.TileSize)
	check(t.World.TickRate > 0, "tick_rate %v", t.World.TickRate)
	check(t.Physics.Friction >= 0 && t.Physics.Friction <= 1, "friction %v", t.Physics.Friction)
	check(t.Physics.MaxSpeed > 0, "max_speed %v", t.Physics.MaxSpeed)
	check(t.Physics.SnapBand >= 0, "snap_band %v", t.Physics.SnapBand)

	check(t.Player.Width > 0 && t.Player.Height > 0, "player size %dx%d", t.Player.Width, t.Player.Height)
	check(t.Player.MaxHealth > 0, "player max_health %d", t.Player.MaxHealth)
	check(t.Player.Melee.Cooldown >= 0 && t.Player.Melee.Range >= 0, "player melee %+v", t.Player.Melee)

	check(t.Enemies.Width > 0 && t.Enemies.Height > 0, "enemy size %dx%d", t.Enemies.Width, t.Enemies.Height)
	check(t.Enemies.Cap > 0, "enemy cap %d", t.Enemies.Cap)
	check(t.Enemies.DropChance >= 0 && t.Enemies.DropChance <= 1, "drop_chance %v", t.Enemies.DropChance)
	for _, name := range []string{"skirmisher", "bulwark"} {
		spec, ok := t.Enemies.Kinds[name]
		check(ok, "missing enemy kind %s", name)
		if ok {
			check(spec.Health > 0, "enemy %s health %d", name, spec.Health)
			check(spec.Speed >= 0, "enemy %s speed %v", name, spec.Speed)
		}
	}

	check(t.Pickups.Width > 0 && t.Pickups.Height > 0, "pickup size %dx%d", t.Pickups.Width, t.Pickups.Height)
	check(t.Pickups.Lifetime > 0, "pickup lifetime %v", t.Pickups.Lifetime)

	check(len(t.Waves.Schedule) > 0, "empty wave schedule")
	for i, n := range t.Waves.Schedule {
		check(n > 0, "wave %d size %d", i+1, n)
	}
	check(t.Weather.Interval > 0, "weather interval %v", t.Weather.Interval)

	for name, b := range map[string]BoundsSpec{"player": t.Player.Bounds, "enemies": t.Enemies.Bounds, "pickups": t.Pickups.Bounds} {
		check(b.Mode == "bounce" || b.Mode == "clamp", "%s bounds mode %q", name, b.Mode)
	}

	return errors.Join(errs...)
}
