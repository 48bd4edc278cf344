package system

import (
	"fmt"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/wavefall/ecs/component"
	"github.com/milk9111/wavefall/prefabs"
)

// Steerer picks an enemy's horizontal velocity from the signed distance to
// its target.
type Steerer interface {
	Steer(dx, speed, deadzone float64) (float64, error)
}

// ChaseSteering moves at full speed toward the target and stops inside the
// deadzone.
type ChaseSteering struct{}

func (ChaseSteering) Steer(dx, speed, deadzone float64) (float64, error) {
	switch {
	case dx > deadzone:
		return speed, nil
	case dx < -deadzone:
		return -speed, nil
	default:
		return 0, nil
	}
}

// ScriptSteering runs a tengo script that reads dx, speed and deadzone and
// leaves its answer in the global vx.
type ScriptSteering struct {
	name     string
	mu       sync.Mutex
	compiled *tengo.Compiled
}

func CompileSteering(name string, src []byte) (*ScriptSteering, error) {
	script := tengo.NewScript(src)
	for _, v := range []string{"dx", "speed", "deadzone"} {
		if err := script.Add(v, 0.0); err != nil {
			return nil, fmt.Errorf("steering: %s: declare %s: %w", name, v, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("steering: compile %s: %w", name, err)
	}
	return &ScriptSteering{name: name, compiled: compiled}, nil
}

// LoadSteering compiles a script from the prefabs scripts directory.
func LoadSteering(name string) (*ScriptSteering, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("steering: load %s: %w", name, err)
	}
	return CompileSteering(name, src)
}

func (s *ScriptSteering) Steer(dx, speed, deadzone float64) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("dx", dx); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("speed", speed); err != nil {
		return 0, err
	}
	if err := s.compiled.Set("deadzone", deadzone); err != nil {
		return 0, err
	}
	if err := s.compiled.Run(); err != nil {
		return 0, fmt.Errorf("steering: run %s: %w", s.name, err)
	}
	if !s.compiled.IsDefined("vx") {
		return 0, fmt.Errorf("steering: %s did not define vx", s.name)
	}
	return s.compiled.Get("vx").Float(), nil
}

// LoadSteerers builds the steering table for every enemy kind that names a
// script in its tuning. Kinds without a script use ChaseSteering.
func LoadSteerers(t *prefabs.Tuning) (map[component.EnemyKind]Steerer, error) {
	out := make(map[component.EnemyKind]Steerer, len(component.EnemyKinds))
	for _, kind := range component.EnemyKinds {
		spec, ok := t.Kind(kind.String())
		if !ok || spec.SteerScript == "" {
			continue
		}
		s, err := LoadSteering(spec.SteerScript)
		if err != nil {
			return nil, err
		}
		out[kind] = s
	}
	return out, nil
}
