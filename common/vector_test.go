package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2DInPlace(t *testing.T) {
	cases := []struct {
		name string
		run  func(v *Vector2D)
		want Vector2D
	}{
		{"add", func(v *Vector2D) { v.Add(Vec(1.5, -2)) }, Vec(4.5, 2)},
		{"scale", func(v *Vector2D) { v.Scale(0.5) }, Vec(1.5, 2)},
		{"set", func(v *Vector2D) { v.Set(-1, 7) }, Vec(-1, 7)},
		{"add_then_scale", func(v *Vector2D) { v.Add(Vec(1, 0)); v.Scale(2) }, Vec(8, 8)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := Vec(3, 4)
			c.run(&v)
			assert.Equal(t, c.want, v)
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 100, ClampInt(120, 0, 100))
	assert.Equal(t, 0, ClampInt(-5, 0, 100))
	assert.Equal(t, 40, ClampInt(40, 0, 100))
}
