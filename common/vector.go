package common

// Vector2D is a mutable 2D float vector. Add, Scale and Set change the
// receiver in place.
type Vector2D struct {
	X float64
	Y float64
}

func Vec(x, y float64) Vector2D {
	return Vector2D{X: x, Y: y}
}

func (v *Vector2D) Add(o Vector2D) {
	v.X += o.X
	v.Y += o.Y
}

func (v *Vector2D) Scale(s float64) {
	v.X *= s
	v.Y *= s
}

func (v *Vector2D) Set(x, y float64) {
	v.X = x
	v.Y = y
}
