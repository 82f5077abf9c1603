package geometry

import "github.com/chewxy/math32"

// Epsilon is the coordinate tolerance used throughout layout and meshing.
const Epsilon = 1e-4

type Vector3 struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func V3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

func (v Vector3) Negate() Vector3 {
	return Vector3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vector3) Dot(o Vector3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

func (v Vector3) DistanceTo(o Vector3) float32 {
	return v.Sub(o).Length()
}

// Normalized returns the unit vector, or the zero vector for near-zero input.
func (v Vector3) Normalized() Vector3 {
	l := v.Length()
	if l < Epsilon {
		return Vector3{}
	}
	return v.Scale(1 / l)
}

// Horizontal drops the Y component, projecting onto the floor plane.
func (v Vector3) Horizontal() Vector3 {
	return Vector3{X: v.X, Z: v.Z}
}

func (v Vector3) WithY(y float32) Vector3 {
	return Vector3{X: v.X, Y: y, Z: v.Z}
}

// Lerp interpolates between v and o by t in [0,1].
func (v Vector3) Lerp(o Vector3, t float32) Vector3 {
	return v.Add(o.Sub(v).Scale(t))
}
