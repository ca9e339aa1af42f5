// SPDX-License-Identifier: MIT

package matrix

// Vec3 is a three-component vector with named coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 builds a Vec3 from any numeric type.
func NewVec3[T Number](x, y, z T) Vec3 {
	return Vec3{X: float64(x), Y: float64(y), Z: float64(z)}
}

// Vector copies v into a length-3 Vector.
func (v Vec3) Vector() *Vector {
	return &Vector{data: []float64{v.X, v.Y, v.Z}}
}

// Column copies v into a 3×1 Dense.
func (v Vec3) Column() *Dense {
	return &Dense{r: 3, c: 1, data: []float64{v.X, v.Y, v.Z}}
}

// Dot returns the scalar product.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns v × w. Its z component equals the determinant of the 2×2
// matrix [[v.X, w.X], [v.Y, w.Y]].
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// TripleProduct returns u · (v × w), the signed volume spanned by the three
// vectors, equal to the determinant of the matrix with u, v, w as columns.
func TripleProduct(u, v, w Vec3) float64 {
	return u.Dot(v.Cross(w))
}
