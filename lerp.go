package lilt

import (
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Interpolator blends values of one type. Lerp must not clamp t: eases such
// as Back and Elastic rely on values beyond [0, 1] extrapolating past the
// endpoints. Add and Sub define offsets for relative tweens and incremental
// loops: Add(b, Sub(a, b)) == a.
type Interpolator[T any] interface {
	Lerp(a, b T, t float64) T
	Default() T
	Add(a, b T) T
	Sub(a, b T) T
}

// --- Scalar ---

// FloatLerp interpolates float64 values.
type FloatLerp struct{}

// Float is the scalar interpolator.
var Float FloatLerp

func (FloatLerp) Lerp(a, b float64, t float64) float64 { return lerp(a, b, t) }
func (FloatLerp) Default() float64                    { return 0 }
func (FloatLerp) Add(a, b float64) float64            { return a + b }
func (FloatLerp) Sub(a, b float64) float64            { return a - b }

// lerp linearly interpolates between a and b by t. The two-product form is
// exact at t=0 and t=1.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// --- Vectors ---

// Vec2Lerp interpolates Vec2 component-wise.
type Vec2Lerp struct{}

func (Vec2Lerp) Lerp(a, b Vec2, t float64) Vec2 {
	return Vec2{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t)}
}
func (Vec2Lerp) Default() Vec2       { return Vec2{} }
func (Vec2Lerp) Add(a, b Vec2) Vec2 { return a.Add(b) }
func (Vec2Lerp) Sub(a, b Vec2) Vec2 { return a.Sub(b) }

// Vec3Lerp interpolates Vec3 component-wise.
type Vec3Lerp struct{}

func (Vec3Lerp) Lerp(a, b Vec3, t float64) Vec3 {
	return Vec3{lerp(a[0], b[0], t), lerp(a[1], b[1], t), lerp(a[2], b[2], t)}
}
func (Vec3Lerp) Default() Vec3 { return Vec3{} }
func (Vec3Lerp) Add(a, b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
func (Vec3Lerp) Sub(a, b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Vec4Lerp interpolates Vec4 component-wise.
type Vec4Lerp struct{}

func (Vec4Lerp) Lerp(a, b Vec4, t float64) Vec4 {
	return Vec4{lerp(a[0], b[0], t), lerp(a[1], b[1], t), lerp(a[2], b[2], t), lerp(a[3], b[3], t)}
}
func (Vec4Lerp) Default() Vec4 { return Vec4{} }
func (Vec4Lerp) Add(a, b Vec4) Vec4 {
	return Vec4{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}
func (Vec4Lerp) Sub(a, b Vec4) Vec4 {
	return Vec4{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// --- Rotation ---

// QuatLerp interpolates rotations. With Spherical unset the blend is
// component-wise: fast, but intermediate values are not unit length. With
// Spherical set the blend follows the shortest great arc and stays unit
// length for any t, including large overshoot.
type QuatLerp struct {
	Spherical bool
}

// slerpThreshold is the dot product above which slerp falls back to a
// normalized linear blend to avoid dividing by a vanishing sine.
const slerpThreshold = 0.9995

func (q QuatLerp) Lerp(a, b Quat, t float64) Quat {
	if !q.Spherical {
		return Quat{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t), lerp(a.Z, b.Z, t), lerp(a.W, b.W, t)}
	}
	d := a.Dot(b)
	if d < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		d = -d
	}
	if d > slerpThreshold {
		return Quat{lerp(a.X, b.X, t), lerp(a.Y, b.Y, t), lerp(a.Z, b.Z, t), lerp(a.W, b.W, t)}.Normalize()
	}
	theta := math.Acos(d)
	// Unit vector in the a-b plane orthogonal to a; rotating a toward it by
	// theta*t is well defined for every t.
	perp := Quat{b.X - a.X*d, b.Y - a.Y*d, b.Z - a.Z*d, b.W - a.W*d}.Normalize()
	s, c := math.Sincos(theta * t)
	return Quat{
		a.X*c + perp.X*s,
		a.Y*c + perp.Y*s,
		a.Z*c + perp.Z*s,
		a.W*c + perp.W*s,
	}
}

func (QuatLerp) Default() Quat { return QuatIdentity }

// Add applies rotation b after a.
func (QuatLerp) Add(a, b Quat) Quat { return b.Mul(a) }

// Sub returns the rotation that takes b to a.
func (QuatLerp) Sub(a, b Quat) Quat { return a.Mul(b.Conj()) }

// --- Color ---

// ColorSpace selects the space a ColorLerp blends in.
type ColorSpace uint8

const (
	ColorSpaceRGB ColorSpace = iota // per-channel linear, extrapolates
	ColorSpaceLab                   // CIE L*a*b*, perceptually even, clamped to gamut
	ColorSpaceHCL                   // hue/chroma/luminance, hue takes the short way round
)

// ColorLerp interpolates Color values. Alpha is always blended linearly.
type ColorLerp struct {
	Space ColorSpace
}

func (c ColorLerp) Lerp(a, b Color, t float64) Color {
	alpha := lerp(a.A, b.A, t)
	if c.Space == ColorSpaceRGB {
		return Color{lerp(a.R, b.R, t), lerp(a.G, b.G, t), lerp(a.B, b.B, t), alpha}
	}
	switch t {
	case 0:
		return a
	case 1:
		return b
	}
	ca := colorful.Color{R: a.R, G: a.G, B: a.B}
	cb := colorful.Color{R: b.R, G: b.G, B: b.B}
	var out colorful.Color
	if c.Space == ColorSpaceHCL {
		out = ca.BlendHcl(cb, t)
	} else {
		out = ca.BlendLab(cb, t)
	}
	out = out.Clamped()
	return Color{out.R, out.G, out.B, alpha}
}

func (ColorLerp) Default() Color { return ColorWhite }
func (ColorLerp) Add(a, b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B, a.A + b.A}
}
func (ColorLerp) Sub(a, b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B, a.A - b.A}
}

// --- String ---

// Typewriter reveals the end string rune by rune over the start string.
// Strings cannot extrapolate, so t is clamped to [0, 1].
type Typewriter struct{}

func (Typewriter) Lerp(a, b string, t float64) string {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ra, rb := []rune(a), []rune(b)
	n := max(len(ra), len(rb))
	k := int(t * float64(n))

	var sb strings.Builder
	sb.Grow(len(a) + len(b))
	sb.WriteString(string(rb[:min(k, len(rb))]))
	if k < len(ra) {
		sb.WriteString(string(ra[k:]))
	}
	return sb.String()
}

func (Typewriter) Default() string { return "" }

// Add appends b to a.
func (Typewriter) Add(a, b string) string { return a + b }

// Sub strips the prefix b from a. It is only an inverse of Add when a starts
// with b; see CanOffset.
func (Typewriter) Sub(a, b string) string { return strings.TrimPrefix(a, b) }

// CanOffset reports whether a extends b, the only case in which a string
// offset exists. Incremental loops on other strings fall back to restarting.
func (Typewriter) CanOffset(a, b string) bool { return strings.HasPrefix(a, b) }
