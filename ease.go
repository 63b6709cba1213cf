package lilt

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Ease names a curve from the built-in catalog. The zero value is EaseLinear.
type Ease uint8

const (
	EaseLinear Ease = iota
	EaseInQuad
	EaseOutQuad
	EaseInOutQuad
	EaseOutInQuad
	EaseInCubic
	EaseOutCubic
	EaseInOutCubic
	EaseOutInCubic
	EaseInQuart
	EaseOutQuart
	EaseInOutQuart
	EaseOutInQuart
	EaseInQuint
	EaseOutQuint
	EaseInOutQuint
	EaseOutInQuint
	EaseInSine
	EaseOutSine
	EaseInOutSine
	EaseOutInSine
	EaseInExpo
	EaseOutExpo
	EaseInOutExpo
	EaseOutInExpo
	EaseInCirc
	EaseOutCirc
	EaseInOutCirc
	EaseOutInCirc
	EaseInBack
	EaseOutBack
	EaseInOutBack
	EaseOutInBack
	EaseInElastic
	EaseOutElastic
	EaseInOutElastic
	EaseOutInElastic
	EaseInBounce
	EaseOutBounce
	EaseInOutBounce
	EaseOutInBounce

	easeCount
)

// easeFuncs maps every catalog entry to its gween implementation.
var easeFuncs = [easeCount]ease.TweenFunc{
	EaseLinear:       ease.Linear,
	EaseInQuad:       ease.InQuad,
	EaseOutQuad:      ease.OutQuad,
	EaseInOutQuad:    ease.InOutQuad,
	EaseOutInQuad:    ease.OutInQuad,
	EaseInCubic:      ease.InCubic,
	EaseOutCubic:     ease.OutCubic,
	EaseInOutCubic:   ease.InOutCubic,
	EaseOutInCubic:   ease.OutInCubic,
	EaseInQuart:      ease.InQuart,
	EaseOutQuart:     ease.OutQuart,
	EaseInOutQuart:   ease.InOutQuart,
	EaseOutInQuart:   ease.OutInQuart,
	EaseInQuint:      ease.InQuint,
	EaseOutQuint:     ease.OutQuint,
	EaseInOutQuint:   ease.InOutQuint,
	EaseOutInQuint:   ease.OutInQuint,
	EaseInSine:       ease.InSine,
	EaseOutSine:      ease.OutSine,
	EaseInOutSine:    ease.InOutSine,
	EaseOutInSine:    ease.OutInSine,
	EaseInExpo:       ease.InExpo,
	EaseOutExpo:      ease.OutExpo,
	EaseInOutExpo:    ease.InOutExpo,
	EaseOutInExpo:    ease.OutInExpo,
	EaseInCirc:       ease.InCirc,
	EaseOutCirc:      ease.OutCirc,
	EaseInOutCirc:    ease.InOutCirc,
	EaseOutInCirc:    ease.OutInCirc,
	EaseInBack:       ease.InBack,
	EaseOutBack:      ease.OutBack,
	EaseInOutBack:    ease.InOutBack,
	EaseOutInBack:    ease.OutInBack,
	EaseInElastic:    ease.InElastic,
	EaseOutElastic:   ease.OutElastic,
	EaseInOutElastic: ease.InOutElastic,
	EaseOutInElastic: ease.OutInElastic,
	EaseInBounce:     ease.InBounce,
	EaseOutBounce:    ease.OutBounce,
	EaseInOutBounce:  ease.InOutBounce,
	EaseOutInBounce:  ease.OutInBounce,
}

var easeNames = [easeCount]string{
	"linear",
	"inQuad", "outQuad", "inOutQuad", "outInQuad",
	"inCubic", "outCubic", "inOutCubic", "outInCubic",
	"inQuart", "outQuart", "inOutQuart", "outInQuart",
	"inQuint", "outQuint", "inOutQuint", "outInQuint",
	"inSine", "outSine", "inOutSine", "outInSine",
	"inExpo", "outExpo", "inOutExpo", "outInExpo",
	"inCirc", "outCirc", "inOutCirc", "outInCirc",
	"inBack", "outBack", "inOutBack", "outInBack",
	"inElastic", "outElastic", "inOutElastic", "outInElastic",
	"inBounce", "outBounce", "inOutBounce", "outInBounce",
}

// Evaluate maps raw progress p in [0, 1] to shaped progress. Overshoot curves
// may return values outside [0, 1]. The endpoints are exact: p <= 0 yields 0
// and p >= 1 yields 1. Unknown values evaluate as linear.
func (e Ease) Evaluate(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	if e == EaseLinear || e >= easeCount {
		return p
	}
	return float64(easeFuncs[e](float32(p), 0, 1, 1))
}

// Func returns the gween easing function for e, for callers that drive gween
// tweens directly.
func (e Ease) Func() ease.TweenFunc {
	if e >= easeCount {
		return ease.Linear
	}
	return easeFuncs[e]
}

// String returns the catalog name of e, e.g. "outQuad".
func (e Ease) String() string {
	if e >= easeCount {
		return fmt.Sprintf("Ease(%d)", int(e))
	}
	return easeNames[e]
}

// ParseEase looks up a catalog entry by name. Matching ignores case and the
// separators '-', '_' and ' ', so "out-quad", "OutQuad" and "out_quad" all
// resolve to EaseOutQuad.
func ParseEase(name string) (Ease, error) {
	key := normalizeEaseName(name)
	for i, n := range easeNames {
		if normalizeEaseName(n) == key {
			return Ease(i), nil
		}
	}
	return EaseLinear, fmt.Errorf("unknown ease %q", name)
}

func normalizeEaseName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

// UnmarshalYAML parses an ease from its catalog name. An unknown name is
// reported as a warning and decodes as EaseLinear.
func (e *Ease) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseEase(name)
	if err != nil {
		warnf("config line %d: %v; using linear", value.Line, err)
	}
	*e = parsed
	return nil
}

// MarshalYAML writes the catalog name of e.
func (e Ease) MarshalYAML() (any, error) {
	return e.String(), nil
}

// --- Custom curves ---

// Curve is a user-supplied easing curve. Evaluate must be a pure function of
// t: it is called again for the same t during rewinds and step backfill.
type Curve interface {
	Evaluate(t float64) float64
}

// CurveFunc adapts a plain function to Curve.
type CurveFunc func(t float64) float64

// Evaluate calls f(t).
func (f CurveFunc) Evaluate(t float64) float64 { return f(t) }

// CubicBezier returns a curve matching CSS cubic-bezier(). The curve runs from
// (0,0) to (1,1) with control points (x1,y1) and (x2,y2). x1 and x2 are
// clamped to [0, 1]; y1 and y2 may leave that range to produce overshoot.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	x1 = clampUnit(x1)
	x2 = clampUnit(x2)
	return CurveFunc(func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleBezier(y1, y2, clampUnit(u))
			}
			dx := sampleBezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection guarantees a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 24 {
			x := sampleBezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return sampleBezier(y1, y2, u)
	})
}

func sampleBezier(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleBezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Keyframe is one sample of a KeyframeCurve. Ease shapes the segment that
// starts at this key.
type Keyframe struct {
	Time  float64
	Value float64
	Ease  Ease
}

// KeyframeCurve is a sampled animation curve: a piecewise function through
// keyframes, each segment shaped by its starting key's ease. Outside the key
// range the curve holds the first or last value.
type KeyframeCurve struct {
	keys []Keyframe
	segs []*gween.Tween
}

// NewKeyframeCurve builds a curve from keys, sorted by time. Keys sharing a
// time keep the later one.
func NewKeyframeCurve(keys ...Keyframe) *KeyframeCurve {
	sorted := make([]Keyframe, 0, len(keys))
	sorted = append(sorted, keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	dedup := sorted[:0]
	for _, k := range sorted {
		if n := len(dedup); n > 0 && dedup[n-1].Time == k.Time {
			dedup[n-1] = k
			continue
		}
		dedup = append(dedup, k)
	}

	c := &KeyframeCurve{keys: dedup}
	for i := 0; i+1 < len(dedup); i++ {
		a, b := dedup[i], dedup[i+1]
		c.segs = append(c.segs, gween.New(float32(a.Value), float32(b.Value), float32(b.Time-a.Time), a.Ease.Func()))
	}
	return c
}

// Keys returns the curve's keyframes in time order. The returned slice MUST
// NOT be mutated by the caller.
func (c *KeyframeCurve) Keys() []Keyframe {
	return c.keys
}

// Evaluate samples the curve at t.
func (c *KeyframeCurve) Evaluate(t float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return t
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}
	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t }) - 1
	if i < 0 || i >= len(c.segs) {
		return c.keys[n-1].Value
	}
	v, _ := c.segs[i].Set(float32(t - c.keys[i].Time))
	return float64(v)
}
