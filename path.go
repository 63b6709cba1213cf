package lilt

import (
	"math"
	"sort"
)

// PathType selects how consecutive waypoints are joined.
type PathType uint8

const (
	PathLinear       PathType = iota // straight segments
	PathAutoBezier                   // cubic segments with handles derived from neighbors
	PathManualBezier                 // cubic segments with author-specified handles
)

// Parametrization selects how progress maps onto the path.
type Parametrization uint8

const (
	// ParamUniform gives every segment an equal share of progress.
	ParamUniform Parametrization = iota
	// ParamArcLength moves at constant speed along the whole path.
	ParamArcLength
)

// BezierHandles are the two inner control points of one cubic segment, in
// the same space as the waypoints.
type BezierHandles struct {
	Out Vec2 // leaves the segment's start point
	In  Vec2 // enters the segment's end point
}

// arcSamplesPerSegment is the resolution of the arc-length table.
const arcSamplesPerSegment = 32

// Path is an ordered list of waypoints evaluated at a normalized position t.
// Evaluation is deterministic; a path is not safe to modify while a PathTween
// is using it unless Invalidate is called afterwards.
type Path struct {
	Points  []Vec2
	Type    PathType
	Handles []BezierHandles // one per segment for PathManualBezier
	Param   Parametrization

	segments []cubic
	lengths  []float64 // cumulative arc length at each table sample
	built    bool
}

// cubic is one segment in Bernstein form.
type cubic struct {
	p0, p1, p2, p3 Vec2
}

func (c cubic) at(u float64) Vec2 {
	v := 1 - u
	a := v * v * v
	b := 3 * v * v * u
	d := 3 * v * u * u
	e := u * u * u
	return Vec2{
		a*c.p0.X + b*c.p1.X + d*c.p2.X + e*c.p3.X,
		a*c.p0.Y + b*c.p1.Y + d*c.p2.Y + e*c.p3.Y,
	}
}

// derivative returns d/du of the segment.
func (c cubic) derivative(u float64) Vec2 {
	v := 1 - u
	a := 3 * v * v
	b := 6 * v * u
	d := 3 * u * u
	return Vec2{
		a*(c.p1.X-c.p0.X) + b*(c.p2.X-c.p1.X) + d*(c.p3.X-c.p2.X),
		a*(c.p1.Y-c.p0.Y) + b*(c.p2.Y-c.p1.Y) + d*(c.p3.Y-c.p2.Y),
	}
}

// NewPath creates a path of the given type through points.
func NewPath(typ PathType, points ...Vec2) *Path {
	return &Path{Points: points, Type: typ}
}

// SetHandles sets the manual bezier handles, one per segment.
func (p *Path) SetHandles(h ...BezierHandles) *Path {
	p.Handles = h
	p.built = false
	return p
}

// SetParametrization selects uniform or arc-length progress.
func (p *Path) SetParametrization(param Parametrization) *Path {
	p.Param = param
	return p
}

// Invalidate drops cached segment data after Points or Handles changed.
func (p *Path) Invalidate() {
	p.built = false
}

// Segments returns the number of segments.
func (p *Path) Segments() int {
	return max(len(p.Points)-1, 0)
}

func (p *Path) build() {
	if p.built {
		return
	}
	p.built = true
	n := p.Segments()
	p.segments = p.segments[:0]
	for i := 0; i < n; i++ {
		a, b := p.Points[i], p.Points[i+1]
		seg := cubic{p0: a, p3: b}
		switch {
		case p.Type == PathAutoBezier:
			// Catmull-Rom tangents with duplicated end points.
			prev, next := a, b
			if i > 0 {
				prev = p.Points[i-1]
			}
			if i+2 < len(p.Points) {
				next = p.Points[i+2]
			}
			seg.p1 = a.Add(b.Sub(prev).Mul(1.0 / 6))
			seg.p2 = b.Sub(next.Sub(a).Mul(1.0 / 6))
		case p.Type == PathManualBezier && i < len(p.Handles):
			seg.p1 = p.Handles[i].Out
			seg.p2 = p.Handles[i].In
		default:
			seg.p1 = a.Add(b.Sub(a).Mul(1.0 / 3))
			seg.p2 = a.Add(b.Sub(a).Mul(2.0 / 3))
		}
		p.segments = append(p.segments, seg)
	}

	p.lengths = p.lengths[:0]
	if n == 0 {
		return
	}
	total := 0.0
	p.lengths = append(p.lengths, 0)
	last := p.segments[0].p0
	for i, seg := range p.segments {
		for j := 1; j <= arcSamplesPerSegment; j++ {
			pt := seg.at(float64(j) / arcSamplesPerSegment)
			if i == n-1 && j == arcSamplesPerSegment {
				pt = seg.p3
			}
			total += pt.Sub(last).Len()
			p.lengths = append(p.lengths, total)
			last = pt
		}
	}
}

// Length returns the approximate arc length of the whole path.
func (p *Path) Length() float64 {
	p.build()
	if len(p.lengths) == 0 {
		return 0
	}
	return p.lengths[len(p.lengths)-1]
}

// Evaluate returns the position and tangent at t. The tangent is the
// derivative with respect to the segment parameter, so its length varies;
// only its direction is meaningful. Outside [0, 1] the path continues in a
// straight line along the end tangent.
func (p *Path) Evaluate(t float64) (pos, tangent Vec2) {
	switch len(p.Points) {
	case 0:
		return Vec2{}, Vec2{}
	case 1:
		return p.Points[0], Vec2{}
	}
	p.build()

	if t < 0 || t > 1 {
		end := 0.0
		excess := t
		if t > 1 {
			end = 1
			excess = t - 1
		}
		pos, tangent = p.Evaluate(end)
		if l := tangent.Len(); l > 0 {
			pos = pos.Add(tangent.Mul(excess * p.Length() / l))
		}
		return pos, tangent
	}

	seg, u := p.locate(t)
	c := p.segments[seg]
	return c.at(u), c.derivative(u)
}

// locate maps t in [0, 1] to a segment index and local parameter.
func (p *Path) locate(t float64) (int, float64) {
	n := len(p.segments)
	s := t * float64(n)
	if p.Param == ParamArcLength && p.Length() > 0 {
		s = p.uniformAt(t * p.Length())
	}
	i := int(math.Floor(s))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i, s - float64(i)
}

// uniformAt converts a distance along the path into the uniform parameter
// (segment index plus fraction) using the arc-length table.
func (p *Path) uniformAt(dist float64) float64 {
	table := p.lengths
	k := sort.SearchFloat64s(table, dist)
	if k <= 0 {
		return 0
	}
	if k >= len(table) {
		return float64(len(p.segments))
	}
	lo, hi := table[k-1], table[k]
	f := 0.0
	if hi > lo {
		f = (dist - lo) / (hi - lo)
	}
	return (float64(k-1) + f) / arcSamplesPerSegment
}
