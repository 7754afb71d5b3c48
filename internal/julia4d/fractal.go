package julia4d

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

// ErrConfiguration is wrapped by every error NewFractal returns.
var ErrConfiguration = errors.New("invalid fractal configuration")

// Algebra is the number system a fractal iterates in.
type Algebra uint8

const (
	Quaternion Algebra = iota
	Hypercomplex
)

func (a Algebra) String() string {
	switch a {
	case Quaternion:
		return "quaternion"
	case Hypercomplex:
		return "hypercomplex"
	}
	return fmt.Sprintf("algebra(%d)", uint8(a))
}

// ParseAlgebra accepts "quaternion" (also the empty string) or "hypercomplex".
func ParseAlgebra(s string) (Algebra, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "quaternion":
		return Quaternion, nil
	case "hypercomplex":
		return Hypercomplex, nil
	}
	return 0, fmt.Errorf("%w: unknown algebra %q", ErrConfiguration, s)
}

// MapKind selects the iterated map. Function uses FractalSpec.Fn.
type MapKind uint8

const (
	Square MapKind = iota
	Cube
	Reciprocal
	Function
)

func (m MapKind) String() string {
	switch m {
	case Square:
		return "sqr"
	case Cube:
		return "cube"
	case Reciprocal:
		return "reciprocal"
	case Function:
		return "function"
	}
	return fmt.Sprintf("map(%d)", uint8(m))
}

// ParseMap accepts sqr, cube, reciprocal or any complex function name, the
// latter selecting Function.
func ParseMap(s string) (MapKind, FnID, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sqr", "square":
		return Square, 0, nil
	case "cube":
		return Cube, 0, nil
	case "reciprocal":
		return Reciprocal, 0, nil
	}
	fn, err := ParseFn(s)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return Function, fn, nil
}

// FractalSpec holds the parameters of a Julia fractal in object space.
// Radius, RadiusSq and ExitValue are derived by NewFractal.
type FractalSpec struct {
	Center     Vector3
	Radius     Real
	RadiusSq   Real
	Julia      Vector4 // c in z -> f(z) + c
	Slice      Vector4 // slicing hyperplane normal, W must not be 0
	SliceDist  Real
	ExitValue  Real // squared norm escape threshold
	Iterations int
	Precision  Real
	Algebra    Algebra
	Map        MapKind
	Fn         FnID
	Exponent   complex128 // Pwr only
}

// DefaultFractalSpec returns the parameters of an unconfigured fractal.
func DefaultFractalSpec() FractalSpec {
	return FractalSpec{
		Julia:      Vector4{1, 0, 0, 0},
		Slice:      Vector4{0, 0, 0, 1},
		Iterations: DefaultIterations,
		Precision:  1.0 / DefaultIterations,
		Algebra:    Quaternion,
		Map:        Square,
	}
}

// deriveBounds sets the bounding radius and exit value for the algebra.
func (s *FractalSpec) deriveBounds() {
	switch s.Algebra {
	case Quaternion:
		s.Radius = math.Min(2, 1+s.Julia.Len()+exitPad)
		s.ExitValue = s.Radius*s.Radius + exitPad
	default:
		s.Radius = 4
		s.ExitValue = 16
	}
	s.RadiusSq = s.Radius * s.Radius
}

func newRules(s *FractalSpec) (Rules, error) {
	switch s.Algebra {
	case Quaternion:
		switch s.Map {
		case Square:
			return juliaRules{}, nil
		case Cube:
			return z3Rules{}, nil
		}
		return nil, fmt.Errorf("%w: quaternion only supports sqr and cube, got %s", ErrConfiguration, s.Map)
	case Hypercomplex:
		switch s.Map {
		case Square:
			return hcSqrRules{}, nil
		case Cube:
			return hcCubeRules{}, nil
		case Reciprocal:
			return hcReciprocalRules{}, nil
		case Function:
			if !s.Fn.Valid() {
				return nil, fmt.Errorf("%w: unknown complex function %d", ErrConfiguration, s.Fn)
			}
			return hcFuncRules{fn: s.Fn}, nil
		}
		return nil, fmt.Errorf("%w: unknown hypercomplex map %s", ErrConfiguration, s.Map)
	}
	return nil, fmt.Errorf("%w: unknown algebra %s", ErrConfiguration, s.Algebra)
}

// Fractal is a sliced 4D Julia set placed in the scene.
type Fractal struct {
	FractalSpec
	rules    Rules
	trans    *Transform
	bbox     BBox
	clip     []Clip
	inverted bool
	child    bool
}

// NewFractal validates spec, resolves its rules and computes the bounds.
func NewFractal(spec FractalSpec) (*Fractal, error) {
	if spec.Iterations <= 0 {
		return nil, fmt.Errorf("%w: iterations must be > 0, got %d", ErrConfiguration, spec.Iterations)
	}
	if spec.Slice.W == 0 || !spec.Slice.finite() {
		return nil, fmt.Errorf("%w: slice normal must have a non-zero finite w, got %+v", ErrConfiguration, spec.Slice)
	}
	if spec.Precision <= 0 {
		spec.Precision = 1 / Real(spec.Iterations)
	}
	rules, err := newRules(&spec)
	if err != nil {
		return nil, err
	}
	f := &Fractal{FractalSpec: spec, rules: rules}
	f.ComputeBBox()
	DebugLog("Created fractal %s/%s c=%+v slice=%+v/%g iterations=%d precision=%g radius=%g",
		f.Algebra, f.mapName(), f.Julia, f.Slice, f.SliceDist, f.Iterations, f.Precision, f.Radius)
	return f, nil
}

func (f *Fractal) mapName() string {
	if f.Map == Function {
		return f.Fn.String()
	}
	return f.Map.String()
}

func (f *Fractal) Rules() Rules { return f.rules }

// ComputeBBox re-derives the bounding sphere and the world box around it.
func (f *Fractal) ComputeBBox() {
	f.deriveBounds()
	r := Vector3{f.Radius, f.Radius, f.Radius}
	f.bbox = BBox{Min: f.Center.Sub(r), Max: f.Center.Add(r)}.transformed(f.trans)
}

func (f *Fractal) BBox() BBox { return f.bbox }

func (f *Fractal) Translate(v Vector3) { f.Transform(Translation(v)) }
func (f *Fractal) Rotate(deg Vector3)  { f.Transform(Rotation(deg)) }
func (f *Fractal) Scale(v Vector3)     { f.Transform(Scaling(v)) }

func (f *Fractal) Transform(t *Transform) {
	if f.trans == nil {
		f.trans = NewTransform()
	}
	f.trans.Compose(t)
	f.ComputeBBox()
}

// Copy duplicates the parameters and transform; the rules are shared.
func (f *Fractal) Copy() Object {
	c := *f
	c.trans = f.trans.Copy()
	c.clip = slices.Clone(f.clip)
	return &c
}

func (f *Fractal) SetInverted(v bool)    { f.inverted = v }
func (f *Fractal) Inverted() bool        { return f.inverted }
func (f *Fractal) SetChild(v bool)       { f.child = v }
func (f *Fractal) Child() bool           { return f.child }
func (f *Fractal) SetClip(clips ...Clip) { f.clip = clips }
func (f *Fractal) MaxIterations() int    { return f.Iterations }

func (f *Fractal) toObject(p Vector3) Vector3 {
	if f.trans == nil {
		return p
	}
	return f.trans.InverseTransformPoint(p)
}

// Inside classifies a world point; the inverted flag flips the answer.
func (f *Fractal) Inside(p Vector3, td *ThreadData) bool {
	td.Stats.InsideTests++
	in := f.rules.Iterate(f.toObject(p), &f.FractalSpec, td.Orbit(f.Iterations)) != f.inverted
	if in {
		td.Stats.InsideSuccesses++
	}
	return in
}

// Normal recomputes the unit world normal at a reported hit point.
func (f *Fractal) Normal(hit Intersection, td *ThreadData) Vector3 {
	o := td.Orbit(f.Iterations)
	f.rules.Iterate(f.toObject(hit.Point), &f.FractalSpec, o)
	return f.worldNormal(f.rules.CalcNormal(o, o.Last(), &f.FractalSpec))
}

func (f *Fractal) worldNormal(n Vector3) Vector3 {
	if f.trans != nil {
		n = f.trans.TransformNormal(n)
	}
	return safeNormal(n)
}
