package julia4d

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is a scene file. YAML, and therefore JSON, is accepted.
type Config struct {
	Width     int          `yaml:"width"`
	Height    int          `yaml:"height"`
	Workers   int          `yaml:"workers,omitempty"`
	ProbeRays int          `yaml:"probeRays"`
	Light     [3]Real      `yaml:"light,omitempty"` // direction light travels, zero for a headlight
	Camera    CameraCfg    `yaml:"camera"`
	Fractals  []FractalCfg `yaml:"fractals"`
}

// CameraCfg is the camera section of a scene file.
type CameraCfg struct {
	Location [3]Real `yaml:"location"`
	LookAt   [3]Real `yaml:"lookAt"`
	Sky      [3]Real `yaml:"sky,omitempty"` // defaults to +Y
	Angle    Real    `yaml:"angle,omitempty"`
}

// Rotation in degrees for YAML (friendlier than radians).
type Rot4Deg struct {
	XY Real `yaml:"xy"`
	XZ Real `yaml:"xz"`
	XW Real `yaml:"xw"`
	YZ Real `yaml:"yz"`
	YW Real `yaml:"yw"`
	ZW Real `yaml:"zw"`
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, XW: r.XW * k,
		YZ: r.YZ * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

type ClipSphereCfg struct {
	Center   [3]Real `yaml:"center"`
	Radius   Real    `yaml:"radius"`
	Inverted bool    `yaml:"inverted,omitempty"`
}

type ClipPlaneCfg struct {
	Normal   [3]Real `yaml:"normal"`
	Offset   Real    `yaml:"offset"`
	Inverted bool    `yaml:"inverted,omitempty"`
}

type FractalCfg struct {
	Algebra     string   `yaml:"algebra"`  // quaternion | hypercomplex
	Function    string   `yaml:"function"` // sqr | cube | reciprocal | exp, ln, sin, ..., pwr
	Julia       *[4]Real `yaml:"julia"`    // defaults to (1,0,0,0)
	Slice       *[4]Real `yaml:"slice"`    // defaults to (0,0,0,1)
	SliceDist   Real     `yaml:"sliceDist"`
	SliceRotDeg Rot4Deg  `yaml:"sliceRotDeg"`
	Iterations  int      `yaml:"iterations"`
	Precision   Real     `yaml:"precision"`
	Exponent    [2]Real  `yaml:"exponent"` // re, im for pwr

	Translate [3]Real `yaml:"translate"`
	Rotate    [3]Real `yaml:"rotate"` // degrees, X then Y then Z
	Scale     [3]Real `yaml:"scale"`  // 0 components mean 1
	Inverted  bool    `yaml:"inverted,omitempty"`
	Child     bool    `yaml:"child,omitempty"`

	ClipSpheres []ClipSphereCfg `yaml:"clipSpheres,omitempty"`
	ClipPlanes  []ClipPlaneCfg  `yaml:"clipPlanes,omitempty"`
}

func vec3(a [3]Real) Vector3 { return Vector3{a[0], a[1], a[2]} }
func vec4(a [4]Real) Vector4 { return Vector4{a[0], a[1], a[2], a[3]} }

// Spec converts the configuration to fractal parameters (defaults applied).
func (fc FractalCfg) Spec() (FractalSpec, error) {
	s := DefaultFractalSpec()
	alg, err := ParseAlgebra(fc.Algebra)
	if err != nil {
		return s, err
	}
	m, fn, err := ParseMap(fc.Function)
	if err != nil {
		return s, err
	}
	s.Algebra, s.Map, s.Fn = alg, m, fn
	if fc.Julia != nil {
		s.Julia = vec4(*fc.Julia)
	}
	if fc.Slice != nil {
		s.Slice = vec4(*fc.Slice)
	}
	s.Slice = RotateSlice(s.Slice, fc.SliceRotDeg.Radians())
	s.SliceDist = fc.SliceDist
	if fc.Iterations > 0 {
		s.Iterations = fc.Iterations
	}
	s.Precision = fc.Precision
	if s.Precision <= 0 {
		s.Precision = 1 / Real(s.Iterations)
	}
	s.Exponent = complex(fc.Exponent[0], fc.Exponent[1])
	return s, nil
}

// Build validates and constructs the fractal with its transform and clips.
func (fc FractalCfg) Build() (*Fractal, error) {
	spec, err := fc.Spec()
	if err != nil {
		return nil, err
	}
	f, err := NewFractal(spec)
	if err != nil {
		return nil, err
	}
	if fc.Scale != ([3]Real{}) {
		f.Scale(vec3(fc.Scale))
	}
	if fc.Rotate != ([3]Real{}) {
		f.Rotate(vec3(fc.Rotate))
	}
	if fc.Translate != ([3]Real{}) {
		f.Translate(vec3(fc.Translate))
	}
	f.SetInverted(fc.Inverted)
	f.SetChild(fc.Child)
	var clips []Clip
	for _, c := range fc.ClipSpheres {
		if c.Radius <= 0 {
			return nil, fmt.Errorf("clip sphere radius must be > 0, got %g", c.Radius)
		}
		clips = append(clips, &ClipSphere{Center: vec3(c.Center), Radius: c.Radius, Inverted: c.Inverted})
	}
	for _, c := range fc.ClipPlanes {
		if c.Normal == ([3]Real{}) {
			return nil, errors.New("clip plane normal must be non-zero")
		}
		clips = append(clips, &ClipPlane{Normal: vec3(c.Normal), Offset: c.Offset, Inverted: c.Inverted})
	}
	if len(clips) > 0 {
		f.SetClip(clips...)
	}
	return f, nil
}

func (cc CameraCfg) Build(aspect Real) (*Camera, error) {
	sky := vec3(cc.Sky)
	if cc.Sky == ([3]Real{}) {
		sky = Vector3{0, 1, 0}
	}
	angle := cc.Angle
	if angle <= 0 {
		angle = 60
	}
	return NewCamera(vec3(cc.Location), vec3(cc.LookAt), sky, angle, aspect)
}

// Build assembles the scene and camera described by the config.
func (cfg *Config) Build() (*Scene, *Camera, error) {
	scene := NewScene()
	for i, fc := range cfg.Fractals {
		f, err := fc.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("fractal #%d: %w", i, err)
		}
		scene.Add(f)
	}
	// Terminal cells are about twice as tall as wide.
	cam, err := cfg.Camera.Build(Real(cfg.Width) / Real(cfg.Height) / 2)
	if err != nil {
		return nil, nil, fmt.Errorf("camera: %w", err)
	}
	return scene, cam, nil
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.ProbeRays <= 0 {
		cfg.ProbeRays = ProbeRays
	}
	if len(cfg.Fractals) == 0 {
		return nil, errors.New("config has no fractals")
	}
	if cfg.Camera.Location == cfg.Camera.LookAt {
		cfg.Camera.Location = [3]Real{0, 0, -5}
		cfg.Camera.LookAt = [3]Real{}
	}
	return &cfg, nil
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := parseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config from %s: size=(%d, %d), probe=%d, fractals=%d", path, cfg.Width, cfg.Height, cfg.ProbeRays, len(cfg.Fractals))
	return cfg, nil
}
