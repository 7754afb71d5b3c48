package julia4d

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Options override the matching scene file settings when non-zero.
type Options struct {
	Width, Height int
	Workers       int
	ProbeRays     int
	ASCII         bool
	Out           io.Writer // ASCII preview destination, stdout if nil
}

func (o Options) apply(cfg *Config) {
	if o.Width > 0 {
		cfg.Width = o.Width
	}
	if o.Height > 0 {
		cfg.Height = o.Height
	}
	if o.Workers > 0 {
		cfg.Workers = o.Workers
	}
	if o.ProbeRays > 0 {
		cfg.ProbeRays = o.ProbeRays
	}
}

// Run probes the scene file at cfgPath and logs a summary.
func Run(ctx context.Context, cfgPath string, opts Options) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)

	scene, cam, err := cfg.Build()
	if err != nil {
		return err
	}

	p, err := estimateCoverage(ctx, scene, cam, cfg.ProbeRays, cfg.Workers)
	if err != nil {
		return err
	}
	DebugLog("Estimated coverage from %d random rays: %.4f", cfg.ProbeRays, p)

	rep, err := RenderProbe(ctx, scene, cam, ProbeOptions{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
		Light:   vec3(cfg.Light),
	})
	if err != nil {
		return err
	}

	fields := logrus.Fields{
		"fractals":      len(scene.Objects),
		"size":          fmt.Sprintf("%dx%d", rep.Width, rep.Height),
		"coverage":      fmt.Sprintf("%.4f", rep.Coverage()),
		"estimated":     fmt.Sprintf("%.4f", p),
		"ray_tests":     rep.Stats.RayTests,
		"ray_successes": rep.Stats.RaySuccesses,
		"clipped":       rep.Stats.Clipped,
		"elapsed":       rep.Elapsed,
	}
	if lo, hi, mean, ok := rep.DepthStats(); ok {
		fields["depth_min"], fields["depth_max"], fields["depth_mean"] = lo, hi, mean
	}
	Log.WithFields(fields).Info("probe done")

	if Debug {
		raysStats()
		if len(scene.Objects) >= AABBBVHFromNObjects || AlwaysBVH {
			DumpAABBBVH(os.Stderr, scene)
		}
	}

	if opts.ASCII {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		if _, err := io.WriteString(out, rep.ASCII()); err != nil {
			return err
		}
	}
	return nil
}
