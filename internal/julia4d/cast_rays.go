package julia4d

import (
	"context"
	"errors"
	"math"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// ProbeOptions sizes a RenderProbe run.
type ProbeOptions struct {
	Width, Height int
	Workers       int     // 0 means runtime.NumCPU()
	Light         Vector3 // direction light travels; zero means a headlight
}

// Report is the result of a probe render, row-major from the top-left.
type Report struct {
	Width, Height int
	Hit           []bool
	Depth         []Real
	Shade         []Real // Lambert term in [0,1]
	Stats         Stats
	Elapsed       time.Duration
}

// Hits counts the pixels whose ray hit the scene.
func (r *Report) Hits() int {
	n := 0
	for _, h := range r.Hit {
		if h {
			n++
		}
	}
	return n
}

// Coverage is the fraction of pixels hit.
func (r *Report) Coverage() Real {
	if len(r.Hit) == 0 {
		return 0
	}
	return Real(r.Hits()) / Real(len(r.Hit))
}

// DepthStats returns min, max and mean depth over the hit pixels.
func (r *Report) DepthStats() (lo, hi, mean Real, ok bool) {
	ds := make([]Real, 0, len(r.Depth))
	for i, h := range r.Hit {
		if h {
			ds = append(ds, r.Depth[i])
		}
	}
	if len(ds) == 0 {
		return 0, 0, 0, false
	}
	return floats.Min(ds), floats.Max(ds), floats.Sum(ds) / Real(len(ds)), true
}

// ASCII renders the shade buffer with ShadeRamp, misses as blanks.
func (r *Report) ASCII() string {
	var sb strings.Builder
	ramp := []byte(ShadeRamp)
	top := Real(len(ramp) - 1)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			i := y*r.Width + x
			if !r.Hit[i] {
				sb.WriteByte(' ')
				continue
			}
			k := int(math.Round(r.Shade[i] * top))
			if k < 1 {
				k = 1 // keep hits visible
			}
			if k > len(ramp)-1 {
				k = len(ramp) - 1
			}
			sb.WriteByte(ramp[k])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func workerCount(n, limit int) int {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n < 1 {
		n = 1
	}
	if limit > 0 && n > limit {
		n = limit
	}
	return n
}

// RenderProbe casts one camera ray per pixel. Rows are interleaved across
// workers, each with its own ThreadData; stats are merged after all finish.
func RenderProbe(ctx context.Context, scene *Scene, cam *Camera, opts ProbeOptions) (*Report, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("probe size must be positive")
	}
	W, H := opts.Width, opts.Height
	rep := &Report{
		Width:  W,
		Height: H,
		Hit:    make([]bool, W*H),
		Depth:  make([]Real, W*H),
		Shade:  make([]Real, W*H),
	}
	workers := workerCount(opts.Workers, H)
	stats := make([]Stats, workers)
	light := opts.Light
	if light.Len() > 0 {
		light = light.Normalize()
	}

	var rows int64
	nextPrint := int64(1)
	if H >= 10 {
		nextPrint = int64(H / 10) // ~10%
	}

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		wid := w
		g.Go(func() error {
			td := scene.NewThreadData()
			defer func() { stats[wid] = td.Stats }()
			for y := wid; y < H; y += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				v := 0.5 - (Real(y)+0.5)/Real(H)
				for x := 0; x < W; x++ {
					u := (Real(x)+0.5)/Real(W) - 0.5
					ray := cam.Ray(u, v)
					hit, ok := scene.NearestHit(ray, td)
					if !ok {
						continue
					}
					i := y*W + x
					rep.Hit[i] = true
					rep.Depth[i] = hit.Depth
					L := light
					if L.Len() == 0 {
						L = ray.Direction
					}
					rep.Shade[i] = math.Max(0, -hit.Normal.Dot(L))
				}
				if done := atomic.AddInt64(&rows, 1); done%nextPrint == 0 {
					DebugLog("[PROGRESS] %.2f%%", Real(done)*100/Real(H))
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, s := range stats {
		rep.Stats.Merge(s)
	}
	rep.Elapsed = time.Since(start)
	Log.WithFields(logrus.Fields{
		"size":     [2]int{W, H},
		"workers":  workers,
		"coverage": rep.Coverage(),
		"elapsed":  rep.Elapsed,
	}).Debug("probe rendered")
	return rep, nil
}
