package julia4d

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// estimateCoverage is the fraction of uniformly jittered camera rays that hit
// the scene.
func estimateCoverage(ctx context.Context, scene *Scene, cam *Camera, trials, workers int) (Real, error) {
	if trials <= 0 {
		return 0, nil
	}
	workers = workerCount(workers, trials)

	per, rem := trials/workers, trials%workers
	hits := make([]int, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := per
		if w < rem {
			n++
		}
		if n == 0 {
			continue
		}
		wid := w
		g.Go(func() error {
			// independent RNG per worker
			seed := time.Now().UnixNano() ^ int64(uint64(wid)*0x9e3779b97f4a7c15)
			rng := rand.New(rand.NewSource(seed))
			td := scene.NewThreadData()
			for i := 0; i < n; i++ {
				if i&255 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if _, ok := scene.NearestHit(cam.Ray(rng.Float64()-0.5, rng.Float64()-0.5), td); ok {
					hits[wid]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	total := 0
	for _, h := range hits {
		total += h
	}
	return Real(total) / Real(trials), nil
}
