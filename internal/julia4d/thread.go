package julia4d

// Stats are per-thread, increment-only counters. Merge them after the
// workers are done; never share one Stats between goroutines.
type Stats struct {
	RayTests        uint64
	RaySuccesses    uint64
	InsideTests     uint64
	InsideSuccesses uint64
	Clipped         uint64
}

func (s *Stats) Merge(o Stats) {
	s.RayTests += o.RayTests
	s.RaySuccesses += o.RaySuccesses
	s.InsideTests += o.InsideTests
	s.InsideSuccesses += o.InsideSuccesses
	s.Clipped += o.Clipped
}

// ThreadData is the scratch state owned by one worker.
type ThreadData struct {
	orbit *Orbit
	Stats Stats
}

// NewThreadData sizes the orbit for the largest iteration count in the scene.
func NewThreadData(maxIterations int) *ThreadData {
	return &ThreadData{orbit: NewOrbit(maxIterations)}
}

// Orbit returns the worker's orbit buffer, growing it when a fractal needs
// more iterations than the buffer was sized for.
func (td *ThreadData) Orbit(iterations int) *Orbit {
	if td.orbit == nil || td.orbit.Cap() < iterations {
		DebugLog("growing orbit buffer to %d iterations", iterations)
		td.orbit = NewOrbit(iterations)
	}
	return td.orbit
}
