package julia4d

// Orbit is the per-thread iteration stack: the X, Y, Z, W coordinates of every
// iterate of the current sample point. Index 0 is the sample itself.
// An Orbit must never be shared between goroutines.
type Orbit struct {
	X, Y, Z, W []Real
	last       int // index of the last iterate written
}

// NewOrbit allocates room for maxIterations iterates plus the sample point.
func NewOrbit(maxIterations int) *Orbit {
	n := imax(maxIterations, 0) + 1
	return &Orbit{
		X: make([]Real, n),
		Y: make([]Real, n),
		Z: make([]Real, n),
		W: make([]Real, n),
	}
}

// Cap is the largest iteration count this buffer can hold.
func (o *Orbit) Cap() int { return len(o.X) - 1 }

// Last is the index of the last iterate produced by the latest Iterate call.
func (o *Orbit) Last() int { return o.last }

// Reset zeroes the buffer.
func (o *Orbit) Reset() {
	clear(o.X)
	clear(o.Y)
	clear(o.Z)
	clear(o.W)
	o.last = 0
}

func (o *Orbit) set(i int, v Vector4) {
	o.X[i], o.Y[i], o.Z[i], o.W[i] = v.X, v.Y, v.Z, v.W
	o.last = i
}

// At returns iterate i.
func (o *Orbit) At(i int) Vector4 {
	return Vector4{o.X[i], o.Y[i], o.Z[i], o.W[i]}
}
