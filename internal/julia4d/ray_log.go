package julia4d

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
)

type Category uint8

const (
	Hit         Category = iota // crossing reported
	Miss                        // bounding sphere missed or no crossing before tMax
	Clipped                     // crossing rejected by the clip volume
	StartInside                 // ray origin already inside the set
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Miss:
		return "miss"
	case Clipped:
		return "clipped"
	case StartInside:
		return "start_inside"
	}
	return "unknown"
}

type RayLog struct {
	Name      string
	Category  Category
	Origin    Vector3
	Direction Vector3
	Point     Vector3 // hit point, if any
	Depth     Real
}

type RayLogCache struct {
	mu   sync.Mutex
	rays map[string][]RayLog // map of ray name to logs
}

var cache = &RayLogCache{
	rays: make(map[string][]RayLog),
}

func logRay(name string, category Category, r Ray, point Vector3, depth Real) {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	cache.rays[name] = append(cache.rays[name], RayLog{
		Name:      name,
		Category:  category,
		Origin:    r.Origin,
		Direction: r.Direction,
		Point:     point,
		Depth:     depth,
	})
}

// raysStats logs the number of cached entries per ray name.
func raysStats() {
	cache.mu.Lock()
	defer cache.mu.Unlock()
	names := make([]string, 0, len(cache.rays))
	for k := range cache.rays {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, k := range names {
		Log.WithFields(logrus.Fields{"ray": k, "logs": len(cache.rays[k])}).Info("ray log")
	}
}

func resetRayLog() {
	cache.mu.Lock()
	cache.rays = make(map[string][]RayLog)
	cache.mu.Unlock()
}
