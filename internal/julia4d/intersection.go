package julia4d

import (
	"iter"
	"sort"
)

// Ray in world or object space. Direction need not be unit length; depths
// reported by the driver are in units of Direction.
type Ray struct {
	Origin, Direction Vector3
}

func (r Ray) At(t Real) Vector3 { return r.Origin.Add(r.Direction.Mul(t)) }

// Intersection is one reported surface crossing.
type Intersection struct {
	Depth  Real
	Point  Vector3 // world space
	Normal Vector3 // world space, unit length
	Object Object
}

// IStack keeps intersections sorted by depth. Equal depths keep push order.
type IStack struct {
	items []Intersection
}

func NewIStack() *IStack { return &IStack{} }

func (s *IStack) Push(in Intersection) {
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i].Depth > in.Depth })
	s.items = append(s.items, Intersection{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = in
}

func (s *IStack) Len() int              { return len(s.items) }
func (s *IStack) At(i int) Intersection { return s.items[i] }

// Nearest returns the shallowest intersection.
func (s *IStack) Nearest() (Intersection, bool) {
	if len(s.items) == 0 {
		return Intersection{}, false
	}
	return s.items[0], true
}

// All yields the intersections front to back.
func (s *IStack) All() iter.Seq[Intersection] {
	return func(yield func(Intersection) bool) {
		for _, in := range s.items {
			if !yield(in) {
				return
			}
		}
	}
}
