package space

import (
	"cmp"
	"slices"
	"strings"
)

// Frontier is the ordered open list of a search. Its order is the search
// order: position 0 is the next path to expand.
//
// A Frontier is owned by a single search run and is not safe for
// concurrent use.
type Frontier struct {
	paths []Path
}

// NewFrontier returns a frontier holding paths in the given order.
func NewFrontier(paths ...Path) *Frontier {
	f := &Frontier{paths: make([]Path, 0, len(paths))}
	f.paths = append(f.paths, paths...)

	return f
}

// Len returns the number of paths.
func (f *Frontier) Len() int { return len(f.paths) }

// Empty reports whether no paths remain.
func (f *Frontier) Empty() bool { return len(f.paths) == 0 }

// Front returns the path at position 0 without removing it.
func (f *Frontier) Front() Path { return f.paths[0] }

// At returns the path at position i.
func (f *Frontier) At(i int) Path { return f.paths[i] }

// Paths returns a copy of the paths in order.
func (f *Frontier) Paths() []Path {
	return slices.Clone(f.paths)
}

// PopFront removes and returns the path at position 0.
func (f *Frontier) PopFront() Path {
	p := f.paths[0]
	f.paths[0] = Path{}
	f.paths = f.paths[1:]

	return p
}

// Prepend inserts ps as a block before the current front, keeping their
// relative order.
func (f *Frontier) Prepend(ps ...Path) {
	f.paths = slices.Insert(f.paths, 0, ps...)
}

// Append adds ps to the back, keeping their relative order.
func (f *Frontier) Append(ps ...Path) {
	f.paths = append(f.paths, ps...)
}

// InsertAt inserts p at position i, shifting later paths back.
// i must lie in [0, Len()].
func (f *Frontier) InsertAt(i int, p Path) {
	f.paths = slices.Insert(f.paths, i, p)
}

// ReplaceAll discards the current contents and installs ps.
func (f *Frontier) ReplaceAll(ps []Path) {
	f.paths = slices.Clone(ps)
}

// Clear removes every path and returns them in order.
func (f *Frontier) Clear() []Path {
	out := f.paths
	f.paths = nil

	return out
}

// Filter keeps the paths for which keep returns true. keep sees each path
// with its position before filtering.
func (f *Frontier) Filter(keep func(i int, p Path) bool) {
	kept := f.paths[:0:0]
	for i, p := range f.paths {
		if keep(i, p) {
			kept = append(kept, p)
		}
	}
	f.paths = kept
}

// SortStable orders the paths ascending by key. Equal keys keep their
// relative order.
func (f *Frontier) SortStable(key func(Path) float64) {
	SortPaths(f.paths, key)
}

// Clone returns an independent frontier with the same paths.
func (f *Frontier) Clone() *Frontier {
	return NewFrontier(f.paths...)
}

// String renders one path per line.
func (f *Frontier) String() string {
	lines := make([]string, len(f.paths))
	for i, p := range f.paths {
		lines[i] = p.String()
	}

	return strings.Join(lines, "\n")
}

// SortPaths stably sorts ps in place, ascending by key. Keys are computed
// once per path.
func SortPaths(ps []Path, key func(Path) float64) {
	if len(ps) < 2 {
		return
	}
	type keyed struct {
		k float64
		p Path
	}
	tmp := make([]keyed, len(ps))
	for i, p := range ps {
		tmp[i] = keyed{k: key(p), p: p}
	}
	slices.SortStableFunc(tmp, func(a, b keyed) int { return cmp.Compare(a.k, b.k) })
	for i := range tmp {
		ps[i] = tmp[i].p
	}
}

// ByCost, ByHeuristic and ByEstimate are the sort keys used by the
// cost-aware and informed strategies.
var (
	ByCost      = func(p Path) float64 { return p.Cost() }
	ByHeuristic = func(p Path) float64 { return p.Heuristic() }
	ByEstimate  = func(p Path) float64 { return p.F() }
)
