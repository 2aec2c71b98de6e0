package layout

import (
	"fmt"
)

// Handle addresses a building inside a Registry.
type Handle struct {
	Type  BuildingType `json:"type"`
	Index int          `json:"index"`
}

func (h Handle) String() string {
	return fmt.Sprintf("%s#%d", h.Type, h.Index)
}

// Registry stores buildings in one arena per type. Handles stay valid for
// the lifetime of the registry; buildings are never removed.
type Registry struct {
	arenas map[BuildingType][]Building
}

// NewRegistry returns an empty registry with an arena per building type.
func NewRegistry() *Registry {
	return &Registry{arenas: make(map[BuildingType][]Building, len(BuildingTypes))}
}

// Add stores b and returns its handle. An empty ID is filled in from the
// type and arena index. Only one stadium may be registered.
func (r *Registry) Add(b Building) (Handle, error) {
	if b.Type.Capacity() == 0 {
		return Handle{}, fmt.Errorf("unknown building type %q", b.Type)
	}
	if b.Type == BuildingStadium && len(r.arenas[BuildingStadium]) > 0 {
		return Handle{}, fmt.Errorf("registry already holds stadium %s", r.arenas[BuildingStadium][0].ID)
	}
	h := Handle{Type: b.Type, Index: len(r.arenas[b.Type])}
	if b.ID == "" {
		b.ID = fmt.Sprintf("%s_%05d", b.Type, h.Index)
	}
	r.arenas[b.Type] = append(r.arenas[b.Type], b)
	return h, nil
}

// Get returns the building for h. The pointer aliases registry storage, so
// Arrive and Leave through it update the registry. It returns nil for an
// invalid handle.
func (r *Registry) Get(h Handle) *Building {
	arena := r.arenas[h.Type]
	if h.Index < 0 || h.Index >= len(arena) {
		return nil
	}
	return &arena[h.Index]
}

// Count returns the number of buildings of type t.
func (r *Registry) Count(t BuildingType) int {
	return len(r.arenas[t])
}

// Total returns the number of buildings of every type.
func (r *Registry) Total() int {
	n := 0
	for _, arena := range r.arenas {
		n += len(arena)
	}
	return n
}

// Handles returns the handles of every building of type t in insertion order.
func (r *Registry) Handles(t BuildingType) []Handle {
	hs := make([]Handle, len(r.arenas[t]))
	for i := range hs {
		hs[i] = Handle{Type: t, Index: i}
	}
	return hs
}

// Stadium returns the stadium handle, if one was placed.
func (r *Registry) Stadium() (Handle, bool) {
	if len(r.arenas[BuildingStadium]) == 0 {
		return Handle{}, false
	}
	return Handle{Type: BuildingStadium, Index: 0}, true
}

// Each calls fn for every building, type by type in BuildingTypes order.
func (r *Registry) Each(fn func(h Handle, b *Building)) {
	for _, t := range BuildingTypes {
		arena := r.arenas[t]
		for i := range arena {
			fn(Handle{Type: t, Index: i}, &arena[i])
		}
	}
}

// Buildings returns a copy of every building in Each order.
func (r *Registry) Buildings() []Building {
	out := make([]Building, 0, r.Total())
	r.Each(func(_ Handle, b *Building) {
		out = append(out, *b)
	})
	return out
}
