// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: the component-A operations: add_face/remove_face, gate_target,
//       ring, rotate_ring_to, replace_in_ring and splice_in_ring, plus the
//       small bookkeeping (valence, active flag, vertex lookup) that every
//       conquest pass needs. No algorithmic policy lives here — passes
//       decide WHAT to rewrite; Store only guarantees the rewrite leaves
//       gates/rings/valences consistent.
// Determinism:
//   - ActiveVertices() walks the bitset low-to-high, so it is always
//     ascending by vertex ID; no separate sort step anywhere in this file.
//   - Ring/SetRing/SpliceInRing/ReplaceWithSlice never reorder a ring
//     beyond what the caller's explicit position/rotation says to do.
// Concurrency:
//   - None: a Store is exclusively borrowed for writing by whichever pass
//     is currently running (§5). No field here is behind a lock; callers
//     must not share a Store across goroutines.
// AI-HINT (file):
//   - AddFace/RemoveFace never touch rings — every caller that adds or
//     removes a face also calls the matching ring method explicitly.
//   - CheckInvariants is cheap (two linear scans); call it after any
//     rewrite you don't already trust, not just at pass boundaries.
package core

import "fmt"

// newVertex registers a brand-new vertex at pos, active, with zero valence,
// assigning it the next available ID. Duplicate uses it to mint a new ID;
// BuildFromFaces registers the input vertices directly.
func (s *Store) newVertex(pos Vec3) *Vertex {
	id := s.nextID + 1
	s.nextID = id
	v := &Vertex{ID: id, Pos: pos}
	s.vertices[id] = v
	s.active.Set(uint(id))
	return v
}

// HasVertex reports whether id names a currently active vertex.
func (s *Store) HasVertex(id int) bool {
	return s.active.Test(uint(id))
}

// Vertex returns the vertex record for id, or ErrVertexNotFound if it is
// absent or retired.
func (s *Store) Vertex(id int) (*Vertex, error) {
	v, ok := s.vertices[id]
	if !ok || !s.active.Test(uint(id)) {
		return nil, fmt.Errorf("core: vertex %d: %w", id, ErrVertexNotFound)
	}
	return v, nil
}

// Valence returns the current valence of an active vertex.
func (s *Store) Valence(id int) (int, error) {
	v, err := s.Vertex(id)
	if err != nil {
		return 0, err
	}
	return v.valence, nil
}

// adjustValence adds delta to v's valence. delta may be negative.
func (s *Store) adjustValence(id int, delta int) {
	if v, ok := s.vertices[id]; ok {
		v.valence += delta
	}
}

// AdjustValence is the exported form of adjustValence: the retriangulator
// and the conquest passes bump valences directly as the case tables and
// BFS rules dictate.
func (s *Store) AdjustValence(id int, delta int) {
	s.adjustValence(id, delta)
}

// Duplicate mints a fresh vertex sharing id's position, active, with zero
// valence and an empty ring. It is used by the non-manifold-fan repair at
// load time (see build.go).
func (s *Store) Duplicate(id int) (*Vertex, error) {
	src, err := s.Vertex(id)
	if err != nil {
		return nil, err
	}
	neu := s.newVertex(src.Pos)
	s.rings[neu.ID] = nil
	return neu, nil
}

// ActiveVertices returns the active vertex IDs in ascending order. Several
// passes scan "in id order" per the spec's determinism requirement; the
// bitset's NextSet walk visits set bits low-to-high, so no separate sort
// step is needed.
func (s *Store) ActiveVertices() []int {
	out := make([]int, 0, s.active.Count())
	for id, ok := s.active.NextSet(0); ok; id, ok = s.active.NextSet(id + 1) {
		out = append(out, int(id))
	}
	return out
}

// RetireVertex clears the active flag for id. The vertex record (position,
// ID) is kept so V records can still be emitted after retirement.
func (s *Store) RetireVertex(id int) {
	s.active.Clear(uint(id))
	delete(s.rings, id)
}

// GateTarget returns the third vertex of the active face bounded by the
// directed edge (a,b), or ok=false if the gate does not exist. A missing
// gate is ordinary flow (the edge was already consumed from the other
// side) and is never an error.
func (s *Store) GateTarget(a, b int) (front int, ok bool) {
	front, ok = s.gates[gate{a, b}]
	return front, ok
}

// AddFace registers the three gates of face (a,b,c) and bumps the three
// vertices' valences. It rejects the face with ErrGateExists if any of the
// three gates is already present, since that would overwrite an existing
// triangle and silently break orientation.
//
// AddFace deliberately does NOT touch rings: the correct splice position
// for a newly created face's interior neighbor depends on which
// retriangulation case produced it, not on the face alone, so every caller
// that creates a face also calls SpliceInRing/ReplaceInRing explicitly at
// the position its case already knows. BuildFromFaces is the exception: it
// derives whole rings from the raw fragment set in one pass (see build.go).
func (s *Store) AddFace(a, b, c int) error {
	for _, g := range [][2]int{{a, b}, {b, c}, {c, a}} {
		if _, exists := s.gates[gate{g[0], g[1]}]; exists {
			return fmt.Errorf("core: add_face(%d,%d,%d): gate (%d,%d): %w", a, b, c, g[0], g[1], ErrGateExists)
		}
	}
	s.gates[gate{a, b}] = c
	s.gates[gate{b, c}] = a
	s.gates[gate{c, a}] = b
	s.adjustValence(a, 1)
	s.adjustValence(b, 1)
	s.adjustValence(c, 1)
	return nil
}

// RemoveFace is the inverse of AddFace: it deletes the three gates and
// undoes the valence bump. It does not touch rings — retriangulation
// rewrites rings explicitly via ReplaceInRing/SpliceInRing, since the
// ring ordering after a local rewrite is not simply "delete two entries".
func (s *Store) RemoveFace(a, b, c int) error {
	for _, g := range [][2]int{{a, b}, {b, c}, {c, a}} {
		if _, exists := s.gates[gate{g[0], g[1]}]; !exists {
			return fmt.Errorf("core: remove_face(%d,%d,%d): gate (%d,%d): %w", a, b, c, g[0], g[1], ErrGateNotFound)
		}
	}
	delete(s.gates, gate{a, b})
	delete(s.gates, gate{b, c})
	delete(s.gates, gate{c, a})
	s.adjustValence(a, -1)
	s.adjustValence(b, -1)
	s.adjustValence(c, -1)
	return nil
}

// RemoveGate deletes a single directed gate without touching valence. Used
// by passes that remove a vertex's incident gates one direction at a time
// (the gates (front,w) and (w,front) for every w in ring(front)).
func (s *Store) RemoveGate(a, b int) {
	delete(s.gates, gate{a, b})
}

// SetGate installs or overwrites the gate (a,b) -> front. Passes call this
// directly when the retriangulator's case table says a gate's target
// changed, including the double-write cases noted in the spec's open
// questions (the second write simply wins, same as the reference).
func (s *Store) SetGate(a, b, front int) {
	s.gates[gate{a, b}] = front
}

// Ring returns a copy of v's cyclic neighbor ring. Mutating the returned
// slice does not affect the store.
func (s *Store) Ring(v int) ([]int, error) {
	r, ok := s.rings[v]
	if !ok {
		return nil, fmt.Errorf("core: ring(%d): %w", v, ErrVertexNotFound)
	}
	out := make([]int, len(r))
	copy(out, r)
	return out, nil
}

// SetRing replaces v's ring wholesale. Retriangulation cases often find it
// simpler to compute the new ring from scratch and install it than to
// patch the existing slice in place.
func (s *Store) SetRing(v int, ring []int) {
	cp := make([]int, len(ring))
	copy(cp, ring)
	s.rings[v] = cp
}

// RotateRingTo returns ring(v) rotated so that w is first. Fails with
// ErrNotInRing if w is not a neighbor of v.
func RotateRingTo(ring []int, w int) ([]int, error) {
	idx := -1
	for i, x := range ring {
		if x == w {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("core: rotate_ring_to(%d): %w", w, ErrNotInRing)
	}
	out := make([]int, 0, len(ring))
	out = append(out, ring[idx:]...)
	out = append(out, ring[:idx]...)
	return out, nil
}

// RotateRingTo rotates v's stored ring so that w is first, persists the
// rotation, and returns the rotated copy.
func (s *Store) RotateRingTo(v, w int) ([]int, error) {
	ring, ok := s.rings[v]
	if !ok {
		return nil, fmt.Errorf("core: rotate_ring_to(%d): %w", v, ErrVertexNotFound)
	}
	rotated, err := RotateRingTo(ring, w)
	if err != nil {
		return nil, err
	}
	s.rings[v] = rotated
	return append([]int(nil), rotated...), nil
}

// ReplaceInRing swaps the first occurrence of old for neu in v's ring.
// Used when a neighbor's ring still lists the just-removed front vertex in
// a position that should now read as one of the newly created interior
// neighbors.
func (s *Store) ReplaceInRing(v, old, neu int) error {
	ring, ok := s.rings[v]
	if !ok {
		return fmt.Errorf("core: replace_in_ring(%d): %w", v, ErrVertexNotFound)
	}
	for i, x := range ring {
		if x == old {
			ring[i] = neu
			return nil
		}
	}
	return fmt.Errorf("core: replace_in_ring(%d, %d): %w", v, old, ErrNotInRing)
}

// RemoveFromRing deletes every occurrence of x from v's ring (order of the
// remaining elements is preserved).
func (s *Store) RemoveFromRing(v, x int) error {
	ring, ok := s.rings[v]
	if !ok {
		return fmt.Errorf("core: remove_from_ring(%d): %w", v, ErrVertexNotFound)
	}
	out := ring[:0]
	for _, e := range ring {
		if e != x {
			out = append(out, e)
		}
	}
	s.rings[v] = out
	return nil
}

// SpliceInRing inserts items at position pos in v's ring (items replace
// nothing; they are inserted before the element currently at pos). The
// retriangulator does not use it; it installs new interior neighbors with
// ReplaceWithSlice.
func (s *Store) SpliceInRing(v, pos int, items ...int) error {
	ring, ok := s.rings[v]
	if !ok {
		return fmt.Errorf("core: splice_in_ring(%d): %w", v, ErrVertexNotFound)
	}
	if pos < 0 || pos > len(ring) {
		return fmt.Errorf("core: splice_in_ring(%d, pos=%d): %w", v, pos, ErrNotInRing)
	}
	out := make([]int, 0, len(ring)+len(items))
	out = append(out, ring[:pos]...)
	out = append(out, items...)
	out = append(out, ring[pos:]...)
	s.rings[v] = out
	return nil
}

// ReplaceWithSlice substitutes the single occurrence of old in v's ring with
// items, preserving position. It is the retriangulator's workhorse: a patch
// vertex always carries exactly one ring entry for the vertex being removed,
// flanked by the two neighbors that the new triangulation will either keep
// adjacent (items empty) or connect through one or more new interior
// vertices (items non-empty). ErrNotInRing if old does not appear.
func (s *Store) ReplaceWithSlice(v, old int, items []int) error {
	ring, ok := s.rings[v]
	if !ok {
		return fmt.Errorf("core: replace_with_slice(%d): %w", v, ErrVertexNotFound)
	}
	idx := -1
	for i, x := range ring {
		if x == old {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("core: replace_with_slice(%d, %d): %w", v, old, ErrNotInRing)
	}
	out := make([]int, 0, len(ring)-1+len(items))
	out = append(out, ring[:idx]...)
	out = append(out, items...)
	out = append(out, ring[idx+1:]...)
	s.rings[v] = out
	return nil
}

// IndexInRing returns the position of w in v's ring, or -1 if absent.
func (s *Store) IndexInRing(v, w int) int {
	for i, x := range s.rings[v] {
		if x == w {
			return i
		}
	}
	return -1
}

// CheckInvariants verifies the cheap, local invariants the spec requires to
// hold between passes: every active vertex's ring length equals its
// valence, and every gate's reverse exists. It returns ErrInvariantBreach
// wrapped with detail on the first violation found; callers use it after a
// rewrite to fail fast rather than propagate silent corruption.
func (s *Store) CheckInvariants() error {
	for _, id := range s.ActiveVertices() {
		v := s.vertices[id]
		if len(s.rings[id]) != v.valence {
			return fmt.Errorf("core: vertex %d: ring length %d != valence %d: %w",
				id, len(s.rings[id]), v.valence, ErrInvariantBreach)
		}
	}
	for g := range s.gates {
		if _, ok := s.gates[gate{g.B, g.A}]; !ok {
			return fmt.Errorf("core: gate (%d,%d) has no reverse: %w", g.A, g.B, ErrInvariantBreach)
		}
	}
	return nil
}
