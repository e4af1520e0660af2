// SPDX-License-Identifier: MIT
// Package: vdconquest/sew
//
// sew.go — Sew Conquest: the level's third and final pass.
package sew

import (
	"fmt"

	"github.com/vdconquest/mesh/command"
	"github.com/vdconquest/mesh/core"
)

// PinchWarning records a ring-pinch vertex detected after the valence-2
// sweep: front's ring contains repeated, indicating two locally disjoint
// fans were collapsed onto the same vertex. Per §9's open question, the
// reference implementation allocates replacement vertices for this case
// but never finishes rewriting the incident gates; this package detects
// and reports the condition rather than mutating the store into a state
// this design does not define, so CheckInvariants keeps meaning something
// at the end of the pass.
type PinchWarning struct {
	Vertex   int
	Repeated int
}

// Run performs one Sew Conquest pass over s, mutating it in place. It
// returns the pass's command stream plus any ring-pinch warnings found; a
// non-empty warning slice means s may still contain a vertex whose ring
// is not a simple cycle, and a later decimation level touching it is not
// covered by this design (see PinchWarning).
func Run(s *core.Store) (*command.Buffer, []PinchWarning, error) {
	buf := command.NewBuffer()

	for _, v := range s.ActiveVertices() {
		if !s.HasVertex(v) {
			continue
		}
		valence, err := s.Valence(v)
		if err != nil {
			return nil, nil, fmt.Errorf("sew: valence(%d): %w", v, err)
		}
		if valence != 2 {
			continue
		}
		if err := collapseValence2(s, buf, v); err != nil {
			return nil, nil, fmt.Errorf("sew: collapse(%d): %w", v, err)
		}
	}

	warnings, err := detectPinches(s)
	if err != nil {
		return nil, nil, err
	}

	if err := s.CheckInvariants(); err != nil {
		return nil, nil, fmt.Errorf("sew: %w", err)
	}
	return buf, warnings, nil
}

// collapseValence2 removes v (whose ring is exactly [w0, w1]) and installs
// a direct gate between w0 and w1 in place of the two edges that used to
// run through v. The new gates' targets are whatever already flanks the
// other neighbor in each ring — the face that was already on the far side
// of v's two faces, mirroring the reference's "patch[k-1]" lookup. When that
// leaves a neighbor at valence 0 (both of v's faces were its only faces),
// there is nothing left to flank and the edge is dropped instead.
func collapseValence2(s *core.Store, buf *command.Buffer, v int) error {
	ring, err := s.Ring(v)
	if err != nil {
		return fmt.Errorf("ring(%d): %w", v, err)
	}
	if len(ring) != 2 {
		return fmt.Errorf("valence-2 vertex %d has ring of length %d", v, len(ring))
	}
	w0, w1 := ring[0], ring[1]

	vtx, err := s.Vertex(v)
	if err != nil {
		return fmt.Errorf("vertex(%d): %w", v, err)
	}
	pos := vtx.Pos

	s.RemoveGate(v, w0)
	s.RemoveGate(w0, v)
	s.RemoveGate(v, w1)
	s.RemoveGate(w1, v)
	s.RetireVertex(v)
	buf.EmitV(v, pos)

	s.AdjustValence(w0, -2)
	s.AdjustValence(w1, -2)
	val0, err := s.Valence(w0)
	if err != nil {
		return fmt.Errorf("valence(%d): %w", w0, err)
	}
	val1, err := s.Valence(w1)
	if err != nil {
		return fmt.Errorf("valence(%d): %w", w1, err)
	}

	// A vertex with valence 2 has exactly two faces, and both of them also
	// touch its other ring entry — so its two neighbors can only reach this
	// state together, each holding valence exactly 2 themselves. Removing v
	// therefore always empties both rings entirely rather than leaving a
	// single neighbor behind; there is no third vertex to look up, so the
	// gate between w0 and w1 is dropped instead of redirected.
	if val0 == 0 || val1 == 0 {
		s.SetRing(w0, nil)
		s.SetRing(w1, nil)
		s.RemoveGate(w0, w1)
		s.RemoveGate(w1, w0)
		buf.EmitF(v, w0, w1)
		return nil
	}

	if err := s.RemoveFromRing(w0, v); err != nil {
		return fmt.Errorf("remove_from_ring(%d, %d): %w", w0, v, err)
	}
	if err := s.RemoveFromRing(w1, v); err != nil {
		return fmt.Errorf("remove_from_ring(%d, %d): %w", w1, v, err)
	}

	target0, err := ringNeighborBefore(s, w0, w1)
	if err != nil {
		return fmt.Errorf("ring_neighbor_before(%d, %d): %w", w0, w1, err)
	}
	target1, err := ringNeighborBefore(s, w1, w0)
	if err != nil {
		return fmt.Errorf("ring_neighbor_before(%d, %d): %w", w1, w0, err)
	}
	s.SetGate(w1, w0, target0)
	s.SetGate(w0, w1, target1)

	buf.EmitF(v, w0, w1)
	buf.EmitDF(w1, w0, target0)
	buf.EmitDF(w0, w1, target1)
	return nil
}

// ringNeighborBefore returns the entry immediately preceding target in
// owner's ring, wrapping around the start. It is ErrNotInRing if target is
// absent from owner's ring.
func ringNeighborBefore(s *core.Store, owner, target int) (int, error) {
	ring, err := s.Ring(owner)
	if err != nil {
		return 0, err
	}
	idx := -1
	for i, x := range ring {
		if x == target {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, fmt.Errorf("%d: %w", target, core.ErrNotInRing)
	}
	return ring[(idx-1+len(ring))%len(ring)], nil
}

// detectPinches scans every surviving ring for a repeated entry — the
// signature of two fans folded onto one vertex by the valence-2 sweep —
// and reports it without mutating the store further (see PinchWarning).
func detectPinches(s *core.Store) ([]PinchWarning, error) {
	var warnings []PinchWarning
	for _, v := range s.ActiveVertices() {
		ring, err := s.Ring(v)
		if err != nil {
			return nil, fmt.Errorf("sew: ring(%d): %w", v, err)
		}
		seen := make(map[int]bool, len(ring))
		for _, w := range ring {
			if seen[w] {
				warnings = append(warnings, PinchWarning{Vertex: v, Repeated: w})
				break
			}
			seen[w] = true
		}
	}
	return warnings, nil
}
