// SPDX-License-Identifier: MIT
// Package: vdconquest/clean
//
// clean.go — Cleaning Conquest: the level's second BFS pass.
package clean

import (
	"fmt"

	"github.com/vdconquest/mesh/command"
	"github.com/vdconquest/mesh/conquest"
	"github.com/vdconquest/mesh/core"
)

// Run performs one Cleaning Conquest pass over s, mutating it in place, and
// returns the pass's command stream. If the store has no valence-3 vertex
// left by Decimating Conquest, Run is a no-op and returns an empty buffer.
func Run(s *core.Store) (*command.Buffer, error) {
	buf := command.NewBuffer()

	seedVertex, seedRing, found, err := firstValence3(s)
	if err != nil {
		return nil, err
	}
	if !found {
		return buf, nil
	}

	status := conquest.StatusMap{}
	faceStatus := conquest.FaceStatus{}
	seen := map[conquest.Gate]bool{}
	fifo := &conquest.FIFO{}
	fifo.Push(conquest.Gate{Left: seedRing[0], Right: seedRing[1]})

	for {
		g, ok := fifo.Pop()
		if !ok {
			break
		}
		if seen[g] {
			continue
		}
		seen[g] = true

		left, right := g.Left, g.Right
		front, ok := s.GateTarget(left, right)
		if !ok {
			continue
		}
		if faceStatus.Decided(g) {
			continue
		}

		valence, err := s.Valence(front)
		if err != nil {
			return nil, fmt.Errorf("clean: gate_target(%d,%d)=%d: %w", left, right, front, err)
		}

		switch {
		case valence == 3 && status.Get(front) == conquest.Unvisited:
			if err := removeValence3(s, status, faceStatus, fifo, buf, front); err != nil {
				return nil, err
			}

		case valence <= 6 && status.Get(front) == conquest.Unvisited:
			if err := walkThrough(s, faceStatus, fifo, front, right); err != nil {
				return nil, err
			}

		default:
			// Either an already-conquered vertex seen from another
			// direction, or a high-valence vertex this pass leaves alone.
			faceStatus.Decide(g)
			fifo.Push(conquest.Gate{Left: front, Right: right})
			fifo.Push(conquest.Gate{Left: left, Right: front})
		}
	}

	if err := s.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("clean: %w", err)
	}
	return buf, nil
}

// firstValence3 scans active vertices in a fixed order for the first
// valence-3 vertex, matching the reference's plain linear scan.
func firstValence3(s *core.Store) (v int, ring []int, found bool, err error) {
	for _, id := range s.ActiveVertices() {
		val, err := s.Valence(id)
		if err != nil {
			return 0, nil, false, fmt.Errorf("clean: valence(%d): %w", id, err)
		}
		if val == 3 {
			r, err := s.Ring(id)
			if err != nil {
				return 0, nil, false, fmt.Errorf("clean: ring(%d): %w", id, err)
			}
			return id, r, true, nil
		}
	}
	return 0, nil, false, nil
}

// removeValence3 retires front, whose three ring neighbors form a single
// replacement triangle in the cyclic order the ring already carries — no
// parity, no case table, the only shape a 3-cycle can take.
func removeValence3(
	s *core.Store,
	status conquest.StatusMap,
	faceStatus conquest.FaceStatus,
	fifo *conquest.FIFO,
	buf *command.Buffer,
	front int,
) error {
	chain, err := s.Ring(front)
	if err != nil {
		return fmt.Errorf("clean: ring(%d): %w", front, err)
	}
	if len(chain) != 3 {
		return fmt.Errorf("clean: remove_valence3(%d): ring has %d entries", front, len(chain))
	}
	c0, c1, c2 := chain[0], chain[1], chain[2]

	fifo.RemoveReferencing(front)

	vtx, err := s.Vertex(front)
	if err != nil {
		return fmt.Errorf("clean: vertex(%d): %w", front, err)
	}
	pos := vtx.Pos

	for _, w := range chain {
		s.RemoveGate(front, w)
		s.RemoveGate(w, front)
		s.AdjustValence(w, -1)
		if err := s.RemoveFromRing(w, front); err != nil {
			return fmt.Errorf("clean: remove_from_ring(%d, %d): %w", w, front, err)
		}
		status.Conquer(w)
	}
	s.RetireVertex(front)
	buf.EmitV(front, pos)

	s.SetGate(c0, c1, c2)
	s.SetGate(c1, c2, c0)
	s.SetGate(c2, c0, c1)

	buf.EmitF(front, c0, c1)
	buf.EmitF(front, c1, c2)
	buf.EmitF(front, c2, c0)
	buf.EmitDF(c0, c1, c2)

	// The new triangle has two boundary edges shared with the faces beyond
	// it; mark those patch edges conquered and push the traversal past them
	// toward the far vertex each one reaches.
	faceStatus.Decide(conquest.Gate{Left: c1, Right: c0})
	faceStatus.Decide(conquest.Gate{Left: c2, Right: c1})

	if far1, ok := s.GateTarget(c1, c0); ok {
		fifo.Push(conquest.Gate{Left: far1, Right: c0})
		fifo.Push(conquest.Gate{Left: c1, Right: far1})
	}
	if far2, ok := s.GateTarget(c2, c1); ok {
		fifo.Push(conquest.Gate{Left: far2, Right: c1})
		fifo.Push(conquest.Gate{Left: c2, Right: far2})
	}

	return nil
}

// walkThrough implements the pass's non-removing case: a vertex of valence
// 3..6 that survives Cleaning Conquest untouched, its patch boundary simply
// marked conquered so traversal keeps expanding past it.
func walkThrough(
	s *core.Store,
	faceStatus conquest.FaceStatus,
	fifo *conquest.FIFO,
	front, right int,
) error {
	ring, err := s.Ring(front)
	if err != nil {
		return fmt.Errorf("clean: ring(%d): %w", front, err)
	}
	chain, err := core.RotateRingTo(ring, right)
	if err != nil {
		return fmt.Errorf("clean: rotate_ring_to(%d): %w", front, err)
	}
	v := len(chain)
	for i := 0; i < v-1; i++ {
		ci, cip1 := chain[i], chain[i+1]
		fifo.Push(conquest.Gate{Left: cip1, Right: ci})
		faceStatus.Decide(conquest.Gate{Left: ci, Right: cip1})
	}
	return nil
}
