// SPDX-License-Identifier: MIT
// Package: vdconquest/decimate
//
// decimate.go — Decimating Conquest: the first of the level's three BFS
// passes.
package decimate

import (
	"errors"
	"fmt"

	"github.com/vdconquest/mesh/command"
	"github.com/vdconquest/mesh/conquest"
	"github.com/vdconquest/mesh/core"
	"github.com/vdconquest/mesh/retriangulate"
)

// ErrNoActiveVertices is returned by Run when the store has nothing left
// to traverse. The level driver treats this as "this level is done", not
// as a failure.
var ErrNoActiveVertices = errors.New("decimate: no active vertices")

// Run performs one Decimating Conquest pass over s, mutating it in place,
// and returns the pass's command stream. seed selects the initial gate
// deterministically: the same store state and seed always pick the same
// gate and so produce byte-identical output. If s holds more than one
// connected component — as core.BuildFromFaces's non-manifold-fan repair
// can produce — every component is conquered in turn, each from its own
// freshly seeded BFS tree (see firstUnvisitedGate).
func Run(s *core.Store, seed int64) (*command.Buffer, error) {
	gates := allGates(s)
	if len(gates) == 0 {
		return nil, ErrNoActiveVertices
	}
	g0 := gates[conquest.SeededPick(len(gates), seed)]

	parity := conquest.ParityMap{}
	status := conquest.StatusMap{}
	faceStatus := conquest.FaceStatus{}
	fifo := &conquest.FIFO{}
	buf := command.NewBuffer()

	parity.Set(g0.Left, conquest.Minus)
	parity.Set(g0.Right, conquest.Plus)
	fifo.Push(g0)

	for {
		g, ok := fifo.Pop()
		if !ok {
			// This BFS tree is exhausted. If an active vertex elsewhere in
			// the store was never reached — the store holds more than one
			// connected component — seed a fresh tree there and keep
			// going; otherwise the whole pass is done.
			next, ok := firstUnvisitedGate(s, status)
			if !ok {
				break
			}
			parity.Set(next.Left, conquest.Minus)
			parity.Set(next.Right, conquest.Plus)
			fifo.Push(next)
			continue
		}
		left, right := g.Left, g.Right
		status.Conquer(left)
		status.Conquer(right)

		front, ok := s.GateTarget(left, right)
		if !ok {
			// The edge was already consumed from the other side.
			continue
		}
		if faceStatus.Decided(g) {
			continue
		}

		valence, err := s.Valence(front)
		if err != nil {
			return nil, fmt.Errorf("decimate: gate_target(%d,%d)=%d: %w", left, right, front, err)
		}

		if valence <= 6 && status.Get(front) == conquest.Unvisited {
			if err := conquerFreeVertex(s, parity, status, faceStatus, fifo, buf, front, left, right); err != nil {
				return nil, err
			}
			continue
		}

		// Null-face case: front was already conquered from another
		// direction, or it is a high-valence vertex this pass leaves alone.
		faceStatus.Decide(g)
		parity.SetIfUnset(front, conquest.Plus)
		fifo.Push(conquest.Gate{Left: front, Right: right})
		fifo.Push(conquest.Gate{Left: left, Right: front})
	}

	if err := s.CheckInvariants(); err != nil {
		return nil, fmt.Errorf("decimate: %w", err)
	}
	return buf, nil
}

// conquerFreeVertex implements §4.D step 4: removes front, enqueues the
// patch boundary so the conquest front expands outward, and invokes the
// retriangulator.
func conquerFreeVertex(
	s *core.Store,
	parity conquest.ParityMap,
	status conquest.StatusMap,
	faceStatus conquest.FaceStatus,
	fifo *conquest.FIFO,
	buf *command.Buffer,
	front, left, right int,
) error {
	ring, err := s.Ring(front)
	if err != nil {
		return fmt.Errorf("decimate: ring(%d): %w", front, err)
	}
	for _, w := range ring {
		status.Conquer(w)
	}

	chain, err := core.RotateRingTo(ring, right)
	if err != nil {
		return fmt.Errorf("decimate: rotate_ring_to(%d): %w", front, err)
	}
	v := len(chain)

	// The wrap pair (chain[v-1], chain[0]) == (left, right) is the gate
	// already being processed, so only the v-1 non-wrapping consecutive
	// pairs need a fresh push and a conquered mark here.
	for i := 0; i < v-1; i++ {
		ci, cip1 := chain[i], chain[i+1]
		fifo.Push(conquest.Gate{Left: cip1, Right: ci})
		faceStatus.Decide(conquest.Gate{Left: ci, Right: cip1})
	}

	vtx, err := s.Vertex(front)
	if err != nil {
		return fmt.Errorf("decimate: vertex(%d): %w", front, err)
	}
	pos := vtx.Pos

	for _, w := range chain {
		s.RemoveGate(front, w)
		s.RemoveGate(w, front)
	}
	s.RetireVertex(front)
	buf.EmitV(front, pos)

	newFaces, err := retriangulate.Retriangulate(s, parity, chain, front)
	if err != nil {
		return fmt.Errorf("decimate: retriangulate(%d): %w", front, err)
	}

	for i := 0; i < v; i++ {
		buf.EmitF(front, chain[i], chain[(i+1)%v])
	}
	for _, nf := range newFaces {
		buf.EmitDF(nf[0], nf[1], nf[2])
	}
	return nil
}
