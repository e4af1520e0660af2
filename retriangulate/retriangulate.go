// SPDX-License-Identifier: MIT
// Package: vdconquest/retriangulate
//
// retriangulate.go — the deterministic case table (component C) plus the
// store rewrite that follows from whichever row fires.
package retriangulate

import (
	"fmt"

	"github.com/vdconquest/mesh/core"
)

// Retriangulate removes front from the patch and installs its v-2
// replacement triangles, where v = len(chain). chain is front's ring,
// already rotated so chain[0] == right and chain[len(chain)-1] == left —
// the two vertices of the gate (left, right) whose target named front.
//
// It does not remove front's own gates or retire front; the caller does
// that (Decimating Conquest does both before this call and passes front's
// ring in as chain). It does rewrite every surviving ring vertex's gates,
// valence and ring, and returns the new faces so the caller can emit F/DF
// records for them.
func Retriangulate(s *core.Store, parity ParitySource, chain []int, front int) ([][3]int, error) {
	v := len(chain)
	if v < 3 || v > 6 {
		return nil, fmt.Errorf("retriangulate: ring size %d: %w", v, ErrUnsupportedValence)
	}
	right, left := chain[0], chain[v-1]

	rightP, ok := parity.Get(right)
	if !ok {
		return nil, fmt.Errorf("retriangulate: right=%d: %w", right, ErrParityUnset)
	}
	leftP, ok := parity.Get(left)
	if !ok {
		return nil, fmt.Errorf("retriangulate: left=%d: %w", left, ErrParityUnset)
	}

	newFaces, err := facesFor(chain, rightP, leftP)
	if err != nil {
		return nil, err
	}
	assignParity(chain, rightP, leftP, parity)

	for _, x := range chain {
		frags := localFragments(x, newFaces)
		arc := chainOpenArc(frags)
		// Every chain vertex carries exactly one ring slot for front,
		// flanked by the two old neighbors the new triangulation either
		// rejoins directly (arc has only those two: no interior) or
		// threads one or more new vertices between (the middle of arc).
		delta := len(frags) - 2
		s.AdjustValence(x, delta)
		interior := arc
		if len(interior) >= 2 {
			interior = interior[1 : len(interior)-1]
		}
		if err := s.ReplaceWithSlice(x, front, interior); err != nil {
			return nil, fmt.Errorf("retriangulate: ring(%d): %w", x, err)
		}
	}

	for _, f := range newFaces {
		s.SetGate(f[0], f[1], f[2])
		s.SetGate(f[1], f[2], f[0])
		s.SetGate(f[2], f[0], f[1])
	}

	return newFaces, nil
}

// localFragments collects, for every new face containing x, the (next,
// next-after) pair that results from rotating the face so x comes first.
// This is the same "face gives a from->to fragment at each of its three
// vertices" relation build.go uses to chain a vertex's whole ring from its
// incident face set; here it is scoped to only the newly installed faces.
func localFragments(x int, faces [][3]int) []fragment {
	var frags []fragment
	for _, f := range faces {
		p, q, ok := rotateTo(f, x)
		if ok {
			frags = append(frags, fragment{p, q})
		}
	}
	return frags
}

// rotateTo returns the other two vertices of f in CCW order starting right
// after x, or ok=false if f does not contain x.
func rotateTo(f [3]int, x int) (p, q int, ok bool) {
	switch x {
	case f[0]:
		return f[1], f[2], true
	case f[1]:
		return f[2], f[0], true
	case f[2]:
		return f[0], f[1], true
	default:
		return 0, 0, false
	}
}

// fragment is an unordered consecutive-pair (from, to): "in x's ring, from
// is immediately followed by to". Mirrors core's build-time fragment.
type fragment struct {
	from, to int
}

// chainOpenArc walks an open path (not a cycle) described by fragments,
// returning its vertices in order from the unique vertex with no
// predecessor to the unique vertex with no successor. A single-face
// incidence yields a 2-element arc; the arc is never a closed cycle
// because x's new local neighbors always run from one old flanking
// neighbor of front to the other, never all the way back around.
func chainOpenArc(frags []fragment) []int {
	if len(frags) == 0 {
		return nil
	}
	succ := make(map[int]int, len(frags))
	isTarget := make(map[int]bool, len(frags))
	for _, fr := range frags {
		succ[fr.from] = fr.to
		isTarget[fr.to] = true
	}
	start := frags[0].from
	for _, fr := range frags {
		if !isTarget[fr.from] {
			start = fr.from
			break
		}
	}
	chain := []int{start}
	cur := start
	for {
		next, ok := succ[cur]
		if !ok {
			break
		}
		chain = append(chain, next)
		cur = next
	}
	return chain
}
