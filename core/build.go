// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: constructs a Store from a raw (vertices, faces) mesh: 1-based
//       vertex IDs, CCW-oriented triangles. Rings are derived by chaining
//       the unordered set of consecutive-pair fragments {(b,c), (c,a), ...}
//       incident to each vertex. When that chain does not close into a
//       single cycle (a non-manifold vertex touched by two or more disjoint
//       fans), the builder duplicates the vertex: each extra fan gets a
//       fresh ID at the same position, and the fan's incident gates and
//       neighbors' ring entries are retargeted to it. This mirrors the
//       reference preprocessor's patch-closure step, generalized from its
//       two-fan case to any number of fans.
// Determinism:
//   - chainFragments always starts its walk at the fragment with the
//     smallest "from" vertex ID (smallestOf), so the same face list always
//     yields the same ring rotation and the same duplicate-vertex ID
//     assignment, regardless of map iteration order.
//   - Duplicate IDs are handed out in increasing vertex-ID, then
//     chain-discovery order, via Store.nextID — never reused, never
//     randomized.
// Concurrency:
//   - None: BuildFromFaces runs once, single-threaded, against a freshly
//     allocated Store before any pass can see it.
// AI-HINT (file):
//   - A vertex with k disjoint incident fans yields k-1 duplicates; the
//     first chain found always keeps the original ID.
//   - The two-phase retarget/pending split exists because patching a
//     ring's old-ID references to a new duplicate can only happen after
//     every vertex's own ring has been chained — do not collapse it into a
//     single pass.
package core

import "fmt"

// fragment is an unordered consecutive-pair (b,c) recorded against vertex a
// when face (a,b,c) is added: it says "in a's ring, b is followed by c".
type fragment struct {
	from, to int
}

// BuildFromFaces constructs a Store from a 1-based vertex list and a CCW
// triangle list. It returns ErrMalformedInput if a face references a
// missing or degenerate vertex, or if two faces would register the same
// directed gate (duplicate triangle or inconsistent orientation).
func BuildFromFaces(positions []Vec3, faces [][3]int) (*Store, error) {
	s := NewStore()
	n := len(positions)
	for i, p := range positions {
		id := i + 1
		s.vertices[id] = &Vertex{ID: id, Pos: p}
		s.active.Set(uint(id))
	}
	s.nextID = n

	fragments := make(map[int][]fragment, n)
	for _, f := range faces {
		a, b, c := f[0], f[1], f[2]
		for _, id := range f {
			if id < 1 || id > n {
				return nil, fmt.Errorf("core: face (%d,%d,%d) references vertex %d: %w", a, b, c, id, ErrMalformedInput)
			}
		}
		if a == b || b == c || c == a {
			return nil, fmt.Errorf("core: degenerate face (%d,%d,%d): %w", a, b, c, ErrMalformedInput)
		}
		if err := s.AddFace(a, b, c); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		fragments[a] = append(fragments[a], fragment{b, c})
		fragments[b] = append(fragments[b], fragment{c, a})
		fragments[c] = append(fragments[c], fragment{a, b})
	}

	// pendingRetarget collects, per duplicated fan, the list of ring
	// neighbors that must have their OWN ring entries switched from the
	// original vertex ID to the duplicate's new ID. This mirrors the
	// reference's two-pass structure: duplication decisions for vertex v
	// may need to patch the not-yet-visited ring of a later vertex, so all
	// patches are applied only after every vertex's own ring is chained.
	type retarget struct {
		neighbors []int
		oldID     int
		newID     int
	}
	var pending []retarget

	for id := 1; id <= n; id++ {
		chains := chainFragments(fragments[id])
		if len(chains) == 0 {
			return nil, fmt.Errorf("core: isolated vertex %d has no incident face: %w", id, ErrMalformedInput)
		}

		main := chains[0]
		s.rings[id] = main

		for _, extra := range chains[1:] {
			dup, err := s.Duplicate(id)
			if err != nil {
				return nil, err
			}
			for _, pair := range extra {
				// The gate (pair.from,pair.to) is the third gate of face
				// (id,pair.from,pair.to); it currently targets id and must
				// now target the duplicate.
				s.SetGate(pair.from, pair.to, dup.ID)
				// The gates (pair.from,id) and (id,pair.to) run through id
				// and belong to the fan's neighbouring faces; since every
				// fan vertex appears once as from and once as to, the loop
				// moves every gate through id in this fan to the duplicate.
				if target, ok := s.gates[gate{pair.from, id}]; ok {
					s.RemoveGate(pair.from, id)
					s.SetGate(pair.from, dup.ID, target)
				}
				if target, ok := s.gates[gate{id, pair.to}]; ok {
					s.RemoveGate(id, pair.to)
					s.SetGate(dup.ID, pair.to, target)
				}
			}
			s.AdjustValence(id, -len(extra))
			s.AdjustValence(dup.ID, len(extra))
			s.rings[dup.ID] = extra

			pending = append(pending, retarget{neighbors: extra, oldID: id, newID: dup.ID})
		}
	}

	for _, r := range pending {
		for _, neighbor := range r.neighbors {
			for i, x := range s.rings[neighbor] {
				if x == r.oldID {
					s.rings[neighbor][i] = r.newID
				}
			}
		}
	}

	return s, nil
}

// chainFragments partitions an unordered fragment set into one or more
// cyclic chains by following each fragment's "from -> to" successor
// relation until it returns to its start. A manifold vertex fan yields
// exactly one chain; a vertex touched by k disjoint fans yields k chains.
// The chain returned for each fan has length == the number of incident
// faces in that fan (the implicit closing edge back to the chain's start
// is not repeated).
func chainFragments(frags []fragment) [][]int {
	succ := make(map[int]int, len(frags))
	for _, fr := range frags {
		succ[fr.from] = fr.to
	}
	remaining := make(map[int]bool, len(frags))
	for _, fr := range frags {
		remaining[fr.from] = true
	}

	var chains [][]int
	for len(remaining) > 0 {
		start := smallestOf(remaining)
		chain := []int{start}
		delete(remaining, start)
		cur := start
		for {
			next, ok := succ[cur]
			if !ok || next == start {
				break
			}
			chain = append(chain, next)
			delete(remaining, next)
			cur = next
		}
		chains = append(chains, chain)
	}
	return chains
}

func smallestOf(set map[int]bool) int {
	best, first := 0, true
	for k := range set {
		if first || k < best {
			best, first = k, false
		}
	}
	return best
}
