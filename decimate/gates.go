package decimate

import (
	"github.com/vdconquest/mesh/conquest"
	"github.com/vdconquest/mesh/core"
)

// allGates enumerates every directed gate currently in the store, in a
// fixed canonical order (by owning vertex id, then ring position), so that
// SeededPick over it is reproducible across runs on the same input.
func allGates(s *core.Store) []conquest.Gate {
	var out []conquest.Gate
	for _, v := range s.ActiveVertices() {
		ring, err := s.Ring(v)
		if err != nil {
			continue
		}
		for _, w := range ring {
			out = append(out, conquest.Gate{Left: v, Right: w})
		}
	}
	return out
}

// firstUnvisitedGate scans active vertices in ascending id order for one
// whose status is still Unvisited and returns a gate into its ring. A
// closed connected mesh never needs this after the first BFS tree drains —
// every reachable vertex gets marked Conquered along the way — but the
// non-manifold-fan repair in core.BuildFromFaces can leave the store with
// several disjoint components (one per duplicated fan), and a single BFS
// tree only ever reaches the component it started in. Run calls this to
// re-seed a fresh tree in any component the first one never touched, so
// every component gets conquered independently (§8 scenario 6) and the
// pass still terminates with every triangle's face-status decided (§4.D).
func firstUnvisitedGate(s *core.Store, status conquest.StatusMap) (conquest.Gate, bool) {
	for _, v := range s.ActiveVertices() {
		if status.Get(v) != conquest.Unvisited {
			continue
		}
		ring, err := s.Ring(v)
		if err != nil || len(ring) == 0 {
			continue
		}
		return conquest.Gate{Left: v, Right: ring[0]}, true
	}
	return conquest.Gate{}, false
}
