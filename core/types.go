// Package core implements the mesh adjacency store: the triangle-graph data
// structure shared by every conquest pass. It owns the vertex table, the
// directed half-edge ("gate") map, and the per-vertex cyclic neighbor rings,
// and gives O(1) amortized local queries over them.
//
// A Store is exclusively borrowed for writing by whichever pass is currently
// running; per §5 of the design there is no concurrent access to guard
// against, so unlike a general-purpose graph store this one carries no
// locks — each pass mutates the vertex table, active set, gates and rings
// in place and runs to completion before handing the Store to the next.
package core

import "github.com/bits-and-blooms/bitset"

// Vec3 is a 3-D position. The engine never moves vertices; positions are
// carried unchanged from input to every V record.
type Vec3 struct {
	X, Y, Z float64
}

// gate is a directed half-edge (a,b). It is used as a map key, so it must
// remain a small comparable struct.
type gate struct {
	A, B int
}

// Vertex is a node in the adjacency store, identified by a stable positive
// integer ID assigned at load time. Parity and traversal status are
// pass-local concerns and are intentionally NOT fields here — see the
// conquest package.
type Vertex struct {
	// ID uniquely identifies this Vertex within its Store.
	ID int

	// Pos is the immutable 3-D position carried through to V records.
	Pos Vec3

	// valence is the number of active faces incident to this vertex.
	valence int
}

// Store is the mesh adjacency store (component A). It owns the vertex
// table, the gate map, and the per-vertex rings; all other components
// borrow read/write access within a single-threaded pass.
//
// The active set is a dense bitset rather than map[int]bool: vertex IDs are
// small, contiguous positive integers handed out in order (see newVertex),
// the same shape godoctor's dataflow analyses exploit for their live-ness
// bitsets, and the set is tested on every vertex/valence lookup in the
// hot conquest loops (GateTarget and Ring read only the gate and ring maps).
type Store struct {
	vertices map[int]*Vertex
	active   *bitset.BitSet // active flag, indexed by vertex ID
	gates    map[gate]int   // (a,b) -> third vertex of the active face
	rings    map[int][]int

	nextID int // highest ID handed out so far; newVertex assigns nextID+1
}

// NewStore returns an empty adjacency store. Use BuildFromFaces to populate
// it from a face list, or AddFace/newVertex directly when constructing a
// mesh by hand (e.g. in tests).
func NewStore() *Store {
	return &Store{
		vertices: make(map[int]*Vertex),
		active:   bitset.New(0),
		gates:    make(map[gate]int),
		rings:    make(map[int][]int),
	}
}
