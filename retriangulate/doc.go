// Package retriangulate implements the patch retriangulator (component C):
// given a removed vertex's patch ring and the parity of its two boundary
// vertices, it produces the deterministic fan of v-2 replacement triangles
// for a ring of size 3 to 6, and rewrites the surviving ring vertices'
// gates, valences and rings to match.
//
// The case table is keyed on ring size and on the parity of the ring's
// right and left boundary vertices, exactly mirroring the reference
// retriangulation() branches. Decimating Conquest calls through
// Retriangulate rather than re-deriving the table; Cleaning Conquest's
// valence-3 removal writes its single replacement face itself.
package retriangulate
