// Package sew implements Sew Conquest (component F): the level's final
// linear pass. It collapses every remaining valence-2 vertex — a bigon
// left behind where Decimating/Cleaning Conquest fused a patch down to a
// sliver — by deleting the vertex and joining its two ring neighbors with
// a direct gate.
//
// It then scans for ring-pinch vertices: a vertex whose ring repeats an
// entry, which signals the valence-2 sweep collapsed two locally disjoint
// fans onto the same vertex. The reference implementation detects this
// case and allocates replacement vertices for it but never finishes
// rewriting the incident gates; per the design's open question this
// package mirrors that limitation rather than inventing a resolution (see
// PinchWarning).
package sew
