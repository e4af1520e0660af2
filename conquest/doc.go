// Package conquest holds the pass-local state shared by every traversal
// over the mesh adjacency store: the two-coloring Parity tag, the
// UNVISITED/CONQUERED traversal Status, the gate FaceStatus map, and a
// simple FIFO of gates. None of this survives across passes — Decimating
// Conquest constructs its own ParityMap/StatusMap/FaceStatus/FIFO at entry
// and Cleaning Conquest its own StatusMap/FaceStatus/FIFO, and each
// discards them at exit; Sew Conquest uses none of them. Nothing here is
// ever read or written by more than one pass.
package conquest
