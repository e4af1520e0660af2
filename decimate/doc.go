// Package decimate implements Decimating Conquest (component D): the
// breadth-first traversal that removes a maximal independent set of
// valence <= 6 "free" vertices from the adjacency store, invoking the
// retriangulator on each and recording the result to a command.Buffer.
//
// A decimate.Run call owns its own parity, status and face-status maps for
// the duration of the pass; none of that state is returned or reused —
// Cleaning Conquest starts the next pass with entirely fresh state, per
// the pass-local-state discipline documented in the conquest package.
package decimate
