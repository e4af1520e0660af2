// SPDX-License-Identifier: MIT
// Package: vdconquest/conquest
//
// seed.go — deterministic tie-breaking for traversal initialization.
//
// The reference implementation chooses its first gate uniformly at random;
// this module instead requires a caller-supplied seed so that two runs on
// the same input and seed emit byte-identical command streams; the root
// mesh package's WithSeed level option is how a caller supplies it.
package conquest

import "math/rand"

// SeededPick returns a pseudo-random index in [0,n) derived from seed. It
// panics if n <= 0, mirroring this module's "option constructors validate,
// algorithms don't" split: callers are expected to guard against an empty
// candidate set before calling.
func SeededPick(n int, seed int64) int {
	if n <= 0 {
		panic("conquest: SeededPick(n<=0)")
	}
	r := rand.New(rand.NewSource(seed))
	return r.Intn(n)
}
