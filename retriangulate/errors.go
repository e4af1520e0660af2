package retriangulate

import "errors"

// ErrUnsupportedValence is returned when the patch ring passed to
// Retriangulate has fewer than 3 or more than 6 vertices. The case table
// only covers that range; a ring outside it indicates the caller's
// decimation eligibility check (valence <= 6) was skipped or violated.
var ErrUnsupportedValence = errors.New("retriangulate: unsupported ring size")

// ErrParityUnset is returned when the ring's right or left boundary vertex
// has no parity assigned yet. Both are conquered (and so parity-tagged)
// strictly before the gate that names them as a patch boundary is ever
// dequeued, so this signals a caller invariant violation, not ordinary
// traversal flow.
var ErrParityUnset = errors.New("retriangulate: boundary vertex has no parity")
