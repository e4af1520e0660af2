package retriangulate

import "github.com/vdconquest/mesh/conquest"

// ParitySource is the read/write parity access the case table needs. A
// conquest.ParityMap satisfies it directly.
type ParitySource interface {
	Get(v int) (conquest.Parity, bool)
	SetIfUnset(v int, p conquest.Parity)
}
