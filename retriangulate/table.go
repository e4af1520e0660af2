package retriangulate

import "github.com/vdconquest/mesh/conquest"

// facesFor returns the v-2 replacement triangles for a ring of size
// len(chain), chain already rotated so chain[0] is the patch's right
// boundary vertex and chain[len(chain)-1] is its left boundary vertex.
// Faces are listed CCW, named the way the reference's retriangulation()
// branches name them.
func facesFor(chain []int, rightP, leftP conquest.Parity) ([][3]int, error) {
	v := len(chain)
	right, left := chain[0], chain[v-1]

	switch v {
	case 3:
		c1 := chain[1]
		return [][3]int{{left, right, c1}}, nil

	case 4:
		c1, c2 := chain[1], chain[2]
		if rightP == conquest.Minus {
			return [][3]int{{left, right, c1}, {left, c1, c2}}, nil
		}
		return [][3]int{{left, right, c2}, {right, c1, c2}}, nil

	case 5:
		c1, c2, c3 := chain[1], chain[2], chain[3]
		switch {
		case rightP == conquest.Minus:
			return [][3]int{{left, right, c1}, {left, c1, c3}, {c1, c2, c3}}, nil
		case leftP == conquest.Minus:
			return [][3]int{{left, right, c3}, {right, c1, c3}, {c1, c2, c3}}, nil
		default:
			return [][3]int{{left, right, c2}, {right, c1, c2}, {left, c2, c3}}, nil
		}

	case 6:
		c1, c2, c3, c4 := chain[1], chain[2], chain[3], chain[4]
		if rightP == conquest.Minus {
			return [][3]int{{left, right, c1}, {left, c1, c3}, {c1, c2, c3}, {left, c3, c4}}, nil
		}
		return [][3]int{{right, c1, c2}, {right, c2, c4}, {c2, c3, c4}, {left, right, c4}}, nil

	default:
		return nil, ErrUnsupportedValence
	}
}

// assignParity applies the case table's fixed parity assignments to the
// ring's interior vertices, via SetIfUnset so a vertex that already carries
// parity from an earlier patch is left untouched.
func assignParity(chain []int, rightP, leftP conquest.Parity, parity ParitySource) {
	v := len(chain)

	switch v {
	case 3:
		c1 := chain[1]
		if rightP == conquest.Plus && leftP == conquest.Plus {
			parity.SetIfUnset(c1, conquest.Minus)
		} else {
			parity.SetIfUnset(c1, conquest.Plus)
		}

	case 4:
		c1, c2 := chain[1], chain[2]
		if rightP == conquest.Minus {
			parity.SetIfUnset(c1, conquest.Plus)
			parity.SetIfUnset(c2, conquest.Minus)
		} else {
			parity.SetIfUnset(c1, conquest.Minus)
			parity.SetIfUnset(c2, conquest.Plus)
		}

	case 5:
		c1, c2, c3 := chain[1], chain[2], chain[3]
		if rightP == conquest.Minus || leftP == conquest.Minus {
			parity.SetIfUnset(c1, conquest.Plus)
			parity.SetIfUnset(c2, conquest.Minus)
			parity.SetIfUnset(c3, conquest.Plus)
		} else {
			parity.SetIfUnset(c1, conquest.Minus)
			parity.SetIfUnset(c2, conquest.Plus)
			parity.SetIfUnset(c3, conquest.Minus)
		}

	case 6:
		c1, c2, c3, c4 := chain[1], chain[2], chain[3], chain[4]
		if rightP == conquest.Minus {
			parity.SetIfUnset(c1, conquest.Plus)
			parity.SetIfUnset(c2, conquest.Minus)
			parity.SetIfUnset(c3, conquest.Plus)
			parity.SetIfUnset(c4, conquest.Minus)
		} else {
			parity.SetIfUnset(c1, conquest.Minus)
			parity.SetIfUnset(c2, conquest.Plus)
			parity.SetIfUnset(c3, conquest.Minus)
			parity.SetIfUnset(c4, conquest.Plus)
		}
	}
}
