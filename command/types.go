// SPDX-License-Identifier: MIT
// Package: vdconquest/command
package command

import (
	"strconv"

	"github.com/vdconquest/mesh/core"
)

// Kind distinguishes the three record shapes the core ever emits.
type Kind uint8

const (
	KindV Kind = iota
	KindF
	KindDF
)

// Record is one entry in a pass's command stream. Only the fields matching
// Kind are meaningful; the others are zero.
type Record struct {
	Kind Kind

	// V fields: the vertex re-introduced, its carried-through position, and
	// the auxiliary per-pass sequence number assigned at emit time.
	Seq int
	ID  int
	Pos core.Vec3

	// F / DF fields: a directed triangle. For F, A is the vertex this
	// face is anchored on for reconstruction purposes; for DF it is simply
	// the face's first vertex — DF only matters as a set of three ids.
	A, B, C int
}

// String renders a record for debugging, after the reference OBJA codec's
// line convention: F and DF records as "f a b c" / "df a b c", and a V
// record as "v" followed by its vertex id (not its position). The core
// never parses or writes this form itself.
func (r Record) String() string {
	switch r.Kind {
	case KindV:
		return "v " + strconv.Itoa(r.ID)
	case KindF:
		return "f " + strconv.Itoa(r.A) + " " + strconv.Itoa(r.B) + " " + strconv.Itoa(r.C)
	case KindDF:
		return "df " + strconv.Itoa(r.A) + " " + strconv.Itoa(r.B) + " " + strconv.Itoa(r.C)
	default:
		return "?"
	}
}
