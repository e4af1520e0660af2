// SPDX-License-Identifier: MIT
// Package: vdconquest/command
//
// buffer.go — the per-pass append-only record buffer.
package command

import "github.com/vdconquest/mesh/core"

// Buffer accumulates one pass's V/F/DF records plus the auxiliary
// seq -> original-vertex-id mapping the external postprocessor needs to
// renumber V records into final output indices. A Buffer is owned by a
// single pass and never shared; the level driver (out of scope here)
// concatenates each pass's Buffer into the level's cumulative stream.
type Buffer struct {
	records     []Record
	nextSeq     int
	seqToVertex map[int]int
}

// NewBuffer returns an empty command buffer.
func NewBuffer() *Buffer {
	return &Buffer{seqToVertex: make(map[int]int)}
}

// EmitV appends a vertex re-introduction record and returns the sequence
// number assigned to it.
func (buf *Buffer) EmitV(id int, pos core.Vec3) int {
	seq := buf.nextSeq
	buf.nextSeq++
	buf.seqToVertex[seq] = id
	buf.records = append(buf.records, Record{Kind: KindV, Seq: seq, ID: id, Pos: pos})
	return seq
}

// EmitF appends a "triangle present after reversal" record anchored on
// front.
func (buf *Buffer) EmitF(front, a, b int) {
	buf.records = append(buf.records, Record{Kind: KindF, A: front, B: a, C: b})
}

// EmitDF appends a "delete this face on replay" marker for the directed
// triangle (a,b,c).
func (buf *Buffer) EmitDF(a, b, c int) {
	buf.records = append(buf.records, Record{Kind: KindDF, A: a, B: b, C: c})
}

// Records returns the buffer's records in emission order. The returned
// slice is owned by the caller; it is not a live view.
func (buf *Buffer) Records() []Record {
	out := make([]Record, len(buf.records))
	copy(out, buf.records)
	return out
}

// Len reports how many records have been emitted so far.
func (buf *Buffer) Len() int {
	return len(buf.records)
}

// SeqToVertex returns the per-pass V sequence number to original vertex id
// mapping built up by EmitV calls. The returned map is owned by the caller.
func (buf *Buffer) SeqToVertex() map[int]int {
	out := make(map[int]int, len(buf.seqToVertex))
	for k, v := range buf.seqToVertex {
		out[k] = v
	}
	return out
}
