// SPDX-License-Identifier: MIT
// Package: vdconquest/mesh
//
// engine.go — the single orchestrator tying the three conquest passes to
// one decimation level, per §2's control flow: Decimating Conquest runs to
// completion, then Cleaning Conquest, then Sew Conquest, all three against
// the same adjacency store, each appending to the level's command stream.
package mesh

import (
	"fmt"

	"github.com/vdconquest/mesh/clean"
	"github.com/vdconquest/mesh/command"
	"github.com/vdconquest/mesh/core"
	"github.com/vdconquest/mesh/decimate"
	"github.com/vdconquest/mesh/sew"
)

// Vec3 is a 3-D vertex position, re-exported from core so callers never
// need to import the core package just to build an input mesh.
type Vec3 = core.Vec3

// ErrLevelNoOp is decimate.ErrNoActiveVertices re-exported under the
// engine's name: the level driver's signal that there is nothing left to
// decimate, not a fault.
var ErrLevelNoOp = decimate.ErrNoActiveVertices

// Engine owns one mesh's adjacency store across decimation levels. It is
// not safe for concurrent use: per §5, a single pass exclusively borrows
// the store for writing, and the engine holds no lock, so callers must not
// run RunLevel concurrently on the same Engine.
type Engine struct {
	store *core.Store
}

// NewEngine builds an Engine from a 1-based, CCW-oriented face list. It
// returns core.ErrMalformedInput if the input violates §6's contract
// (missing vertices, degenerate faces, inconsistent orientation).
func NewEngine(positions []Vec3, faces [][3]int) (*Engine, error) {
	s, err := core.BuildFromFaces(positions, faces)
	if err != nil {
		return nil, err
	}
	return &Engine{store: s}, nil
}

// levelConfig is the resolved configuration for one RunLevel call.
type levelConfig struct {
	seed int64
}

// LevelOption configures a single RunLevel call.
type LevelOption func(*levelConfig)

// WithSeed fixes Decimating Conquest's initial-gate choice (§4.D). Two
// calls with the same store state and seed produce byte-identical command
// streams; the zero value (seed 0) is itself a valid, deterministic seed.
func WithSeed(seed int64) LevelOption {
	return func(c *levelConfig) { c.seed = seed }
}

// LevelResult is everything one decimation level produced: the combined
// V/F/DF command stream in pass order (Decimating, then Cleaning, then
// Sew), the per-record sequence-to-original-vertex-id mapping the external
// postprocessor needs, any ring-pinch warnings Sew Conquest raised, and the
// active vertex count remaining for the level driver's termination check.
type LevelResult struct {
	Commands       []command.Record
	SeqToVertex    map[int]int
	PinchWarnings  []sew.PinchWarning
	ActiveVertices int
}

// RunLevel executes one decimation level against the engine's store and
// returns its command stream. It mutates the store in place: the engine
// itself is the "residual mesh" ready for the next RunLevel call, or for
// handing to the external level driver's termination check via
// ActiveVertexCount.
func (e *Engine) RunLevel(opts ...LevelOption) (*LevelResult, error) {
	cfg := levelConfig{seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	dBuf, err := decimate.Run(e.store, cfg.seed)
	if err != nil {
		return nil, fmt.Errorf("mesh: decimating conquest: %w", err)
	}
	eBuf, err := clean.Run(e.store)
	if err != nil {
		return nil, fmt.Errorf("mesh: cleaning conquest: %w", err)
	}
	fBuf, warnings, err := sew.Run(e.store)
	if err != nil {
		return nil, fmt.Errorf("mesh: sew conquest: %w", err)
	}

	dRecs, eRecs, fRecs := dBuf.Records(), eBuf.Records(), fBuf.Records()
	records := make([]command.Record, 0, len(dRecs)+len(eRecs)+len(fRecs))
	records = append(records, dRecs...)
	records = append(records, eRecs...)
	records = append(records, fRecs...)

	seqToVertex := make(map[int]int, len(records))
	offset := 0
	for _, buf := range []*command.Buffer{dBuf, eBuf, fBuf} {
		s2v := buf.SeqToVertex()
		for seq, id := range s2v {
			seqToVertex[offset+seq] = id
		}
		offset += len(s2v)
	}

	return &LevelResult{
		Commands:       records,
		SeqToVertex:    seqToVertex,
		PinchWarnings:  warnings,
		ActiveVertices: len(e.store.ActiveVertices()),
	}, nil
}

// ActiveVertexCount reports how many vertices remain active in the
// engine's store — the level driver's |active| < THRESHOLD termination
// signal (§6).
func (e *Engine) ActiveVertexCount() int {
	return len(e.store.ActiveVertices())
}

// CheckInvariants reruns the adjacency store's cheap local invariant
// checks (§8): every active vertex's ring length equals its valence, and
// every gate's reverse exists.
func (e *Engine) CheckInvariants() error {
	return e.store.CheckInvariants()
}

// Store exposes the underlying adjacency store for callers — tests, or
// the external OBJ/OBJA codec — that need direct read access between
// levels.
func (e *Engine) Store() *core.Store {
	return e.store
}
