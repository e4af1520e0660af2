// Package command implements the reversible command emitter (component B):
// a pure append-only buffer of V/F/DF records, plus the per-pass sequence
// numbering a level's postprocessor needs to translate a V record back to
// its original vertex id.
package command
