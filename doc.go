// Package mesh is a progressive triangle-mesh connectivity compressor built
// around the Valence-Driven Conquest scheme (Touma-Gotsman / Alliez-Desbrun
// style). Given a closed, orientable triangle mesh it iteratively decimates
// the mesh one level at a time, emitting a reversible command stream that,
// replayed in reverse, reconstructs the original connectivity losslessly.
//
// 🔺 What is vdconquest/mesh?
//
//	A small, dependency-light engine that brings together:
//
//	  • core        — the gate/ring adjacency store (O(1) local queries)
//	  • command     — the append-only V/F/DF record buffer
//	  • conquest    — pass-local parity, status and FIFO primitives shared
//	                  by every traversal
//	  • retriangulate — the deterministic v-gon case table (v ∈ {3,4,5,6})
//	  • decimate    — the Decimating Conquest breadth-first pass
//	  • clean       — the Cleaning Conquest pass (valence-3 mop-up)
//	  • sew         — the Sew Conquest pass (valence-2 collapse + pinch detection)
//	  • builder     — canonical test meshes (Platonic solids, pinch fixtures)
//
// ✨ Design
//
//   - Single-threaded, deterministic given a seed — two runs with the same
//     seed on the same input produce byte-identical command streams.
//   - No geometry is moved: this engine rewrites connectivity only.
//   - OBJ/OBJA I/O, the multi-level driver loop and command renumbering are
//     external collaborators and are intentionally not part of this module.
//
// Quick shape:
//
//	eng, _  := mesh.NewEngine(vertices, faces)
//	result, _ := eng.RunLevel(mesh.WithSeed(1))
//	// result.Commands holds the V/F/DF records for this level
//	// eng itself is mutated in place into the decimated residual, ready
//	// for the next RunLevel call once the external driver decides to
//	// keep going (eng.ActiveVertexCount() is its termination signal)
//
//	go get github.com/vdconquest/mesh
package mesh
