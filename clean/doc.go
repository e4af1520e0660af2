// Package clean implements Cleaning Conquest (component E): the second
// BFS pass of a decimation level, which mops up valence-3 vertices left
// behind by Decimating Conquest.
//
// Unlike the retriangulate package's case table, a valence-3 removal here
// never branches on parity: three ring neighbors in any cyclic order form
// exactly one triangle, so the rewrite is the same plain add_face every
// time. This pass never reads or assigns parity at all.
package clean
