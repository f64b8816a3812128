// Package mesh derives a cubical point cloud from a diagram by repeated
// explosion, and a thin triangulation of it for renderers.
//
// This is a deliberately simplified reading of the original mesh/complex
// construction: the original maintains a memoised element graph across the
// N explosions, merging partially-overlapping cube faces as they are
// discovered so that every face of every cube is shared with its neighbours.
// Sharing is not attempted here — a Mesh is just the explosion's slice graph
// plus a cube enumerated independently from every node whose coordinate can
// anchor one. A renderer consuming Cubes will see the same vertex several
// times across distinct cubes; that duplication is the price of the
// simplification, not a correctness defect of the output geometry.
package mesh
