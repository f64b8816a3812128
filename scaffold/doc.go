// Package scaffold implements the stable directed multigraph used to
// connect diagrams by the rewrites between them: a node's weight is
// (key, diagram), an edge u->v witnesses that v's diagram is the image of
// u's diagram under the edge's rewrite. Node and edge identifiers survive
// deletion of other elements, which collapse (package collapse) relies on
// while it mutates a scaffold in place.
//
// Graph follows the teacher's locking discipline: a muVert lock guards the
// node table, a separate muEdgeAdj lock guards the edge table and the
// adjacency indices, so readers of one side never contend with writers of
// the other.
package scaffold
