// Package unionfind implements a disjoint-set structure over
// scaffold.NodeID with path compression and union by rank, used by
// collapse to track the equivalence induced by vertex identification.
package unionfind
