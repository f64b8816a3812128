// Package contract implements contraction (C7): collapsing a contiguous
// run of singular heights within a diagram into a single cell, by taking
// the colimit of the small graph of diagrams and rewrites that run (and,
// recursively, of the Δ-graph of its exploded singular heights) presents.
package contract
