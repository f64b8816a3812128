// Package diagram implements the recursive diagram model: 0-diagrams (bare
// generators) and n-diagrams (a source plus an ordered list of cospans).
// A diagram's higher regular/singular slices are never stored; they are
// derived on demand by repeatedly applying each cospan's legs starting
// from the source, following the teacher's preference for deriving graph
// structure from a minimal stored form rather than caching it.
package diagram
