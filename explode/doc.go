// Package explode implements explosion (C5): turning a scaffold of
// n-diagrams and n-rewrites into the scaffold of their (n-1)-dimensional
// slices, tagging every synthesised edge with the EdgeOrigin that
// produced it so that collapse and contraction can filter by provenance.
package explode
