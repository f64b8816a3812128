// Package attach implements the generic boundary-splice operation used
// by contraction (and, per the wider diagram algebra, by sibling
// expand/attach operations not otherwise in scope here): replacing a
// diagram's own cospan run with one a caller-supplied function builds
// from the diagram itself, after checking the two agree on dimension.
package attach
