// Package signature holds the generators a family of diagrams is built
// from: each generator's own boundary diagram, whether it is invertible,
// and the label equivalence collapse and contraction quotient by.
package signature
