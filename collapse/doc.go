// Package collapse implements the collapsibility quotient (C6): given a
// stable scaffold of 0-diagrams and 0-rewrites, it identifies nodes joined
// by an identity edge whose surrounding triangles agree label-wise, and
// reduces the scaffold along that relation.
package collapse
