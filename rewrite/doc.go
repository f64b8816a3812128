// Package rewrite implements the rewrite algebra (component C2): 0-rewrites
// and n-rewrites between diagrams of the same dimension, their composition,
// slicing, and the monotone image/preimage maps a rewrite induces on
// singular and regular heights.
//
// A Rewrite is modelled as a closed, three-way tagged variant rather than
// an open interface hierarchy, matching the design note that the zero
// case should pay no per-cone overhead: IdentityRewrite, *Rewrite0, and
// *RewriteN are the only implementations, and every algorithm in this
// package dispatches on them with a type switch instead of virtual calls.
package rewrite
