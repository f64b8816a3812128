// Package common defines the combinatorial primitives shared by every other
// package in this module: generators, heights, slice indices, boundaries,
// directions, and the sentinel errors that name the ways a dimension-typed
// operation can fail.
//
// Nothing in this package allocates beyond the value itself, and nothing
// here is concurrency-sensitive: every type is a small, comparable value.
package common
