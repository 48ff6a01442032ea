// Package chain implements the pointer-level operations of a singly-linked
// chain of strings: relinking, reversal, midpoint split and merge sort.
//
// Every function works on an existing chain by rewriting next links only.
// Nothing here allocates or discards elements, so the caller that owns the
// chain stays responsible for head, tail and length bookkeeping. After Sort
// or Merge the caller recomputes its tail with Last.
//
// Chains are not synchronised. A chain must be owned by a single goroutine
// while it is being modified.
package chain
