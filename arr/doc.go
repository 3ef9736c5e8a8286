// Package arr provides standalone generic helpers for splicing plain Go
// slices: inserting, removing, replacing and moving contiguous spans.
//
// # Range helpers
//
// Every helper returns a new slice and never mutates its input, so callers
// can keep the previous value as a snapshot:
//
//	items := []int{1, 2, 3, 4, 5}
//	arr.Insert(items, 1, 9)          // → [1 9 2 3 4 5]
//	arr.RemoveRange(items, 1, 2)     // → [1 4 5]
//	arr.ReplaceRange(items, 0, 2, 7) // → [7 3 4 5]
//	arr.MoveRange(items, 0, 2, 3)    // → [3 4 5 1 2]
//
// Indices are validated with [InRange] / [SpanInRange]; helpers that receive
// an invalid index or span panic in the same way a slice expression would.
// Callers that accept untrusted indices should validate first.
//
// # Mapping
//
// [Map] and [TryMap] translate a slice element-wise. [TryMap] stops at the
// first failing element and reports its index, which is what a caller needs
// to produce a meaningful error.
package arr
