package arr

// ─────────────────────────────────────────────────────────────────────────────
// Bounds
// ─────────────────────────────────────────────────────────────────────────────

// Count returns len(items). It exists for symmetry with payloads that may be
// nil; a nil slice counts as empty.
func Count[T any](items []T) int { return len(items) }

// InRange reports whether index is a valid insertion point for a slice of
// length n, i.e. 0 <= index <= n.
func InRange(index, n int) bool {
	return index >= 0 && index <= n
}

// SpanInRange reports whether [index, index+count) lies within a slice of
// length n. A zero-length span is valid at any insertion point.
func SpanInRange(index, count, n int) bool {
	return count >= 0 && index >= 0 && index <= n && count <= n-index
}

// ─────────────────────────────────────────────────────────────────────────────
// Splicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns a copy of items[index : index+count].
func Slice[T any](items []T, index, count int) []T {
	out := make([]T, count)
	copy(out, items[index:index+count])
	return out
}

// Insert returns a new slice with values inserted before position index.
// index may equal len(items), which appends.
func Insert[T any](items []T, index int, values ...T) []T {
	out := make([]T, 0, len(items)+len(values))
	out = append(out, items[:index]...)
	out = append(out, values...)
	out = append(out, items[index:]...)
	return out
}

// RemoveRange returns a new slice without items[index : index+count].
func RemoveRange[T any](items []T, index, count int) []T {
	out := make([]T, 0, len(items)-count)
	out = append(out, items[:index]...)
	out = append(out, items[index+count:]...)
	return out
}

// ReplaceRange returns a new slice where items[index : index+removed] is
// replaced by values. The replacement may be longer or shorter than the
// removed span.
func ReplaceRange[T any](items []T, index, removed int, values ...T) []T {
	out := make([]T, 0, len(items)-removed+len(values))
	out = append(out, items[:index]...)
	out = append(out, values...)
	out = append(out, items[index+removed:]...)
	return out
}

// MoveRange returns a new slice where the span items[oldIndex : oldIndex+count]
// has been taken out and re-inserted at newIndex. newIndex addresses the
// slice after the span was removed, so it must satisfy
// 0 <= newIndex <= len(items)-count.
//
//	arr.MoveRange([]int{1, 2, 3, 4, 5}, 0, 2, 3) // → [3 4 5 1 2]
func MoveRange[T any](items []T, oldIndex, count, newIndex int) []T {
	span := Slice(items, oldIndex, count)
	return Insert(RemoveRange(items, oldIndex, count), newIndex, span...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

// TryMap applies fn to each element in order and returns the mapped slice.
// It stops at the first error and returns that error together with the index
// of the element that produced it. On success the index is -1.
func TryMap[T, U any](items []T, fn func(T) (U, error)) ([]U, int, error) {
	out := make([]U, len(items))
	for i, item := range items {
		v, err := fn(item)
		if err != nil {
			return nil, i, err
		}
		out[i] = v
	}
	return out, -1, nil
}
