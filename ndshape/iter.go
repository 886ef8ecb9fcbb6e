package ndshape

import "iter"

// Iter iterates over all index tuples of an extent with the given dimensions,
// in row-major order (the last axis varies fastest).
//
// An empty dims list yields exactly one empty index tuple; any dimension <= 0
// yields nothing. To avoid allocating per step, the yielded slice is owned by
// the iterator: clone it if it needs to outlive the loop body.
func Iter(dims ...int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		rank := len(dims)
		if rank == 0 {
			// Degenerate extent: a single empty index tuple.
			_ = yield(make([]int, 0))
			return
		}
		for _, dim := range dims {
			if dim <= 0 {
				return
			}
		}

		currentIndices := make([]int, rank)
		// Simulates an N-dimensional counter over the indices.
		for {
			if !yield(currentIndices) {
				return
			}

			// Increment currentIndices to the next tuple, last axis fastest.
			axis := rank - 1
			for ; axis >= 0; axis-- {
				if dims[axis] == 1 {
					// Nothing to iterate at this axis.
					continue
				}
				currentIndices[axis]++
				if currentIndices[axis] < dims[axis] {
					break
				}
				// The current axis overflowed; reset it to 0 and carry over
				// to the next outer axis.
				currentIndices[axis] = 0
			}

			// All axes overflowed: iteration is complete.
			if axis < 0 {
				return
			}
		}
	}
}
