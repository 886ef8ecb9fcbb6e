/*
 *	Copyright 2024 The GoMLX Authors
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

package ndcopy

import (
	"github.com/gomlx/ndcopy/ndshape"
)

// Copy1 copies extent[0] cells from src to dst, starting at the given minimum
// corners. Rank 1 degenerates to a single contiguous copy.
//
// It panics (see CheckCopy) if either region escapes its shape.
func Copy1[T any, S, D ndshape.Shape1](
	extent [1]int,
	src []T, srcShape S, srcMin [1]int,
	dst []T, dstShape D, dstMin [1]int) {
	assertCopy(extent[:], srcShape, srcMin[:], dstShape, dstMin[:])
	rowLen := extent[0]
	if rowLen == 0 {
		return
	}
	srcRow := srcShape.Linearize1(srcMin[0])
	dstRow := dstShape.Linearize1(dstMin[0])
	copy(dst[dstRow:dstRow+rowLen], src[srcRow:srcRow+rowLen])
}

// Copy2 copies a 2-dimensional region of the given extent from src to dst.
//
// srcShape and dstShape describe the full extents of the two arrays, and
// srcMin and dstMin the minimum corner of the region within each. One
// contiguous copy of extent[1] cells is issued per row.
//
// It panics (see CheckCopy) if either region escapes its shape.
func Copy2[T any, S, D ndshape.Shape2](
	extent [2]int,
	src []T, srcShape S, srcMin [2]int,
	dst []T, dstShape D, dstMin [2]int) {
	assertCopy(extent[:], srcShape, srcMin[:], dstShape, dstMin[:])
	rowLen := extent[1]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		srcRow := srcShape.Linearize2(srcMin[0]+i0, srcMin[1])
		dstRow := dstShape.Linearize2(dstMin[0]+i0, dstMin[1])
		copy(dst[dstRow:dstRow+rowLen], src[srcRow:srcRow+rowLen])
	}
}

// Copy3 copies a 3-dimensional region of the given extent from src to dst.
//
// srcShape and dstShape describe the full extents of the two arrays -- they
// may have different dimensions and even different kinds (a static source and
// a dynamic destination mix freely). srcMin and dstMin give the minimum corner
// of the region within each array. The innermost axis is copied as whole rows:
// extent[0]*extent[1] contiguous copies of extent[2] cells each.
//
// It panics (see CheckCopy) if either region escapes its shape. src and dst
// must not overlap within the addressed regions.
func Copy3[T any, S, D ndshape.Shape3](
	extent [3]int,
	src []T, srcShape S, srcMin [3]int,
	dst []T, dstShape D, dstMin [3]int) {
	assertCopy(extent[:], srcShape, srcMin[:], dstShape, dstMin[:])
	rowLen := extent[2]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		for i1 := 0; i1 < extent[1]; i1++ {
			srcRow := srcShape.Linearize3(srcMin[0]+i0, srcMin[1]+i1, srcMin[2])
			dstRow := dstShape.Linearize3(dstMin[0]+i0, dstMin[1]+i1, dstMin[2])
			copy(dst[dstRow:dstRow+rowLen], src[srcRow:srcRow+rowLen])
		}
	}
}

// Copy4 copies a 4-dimensional region of the given extent from src to dst.
// See Copy3 for the parameter conventions.
//
// It panics (see CheckCopy) if either region escapes its shape.
func Copy4[T any, S, D ndshape.Shape4](
	extent [4]int,
	src []T, srcShape S, srcMin [4]int,
	dst []T, dstShape D, dstMin [4]int) {
	assertCopy(extent[:], srcShape, srcMin[:], dstShape, dstMin[:])
	rowLen := extent[3]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		for i1 := 0; i1 < extent[1]; i1++ {
			for i2 := 0; i2 < extent[2]; i2++ {
				srcRow := srcShape.Linearize4(srcMin[0]+i0, srcMin[1]+i1, srcMin[2]+i2, srcMin[3])
				dstRow := dstShape.Linearize4(dstMin[0]+i0, dstMin[1]+i1, dstMin[2]+i2, dstMin[3])
				copy(dst[dstRow:dstRow+rowLen], src[srcRow:srcRow+rowLen])
			}
		}
	}
}

// CopyN copies a region of arbitrary rank from src to dst. The rank is taken
// from len(extent); srcMin, dstMin and both shapes must agree on it.
//
// Semantically identical to the Copy1..Copy4 entry points -- those only exist
// so that low ranks get unrolled outer loops and allocation-free row-offset
// arithmetic. CopyN walks the outer axes with ndshape.Iter and issues one
// contiguous copy of extent[rank-1] cells per outer index tuple.
//
// It panics (see CheckCopy) if either region escapes its shape.
func CopyN[T any](
	extent []int,
	src []T, srcShape ndshape.Shape, srcMin []int,
	dst []T, dstShape ndshape.Shape, dstMin []int) {
	assertCopy(extent, srcShape, srcMin, dstShape, dstMin)
	rank := len(extent)
	rowLen := extent[rank-1]
	if rowLen == 0 {
		return
	}
	srcIndices := make([]int, rank)
	dstIndices := make([]int, rank)
	srcIndices[rank-1] = srcMin[rank-1]
	dstIndices[rank-1] = dstMin[rank-1]
	for outer := range ndshape.Iter(extent[:rank-1]...) {
		for axis, i := range outer {
			srcIndices[axis] = srcMin[axis] + i
			dstIndices[axis] = dstMin[axis] + i
		}
		srcRow := srcShape.Linearize(srcIndices...)
		dstRow := dstShape.Linearize(dstIndices...)
		copy(dst[dstRow:dstRow+rowLen], src[srcRow:srcRow+rowLen])
	}
}
