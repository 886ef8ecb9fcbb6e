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

// fillRow writes value into every cell of row.
func fillRow[T any](row []T, value T) {
	for i := range row {
		row[i] = value
	}
}

// Fill1 writes value into extent[0] cells of dst starting at the minimum
// corner dstMin.
//
// It panics (see CheckFill) if the region escapes the shape.
func Fill1[T any, D ndshape.Shape1](
	extent [1]int, value T,
	dst []T, dstShape D, dstMin [1]int) {
	assertFill(extent[:], dstShape, dstMin[:])
	rowLen := extent[0]
	if rowLen == 0 {
		return
	}
	dstRow := dstShape.Linearize1(dstMin[0])
	fillRow(dst[dstRow:dstRow+rowLen], value)
}

// Fill2 writes value into a 2-dimensional region of dst of the given extent,
// whose minimum corner is dstMin. Same row decomposition as Copy2.
//
// It panics (see CheckFill) if the region escapes the shape.
func Fill2[T any, D ndshape.Shape2](
	extent [2]int, value T,
	dst []T, dstShape D, dstMin [2]int) {
	assertFill(extent[:], dstShape, dstMin[:])
	rowLen := extent[1]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		dstRow := dstShape.Linearize2(dstMin[0]+i0, dstMin[1])
		fillRow(dst[dstRow:dstRow+rowLen], value)
	}
}

// Fill3 writes value into a 3-dimensional region of dst of the given extent,
// whose minimum corner is dstMin. Same row decomposition as Copy3.
//
// It panics (see CheckFill) if the region escapes the shape.
func Fill3[T any, D ndshape.Shape3](
	extent [3]int, value T,
	dst []T, dstShape D, dstMin [3]int) {
	assertFill(extent[:], dstShape, dstMin[:])
	rowLen := extent[2]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		for i1 := 0; i1 < extent[1]; i1++ {
			dstRow := dstShape.Linearize3(dstMin[0]+i0, dstMin[1]+i1, dstMin[2])
			fillRow(dst[dstRow:dstRow+rowLen], value)
		}
	}
}

// Fill4 writes value into a 4-dimensional region of dst of the given extent,
// whose minimum corner is dstMin. Same row decomposition as Copy4.
//
// It panics (see CheckFill) if the region escapes the shape.
func Fill4[T any, D ndshape.Shape4](
	extent [4]int, value T,
	dst []T, dstShape D, dstMin [4]int) {
	assertFill(extent[:], dstShape, dstMin[:])
	rowLen := extent[3]
	if rowLen == 0 {
		return
	}
	for i0 := 0; i0 < extent[0]; i0++ {
		for i1 := 0; i1 < extent[1]; i1++ {
			for i2 := 0; i2 < extent[2]; i2++ {
				dstRow := dstShape.Linearize4(dstMin[0]+i0, dstMin[1]+i1, dstMin[2]+i2, dstMin[3])
				fillRow(dst[dstRow:dstRow+rowLen], value)
			}
		}
	}
}

// FillN writes value into a region of arbitrary rank of dst. The rank is taken
// from len(extent); dstMin and dstShape must agree on it. Semantically
// identical to Fill1..Fill4, which only exist as unrolled fast paths.
//
// It panics (see CheckFill) if the region escapes the shape.
func FillN[T any](
	extent []int, value T,
	dst []T, dstShape ndshape.Shape, dstMin []int) {
	assertFill(extent, dstShape, dstMin)
	rank := len(extent)
	rowLen := extent[rank-1]
	if rowLen == 0 {
		return
	}
	dstIndices := make([]int, rank)
	dstIndices[rank-1] = dstMin[rank-1]
	for outer := range ndshape.Iter(extent[:rank-1]...) {
		for axis, i := range outer {
			dstIndices[axis] = dstMin[axis] + i
		}
		dstRow := dstShape.Linearize(dstIndices...)
		fillRow(dst[dstRow:dstRow+rowLen], value)
	}
}
