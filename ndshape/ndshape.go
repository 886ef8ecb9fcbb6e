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

// Package ndshape describes the extents of N-dimensional arrays backed by flat
// slices, and converts N-dimensional indices to flat offsets ("linearization").
//
// All shapes use the row-major convention: the last axis varies fastest, its
// stride is 1, and each outer axis' stride is the product of the dimensions of
// all inner axes. Callers that build flat buffers independently of this package
// (e.g., interop with externally produced arrays) must lay them out the same way.
//
// Two kinds of shapes are provided, both satisfying the Shape interface:
//
//   - Static1 through Static4: value types whose rank is fixed at the call
//     site. Their stride tables live in fixed-size arrays computed once at
//     construction, and their LinearizeK methods take plain int arguments, so
//     calls compile down to a few multiply-adds with no slice traffic.
//   - Dynamic: rank chosen at construction, dimensions held in a slice. The
//     stride table is computed once by Make and cached for the lifetime of
//     the instance.
//
// The per-rank interfaces Shape1 through Shape4 are satisfied by both kinds,
// which is what lets the copy entry points in the parent package mix a static
// source with a dynamic destination (or vice versa).
//
// ## Glossary
//
//   - Rank: number of axes of an array.
//   - Axis: the index of a dimension, 0-based. Methods taking an axis accept
//     negative values counting from the end, so axis=-1 is the last axis.
//   - Dimension: the size of the array along one axis.
//   - Stride: the flat-offset delta of one step along an axis.
//   - Linearize: the mapping from an index tuple to a flat offset.
package ndshape

import (
	"fmt"
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Shape is the capability set shared by all shape kinds: per-axis dimensions
// and strides, total size, and index linearization.
//
// Shapes are immutable once constructed; the copy engine only borrows them for
// the duration of a call.
type Shape interface {
	// Rank returns the number of axes.
	Rank() int

	// Dim returns the dimension of the given axis. Negative axes count from
	// the end, so Dim(-1) is the dimension of the last axis. It panics for an
	// out-of-range axis.
	Dim(axis int) int

	// Stride returns the flat-offset delta of a unit step along the given
	// axis. Stride(-1) == 1 always; negative axes count from the end. It
	// panics for an out-of-range axis.
	Stride(axis int) int

	// Size returns the number of cells addressed by the shape, the product of
	// all dimensions. A flat buffer for this shape must hold at least Size()
	// cells.
	Size() int

	// Linearize converts an index tuple to a flat offset. len(indices) must
	// equal Rank(). Indices are not bounds-checked against the dimensions.
	Linearize(indices ...int) int

	// Delinearize is the inverse of Linearize: it splits a flat offset into
	// an index tuple of Rank() elements.
	Delinearize(flatIdx int) []int
}

// Shape1 is a rank-1 shape with an allocation-free linearization method.
// Both Static1 and Dynamic (of rank 1) satisfy it.
type Shape1 interface {
	Shape
	Linearize1(i0 int) int
}

// Shape2 is a rank-2 shape with an allocation-free linearization method.
// Both Static2 and Dynamic (of rank 2) satisfy it.
type Shape2 interface {
	Shape
	Linearize2(i0, i1 int) int
}

// Shape3 is a rank-3 shape with an allocation-free linearization method.
// Both Static3 and Dynamic (of rank 3) satisfy it.
type Shape3 interface {
	Shape
	Linearize3(i0, i1, i2 int) int
}

// Shape4 is a rank-4 shape with an allocation-free linearization method.
// Both Static4 and Dynamic (of rank 4) satisfy it.
type Shape4 interface {
	Shape
	Linearize4(i0, i1, i2, i3 int) int
}

// Dynamic is a shape whose rank is chosen at construction.
//
// Use Make to create one. The stride table is computed once at construction.
type Dynamic struct {
	dims    []int
	strides []int
}

// Compile-time check that Dynamic provides all the per-rank entry points.
var (
	_ Shape1 = Dynamic{}
	_ Shape2 = Dynamic{}
	_ Shape3 = Dynamic{}
	_ Shape4 = Dynamic{}
)

// Make returns a Dynamic shape with the given dimensions.
// It panics if no dimensions are given or if any dimension is not positive.
func Make(dims ...int) Dynamic {
	if len(dims) == 0 {
		exceptions.Panicf("ndshape.Make: a shape needs at least one dimension")
	}
	for _, dim := range dims {
		if dim <= 0 {
			exceptions.Panicf("ndshape.Make(%v): cannot create a shape with an axis with dimension <= 0", dims)
		}
	}
	dims = slices.Clone(dims)
	return Dynamic{dims: dims, strides: rowMajorStrides(dims)}
}

// rowMajorStrides returns the stride table for dims: the last axis has stride
// 1, each outer axis the product of the dimensions of the inner axes.
func rowMajorStrides(dims []int) []int {
	strides := make([]int, len(dims))
	stride := 1
	for axis := len(dims) - 1; axis >= 0; axis-- {
		strides[axis] = stride
		stride *= dims[axis]
	}
	return strides
}

// adjustAxis resolves negative axes and panics on out-of-range values.
func adjustAxis(axis, rank int) int {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += rank
	}
	if adjustedAxis < 0 || adjustedAxis >= rank {
		exceptions.Panicf("axis %d out-of-bounds for rank %d", axis, rank)
	}
	return adjustedAxis
}

// Rank of the shape, that is, the number of axes.
func (s Dynamic) Rank() int { return len(s.dims) }

// Dims returns a copy of the dimensions of the shape.
func (s Dynamic) Dims() []int { return slices.Clone(s.dims) }

// Dim returns the dimension of the given axis. Negative axes count from the
// end -- so Dim(-1) returns the dimension of the last axis.
func (s Dynamic) Dim(axis int) int { return s.dims[adjustAxis(axis, len(s.dims))] }

// Stride returns the flat-offset delta of a unit step along the given axis.
// Negative axes count from the end -- Stride(-1) is always 1.
func (s Dynamic) Stride(axis int) int { return s.strides[adjustAxis(axis, len(s.dims))] }

// Size returns the number of cells addressed by the shape, the product of all
// dimensions. A zero-valued Dynamic has size 0.
func (s Dynamic) Size() int {
	if len(s.dims) == 0 {
		return 0
	}
	// strides[0] is already the product of all inner dimensions.
	return s.dims[0] * s.strides[0]
}

// Linearize converts an index tuple to a flat offset. len(indices) must equal
// Rank(), otherwise it panics. Indices are not bounds-checked.
func (s Dynamic) Linearize(indices ...int) int {
	if len(indices) != len(s.dims) {
		exceptions.Panicf("Dynamic.Linearize(%v): got %d indices for rank %d", indices, len(indices), len(s.dims))
	}
	flatIdx := 0
	for axis, idx := range indices {
		flatIdx += idx * s.strides[axis]
	}
	return flatIdx
}

// Delinearize splits a flat offset into an index tuple of Rank() elements.
// It is the inverse of Linearize for offsets in [0, Size()).
func (s Dynamic) Delinearize(flatIdx int) []int {
	indices := make([]int, len(s.dims))
	for axis, stride := range s.strides {
		indices[axis] = flatIdx / stride
		flatIdx %= stride
	}
	return indices
}

// Linearize1 is the allocation-free rank-1 linearization.
// It must only be called on shapes of rank 1.
func (s Dynamic) Linearize1(i0 int) int {
	return i0 * s.strides[0]
}

// Linearize2 is the allocation-free rank-2 linearization.
// It must only be called on shapes of rank 2.
func (s Dynamic) Linearize2(i0, i1 int) int {
	return i0*s.strides[0] + i1*s.strides[1]
}

// Linearize3 is the allocation-free rank-3 linearization.
// It must only be called on shapes of rank 3.
func (s Dynamic) Linearize3(i0, i1, i2 int) int {
	return i0*s.strides[0] + i1*s.strides[1] + i2*s.strides[2]
}

// Linearize4 is the allocation-free rank-4 linearization.
// It must only be called on shapes of rank 4.
func (s Dynamic) Linearize4(i0, i1, i2, i3 int) int {
	return i0*s.strides[0] + i1*s.strides[1] + i2*s.strides[2] + i3*s.strides[3]
}

// String implements stringer, pretty-prints the dimensions.
func (s Dynamic) String() string { return fmt.Sprintf("%v", s.dims) }

// CheckRank checks that the shape has the given rank.
//
// It returns an error if the rank is different.
func CheckRank(s Shape, rank int) error {
	if s.Rank() != rank {
		return errors.Errorf("shape %v has incompatible rank %d -- wanted %d", s, s.Rank(), rank)
	}
	return nil
}

// AssertRank checks that the shape has the given rank.
//
// It panics if it doesn't match.
func AssertRank(s Shape, rank int) {
	if err := CheckRank(s, rank); err != nil {
		panic(err)
	}
}
