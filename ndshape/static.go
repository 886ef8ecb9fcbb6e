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

package ndshape

import (
	"fmt"

	"github.com/gomlx/exceptions"
)

// The StaticK types are the fixed-rank shapes: their dimension and stride
// tables are fixed-size arrays filled in once at construction, and their
// LinearizeK methods take plain int arguments. Declaring one at package level
// (or as a constant-like var) gives call sites a shape whose rank -- and, for
// the compiler, stride layout -- is known statically, which is the lever for
// fully inlined row-offset arithmetic in the copy loops.
//
// Ranks 1 through 4 cover the common cases; higher ranks go through Dynamic.

// checkStaticDims panics if any dimension is not positive.
func checkStaticDims(name string, dims []int) {
	for _, dim := range dims {
		if dim <= 0 {
			exceptions.Panicf("ndshape.%s(%v): cannot create a shape with an axis with dimension <= 0", name, dims)
		}
	}
}

// Static1 is a rank-1 shape fixed at construction.
type Static1 struct {
	dims    [1]int
	strides [1]int
}

// MakeStatic1 returns a Static1 with the given dimension.
// It panics if the dimension is not positive.
func MakeStatic1(dim0 int) Static1 {
	checkStaticDims("MakeStatic1", []int{dim0})
	return Static1{dims: [1]int{dim0}, strides: [1]int{1}}
}

// Rank of the shape. Always 1.
func (s Static1) Rank() int { return 1 }

// Dim returns the dimension of the given axis (0 or -1).
func (s Static1) Dim(axis int) int { return s.dims[adjustAxis(axis, 1)] }

// Stride returns the stride of the given axis. Always 1 for rank 1.
func (s Static1) Stride(axis int) int { return s.strides[adjustAxis(axis, 1)] }

// Size returns the number of cells addressed by the shape.
func (s Static1) Size() int { return s.dims[0] }

// Linearize converts an index tuple to a flat offset. It requires exactly 1 index.
func (s Static1) Linearize(indices ...int) int {
	if len(indices) != 1 {
		exceptions.Panicf("Static1.Linearize(%v): got %d indices for rank 1", indices, len(indices))
	}
	return indices[0]
}

// Delinearize splits a flat offset into an index tuple.
func (s Static1) Delinearize(flatIdx int) []int { return []int{flatIdx} }

// Linearize1 is the allocation-free linearization for rank 1.
func (s Static1) Linearize1(i0 int) int { return i0 }

// String implements stringer.
func (s Static1) String() string { return fmt.Sprintf("%v", s.dims) }

// Static2 is a rank-2 shape fixed at construction.
type Static2 struct {
	dims    [2]int
	strides [2]int
}

// MakeStatic2 returns a Static2 with the given dimensions.
// It panics if any dimension is not positive.
func MakeStatic2(dim0, dim1 int) Static2 {
	checkStaticDims("MakeStatic2", []int{dim0, dim1})
	return Static2{
		dims:    [2]int{dim0, dim1},
		strides: [2]int{dim1, 1},
	}
}

// Rank of the shape. Always 2.
func (s Static2) Rank() int { return 2 }

// Dim returns the dimension of the given axis. Negative axes count from the end.
func (s Static2) Dim(axis int) int { return s.dims[adjustAxis(axis, 2)] }

// Stride returns the stride of the given axis. Negative axes count from the end.
func (s Static2) Stride(axis int) int { return s.strides[adjustAxis(axis, 2)] }

// Size returns the number of cells addressed by the shape.
func (s Static2) Size() int { return s.dims[0] * s.strides[0] }

// Linearize converts an index tuple to a flat offset. It requires exactly 2 indices.
func (s Static2) Linearize(indices ...int) int {
	if len(indices) != 2 {
		exceptions.Panicf("Static2.Linearize(%v): got %d indices for rank 2", indices, len(indices))
	}
	return indices[0]*s.strides[0] + indices[1]
}

// Delinearize splits a flat offset into an index tuple.
func (s Static2) Delinearize(flatIdx int) []int {
	return []int{flatIdx / s.strides[0], flatIdx % s.strides[0]}
}

// Linearize2 is the allocation-free linearization for rank 2.
func (s Static2) Linearize2(i0, i1 int) int { return i0*s.strides[0] + i1 }

// String implements stringer.
func (s Static2) String() string { return fmt.Sprintf("%v", s.dims) }

// Static3 is a rank-3 shape fixed at construction.
type Static3 struct {
	dims    [3]int
	strides [3]int
}

// MakeStatic3 returns a Static3 with the given dimensions.
// It panics if any dimension is not positive.
func MakeStatic3(dim0, dim1, dim2 int) Static3 {
	checkStaticDims("MakeStatic3", []int{dim0, dim1, dim2})
	return Static3{
		dims:    [3]int{dim0, dim1, dim2},
		strides: [3]int{dim1 * dim2, dim2, 1},
	}
}

// Rank of the shape. Always 3.
func (s Static3) Rank() int { return 3 }

// Dim returns the dimension of the given axis. Negative axes count from the end.
func (s Static3) Dim(axis int) int { return s.dims[adjustAxis(axis, 3)] }

// Stride returns the stride of the given axis. Negative axes count from the end.
func (s Static3) Stride(axis int) int { return s.strides[adjustAxis(axis, 3)] }

// Size returns the number of cells addressed by the shape.
func (s Static3) Size() int { return s.dims[0] * s.strides[0] }

// Linearize converts an index tuple to a flat offset. It requires exactly 3 indices.
func (s Static3) Linearize(indices ...int) int {
	if len(indices) != 3 {
		exceptions.Panicf("Static3.Linearize(%v): got %d indices for rank 3", indices, len(indices))
	}
	return indices[0]*s.strides[0] + indices[1]*s.strides[1] + indices[2]
}

// Delinearize splits a flat offset into an index tuple.
func (s Static3) Delinearize(flatIdx int) []int {
	indices := make([]int, 3)
	for axis, stride := range s.strides {
		indices[axis] = flatIdx / stride
		flatIdx %= stride
	}
	return indices
}

// Linearize3 is the allocation-free linearization for rank 3.
func (s Static3) Linearize3(i0, i1, i2 int) int {
	return i0*s.strides[0] + i1*s.strides[1] + i2
}

// String implements stringer.
func (s Static3) String() string { return fmt.Sprintf("%v", s.dims) }

// Static4 is a rank-4 shape fixed at construction.
type Static4 struct {
	dims    [4]int
	strides [4]int
}

// MakeStatic4 returns a Static4 with the given dimensions.
// It panics if any dimension is not positive.
func MakeStatic4(dim0, dim1, dim2, dim3 int) Static4 {
	checkStaticDims("MakeStatic4", []int{dim0, dim1, dim2, dim3})
	return Static4{
		dims:    [4]int{dim0, dim1, dim2, dim3},
		strides: [4]int{dim1 * dim2 * dim3, dim2 * dim3, dim3, 1},
	}
}

// Rank of the shape. Always 4.
func (s Static4) Rank() int { return 4 }

// Dim returns the dimension of the given axis. Negative axes count from the end.
func (s Static4) Dim(axis int) int { return s.dims[adjustAxis(axis, 4)] }

// Stride returns the stride of the given axis. Negative axes count from the end.
func (s Static4) Stride(axis int) int { return s.strides[adjustAxis(axis, 4)] }

// Size returns the number of cells addressed by the shape.
func (s Static4) Size() int { return s.dims[0] * s.strides[0] }

// Linearize converts an index tuple to a flat offset. It requires exactly 4 indices.
func (s Static4) Linearize(indices ...int) int {
	if len(indices) != 4 {
		exceptions.Panicf("Static4.Linearize(%v): got %d indices for rank 4", indices, len(indices))
	}
	return indices[0]*s.strides[0] + indices[1]*s.strides[1] + indices[2]*s.strides[2] + indices[3]
}

// Delinearize splits a flat offset into an index tuple.
func (s Static4) Delinearize(flatIdx int) []int {
	indices := make([]int, 4)
	for axis, stride := range s.strides {
		indices[axis] = flatIdx / stride
		flatIdx %= stride
	}
	return indices
}

// Linearize4 is the allocation-free linearization for rank 4.
func (s Static4) Linearize4(i0, i1, i2, i3 int) int {
	return i0*s.strides[0] + i1*s.strides[1] + i2*s.strides[2] + i3
}

// String implements stringer.
func (s Static4) String() string { return fmt.Sprintf("%v", s.dims) }

// Compile-time checks that the static shapes provide their per-rank entry points.
var (
	_ Shape1 = Static1{}
	_ Shape2 = Static2{}
	_ Shape3 = Static3{}
	_ Shape4 = Static4{}
)
