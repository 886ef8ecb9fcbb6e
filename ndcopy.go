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

// Package ndcopy copies rectangular sub-regions between N-dimensional arrays
// backed by flat slices, at close to memcpy throughput.
//
// Instead of indexing every cell, the copy is decomposed into one contiguous
// `copy` per row along the innermost axis: a region of extent [e0, ..., eK]
// costs e0*...*e(K-1) block copies of eK cells each, never a per-cell loop.
// The source and destination arrays may have different overall shapes, and may
// even mix shape kinds (see the ndshape subpackage): only the extent of the
// region being copied must agree.
//
// Copy1 through Copy4 are the specialized entry points for ranks 1 to 4, with
// the outer loops unrolled per rank; CopyN handles any rank chosen at run
// time. Fill1 through Fill4 and FillN write a constant into a region using the
// same row decomposition. Both families behave identically across the
// specialized and general paths.
//
// # Example
//
//	srcShape := ndshape.MakeStatic3(100, 100, 100)
//	dstShape := ndshape.MakeStatic3(50, 50, 50)
//	src := make([]byte, srcShape.Size())
//	dst := make([]byte, dstShape.Size())
//	// ... fill src ...
//	ndcopy.Copy3([3]int{20, 20, 20},
//		src, srcShape, [3]int{1, 2, 3},
//		dst, dstShape, [3]int{2, 3, 4})
//
// # Bounds checking
//
// Every entry point validates rank agreement and region bounds before any cell
// is copied, and panics with an error wrapping ErrBoundsViolation or
// ErrDimensionMismatch on violation -- the operation is all-or-nothing, a
// failed call never mutates the destination. Use CheckCopy or CheckFill for a
// non-panicking pre-flight check. The per-call validation cost is O(rank),
// negligible next to the copy itself.
//
// What is never checked: buffer lengths beyond what the bounds imply, and
// aliasing -- if src and dst share a buffer, the caller must guarantee the two
// regions do not overlap.
package ndcopy

import (
	"github.com/gomlx/ndcopy/ndshape"
	"github.com/pkg/errors"
)

var (
	// ErrBoundsViolation is wrapped by the panics (and Check* errors) raised
	// when a region's minimum corner plus its extent exceeds a shape's
	// dimension along some axis, or when an extent or corner is negative.
	ErrBoundsViolation = errors.New("region out of bounds")

	// ErrDimensionMismatch is wrapped by the panics (and Check* errors) raised
	// when the extent, minimum corners and shapes don't agree on the number
	// of axes.
	ErrDimensionMismatch = errors.New("dimension count mismatch")
)

// CheckCopy verifies the arguments of a CopyN call (or, with the fixed-size
// arrays sliced, of a Copy1..Copy4 call) without copying anything.
//
// It returns an error wrapping ErrDimensionMismatch if extent, srcMin, dstMin
// and the two shapes don't all have the same number of axes, or wrapping
// ErrBoundsViolation if either region escapes its shape. A nil return means
// the copy is valid.
func CheckCopy(extent []int, srcShape ndshape.Shape, srcMin []int, dstShape ndshape.Shape, dstMin []int) error {
	rank := len(extent)
	if rank == 0 {
		return errors.Wrapf(ErrDimensionMismatch, "extent must have at least one axis")
	}
	if len(srcMin) != rank || len(dstMin) != rank || srcShape.Rank() != rank || dstShape.Rank() != rank {
		return errors.Wrapf(ErrDimensionMismatch,
			"extent has %d axes, srcMin %d, dstMin %d, srcShape %v rank %d, dstShape %v rank %d",
			rank, len(srcMin), len(dstMin), srcShape, srcShape.Rank(), dstShape, dstShape.Rank())
	}
	if err := checkRegion(extent, srcShape, srcMin); err != nil {
		return errors.WithMessage(err, "source")
	}
	if err := checkRegion(extent, dstShape, dstMin); err != nil {
		return errors.WithMessage(err, "destination")
	}
	return nil
}

// CheckFill verifies the arguments of a FillN call (or, with the fixed-size
// arrays sliced, of a Fill1..Fill4 call) without writing anything.
func CheckFill(extent []int, dstShape ndshape.Shape, dstMin []int) error {
	rank := len(extent)
	if rank == 0 {
		return errors.Wrapf(ErrDimensionMismatch, "extent must have at least one axis")
	}
	if len(dstMin) != rank || dstShape.Rank() != rank {
		return errors.Wrapf(ErrDimensionMismatch,
			"extent has %d axes, dstMin %d, dstShape %v rank %d",
			rank, len(dstMin), dstShape, dstShape.Rank())
	}
	if err := checkRegion(extent, dstShape, dstMin); err != nil {
		return errors.WithMessage(err, "destination")
	}
	return nil
}

// checkRegion verifies that min >= 0, extent >= 0 and min+extent <= dim on
// every axis of the shape.
func checkRegion(extent []int, shape ndshape.Shape, min []int) error {
	for axis, size := range extent {
		if size < 0 || min[axis] < 0 || min[axis]+size > shape.Dim(axis) {
			return errors.Wrapf(ErrBoundsViolation,
				"axis %d: min corner %d + extent %d escapes dimension %d of shape %v",
				axis, min[axis], size, shape.Dim(axis), shape)
		}
	}
	return nil
}

// assertCopy panics with the CheckCopy error, if any. Called by every copy
// entry point before the first row is copied.
func assertCopy(extent []int, srcShape ndshape.Shape, srcMin []int, dstShape ndshape.Shape, dstMin []int) {
	if err := CheckCopy(extent, srcShape, srcMin, dstShape, dstMin); err != nil {
		panic(err)
	}
}

// assertFill panics with the CheckFill error, if any.
func assertFill(extent []int, dstShape ndshape.Shape, dstMin []int) {
	if err := CheckFill(extent, dstShape, dstMin); err != nil {
		panic(err)
	}
}
