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
	"testing"

	"github.com/gomlx/ndcopy/ndshape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2"
)

func init() {
	klog.InitFlags(nil)
}

// cornerPlus returns min+offset, axis by axis.
func cornerPlus(min, offset []int) []int {
	indices := make([]int, len(min))
	for axis := range min {
		indices[axis] = min[axis] + offset[axis]
	}
	return indices
}

// checkRegionCopied verifies every cell of the copied region matches the
// source, zeroes the region, and then requires the whole destination to be
// zero -- proving no cell outside the region was touched.
func checkRegionCopied(t *testing.T, extent []int,
	src []byte, srcShape ndshape.Shape, srcMin []int,
	dst []byte, dstShape ndshape.Shape, dstMin []int) {
	t.Helper()
	for offset := range ndshape.Iter(extent...) {
		srcIdx := srcShape.Linearize(cornerPlus(srcMin, offset)...)
		dstIdx := dstShape.Linearize(cornerPlus(dstMin, offset)...)
		require.Equalf(t, src[srcIdx], dst[dstIdx], "offset %v within region", offset)
		dst[dstIdx] = 0
	}
	for flatIdx, cell := range dst {
		require.Zerof(t, cell, "cell %v outside the copied region was touched",
			dstShape.Delinearize(flatIdx))
	}
}

func ones(n int) []byte {
	cells := make([]byte, n)
	for i := range cells {
		cells[i] = 1
	}
	return cells
}

func TestCopy1(t *testing.T) {
	srcShape := ndshape.MakeStatic1(10)
	dstShape := ndshape.Make(12)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	Copy1([1]int{4}, src, srcShape, [1]int{3}, dst, dstShape, [1]int{5})
	checkRegionCopied(t, []int{4}, src, srcShape, []int{3}, dst, dstShape, []int{5})
}

func TestCopy2(t *testing.T) {
	srcShape := ndshape.MakeStatic2(10, 11)
	dstShape := ndshape.MakeStatic2(11, 12)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	Copy2([2]int{2, 3}, src, srcShape, [2]int{3, 4}, dst, dstShape, [2]int{4, 5})
	checkRegionCopied(t, []int{2, 3}, src, srcShape, []int{3, 4}, dst, dstShape, []int{4, 5})
}

func TestCopy3(t *testing.T) {
	srcShape := ndshape.MakeStatic3(10, 11, 12)
	dstShape := ndshape.MakeStatic3(11, 12, 13)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	Copy3([3]int{2, 3, 4}, src, srcShape, [3]int{3, 4, 5}, dst, dstShape, [3]int{4, 5, 6})
	checkRegionCopied(t, []int{2, 3, 4}, src, srcShape, []int{3, 4, 5}, dst, dstShape, []int{4, 5, 6})
}

func TestCopy4(t *testing.T) {
	srcShape := ndshape.MakeStatic4(10, 11, 12, 13)
	dstShape := ndshape.MakeStatic4(11, 12, 13, 14)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	Copy4([4]int{2, 3, 4, 5}, src, srcShape, [4]int{3, 4, 5, 6}, dst, dstShape, [4]int{4, 5, 6, 7})
	checkRegionCopied(t, []int{2, 3, 4, 5}, src, srcShape, []int{3, 4, 5, 6}, dst, dstShape, []int{4, 5, 6, 7})
}

// Copying the full extent between identically shaped arrays reproduces the
// source exactly.
func TestCopyIdentity(t *testing.T) {
	shape := ndshape.Make(5, 6, 7)
	src := make([]int32, shape.Size())
	for i := range src {
		src[i] = int32(i)
	}

	dst := make([]int32, shape.Size())
	CopyN([]int{5, 6, 7}, src, shape, []int{0, 0, 0}, dst, shape, []int{0, 0, 0})
	require.Equal(t, src, dst)

	static := ndshape.MakeStatic3(5, 6, 7)
	dst = make([]int32, shape.Size())
	Copy3([3]int{5, 6, 7}, src, static, [3]int{0, 0, 0}, dst, static, [3]int{0, 0, 0})
	require.Equal(t, src, dst)
}

// The 100^3 -> 50^3 scenario: a [20,20,20] region of ones lands at
// [2,22)x[3,23)x[4,24) of the destination, everything else stays zero.
func TestCopyScenario100To50(t *testing.T) {
	srcShape := ndshape.MakeStatic3(100, 100, 100)
	dstShape := ndshape.MakeStatic3(50, 50, 50)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	Copy3([3]int{20, 20, 20}, src, srcShape, [3]int{1, 2, 3}, dst, dstShape, [3]int{2, 3, 4})

	for indices := range ndshape.Iter(50, 50, 50) {
		inside := indices[0] >= 2 && indices[0] < 22 &&
			indices[1] >= 3 && indices[1] < 23 &&
			indices[2] >= 4 && indices[2] < 24
		cell := dst[dstShape.Linearize3(indices[0], indices[1], indices[2])]
		if inside {
			require.Equalf(t, byte(1), cell, "cell %v inside the region", indices)
		} else {
			require.Zerof(t, cell, "cell %v outside the region", indices)
		}
	}
}

// A zero extent along any axis is a complete no-op.
func TestCopyZeroExtent(t *testing.T) {
	srcShape := ndshape.MakeStatic3(4, 5, 6)
	dstShape := ndshape.Make(4, 5, 6)
	src := ones(srcShape.Size())
	marker := make([]byte, dstShape.Size())
	for i := range marker {
		marker[i] = 7
	}

	for _, extent := range [][3]int{{0, 2, 2}, {2, 0, 2}, {2, 2, 0}, {0, 0, 0}} {
		dst := append([]byte(nil), marker...)
		Copy3(extent, src, srcShape, [3]int{1, 1, 1}, dst, dstShape, [3]int{1, 1, 1})
		assert.Equalf(t, marker, dst, "Copy3 with extent %v", extent)

		dst = append([]byte(nil), marker...)
		CopyN(extent[:], src, srcShape, []int{1, 1, 1}, dst, dstShape, []int{1, 1, 1})
		assert.Equalf(t, marker, dst, "CopyN with extent %v", extent)
	}
}

// The specialized entry points and the general runtime-rank path must produce
// byte-identical results.
func TestSpecializedMatchesGeneral(t *testing.T) {
	newSrc := func(n int) []byte {
		cells := make([]byte, n)
		for i := range cells {
			cells[i] = byte(i * 31)
		}
		return cells
	}

	t.Run("rank=1", func(t *testing.T) {
		srcShape, dstShape := ndshape.MakeStatic1(20), ndshape.Make(15)
		src := newSrc(srcShape.Size())
		specialized := make([]byte, dstShape.Size())
		general := make([]byte, dstShape.Size())
		Copy1([1]int{7}, src, srcShape, [1]int{5}, specialized, dstShape, [1]int{3})
		CopyN([]int{7}, src, srcShape, []int{5}, general, dstShape, []int{3})
		require.Equal(t, general, specialized)
	})

	t.Run("rank=2", func(t *testing.T) {
		srcShape, dstShape := ndshape.MakeStatic2(9, 8), ndshape.Make(7, 10)
		src := newSrc(srcShape.Size())
		specialized := make([]byte, dstShape.Size())
		general := make([]byte, dstShape.Size())
		Copy2([2]int{4, 5}, src, srcShape, [2]int{2, 1}, specialized, dstShape, [2]int{3, 2})
		CopyN([]int{4, 5}, src, srcShape, []int{2, 1}, general, dstShape, []int{3, 2})
		require.Equal(t, general, specialized)
	})

	t.Run("rank=3", func(t *testing.T) {
		srcShape, dstShape := ndshape.MakeStatic3(6, 7, 8), ndshape.Make(8, 6, 9)
		src := newSrc(srcShape.Size())
		specialized := make([]byte, dstShape.Size())
		general := make([]byte, dstShape.Size())
		Copy3([3]int{3, 4, 5}, src, srcShape, [3]int{1, 2, 3}, specialized, dstShape, [3]int{2, 1, 4})
		CopyN([]int{3, 4, 5}, src, srcShape, []int{1, 2, 3}, general, dstShape, []int{2, 1, 4})
		require.Equal(t, general, specialized)
		checkRegionCopied(t, []int{3, 4, 5}, src, srcShape, []int{1, 2, 3}, specialized, dstShape, []int{2, 1, 4})
	})

	t.Run("rank=4", func(t *testing.T) {
		srcShape, dstShape := ndshape.MakeStatic4(5, 6, 7, 4), ndshape.Make(6, 5, 8, 5)
		src := newSrc(srcShape.Size())
		specialized := make([]byte, dstShape.Size())
		general := make([]byte, dstShape.Size())
		Copy4([4]int{2, 3, 4, 2}, src, srcShape, [4]int{1, 2, 3, 1}, specialized, dstShape, [4]int{2, 1, 3, 2})
		CopyN([]int{2, 3, 4, 2}, src, srcShape, []int{1, 2, 3, 1}, general, dstShape, []int{2, 1, 3, 2})
		require.Equal(t, general, specialized)
	})
}

// Static and dynamic shapes mix freely in one call, in either position.
func TestCopyMixedShapeKinds(t *testing.T) {
	static := ndshape.MakeStatic2(6, 7)
	dynamic := ndshape.Make(7, 8)
	src := ones(static.Size())

	dst := make([]byte, dynamic.Size())
	Copy2([2]int{3, 4}, src, static, [2]int{1, 2}, dst, dynamic, [2]int{2, 3})
	checkRegionCopied(t, []int{3, 4}, src, static, []int{1, 2}, dst, dynamic, []int{2, 3})

	// And the reverse direction, dynamic source into static destination.
	src = ones(dynamic.Size())
	dst = make([]byte, static.Size())
	Copy2([2]int{3, 4}, src, dynamic, [2]int{2, 3}, dst, static, [2]int{1, 2})
	checkRegionCopied(t, []int{3, 4}, src, dynamic, []int{2, 3}, dst, static, []int{1, 2})
}

// CopyN beyond the specialized ranks.
func TestCopyRank5(t *testing.T) {
	srcShape := ndshape.Make(3, 4, 3, 4, 5)
	dstShape := ndshape.Make(4, 3, 4, 3, 6)
	src := ones(srcShape.Size())
	dst := make([]byte, dstShape.Size())

	extent := []int{2, 2, 2, 2, 3}
	srcMin := []int{1, 1, 0, 2, 1}
	dstMin := []int{2, 0, 1, 1, 2}
	CopyN(extent, src, srcShape, srcMin, dst, dstShape, dstMin)
	checkRegionCopied(t, extent, src, srcShape, srcMin, dst, dstShape, dstMin)
}
