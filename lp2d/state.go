// Package lp2d solves two-dimensional linear programs
//
//	minimize    c_x*x + c_y*y
//	subject to  G_x[i]*x + G_y[i]*y >= h[i],  i = 0..n-1
//
// in time linear in the number of constraints n, using Megiddo's
// prune-and-search technique. The optimum is classified as a unique point,
// an entire edge of optima, unbounded, infeasible, or an error (oversized
// problem or a degenerate objective gradient).
//
// A State owns a fixed-capacity scratch area that is reused across calls
// to Solve, so the constraint arrays are not reallocated per problem. Each
// Solve call still allocates two small 2x2 rotation matrices (the reset
// value and the objective rotation). Call NewState once per concurrent user (a State
// carries no synchronization and must not be shared across goroutines
// without external locking), and reuse it for every subsequent problem of
// up to its configured capacity.
package lp2d

import (
	"math"
	"unsafe"

	"github.com/astoeckel/linprog2d/geom"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

// cacheLine is the alignment boundary used when placing a State's
// sub-arrays inside caller-provided storage. Alignment to it is a
// performance nicety, not a correctness requirement.
const cacheLine = 64

// intSize and float64Size are the platform's actual sizes for the element
// types stored in a State's sub-arrays; MemSize and NewStateIn must agree
// on these so a caller-sized buffer is never undersized.
const (
	intSize     = int(unsafe.Sizeof(int(0)))
	float64Size = int(unsafe.Sizeof(float64(0)))
)

// State is the fixed-capacity working area the prune-and-search engine
// operates on. A State is built once (NewState, or NewStateIn over
// caller-supplied storage) and reused across many calls to Solve; each
// Solve call resets and repopulates it from scratch, so no state leaks
// between unrelated problems.
//
// A State must not be used from more than one goroutine at a time. Callers
// that want to solve problems concurrently should construct one State per
// concurrent task; States share no hidden global state and can coexist
// freely.
type State struct {
	capacity int

	// Conditioned constraint arrays, valid over [0, n).
	gx, gy, h []float64

	// Slope/intercept of each non-vertical constraint's line, valid only
	// at indices referenced by ceilIdx or floorIdx.
	dx, y0 []float64

	// Candidate intersection x-coordinates gathered during one engine
	// iteration.
	xInt    []float64
	xIntLen int

	// Index lists into gx/gy/h/dx/y0.
	ceilIdx, floorIdx, tmp []int
	ceilLen, floorLen      int

	n int

	x0, x1 float64

	rot geom.Rotation
	o   r2.Vec

	// Carried across prune-and-search iterations: which side of the
	// interval the optimum is known to lie on, once a median probe has
	// resolved it at least once.
	hasMedian     bool
	optimumIsLeft bool
	medianX       float64
}

// MemSize returns the number of bytes a State able to hold `capacity`
// constraints requires, including cache-line alignment padding between
// sub-arrays. It is the sizing counterpart to NewStateIn.
func MemSize(capacity int) int {
	if capacity < 0 {
		capacity = 0
	}
	floatArrays := 3 /* gx gy h */ + 2 /* dx y0 */
	xIntLen := capacity/2 + 1
	intArrays := 3 // ceilIdx floorIdx tmp

	size := 0
	for i := 0; i < floatArrays; i++ {
		size = alignUp(size, cacheLine) + capacity*float64Size
	}
	size = alignUp(size, cacheLine) + xIntLen*float64Size
	for i := 0; i < intArrays; i++ {
		size = alignUp(size, cacheLine) + capacity*intSize
	}
	return alignUp(size, cacheLine)
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}

// NewState allocates a State with room for `capacity` constraints.
func NewState(capacity int) *State {
	if capacity < 0 {
		panic("lp2d: negative capacity")
	}
	s := &State{capacity: capacity}
	s.gx = make([]float64, capacity)
	s.gy = make([]float64, capacity)
	s.h = make([]float64, capacity)
	s.dx = make([]float64, capacity)
	s.y0 = make([]float64, capacity)
	s.xInt = make([]float64, capacity/2+1)
	s.ceilIdx = make([]int, capacity)
	s.floorIdx = make([]int, capacity)
	s.tmp = make([]int, capacity)
	return s
}

// NewStateIn places a State with room for `capacity` constraints inside
// caller-provided storage, which must be at least MemSize(capacity) bytes
// and must outlive the returned State. It returns ErrStorageUnavailable if
// storage is too small.
//
// This is the entry point for callers that want to avoid the allocator
// entirely, e.g. a thin wrapper that owns a single static arena, or an
// embedder that pre-allocates all working memory up front. Most callers
// should prefer NewState.
func NewStateIn(capacity int, storage []byte) (*State, error) {
	if capacity < 0 {
		panic("lp2d: negative capacity")
	}
	need := MemSize(capacity)
	if len(storage) < need {
		return nil, ErrStorageUnavailable
	}

	s := &State{capacity: capacity}
	off := 0
	s.gx, off = carveFloat64(storage, off, capacity)
	s.gy, off = carveFloat64(storage, off, capacity)
	s.h, off = carveFloat64(storage, off, capacity)
	s.dx, off = carveFloat64(storage, off, capacity)
	s.y0, off = carveFloat64(storage, off, capacity)
	s.xInt, off = carveFloat64(storage, off, capacity/2+1)
	s.ceilIdx, off = carveInt(storage, off, capacity)
	s.floorIdx, off = carveInt(storage, off, capacity)
	s.tmp, _ = carveInt(storage, off, capacity)
	return s, nil
}

func carveFloat64(storage []byte, off, n int) ([]float64, int) {
	off = alignUp(off, cacheLine)
	size := n * float64Size
	region := storage[off : off+size]
	var out []float64
	if n > 0 {
		out = unsafe.Slice((*float64)(unsafe.Pointer(&region[0])), n)
	}
	return out, off + size
}

func carveInt(storage []byte, off, n int) ([]int, int) {
	off = alignUp(off, cacheLine)
	size := n * intSize
	region := storage[off : off+size]
	var out []int
	if n > 0 {
		out = unsafe.Slice((*int)(unsafe.Pointer(&region[0])), n)
	}
	return out, off + size
}

// Capacity reports the configured capacity of s.
func (s *State) Capacity() int {
	return s.capacity
}

// reset clears the per-solve fields of s so it can be reused for the next
// problem. The backing arrays are not zeroed; every element read by a
// subsequent solve is always written before it is used.
func (s *State) reset() {
	s.xIntLen = 0
	s.ceilLen = 0
	s.floorLen = 0
	s.n = 0
	s.x0 = negInf
	s.x1 = posInf
	s.rot = geom.Identity()
	s.o = r2.Vec{}
	s.hasMedian = false
	s.optimumIsLeft = false
	s.medianX = 0
}
