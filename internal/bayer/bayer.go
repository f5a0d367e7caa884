package bayer

import "fmt"

// Matrix is an order×order ordered-dithering threshold matrix. Cell values
// cover [1, order²] with no repeats. The zero value is not usable; construct
// with New.
//
// Matrix is read-only after construction and safe for concurrent use.
type Matrix struct {
	order int
	cells []int // row-major, len order*order
}

// New builds the Bayer matrix for the given order.
//
// The order must be a power of two and at least 1. Callers are expected to
// validate user input before reaching this point; the returned error is the
// fail-fast backstop for a violated precondition.
//
// The construction starts from the 1x1 matrix [0] and doubles the occupied
// size until it reaches the requested order. Each doubling step expands every
// cell v into the four quadrants of the larger matrix:
//
//	top-left 4v+1, top-right 4v+3, bottom-left 4v+2, bottom-right 4v
//
// After the final doubling, every cell is incremented by one so values run
// [1, order²] instead of [0, order²-1].
func New(order int) (*Matrix, error) {
	if order < 1 || order&(order-1) != 0 {
		return nil, fmt.Errorf("bayer order must be a power of two, got %d", order)
	}

	cells := make([]int, order*order)
	for size := 1; size < order; size *= 2 {
		for i := 0; i < size; i++ {
			row := cells[i*order:]
			lower := cells[(i+size)*order:]
			for j := 0; j < size; j++ {
				v := row[j]
				row[j] = 4*v + 1
				row[j+size] = 4*v + 3
				lower[j] = 4*v + 2
				lower[j+size] = 4 * v
			}
		}
	}
	for i := range cells {
		cells[i]++
	}

	return &Matrix{order: order, cells: cells}, nil
}

// Order returns the matrix side length.
func (m *Matrix) Order() int {
	return m.order
}

// At returns the threshold rank at (row, col). Both indices must be in
// [0, order).
func (m *Matrix) At(row, col int) int {
	return m.cells[row*m.order+col]
}

// Threshold returns the dither threshold for image coordinates (x, y), with
// the matrix tiled across the plane by modular indexing and each rank scaled
// by 256/order². The scale uses integer division; for every power-of-two
// order up to 16 the division is exact.
func (m *Matrix) Threshold(x, y int) int {
	scale := 256 / (m.order * m.order)
	return m.cells[(y%m.order)*m.order+(x%m.order)] * scale
}
