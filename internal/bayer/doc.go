// Package bayer generates ordered-dithering threshold matrices.
//
// A Bayer matrix of order N (a power of two) is an NxN grid containing each
// integer in [1, N²] exactly once, arranged by the recursive quadrant
// construction so that threshold ranks are spread roughly uniformly at every
// scale. Tiling the matrix across an image and comparing each pixel's
// luminance against its cell value produces the classic crosshatch ordered
// dither.
//
// Matrices are immutable once built and safe to share across goroutines.
package bayer
