// Package dither implements the core pixel transform: aspect-preserving
// downscale, BT.601 luminance conversion, and ordered (Bayer) quantization to
// a binary-valued grayscale image.
//
// Resampling is delegated to github.com/disintegration/imaging (Lanczos
// filter); this package only computes the target dimensions. The output is an
// 8-bit single-channel image whose pixels are all 0 or 255, suitable for
// lossless PNG encoding.
package dither
