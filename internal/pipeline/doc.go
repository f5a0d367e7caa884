// Package pipeline orchestrates file discovery, the concurrent per-file
// dither pipeline, and batch summary reporting.
//
// A run walks the input directory for image files, fans the paths out over a
// worker pool sized to hardware parallelism, and for each file decodes,
// dithers, and writes the result into a "dithers" directory next to the
// source. File failures are isolated: a file that cannot be decoded or
// written is counted and logged, and the rest of the batch proceeds.
//
// The Bayer threshold matrix is built once per run and shared read-only by
// all workers.
package pipeline
