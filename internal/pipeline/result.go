package pipeline

// FileResult reports the outcome of one file's pipeline. Err is nil on
// success; on failure it carries the stage context and the offending cause.
type FileResult struct {
	Path string
	Err  error
}

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total     int
	Succeeded int
	Failed    int
}

// NothingToDo reports whether discovery found no image files at all. Callers
// use it to distinguish an empty run from a completed batch.
func (s RunStats) NothingToDo() bool {
	return s.Total == 0
}
