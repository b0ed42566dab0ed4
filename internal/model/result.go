package model

// FileStat records what a single input file contributed to a run.
type FileStat struct {
	Path          string
	ReceiptSource string
	Rows          int
	Skipped       int // blank lines dropped by skip-empty
}

// Result summarizes a completed conversion run.
type Result struct {
	Output string
	Format string
	Files  []FileStat
}

// Rows returns the total number of data rows written across all files.
func (r Result) Rows() int {
	n := 0
	for _, f := range r.Files {
		n += f.Rows
	}
	return n
}

// Skipped returns the total number of blank lines dropped across all files.
func (r Result) Skipped() int {
	n := 0
	for _, f := range r.Files {
		n += f.Skipped
	}
	return n
}
