package entity

// FileReport describes how one candidate file was loaded.
type FileReport struct {
	Name       string
	Status     FileStatus
	TotalLines int64
	ParsedOK   int64
	ParseErr   int64
	Err        string
}

// LoadReport describes one pass over a price directory.
type LoadReport struct {
	ID        int64
	Dir       string
	StartedAt int64
	EndedAt   int64
	Files     []FileReport
}

// Totals sums line counters over all files.
func (r LoadReport) Totals() (totalLines, parsedOK, parseErr int64) {
	for _, f := range r.Files {
		totalLines += f.TotalLines
		parsedOK += f.ParsedOK
		parseErr += f.ParseErr
	}
	return totalLines, parsedOK, parseErr
}
