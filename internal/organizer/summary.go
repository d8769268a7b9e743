package organizer

// Move records where one file went.
type Move struct {
	Original string `json:"original"`
	Final    string `json:"final"`
	Category string `json:"category"`
	Size     int64  `json:"size_bytes"`
	Renamed  bool   `json:"renamed"`
}

// Summary describes a completed (or aborted) run.
type Summary struct {
	RunID      string   `json:"run_id"`
	Target     string   `json:"target"`
	DryRun     bool     `json:"dry_run"`
	Categories []string `json:"categories"`
	Moves      []Move   `json:"moves"`
	Bytes      int64    `json:"total_bytes"`
}

// Count returns the number of files processed.
func (s Summary) Count() int {
	return len(s.Moves)
}

// Renamed returns how many files needed a disambiguated name.
func (s Summary) Renamed() int {
	n := 0
	for _, m := range s.Moves {
		if m.Renamed {
			n++
		}
	}
	return n
}
