package show

// Show is the root of the scanned tree. It is built once per run by Scanner
// and never mutated afterwards.
type Show struct {
	Path    string
	Scheme  Scheme
	Seasons []*Season // sorted by season number ascending
}

// Season is one season folder of a show.
type Season struct {
	Path     string
	Name     string
	Number   int
	Episodes []*Episode // in directory listing order
}

// Episode is one media file within a season folder. Its number reflects the
// order of discovery, not anything parsed from the original filename, so the
// mapping is only valid for the directory listing the scan observed.
type Episode struct {
	Name    string
	Path    string
	Number  int
	Ext     string
	NewName string
	NewPath string
}

// EpisodeCount returns the total number of episodes across all seasons.
func (s *Show) EpisodeCount() int {
	total := 0
	for _, season := range s.Seasons {
		total += len(season.Episodes)
	}
	return total
}
