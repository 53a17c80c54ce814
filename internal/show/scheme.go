package show

import "fmt"

// Scheme renders new episode filenames as <prefix>.S<season>E<episode>.<ext>
// with zero-padded season and episode numbers.
type Scheme struct {
	Prefix       string
	SeasonWidth  int
	EpisodeWidth int
}

// NewScheme builds a Scheme from a user-supplied prefix. Trailing dots are
// trimmed from the prefix so "Show", "Show." and "Show.." all yield the same
// scheme.
func NewScheme(prefix string, seasonWidth, episodeWidth int) Scheme {
	return Scheme{
		Prefix:       TrimTrailing(prefix, '.'),
		SeasonWidth:  seasonWidth,
		EpisodeWidth: episodeWidth,
	}
}

// FileName renders the new filename for the given season, episode and
// extension.
func (s Scheme) FileName(season, episode int, ext string) string {
	return fmt.Sprintf("%s.S%0*dE%0*d.%s", s.Prefix, s.SeasonWidth, season, s.EpisodeWidth, episode, ext)
}

// Sample renders the scheme with zero-valued numbers and a placeholder
// extension, for display before the rename plan.
func (s Scheme) Sample() string {
	return s.FileName(0, 0, "<extension>")
}

// TrimTrailing removes every trailing occurrence of ch from text. Iterative
// rather than recursive so pathological input (e.g. a path of all slashes)
// cannot exhaust the stack.
func TrimTrailing(text string, ch byte) string {
	end := len(text)
	for end > 0 && text[end-1] == ch {
		end--
	}
	return text[:end]
}
