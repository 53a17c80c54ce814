package show

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitRunRe = regexp.MustCompile(`\d+`)

// SeasonNumber extracts the season number from a season folder name.
// The folder name must contain exactly one maximal run of digits; zero or
// multiple runs return ErrAmbiguousSeason. "Season 1 Extended 2" is rejected,
// not guessed at.
func SeasonNumber(name string) (int, error) {
	runs := digitRunRe.FindAllString(name, -1)
	switch len(runs) {
	case 1:
		n, err := strconv.Atoi(runs[0])
		if err != nil {
			// A single run that overflows int is not ambiguity; keep the
			// strconv range error visible.
			return 0, fmt.Errorf("season number %q in %q: %w", runs[0], name, err)
		}
		return n, nil
	case 0:
		return 0, fmt.Errorf("%w: no numbers found in %q", ErrAmbiguousSeason, name)
	default:
		return 0, fmt.Errorf("%w: multiple numbers found in %q: %s",
			ErrAmbiguousSeason, name, strings.Join(runs, ", "))
	}
}

// Extension returns the text after the final '.' in filename.
// "a.b.mkv" yields "mkv". A filename with no dot returns ErrNoExtension.
func Extension(filename string) (string, error) {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return "", fmt.Errorf("%w: could not extract extension from %q", ErrNoExtension, filename)
	}
	return filename[idx+1:], nil
}
