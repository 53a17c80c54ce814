package show

import (
	"errors"
	"fmt"
)

// Sentinel errors for scan validation failures. All of them abort the run
// before any rename is attempted.
var (
	ErrAmbiguousSeason = errors.New("ambiguous season number")
	ErrNoExtension     = errors.New("no file extension")
	ErrEmptySeason     = errors.New("season contains no episodes")
	ErrDuplicateSeason = errors.New("duplicate season number")
)

// ScanError provides context for errors raised while scanning the show tree.
type ScanError struct {
	Op   string // Operation that failed (e.g., "parse season")
	Path string // Filesystem path the error relates to
	Err  error  // Underlying error
}

func (e *ScanError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s '%s': %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
