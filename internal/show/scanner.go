package show

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/notoriousjere/plex-tools/internal/logging"
	"github.com/notoriousjere/plex-tools/internal/metrics"
	"github.com/notoriousjere/plex-tools/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// DirLister lists the immediate children of a directory. The order of the
// returned entries is the de facto episode order, so implementations must not
// sort: whatever order the backing store yields is what the user gets. The
// production lister reads straight from the filesystem; tests substitute an
// in-memory fixture.
type DirLister interface {
	List(path string) ([]fs.DirEntry, error)
}

type osLister struct{}

func (osLister) List(path string) ([]fs.DirEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	// File.ReadDir keeps raw directory order; os.ReadDir would sort by name.
	return f.ReadDir(-1)
}

// Options configures a show scan.
type Options struct {
	Path        string   // root show folder
	Prefix      string   // naming scheme prefix, trailing dots trimmed
	IgnoreNames []string // file/folder names or full paths to exclude
	IgnoreExts  []string // file extensions to exclude
}

// Scanner discovers the season/episode tree under a show folder.
type Scanner struct {
	lister DirLister
}

// NewScanner creates a scanner backed by the real filesystem.
func NewScanner() *Scanner {
	return &Scanner{lister: osLister{}}
}

// NewScannerWithLister creates a scanner with a custom directory lister.
func NewScannerWithLister(lister DirLister) *Scanner {
	return &Scanner{lister: lister}
}

// Scan builds the full Show tree: season folders of the root (sorted by
// parsed season number), episode files per season (in listing order), and the
// computed new name for every episode. Any validation failure aborts the scan;
// nothing is renamed here.
func (s *Scanner) Scan(ctx context.Context, opts Options) (*Show, error) {
	_, span := tracing.StartSpan(ctx, "show.Scan",
		tracing.WithAttributes(attribute.String("show.path", opts.Path)),
	)
	defer span.End()
	start := time.Now()

	seasons, err := s.discoverSeasons(opts)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	episodeMax := 0
	for _, season := range seasons {
		if err := s.discoverEpisodes(season, opts); err != nil {
			tracing.RecordError(span, err)
			return nil, err
		}
		if len(season.Episodes) > episodeMax {
			episodeMax = len(season.Episodes)
		}
	}

	// Seasons are sorted ascending, so the maximum season number is the last.
	seasonMax := seasons[len(seasons)-1].Number
	scheme := NewScheme(opts.Prefix, PadWidth(seasonMax), PadWidth(episodeMax))

	result := &Show{
		Path:    opts.Path,
		Scheme:  scheme,
		Seasons: seasons,
	}

	for _, season := range seasons {
		for _, ep := range season.Episodes {
			ep.NewName = scheme.FileName(season.Number, ep.Number, ep.Ext)
			ep.NewPath = filepath.Join(season.Path, ep.NewName)
		}
	}

	metrics.RecordScanDuration(start)
	tracing.AddSpanAttributes(span,
		attribute.Int("show.seasons", len(seasons)),
		attribute.Int("show.episodes", result.EpisodeCount()),
	)
	logging.Debug("show scanned",
		"path", opts.Path,
		"seasons", len(seasons),
		"episodes", result.EpisodeCount(),
	)

	return result, nil
}

// discoverSeasons lists the immediate child directories of the root, parses a
// season number out of each folder name and returns them sorted by number.
// Duplicate season numbers are rejected rather than silently ordered.
func (s *Scanner) discoverSeasons(opts Options) ([]*Season, error) {
	entries, err := s.lister.List(opts.Path)
	if err != nil {
		return nil, &ScanError{Op: "list show folder", Path: opts.Path, Err: err}
	}

	var seasons []*Season
	for _, entry := range entries {
		path := filepath.Join(opts.Path, entry.Name())
		if !entryIsDir(entry, path) {
			continue
		}
		if ignored(entry.Name(), path, opts.IgnoreNames) {
			logging.Debug("ignoring folder", "path", path)
			continue
		}

		number, err := SeasonNumber(entry.Name())
		if err != nil {
			return nil, &ScanError{Op: "parse season", Path: path, Err: err}
		}
		seasons = append(seasons, &Season{
			Path:   path,
			Name:   entry.Name(),
			Number: number,
		})
		metrics.SeasonsDiscovered.Inc()
	}

	if len(seasons) == 0 {
		return nil, &ScanError{
			Op:   "scan show folder",
			Path: opts.Path,
			Err:  fmt.Errorf("no season folders found"),
		}
	}

	sort.SliceStable(seasons, func(i, j int) bool {
		return seasons[i].Number < seasons[j].Number
	})

	for i := 1; i < len(seasons); i++ {
		if seasons[i].Number == seasons[i-1].Number {
			return nil, &ScanError{
				Op:   "parse season",
				Path: seasons[i].Path,
				Err: fmt.Errorf("%w: %q and %q both parse to season %d",
					ErrDuplicateSeason, seasons[i-1].Name, seasons[i].Name, seasons[i].Number),
			}
		}
	}

	return seasons, nil
}

// discoverEpisodes lists the eligible files of one season folder and numbers
// them sequentially in listing order. A season left with zero eligible files
// fails the whole run.
func (s *Scanner) discoverEpisodes(season *Season, opts Options) error {
	entries, err := s.lister.List(season.Path)
	if err != nil {
		return &ScanError{Op: "list season folder", Path: season.Path, Err: err}
	}

	number := 1
	for _, entry := range entries {
		path := filepath.Join(season.Path, entry.Name())
		if !entryIsFile(entry, path) {
			continue
		}
		if ignored(entry.Name(), path, opts.IgnoreNames) {
			logging.Debug("ignoring file", "path", path)
			continue
		}

		ext, err := Extension(entry.Name())
		if err != nil {
			return &ScanError{Op: "parse episode", Path: path, Err: err}
		}
		if containsString(opts.IgnoreExts, ext) {
			logging.Debug("ignoring extension", "path", path, "ext", ext)
			continue
		}

		season.Episodes = append(season.Episodes, &Episode{
			Name:   entry.Name(),
			Path:   path,
			Number: number,
			Ext:    ext,
		})
		number++
		metrics.EpisodesDiscovered.Inc()
	}

	if len(season.Episodes) == 0 {
		return &ScanError{
			Op:   "scan season",
			Path: season.Path,
			Err:  fmt.Errorf("%w: delete the folder or add it to the ignore list", ErrEmptySeason),
		}
	}

	return nil
}

// entryIsDir reports whether the entry is a directory, resolving symlinks so
// a symlinked season folder still counts. Broken links count as neither.
func entryIsDir(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// entryIsFile reports whether the entry is a regular file, resolving symlinks
// so a symlink to a directory is not mistaken for an episode.
func entryIsFile(entry fs.DirEntry, path string) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return !entry.IsDir()
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ignored reports whether name or its full path appears in the ignore list.
func ignored(name, path string, ignoreList []string) bool {
	return containsString(ignoreList, name) || containsString(ignoreList, path)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
