package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notoriousjere/plex-tools/internal/config"
	"github.com/notoriousjere/plex-tools/internal/logging"
	"github.com/notoriousjere/plex-tools/internal/rename"
	"github.com/notoriousjere/plex-tools/internal/show"
	"github.com/notoriousjere/plex-tools/internal/tracing"
	"golang.org/x/term"
)

var cfg *config.Config

func main() {
	ctx := context.Background()

	// Load config
	var err error
	cfg, err = config.Load()
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	// Setup Logging
	logging.Setup(cfg.Logging)

	// Setup Tracing
	shutdown, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		logging.Error("failed to setup tracing", "error", err)
	}
	defer func() {
		if shutdown != nil {
			if err := shutdown(ctx); err != nil {
				logging.Error("failed to shutdown tracing", "error", err)
			}
		}
	}()

	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		PrintError("Error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(ctx, opts))
}

// runOptions is the fully parsed command line.
type runOptions struct {
	Path       string
	Scheme     string
	TitleRegex string // accepted but reserved for future use
	Ignore     []string
	NonMedia   []string
	Execute    bool
}

// listFlag collects repeatable string flags. With split set, each value may
// also carry comma-separated entries; without it, values pass through
// verbatim so names containing commas stay usable.
type listFlag struct {
	values []string
	split  bool
	set    bool
}

func (l *listFlag) String() string {
	return strings.Join(l.values, ",")
}

func (l *listFlag) Set(v string) error {
	if !l.set {
		// First use discards the default so the flag fully replaces it.
		l.values = nil
		l.set = true
	}
	if !l.split {
		l.values = append(l.values, v)
		return nil
	}
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			l.values = append(l.values, part)
		}
	}
	return nil
}

func parseArgs(args []string) (*runOptions, error) {
	opts := &runOptions{}

	fs := flag.NewFlagSet("episodes", flag.ContinueOnError)
	fs.Usage = func() { printUsage(fs) }

	ignore := &listFlag{}
	nonMedia := &listFlag{values: cfg.GetNonMedia(), split: true}

	fs.StringVar(&opts.Path, "path", "", "Full path to the top level show folder")
	fs.StringVar(&opts.Scheme, "scheme", "", "Name scheme applied to the beginning of all files after renaming")
	fs.StringVar(&opts.TitleRegex, "title_regex", "", "Regular expression to extract original episode name (reserved)")
	fs.Var(ignore, "ignore", "File or folder to ignore (repeatable)")
	fs.Var(nonMedia, "non_media", "File extensions to ignore (repeatable, comma-separable)")
	fs.BoolVar(&opts.Execute, "execute", false, "Actually make the changes")
	fs.BoolVar(&opts.Execute, "e", false, "Same as --execute")
	fs.BoolVar(&outputCfg.JSON, "json", false, "Output the plan and result in JSON format")
	fs.BoolVar(&outputCfg.Quiet, "quiet", false, "Suppress non-error output")
	fs.BoolVar(&outputCfg.Quiet, "q", false, "Same as --quiet")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.Ignore = ignore.values
	opts.NonMedia = nonMedia.values

	if opts.Path == "" {
		return nil, fmt.Errorf("--path is required")
	}
	if opts.Scheme == "" {
		return nil, fmt.Errorf("--scheme is required")
	}

	path := show.TrimTrailing(opts.Path, '/')
	if path == "" {
		path = "/"
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving --path: %w", err)
	}
	opts.Path = abs

	return opts, nil
}

func printUsage(fs *flag.FlagSet) {
	fmt.Println("episodes - batch rename TV show episode files")
	fmt.Println()
	fmt.Println("Usage: episodes --path <show folder> --scheme <prefix> [options]")
	fmt.Println()
	fmt.Println("Episode files must already be in the proper order, and each season")
	fmt.Println("folder name must contain exactly one number denoting the season.")
	fmt.Println("Without --execute the tool only prints a preview of the rename plan.")
	fmt.Println()
	fmt.Println("Options:")
	fs.PrintDefaults()
}

func run(ctx context.Context, opts *runOptions) int {
	// The banner leads even runs that fail during scanning.
	if !outputCfg.JSON && !outputCfg.Quiet && !opts.Execute {
		fmt.Println(rename.PreviewMsg)
	}

	scanner := show.NewScanner()
	sh, err := scanner.Scan(ctx, show.Options{
		Path:        opts.Path,
		Prefix:      opts.Scheme,
		IgnoreNames: opts.Ignore,
		IgnoreExts:  opts.NonMedia,
	})
	if err != nil {
		PrintError("Error: %v\n", err)
		return 1
	}

	plan := rename.BuildPlan(ctx, sh)

	if !outputCfg.JSON && !outputCfg.Quiet {
		previewer := rename.NewPreviewer(os.Stdout)
		previewer.Summary(sh, opts.Ignore, opts.NonMedia)
		previewer.Render(plan)
	}

	// In JSON mode the prompt goes to stderr so stdout stays parseable.
	promptOut := os.Stdout
	if outputCfg.JSON {
		promptOut = os.Stderr
	}
	executor := rename.NewExecutor(os.Stdin, promptOut)
	executor.EnableProgress(!outputCfg.JSON && !outputCfg.Quiet && term.IsTerminal(int(os.Stdout.Fd())))

	result, err := executor.Run(ctx, plan, opts.Execute)
	if err != nil {
		if outputCfg.JSON {
			PrintResult(struct {
				Plan   *rename.Plan   `json:"plan"`
				Result *rename.Result `json:"result"`
			}{plan, result})
		}
		PrintError("Error: %v\n", err)
		PrintError("%d file(s) were already renamed before the failure; they have not been reverted.\n", result.Renamed)
		return 1
	}

	if outputCfg.JSON {
		PrintResult(struct {
			Plan   *rename.Plan   `json:"plan"`
			Result *rename.Result `json:"result"`
		}{plan, result})
		return 0
	}

	switch {
	case result.DryRun:
		PrintInfo("%s\n", rename.PreviewMsg)
	case result.Aborted:
		PrintInfo("Aborted. No changes made.\n")
	default:
		PrintInfo("\n%d files renamed.\n", result.Renamed)
	}
	return 0
}
