package rename

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notoriousjere/plex-tools/internal/logging"
	"github.com/notoriousjere/plex-tools/internal/metrics"
	"github.com/notoriousjere/plex-tools/internal/tracing"
	"github.com/schollz/progressbar/v3"
	"go.opentelemetry.io/otel/attribute"
)

// affirmative is the only confirmation response that proceeds to renaming.
// The match is case-insensitive; anything else aborts.
const affirmative = "yes"

// State tracks the execution engine through one run.
type State int

const (
	StatePreview State = iota
	StateAwaitingConfirmation
	StateConfirmed
	StateRenamed
	StateAborted
)

func (s State) String() string {
	switch s {
	case StatePreview:
		return "preview"
	case StateAwaitingConfirmation:
		return "awaiting confirmation"
	case StateConfirmed:
		return "confirmed"
	case StateRenamed:
		return "renamed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// RenameError records the action that failed during execution. Renames before
// it have already been applied and are not rolled back.
type RenameError struct {
	OldPath string
	NewPath string
	Err     error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename '%s' -> '%s': %v", e.OldPath, e.NewPath, e.Err)
}

func (e *RenameError) Unwrap() error {
	return e.Err
}

// Result contains the outcome of one run of the execution engine.
type Result struct {
	DryRun  bool `json:"dry_run"`
	Aborted bool `json:"aborted"`
	Renamed int  `json:"renamed"`
	Failed  int  `json:"failed"`
}

// Executor drives the confirm-and-rename step. Confirmation input and prompt
// output are injected so tests can script the interaction.
type Executor struct {
	in       io.Reader
	out      io.Writer
	progress bool
	state    State
}

// NewExecutor creates an executor reading confirmation from in and writing
// prompts to out.
func NewExecutor(in io.Reader, out io.Writer) *Executor {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &Executor{in: in, out: out, state: StatePreview}
}

// EnableProgress toggles the progress bar shown while the batch runs.
func (e *Executor) EnableProgress(on bool) {
	e.progress = on
}

// State returns the engine's current state.
func (e *Executor) State() State {
	return e.state
}

// Run executes the plan. Without the execute flag it stops in the preview
// state and performs no filesystem mutation. With it, the user is prompted
// once; only a case-insensitive "yes" proceeds. Renames run sequentially in
// plan order, one os.Rename each, no rollback: on failure the error surfaces
// immediately with the count of renames already applied in the Result.
func (e *Executor) Run(ctx context.Context, plan *Plan, execute bool) (*Result, error) {
	_, span := tracing.StartSpan(ctx, "rename.Run",
		tracing.WithAttributes(
			attribute.Int("plan.total", plan.Total),
			attribute.Bool("execute", execute),
		),
	)
	defer span.End()

	if !execute {
		e.state = StatePreview
		return &Result{DryRun: true}, nil
	}

	e.state = StateAwaitingConfirmation
	if !e.confirm(plan.Total) {
		e.state = StateAborted
		logging.Info("run aborted by user", "planned", plan.Total)
		return &Result{Aborted: true}, nil
	}
	e.state = StateConfirmed

	var bar *progressbar.ProgressBar
	if e.progress {
		bar = progressbar.NewOptions(plan.Total,
			progressbar.OptionSetWriter(e.out),
			progressbar.OptionSetDescription("renaming"),
			progressbar.OptionShowCount(),
		)
	}

	result := &Result{}
	for si := range plan.Seasons {
		season := &plan.Seasons[si]
		for ai := range season.Actions {
			action := &season.Actions[ai]
			if err := os.Rename(action.OldPath, action.NewPath); err != nil {
				action.Status = "error"
				action.Error = err.Error()
				result.Failed++
				metrics.RenamesTotal.WithLabelValues("error").Inc()
				renameErr := &RenameError{OldPath: action.OldPath, NewPath: action.NewPath, Err: err}
				tracing.RecordError(span, renameErr)
				logging.Error("rename failed, halting batch",
					"old", action.OldPath,
					"new", action.NewPath,
					"applied", result.Renamed,
					"error", err,
				)
				return result, renameErr
			}
			action.Status = "done"
			result.Renamed++
			metrics.RenamesTotal.WithLabelValues("done").Inc()
			if bar != nil {
				_ = bar.Add(1)
			}
		}
	}

	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(e.out)
	}

	e.state = StateRenamed
	tracing.AddSpanAttributes(span, attribute.Int("result.renamed", result.Renamed))
	logging.Info("batch renamed", "files", result.Renamed)
	return result, nil
}

// confirm prompts once and reads a single line. Only the line terminator is
// stripped before matching: empty input, EOF, padded input and any token other
// than the affirmative all decline.
func (e *Executor) confirm(total int) bool {
	fmt.Fprintf(e.out, "\nRename %d episodes? This action cannot be undone. (yes/no): ", total)

	line, err := bufio.NewReader(e.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimRight(line, "\r\n"), affirmative)
}
