// Package rename turns a scanned show tree into a batch of rename actions,
// renders the preview report and executes the batch after confirmation.
package rename

import (
	"context"

	"github.com/notoriousjere/plex-tools/internal/show"
	"github.com/notoriousjere/plex-tools/internal/tracing"
	"go.opentelemetry.io/otel/attribute"
)

// Action represents a single file rename operation.
type Action struct {
	OldPath string `json:"old_path"`
	NewPath string `json:"new_path"`
	Status  string `json:"status"` // "pending", "done", "error"
	Error   string `json:"error,omitempty"`
}

// SeasonActions groups the actions of one season, in episode discovery order.
type SeasonActions struct {
	Number  int      `json:"season"`
	Path    string   `json:"path"`
	Actions []Action `json:"actions"`
}

// Plan is the full ordered batch of renames for one run. It is recomputed
// from a fresh scan every invocation and never persisted.
type Plan struct {
	Seasons []SeasonActions `json:"seasons"`
	Total   int             `json:"total"`
}

// BuildPlan compiles the rename actions for every episode of the show, in
// season order then per-season discovery order.
func BuildPlan(ctx context.Context, sh *show.Show) *Plan {
	_, span := tracing.StartSpan(ctx, "rename.BuildPlan",
		tracing.WithAttributes(attribute.String("show.path", sh.Path)),
	)
	defer span.End()

	plan := &Plan{}
	for _, season := range sh.Seasons {
		sa := SeasonActions{
			Number: season.Number,
			Path:   season.Path,
		}
		for _, ep := range season.Episodes {
			sa.Actions = append(sa.Actions, Action{
				OldPath: ep.Path,
				NewPath: ep.NewPath,
				Status:  "pending",
			})
		}
		plan.Seasons = append(plan.Seasons, sa)
		plan.Total += len(sa.Actions)
	}

	tracing.AddSpanAttributes(span, attribute.Int("plan.total", plan.Total))
	return plan
}
