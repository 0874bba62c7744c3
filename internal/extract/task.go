package extract

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/vertex-gestao/prestacao/internal/model"
)

// Task selects which extraction flow to run.
type Task string

const (
	TaskDocument  Task = "document"
	TaskProposals Task = "proposals"
	TaskNarrative Task = "narrative"
)

// Request carries the inputs for one extraction call. Created per call,
// never reused.
type Request struct {
	Task     Task
	Text     string
	ImageURL string
	// Purchase feeds the narrative flow; ignored by the others.
	Purchase any
}

// Result holds the output of a Run call; only the field matching the
// requested task is populated.
type Result struct {
	Document  *model.ExtractedData
	Proposals []model.Proposal
	Narrative *Narrative
}

// Run dispatches a request to the matching flow. Only an unknown task is an
// error; flow-level inference failures degrade to defaults inside each flow.
func (e *Extractor) Run(ctx context.Context, req Request) (Result, error) {
	switch req.Task {
	case TaskDocument:
		data := e.ExtractDocument(ctx, req.Text, req.ImageURL)
		return Result{Document: &data}, nil
	case TaskProposals:
		return Result{Proposals: e.ExtractProposals(ctx, req.Text, req.ImageURL)}, nil
	case TaskNarrative:
		n := e.GenerateNarrative(ctx, req.Purchase)
		return Result{Narrative: &n}, nil
	default:
		return Result{}, eris.Errorf("extract: unknown task %q", req.Task)
	}
}
