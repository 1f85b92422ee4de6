package pipeline

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// BatchResult summarizes one batch run over pending records.
type BatchResult struct {
	Processed int
	Succeeded int
	UsedOCR   int
	Failed    int
}

// ProcessPending extracts every record that still lacks text, at most
// limit records, running up to workers extractions concurrently. Each
// worker owns distinct records, so concurrent runs never race on one
// document. Individual failures are logged and counted, not fatal; the
// batch stops early only when the context is canceled.
func (s *Service) ProcessPending(ctx context.Context, limit, workers int) (*BatchResult, error) {
	if workers < 1 {
		workers = 1
	}

	pending, err := s.deps.Store.ListPending(ctx, limit)
	if err != nil {
		return nil, &PipelineError{Op: "ListPending", Err: err}
	}

	result := &BatchResult{Processed: len(pending)}
	if len(pending) == 0 {
		return result, nil
	}

	type outcome struct {
		usedOCR bool
		err     error
	}
	outcomes := make([]outcome, len(pending))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range pending {
		g.Go(func() error {
			res, err := s.ExtractDocument(ctx, doc, Options{})
			if err != nil {
				s.log.Warn().Err(err).Str("document_id", doc.ID).Msg("batch extraction failed")
				outcomes[i] = outcome{err: err}
				if errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
			outcomes[i] = outcome{usedOCR: res.UsedOCR}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		switch {
		case o.err != nil:
			result.Failed++
		default:
			result.Succeeded++
			if o.usedOCR {
				result.UsedOCR++
			}
		}
	}

	return result, nil
}
