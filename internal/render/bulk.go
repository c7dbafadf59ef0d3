package render

import (
	"context"
	"sync"
)

// Renderer is the capability the bulk runner needs from a render client.
type Renderer interface {
	StartRender(ctx context.Context, source map[string]interface{}) (*RenderResult, error)
}

// VariationResult is the outcome of one variation in a bulk job.
// A bulk job never fails as a whole: each variation carries its own
// ok/error so callers see exactly which renders went through.
type VariationResult struct {
	Index    int           `json:"index"`
	Headline string        `json:"headline"`
	OK       bool          `json:"ok"`
	Error    string        `json:"error,omitempty"`
	Render   *RenderResult `json:"render,omitempty"`
}

// RenderVariations submits one render per headline with at most
// maxConcurrent requests in flight. Results come back in input order.
func RenderVariations(ctx context.Context, client Renderer, base BlueprintInput, headlines []string, maxConcurrent int) []VariationResult {
	if maxConcurrent <= 0 {
		maxConcurrent = 4
	}

	results := make([]VariationResult, len(headlines))
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup

	for i, headline := range headlines {
		wg.Add(1)
		go func(i int, headline string) {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			res := VariationResult{Index: i, Headline: headline}

			if err := ctx.Err(); err != nil {
				res.Error = err.Error()
				results[i] = res
				return
			}

			in := base
			in.Headline = headline
			render, err := client.StartRender(ctx, BuildBlueprint(in))
			if err != nil {
				res.Error = err.Error()
			} else {
				res.OK = true
				res.Render = render
			}
			results[i] = res
		}(i, headline)
	}

	wg.Wait()
	return results
}
