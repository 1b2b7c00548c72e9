package application

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

const defaultHydrateConcurrency = 4

type hydrateResult struct {
	agent *domain.Agent
	err   error
}

// Hydrate fetches the agent record of every known session in parallel and
// stores the results once all fetches have finished. Failures are logged
// and leave the session without a cached record.
func (r *Registry) Hydrate(ctx context.Context, concurrency int) int {
	if concurrency <= 0 {
		concurrency = defaultHydrateConcurrency
	}

	sessions := r.Sessions()
	results := make([]hydrateResult, len(sessions))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(concurrency)
	for i, session := range sessions {
		token := session.Token()
		group.Go(func() error {
			agent, err := r.client.GetAgent(groupCtx, token)
			if err != nil {
				results[i] = hydrateResult{err: err}
				return nil
			}
			results[i] = hydrateResult{agent: &agent}
			return nil
		})
	}
	_ = group.Wait()

	hydrated := 0
	for i, result := range results {
		session := sessions[i]
		if result.err != nil {
			r.logger.Warn("agent hydration failed", "callsign", session.Callsign(), "error", result.err)
			continue
		}
		session.setAgent(*result.agent)
		hydrated++
	}

	r.logger.Debug("agents hydrated", "total", len(sessions), "hydrated", hydrated)
	return hydrated
}
