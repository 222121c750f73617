// Package tier resolves the caller's subscription tier. The tier is an
// opaque string used only for gating; the service re-validates it on
// every request, so a wrong client-side value can unlock nothing real.
package tier

import (
	"context"

	"github.com/costcorrect/costcorrect/internal/config"
	"github.com/costcorrect/costcorrect/internal/workflow"
)

// fetcher is the remote half of resolution, satisfied by client.Client.
type fetcher interface {
	FetchTier(ctx context.Context) string
}

// Resolve returns the active tier: the config override when set,
// otherwise the service's answer, otherwise free.
func Resolve(ctx context.Context, cfg *config.Config, c fetcher) string {
	if cfg != nil && cfg.Service.Tier != "" {
		return cfg.Service.Tier
	}
	if c == nil {
		return workflow.FreeTier
	}
	if t := c.FetchTier(ctx); t != "" {
		return t
	}
	return workflow.FreeTier
}
