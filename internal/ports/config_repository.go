package ports

import (
	"context"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

type ConfigRepository interface {
	Load(ctx context.Context) (domain.Config, error)
	Save(ctx context.Context, cfg domain.Config) error
}
