package ports

import (
	"context"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

// ServiceClient is the remote game service. Every call is authenticated
// with the token passed in: the account token for registration, an agent
// token for everything else.
type ServiceClient interface {
	RegisterAgent(ctx context.Context, accountToken string, callsign domain.Callsign, faction domain.Faction) (domain.Registration, error)
	GetAgent(ctx context.Context, token string) (domain.Agent, error)
	ListContracts(ctx context.Context, token string) ([]domain.Contract, error)
	GetContract(ctx context.Context, token string, id string) (domain.Contract, error)
	AcceptContract(ctx context.Context, token string, id string) (domain.Contract, error)
	ListWaypoints(ctx context.Context, token string, query domain.WaypointQuery) ([]domain.Waypoint, error)
	GetWaypoint(ctx context.Context, token string, symbol string) (domain.Waypoint, error)
}
