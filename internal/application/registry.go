package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
)

// Registry owns the agent sessions of the process, keyed by callsign and
// listed in insertion order. It is used from a single goroutine.
type Registry struct {
	client   ports.ServiceClient
	logger   *slog.Logger
	sessions map[domain.Callsign]*AgentSession
	order    []domain.Callsign
}

func NewRegistry(client ports.ServiceClient, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Registry{
		client:   client,
		logger:   logger,
		sessions: make(map[domain.Callsign]*AgentSession),
	}
}

// Get is a pure lookup.
func (r *Registry) Get(callsign domain.Callsign) (*AgentSession, bool) {
	session, ok := r.sessions[domain.NormalizeCallsign(string(callsign))]
	return session, ok
}

func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) ListCallsigns() []domain.Callsign {
	return append([]domain.Callsign(nil), r.order...)
}

// Sessions returns the sessions in insertion order.
func (r *Registry) Sessions() []*AgentSession {
	out := make([]*AgentSession, 0, len(r.order))
	for _, callsign := range r.order {
		out = append(out, r.sessions[callsign])
	}
	return out
}

func (r *Registry) insert(identity domain.AgentIdentity, agent *domain.Agent) (*AgentSession, error) {
	if _, exists := r.sessions[identity.Callsign]; exists {
		return nil, domain.Conflict("%w: %s", domain.ErrAgentExists, identity.Callsign)
	}

	session := newAgentSession(identity, agent)
	r.sessions[identity.Callsign] = session
	r.order = append(r.order, identity.Callsign)
	return session, nil
}

func (r *Registry) lookup(callsign domain.Callsign) (*AgentSession, error) {
	session, ok := r.Get(callsign)
	if !ok {
		return nil, domain.UnknownAgent(string(domain.NormalizeCallsign(string(callsign))))
	}
	return session, nil
}

// Agent returns the agent record, fetching it on a cache miss.
func (r *Registry) Agent(ctx context.Context, callsign domain.Callsign) (domain.Agent, error) {
	session, err := r.lookup(callsign)
	if err != nil {
		return domain.Agent{}, err
	}
	if agent, ok := session.CachedAgent(); ok {
		return agent, nil
	}

	agent, err := r.client.GetAgent(ctx, session.Token())
	if err != nil {
		return domain.Agent{}, domain.RemoteCallFailed("get agent", err)
	}
	session.setAgent(agent)
	return agent, nil
}

// RefreshAgent always fetches and replaces the cached record.
func (r *Registry) RefreshAgent(ctx context.Context, callsign domain.Callsign) (domain.Agent, error) {
	session, err := r.lookup(callsign)
	if err != nil {
		return domain.Agent{}, err
	}

	agent, err := r.client.GetAgent(ctx, session.Token())
	if err != nil {
		return domain.Agent{}, domain.RemoteCallFailed("get agent", err)
	}
	session.setAgent(agent)
	return agent, nil
}

// Contracts returns the agent's contracts. The full list is fetched once
// per session; later calls are served from the cache.
func (r *Registry) Contracts(ctx context.Context, callsign domain.Callsign) ([]domain.Contract, error) {
	session, err := r.lookup(callsign)
	if err != nil {
		return nil, err
	}
	if err := r.ensureContracts(ctx, session); err != nil {
		return nil, err
	}
	return session.contractSnapshot(), nil
}

func (r *Registry) ensureContracts(ctx context.Context, session *AgentSession) error {
	if session.contractsLoaded {
		return nil
	}

	contracts, err := r.client.ListContracts(ctx, session.Token())
	if err != nil {
		return domain.RemoteCallFailed("list contracts", err)
	}
	for _, contract := range contracts {
		session.putContract(contract)
	}
	session.contractsLoaded = true

	r.logger.Debug("contracts cached", "callsign", session.Callsign(), "count", len(contracts))
	return nil
}

// EditContract resolves a contract through the cache and returns the
// cached value for in-place updates. A contract id missing from the cached
// list is fetched individually before it is reported as unknown.
func (r *Registry) EditContract(ctx context.Context, callsign domain.Callsign, id string) (*domain.Contract, error) {
	session, err := r.lookup(callsign)
	if err != nil {
		return nil, err
	}
	if err := r.ensureContracts(ctx, session); err != nil {
		return nil, err
	}
	if contract, ok := session.contracts[id]; ok {
		return contract, nil
	}

	contract, err := r.client.GetContract(ctx, session.Token(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.UnknownContract(string(session.Callsign()), id)
		}
		return nil, domain.RemoteCallFailed("get contract", err)
	}
	return session.putContract(contract), nil
}

// AcceptContract accepts a contract and updates the cached copy. A
// contract already accepted locally is returned without a remote call.
func (r *Registry) AcceptContract(ctx context.Context, callsign domain.Callsign, id string) (domain.Contract, error) {
	contract, err := r.EditContract(ctx, callsign, id)
	if err != nil {
		return domain.Contract{}, err
	}
	if contract.Accepted {
		return *contract, nil
	}

	session, _ := r.Get(callsign)
	updated, err := r.client.AcceptContract(ctx, session.Token(), id)
	if err != nil {
		return domain.Contract{}, domain.RemoteCallFailed("accept contract", err)
	}
	if updated.ID == "" {
		updated = *contract
	}
	updated.Accepted = true
	*contract = updated

	r.logger.Info("contract accepted", "callsign", session.Callsign(), "contract_id", id)
	return *contract, nil
}
