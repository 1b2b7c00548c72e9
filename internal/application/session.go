package application

import "github.com/CollinDietz/space-traders-cli/internal/domain"

// AccountSession holds the account-level token used only for registering
// new agents.
type AccountSession struct {
	token string
}

func NewAccountSession(token string) *AccountSession {
	return &AccountSession{token: token}
}

func (a *AccountSession) Token() string {
	if a == nil {
		return ""
	}
	return a.token
}

// AgentSession is the runtime handle of one known agent. Contracts are
// fetched on first use and kept for the life of the process.
type AgentSession struct {
	identity domain.AgentIdentity
	agent    *domain.Agent

	contracts       map[string]*domain.Contract
	contractOrder   []string
	contractsLoaded bool
}

func newAgentSession(identity domain.AgentIdentity, agent *domain.Agent) *AgentSession {
	return &AgentSession{
		identity:  identity,
		agent:     agent,
		contracts: make(map[string]*domain.Contract),
	}
}

func (s *AgentSession) Callsign() domain.Callsign { return s.identity.Callsign }

func (s *AgentSession) Token() string { return s.identity.Token }

func (s *AgentSession) Identity() domain.AgentIdentity { return s.identity }

// CachedAgent returns the last agent record seen this session, if any.
func (s *AgentSession) CachedAgent() (domain.Agent, bool) {
	if s.agent == nil {
		return domain.Agent{}, false
	}
	return *s.agent, true
}

func (s *AgentSession) ContractsLoaded() bool { return s.contractsLoaded }

func (s *AgentSession) setAgent(agent domain.Agent) {
	s.agent = &agent
}

func (s *AgentSession) putContract(contract domain.Contract) *domain.Contract {
	if existing, ok := s.contracts[contract.ID]; ok {
		*existing = contract
		return existing
	}
	stored := contract
	s.contracts[contract.ID] = &stored
	s.contractOrder = append(s.contractOrder, contract.ID)
	return &stored
}

func (s *AgentSession) contractSnapshot() []domain.Contract {
	out := make([]domain.Contract, 0, len(s.contractOrder))
	for _, id := range s.contractOrder {
		out = append(out, *s.contracts[id])
	}
	return out
}
