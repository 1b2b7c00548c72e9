package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
)

// State is the process-wide application state shared by every command:
// the account session, the agent registry and the persisted config they
// were built from.
type State struct {
	account  *AccountSession
	config   domain.Config
	registry *Registry
	repo     ports.ConfigRepository
	client   ports.ServiceClient
	logger   *slog.Logger
}

func NewState(cfg domain.Config, repo ports.ConfigRepository, client ports.ServiceClient, logger *slog.Logger) (*State, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cfg.NormalizeAgents()
	registry := NewRegistry(client, logger)
	for _, identity := range cfg.Agents {
		if _, err := registry.insert(identity, nil); err != nil {
			return nil, err
		}
	}

	return &State{
		account:  NewAccountSession(cfg.AccountToken),
		config:   cfg,
		registry: registry,
		repo:     repo,
		client:   client,
		logger:   logger,
	}, nil
}

// LoadState reads the persisted config and builds the state from it. A
// missing config yields an empty state; any read failure is fatal.
func LoadState(ctx context.Context, repo ports.ConfigRepository, client ports.ServiceClient, logger *slog.Logger) (*State, error) {
	cfg, err := repo.Load(ctx)
	if err != nil {
		return nil, domain.Persistence("load config", err)
	}

	return NewState(cfg, repo, client, logger)
}

func (s *State) Account() *AccountSession { return s.account }

func (s *State) Registry() *Registry { return s.registry }

func (s *State) Config() domain.Config { return s.config }

// Register creates a new agent remotely, persists its identity and adds
// its session to the registry. Any failure leaves the registry and the
// persisted config as they were.
func (s *State) Register(ctx context.Context, callsign domain.Callsign, faction domain.Faction) (*AgentSession, domain.Agent, error) {
	callsign = domain.NormalizeCallsign(string(callsign))
	if callsign == "" {
		return nil, domain.Agent{}, domain.RegistrationFailed(fmt.Errorf("callsign is required"))
	}
	if _, exists := s.registry.Get(callsign); exists {
		return nil, domain.Agent{}, domain.Conflict("%w: %s", domain.ErrAgentExists, callsign)
	}
	if strings.TrimSpace(s.account.Token()) == "" {
		return nil, domain.Agent{}, domain.RegistrationFailed(domain.ErrMissingAccountToken)
	}

	registration, err := s.client.RegisterAgent(ctx, s.account.Token(), callsign, faction)
	if err != nil {
		return nil, domain.Agent{}, domain.RegistrationFailed(err)
	}

	identity := domain.AgentIdentity{Callsign: callsign, Token: registration.Token}
	next := s.config.WithAgent(identity)
	if err := s.repo.Save(ctx, next); err != nil {
		return nil, domain.Agent{}, domain.Persistence("save config", err)
	}
	s.config = next

	agent := registration.Agent
	session, err := s.registry.insert(identity, &agent)
	if err != nil {
		return nil, domain.Agent{}, err
	}

	s.logger.Info("agent registered", "callsign", callsign, "faction", faction.Symbol())
	return session, agent, nil
}

// Login replaces the account token. The new token is persisted first; a
// failed write keeps the old one.
func (s *State) Login(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domain.Parse(fmt.Errorf("token is required"))
	}

	next := domain.Config{AccountToken: token, Agents: s.config.Agents}
	if err := s.repo.Save(ctx, next); err != nil {
		return domain.Persistence("save config", err)
	}

	s.config = next
	s.account = NewAccountSession(token)
	return nil
}

// ReferenceToken picks the token used for reference data such as
// waypoints, which any agent may read.
func (s *State) ReferenceToken() (string, bool) {
	sessions := s.registry.Sessions()
	if len(sessions) > 0 {
		return sessions[0].Token(), true
	}
	if token := s.account.Token(); token != "" {
		return token, true
	}
	return "", false
}
