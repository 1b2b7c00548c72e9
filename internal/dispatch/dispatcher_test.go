package dispatch

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/CollinDietz/space-traders-cli/internal/application"
	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/grammar"
	"github.com/CollinDietz/space-traders-cli/internal/ports/mocks"
	"github.com/CollinDietz/space-traders-cli/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

type harness struct {
	dispatcher *Dispatcher
	state      *application.State
	client     *mocks.MockServiceClient
	repo       *mocks.MockConfigRepository
	out        *bytes.Buffer
	errOut     *bytes.Buffer
}

func newHarness(t *testing.T, cfg domain.Config) *harness {
	t.Helper()

	client := mocks.NewMockServiceClient(t)
	repo := mocks.NewMockConfigRepository(t)
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(fixedNow).Maybe()

	state, err := application.NewState(cfg, repo, client, nil)
	require.NoError(t, err)

	h := &harness{state: state, client: client, repo: repo, out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	h.dispatcher = New(state, client, Options{Out: h.out, ErrOut: h.errOut, Clock: clock})
	return h
}

func oneAgent() domain.Config {
	return domain.Config{
		AccountToken: "account-token",
		Agents:       []domain.AgentIdentity{{Callsign: "ZETA-1", Token: "agent-token"}},
	}
}

func TestDispatchRegisterPrintsSummary(t *testing.T) {
	h := newHarness(t, domain.Config{AccountToken: "account-token"})
	agent := domain.Agent{Symbol: "ZETA-1", Credits: 175000, StartingFaction: domain.FactionCosmic}

	h.client.EXPECT().
		RegisterAgent(mock.Anything, "account-token", domain.Callsign("ZETA-1"), domain.FactionCosmic).
		Return(domain.Registration{Token: "new-token", Agent: agent}, nil).
		Once()
	h.repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()

	err := h.dispatcher.Dispatch(context.Background(), grammar.RegisterAgent{Callsign: "zeta-1", Faction: domain.FactionCosmic})
	require.NoError(t, err)

	assert.Contains(t, h.out.String(), "Successfully registered agent ZETA-1")
	assert.Contains(t, h.out.String(), "175,000 cr")
	assert.Equal(t, []domain.Callsign{"ZETA-1"}, h.state.Registry().ListCallsigns())
}

func TestDispatchRegisterFailureIsReported(t *testing.T) {
	h := newHarness(t, domain.Config{AccountToken: "account-token"})
	h.client.EXPECT().
		RegisterAgent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(domain.Registration{}, errors.New("symbol taken")).
		Once()

	err := h.dispatcher.Dispatch(context.Background(), grammar.RegisterAgent{Callsign: "ZETA-1", Faction: domain.FactionVoid})
	require.Error(t, err)

	assert.Equal(t, domain.KindRegistrationFailed, domain.KindOf(err))
	assert.Contains(t, h.errOut.String(), "Error: register agent: symbol taken")
	assert.Empty(t, h.out.String())
	assert.Zero(t, h.state.Registry().Len())
}

func TestDispatchDuplicateRegistrationIsAMessage(t *testing.T) {
	h := newHarness(t, oneAgent())

	err := h.dispatcher.Dispatch(context.Background(), grammar.RegisterAgent{Callsign: "ZETA-1", Faction: domain.FactionVoid})
	require.NoError(t, err)
	assert.Contains(t, h.out.String(), "Agent already registered: ZETA-1")
}

func TestDispatchUnknownAgentIsAMessage(t *testing.T) {
	commands := []grammar.Command{
		grammar.AgentInfo{Callsign: "GHOST"},
		grammar.ListContracts{Callsign: "GHOST"},
		grammar.ContractInfo{Callsign: "GHOST", ID: "c-1"},
		grammar.AcceptContract{Callsign: "GHOST", ID: "c-1"},
	}

	for _, command := range commands {
		t.Run(command.Path(), func(t *testing.T) {
			h := newHarness(t, oneAgent())

			err := h.dispatcher.Dispatch(context.Background(), command)
			require.NoError(t, err)
			assert.Contains(t, h.out.String(), "No known agent with that callsign")
			assert.Empty(t, h.errOut.String())
		})
	}
}

func TestDispatchListAgentsIsLocal(t *testing.T) {
	h := newHarness(t, domain.Config{Agents: []domain.AgentIdentity{
		{Callsign: "ZETA-1", Token: "a"},
		{Callsign: "ALPHA", Token: "b"},
	}})

	err := h.dispatcher.Dispatch(context.Background(), grammar.ListAgents{})
	require.NoError(t, err)

	output := h.out.String()
	assert.Less(t, bytes.Index(h.out.Bytes(), []byte("ZETA-1")), bytes.Index(h.out.Bytes(), []byte("ALPHA")))
	assert.Contains(t, output, "ALPHA")
}

func TestDispatchListAgentsEmpty(t *testing.T) {
	h := newHarness(t, domain.Config{})

	require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.ListAgents{}))
	assert.Contains(t, h.out.String(), "No agents registered")
}

func TestDispatchShowVersion(t *testing.T) {
	h := newHarness(t, domain.Config{})

	require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.ShowVersion{}))
	assert.Equal(t, version.Version+"\n", h.out.String())
	assert.Empty(t, h.errOut.String())
}

func TestDispatchAgentInfoReadsThrough(t *testing.T) {
	h := newHarness(t, oneAgent())
	h.client.EXPECT().
		GetAgent(mock.Anything, "agent-token").
		Return(domain.Agent{Symbol: "ZETA-1", Credits: 42, Headquarters: "X1-HQ-A1"}, nil).
		Once()

	for range 2 {
		require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.AgentInfo{Callsign: "ZETA-1"}))
	}
	assert.Contains(t, h.out.String(), "X1-HQ-A1")
}

func TestDispatchContractsAreFetchedOnce(t *testing.T) {
	h := newHarness(t, oneAgent())
	h.client.EXPECT().
		ListContracts(mock.Anything, "agent-token").
		Return([]domain.Contract{{ID: "c-1", Type: domain.ContractTypeProcurement, Terms: domain.ContractTerms{Deadline: fixedNow.Add(48 * time.Hour)}}}, nil).
		Once()

	ctx := context.Background()
	require.NoError(t, h.dispatcher.Dispatch(ctx, grammar.ListContracts{Callsign: "ZETA-1"}))
	require.NoError(t, h.dispatcher.Dispatch(ctx, grammar.ContractInfo{Callsign: "ZETA-1", ID: "c-1"}))

	output := h.out.String()
	assert.Contains(t, output, "1 contract")
	assert.Contains(t, output, "Contract c-1")
	assert.Contains(t, output, "in 2 days")
}

func TestDispatchAcceptContract(t *testing.T) {
	h := newHarness(t, oneAgent())
	h.client.EXPECT().
		ListContracts(mock.Anything, "agent-token").
		Return([]domain.Contract{{ID: "c-1"}}, nil).
		Once()
	h.client.EXPECT().
		AcceptContract(mock.Anything, "agent-token", "c-1").
		Return(domain.Contract{ID: "c-1", Accepted: true}, nil).
		Once()

	ctx := context.Background()
	require.NoError(t, h.dispatcher.Dispatch(ctx, grammar.AcceptContract{Callsign: "ZETA-1", ID: "c-1"}))
	require.NoError(t, h.dispatcher.Dispatch(ctx, grammar.AcceptContract{Callsign: "ZETA-1", ID: "c-1"}))

	assert.Contains(t, h.out.String(), "Contract accepted: c-1")
}

func TestDispatchAcceptFailureIsReturned(t *testing.T) {
	h := newHarness(t, oneAgent())
	h.client.EXPECT().ListContracts(mock.Anything, mock.Anything).Return([]domain.Contract{{ID: "c-1"}}, nil).Once()
	h.client.EXPECT().AcceptContract(mock.Anything, mock.Anything, "c-1").Return(domain.Contract{}, errors.New("deadline passed")).Once()

	err := h.dispatcher.Dispatch(context.Background(), grammar.AcceptContract{Callsign: "ZETA-1", ID: "c-1"})
	require.Error(t, err)
	assert.Equal(t, domain.KindRemoteCallFailed, domain.KindOf(err))
	assert.Contains(t, h.errOut.String(), "accept contract: deadline passed")
}

func TestDispatchListWaypointsUsesAgentToken(t *testing.T) {
	h := newHarness(t, oneAgent())
	waypointType := domain.WaypointTypeGasGiant
	query := domain.WaypointQuery{System: "X1-DF55", Type: &waypointType}

	h.client.EXPECT().
		ListWaypoints(mock.Anything, "agent-token", query).
		Return([]domain.Waypoint{{Symbol: "X1-DF55-A1", Type: domain.WaypointTypeGasGiant}}, nil).
		Once()

	require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.ListWaypoints{Query: query}))
	assert.Contains(t, h.out.String(), "X1-DF55-A1")
	assert.Contains(t, h.out.String(), "1 waypoint")
}

func TestDispatchWaypointsWithoutAnyToken(t *testing.T) {
	h := newHarness(t, domain.Config{})

	err := h.dispatcher.Dispatch(context.Background(), grammar.ListWaypoints{Query: domain.WaypointQuery{System: "X1-DF55"}})
	require.ErrorIs(t, err, domain.ErrMissingAccountToken)
	assert.Contains(t, h.errOut.String(), "account login")
}

func TestDispatchWaypointInfo(t *testing.T) {
	h := newHarness(t, domain.Config{AccountToken: "account-token"})
	h.client.EXPECT().
		GetWaypoint(mock.Anything, "account-token", "X1-DF55-A1").
		Return(domain.Waypoint{Symbol: "X1-DF55-A1", SystemSymbol: "X1-DF55", Type: domain.WaypointTypeMoon}, nil).
		Once()

	require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.WaypointInfo{Symbol: "X1-DF55-A1"}))
	assert.Contains(t, h.out.String(), "Moon")
}

func TestDispatchLogin(t *testing.T) {
	h := newHarness(t, domain.Config{})
	h.repo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(cfg domain.Config) bool { return cfg.AccountToken == "fresh" })).
		Return(nil).
		Once()

	require.NoError(t, h.dispatcher.Dispatch(context.Background(), grammar.Login{Token: "fresh"}))
	assert.Equal(t, "fresh", h.state.Account().Token())
	assert.Contains(t, h.out.String(), "Account token updated")
}

func TestSentence(t *testing.T) {
	assert.Equal(t, "No known agent", sentence("no known agent"))
	assert.Equal(t, "", sentence(""))
}
