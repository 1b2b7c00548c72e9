package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigNormalizeAgents(t *testing.T) {
	cfg := Config{Agents: []AgentIdentity{
		{Callsign: " zeta-1 ", Token: " tok-a "},
		{Callsign: "", Token: "orphan"},
		{Callsign: "ZETA-1", Token: "tok-b"},
		{Callsign: "alpha", Token: "tok-c"},
	}}

	cfg.NormalizeAgents()

	require.Len(t, cfg.Agents, 2)
	assert.Equal(t, AgentIdentity{Callsign: "ZETA-1", Token: "tok-a"}, cfg.Agents[0])
	assert.Equal(t, AgentIdentity{Callsign: "ALPHA", Token: "tok-c"}, cfg.Agents[1])
}

func TestConfigNormalizeWithoutAgentsIsNil(t *testing.T) {
	for _, agents := range [][]AgentIdentity{nil, {}, {{Callsign: "  ", Token: "orphan"}}} {
		cfg := Config{AccountToken: "account-token", Agents: agents}
		cfg.NormalizeAgents()
		assert.Nil(t, cfg.Agents)
		assert.Equal(t, Config{AccountToken: "account-token"}, cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		agents  []AgentIdentity
		wantErr string
	}{
		{name: "empty config is valid"},
		{name: "missing token", agents: []AgentIdentity{{Callsign: "A"}}, wantErr: "token is required"},
		{name: "missing id", agents: []AgentIdentity{{Token: "t"}}, wantErr: "id is required"},
		{name: "duplicate", agents: []AgentIdentity{{Callsign: "A", Token: "1"}, {Callsign: "A", Token: "2"}}, wantErr: "duplicate id A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Config{Agents: tt.agents}.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigWithAgentDoesNotAlias(t *testing.T) {
	base := Config{AccountToken: "acct", Agents: make([]AgentIdentity, 1, 4)}
	base.Agents[0] = AgentIdentity{Callsign: "A", Token: "1"}

	next := base.WithAgent(AgentIdentity{Callsign: "B", Token: "2"})

	assert.Len(t, base.Agents, 1)
	require.Len(t, next.Agents, 2)
	assert.Equal(t, "acct", next.AccountToken)

	_, ok := next.Lookup("B")
	assert.True(t, ok)
	_, ok = base.Lookup("B")
	assert.False(t, ok)
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "nil", err: nil, want: ""},
		{name: "unknown agent", err: UnknownAgent("ZETA"), want: KindUnknownAgent},
		{name: "wrapped unknown contract", err: fmt.Errorf("edit: %w", UnknownContract("ZETA", "c1")), want: KindUnknownContract},
		{name: "bare sentinel", err: ErrAgentExists, want: KindConflict},
		{name: "persistence", err: Persistence("save config", errors.New("disk full")), want: KindPersistence},
		{name: "plain transport error", err: errors.New("connection reset"), want: KindRemoteCallFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessagesKeepCause(t *testing.T) {
	err := RemoteCallFailed("contract accept", ErrNotFound)
	assert.Equal(t, "contract accept: not found", err.Error())
	assert.ErrorIs(t, err, ErrNotFound)

	assert.True(t, Recoverable(UnknownAgent("X")))
	assert.False(t, Recoverable(RegistrationFailed(errors.New("boom"))))
}

func TestSystemOfWaypoint(t *testing.T) {
	system, err := SystemOfWaypoint("x1-df55-20250Z")
	require.NoError(t, err)
	assert.Equal(t, "X1-DF55", system)

	_, err = SystemOfWaypoint("X1-DF55")
	require.Error(t, err)
}
