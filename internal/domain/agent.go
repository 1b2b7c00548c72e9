package domain

import "strings"

// Callsign is the registry key of an agent. The service stores symbols in
// upper case, so lookups are normalized the same way.
type Callsign string

func NormalizeCallsign(raw string) Callsign {
	return Callsign(strings.ToUpper(strings.TrimSpace(raw)))
}

func (c Callsign) String() string { return string(c) }

// AgentIdentity is the persisted credential of one agent.
type AgentIdentity struct {
	Callsign Callsign
	Token    string
}

// Agent is the service's view of an agent.
type Agent struct {
	Symbol          string
	AccountID       string
	Headquarters    string
	Credits         int64
	StartingFaction Faction
	ShipCount       int
}

// Registration is the result of creating a new agent.
type Registration struct {
	Token string
	Agent Agent
}
