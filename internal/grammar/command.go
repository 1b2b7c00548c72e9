package grammar

import "github.com/CollinDietz/space-traders-cli/internal/domain"

// Command is a fully parsed and validated leaf command.
type Command interface {
	Path() string
}

type RegisterAgent struct {
	Callsign domain.Callsign
	Faction  domain.Faction
}

type Login struct {
	Token string
}

type ListAgents struct{}

type AgentInfo struct {
	Callsign domain.Callsign
	Refresh  bool
}

type ListContracts struct {
	Callsign domain.Callsign
}

type ContractInfo struct {
	Callsign domain.Callsign
	ID       string
}

type AcceptContract struct {
	Callsign domain.Callsign
	ID       string
}

type ListWaypoints struct {
	Query domain.WaypointQuery
}

type WaypointInfo struct {
	Symbol string
}

type ShowVersion struct{}

func (RegisterAgent) Path() string  { return "account register" }
func (Login) Path() string          { return "account login" }
func (ListAgents) Path() string     { return "agent list-agents" }
func (AgentInfo) Path() string      { return "agent info" }
func (ListContracts) Path() string  { return "contract list" }
func (ContractInfo) Path() string   { return "contract info" }
func (AcceptContract) Path() string { return "contract accept" }
func (ListWaypoints) Path() string  { return "system list-waypoints" }
func (WaypointInfo) Path() string   { return "system waypoint-info" }
func (ShowVersion) Path() string    { return "version" }
