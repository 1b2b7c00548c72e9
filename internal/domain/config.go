package domain

import (
	"fmt"
	"strings"
)

// Config is the persisted credential set: one account token and the
// known agents in registration order.
type Config struct {
	AccountToken string
	Agents       []AgentIdentity
}

func (c Config) Validate() error {
	seen := make(map[Callsign]struct{}, len(c.Agents))
	for i, agent := range c.Agents {
		if strings.TrimSpace(string(agent.Callsign)) == "" {
			return fmt.Errorf("agents[%d]: id is required", i)
		}
		if strings.TrimSpace(agent.Token) == "" {
			return fmt.Errorf("agents[%d] %s: token is required", i, agent.Callsign)
		}
		if _, ok := seen[agent.Callsign]; ok {
			return fmt.Errorf("agents[%d]: duplicate id %s", i, agent.Callsign)
		}
		seen[agent.Callsign] = struct{}{}
	}
	return nil
}

// NormalizeAgents upper-cases callsigns and drops blank or repeated
// entries, keeping the first occurrence.
func (c *Config) NormalizeAgents() {
	if c == nil {
		return
	}

	agents := make([]AgentIdentity, 0, len(c.Agents))
	seen := make(map[Callsign]struct{}, len(c.Agents))
	for _, agent := range c.Agents {
		callsign := NormalizeCallsign(string(agent.Callsign))
		if callsign == "" {
			continue
		}
		if _, ok := seen[callsign]; ok {
			continue
		}
		seen[callsign] = struct{}{}
		agents = append(agents, AgentIdentity{Callsign: callsign, Token: strings.TrimSpace(agent.Token)})
	}

	if len(agents) == 0 {
		agents = nil
	}
	c.Agents = agents
}

// WithAgent returns a copy of c with identity appended.
func (c Config) WithAgent(identity AgentIdentity) Config {
	agents := make([]AgentIdentity, 0, len(c.Agents)+1)
	agents = append(agents, c.Agents...)
	agents = append(agents, identity)
	return Config{AccountToken: c.AccountToken, Agents: agents}
}

func (c Config) Lookup(callsign Callsign) (AgentIdentity, bool) {
	for _, agent := range c.Agents {
		if agent.Callsign == callsign {
			return agent, true
		}
	}
	return AgentIdentity{}, false
}
