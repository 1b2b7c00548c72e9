package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version      int           `toml:"version"`
	AccountToken string        `toml:"account_token"`
	Agents       []agentSchema `toml:"agents"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported credentials schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type agentSchema struct {
	ID    string `toml:"id"`
	Token string `toml:"token"`
}
