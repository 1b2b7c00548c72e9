package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/CollinDietz/space-traders-cli/internal/adapters/fsutil"
	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
)

const (
	CredentialsPathKey = "credentials.path"

	tempFilePattern = ".credentials-*.toml.tmp"
)

// Repository stores the account token and agent identities in one TOML
// file. Writes replace the file atomically.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ConfigRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(CredentialsPathKey)
	if path == "" {
		return nil, errors.New("credentials path is empty")
	}
	path, err := fsutil.AbsPath(path)
	if err != nil {
		return nil, err
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string { return r.path }

// Load returns empty defaults when the file does not exist yet.
func (r *Repository) Load(ctx context.Context) (domain.Config, error) {
	if err := ctx.Err(); err != nil {
		return domain.Config{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Config{}, err
	}

	return fromSchema(file), nil
}

func (r *Repository) Save(ctx context.Context, cfg domain.Config) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate credentials: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeSchema(toSchema(cfg))
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read credentials file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode credentials file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode credentials file: %w", err)
	}

	if err := fsutil.WriteFileAtomic(r.path, data, tempFilePattern); err != nil {
		return fmt.Errorf("write credentials file: %w", err)
	}
	return nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func toSchema(cfg domain.Config) fileSchema {
	agents := make([]agentSchema, 0, len(cfg.Agents))
	for _, agent := range cfg.Agents {
		agents = append(agents, agentSchema{ID: string(agent.Callsign), Token: agent.Token})
	}

	return fileSchema{
		Version:      currentSchemaVersion,
		AccountToken: cfg.AccountToken,
		Agents:       agents,
	}
}

func fromSchema(file fileSchema) domain.Config {
	cfg := domain.Config{AccountToken: file.AccountToken}
	for _, agent := range file.Agents {
		cfg.Agents = append(cfg.Agents, domain.AgentIdentity{
			Callsign: domain.Callsign(agent.ID),
			Token:    agent.Token,
		})
	}
	cfg.NormalizeAgents()
	return cfg
}
