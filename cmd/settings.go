package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	historyfile "github.com/CollinDietz/space-traders-cli/internal/adapters/history/file"
	tomlrepo "github.com/CollinDietz/space-traders-cli/internal/adapters/repo/toml"
	"github.com/CollinDietz/space-traders-cli/internal/adapters/spacetraders"
)

const (
	settingsDirName  = "space-traders-cli"
	settingsFileName = "settings.toml"
	envPrefix        = "ST"

	apiBaseURLKey           = "api.base_url"
	apiRequestsPerSecondKey = "api.requests_per_second"
	apiTimeoutKey           = "api.timeout"
	hydrateConcurrencyKey   = "hydrate.concurrency"
)

func defaultSettingsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", settingsDirName), nil
}

// loadSettings layers defaults, the settings file and ST_* environment
// variables. A missing settings file is not an error.
func loadSettings(path string) (*viper.Viper, error) {
	dir, err := defaultSettingsDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault(tomlrepo.CredentialsPathKey, filepath.Join(dir, "credentials.toml"))
	v.SetDefault(historyfile.PathKey, filepath.Join(dir, "history"))
	v.SetDefault(historyfile.MaxEntriesKey, historyfile.DefaultMaxEntries)
	v.SetDefault(apiBaseURLKey, spacetraders.DefaultBaseURL)
	v.SetDefault(apiRequestsPerSecondKey, 2.0)
	v.SetDefault(apiTimeoutKey, 30*time.Second)
	v.SetDefault(hydrateConcurrencyKey, 4)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = filepath.Join(dir, settingsFileName)
	}
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read settings %s: %w", path, err)
		}
	}
	return v, nil
}
