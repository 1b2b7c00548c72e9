package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	historyfile "github.com/CollinDietz/space-traders-cli/internal/adapters/history/file"
	"github.com/CollinDietz/space-traders-cli/internal/adapters/progress"
	tomlrepo "github.com/CollinDietz/space-traders-cli/internal/adapters/repo/toml"
	"github.com/CollinDietz/space-traders-cli/internal/adapters/spacetraders"
	"github.com/CollinDietz/space-traders-cli/internal/application"
	"github.com/CollinDietz/space-traders-cli/internal/dispatch"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
	"github.com/CollinDietz/space-traders-cli/internal/version"
)

type app struct {
	settings   *viper.Viper
	logger     *slog.Logger
	state      *application.State
	dispatcher *dispatch.Dispatcher
	history    ports.HistoryStore
	progress   progress.Runner
}

func wireApp(ctx context.Context, cmd *cobra.Command, opts *rootOptions) (*app, error) {
	settings, err := loadSettings(opts.settingsPath)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)

	repo, err := tomlrepo.NewRepository(settings)
	if err != nil {
		return nil, fmt.Errorf("wire credentials repository: %w", err)
	}

	history, err := historyfile.NewStore(settings)
	if err != nil {
		return nil, fmt.Errorf("wire history store: %w", err)
	}

	client := spacetraders.Client{
		BaseURL:        settings.GetString(apiBaseURLKey),
		HTTPClient:     http.DefaultClient,
		Limiter:        spacetraders.NewLimiter(settings.GetFloat64(apiRequestsPerSecondKey)),
		RequestTimeout: settings.GetDuration(apiTimeoutKey),
		UserAgent:      "space-traders-cli/" + version.Version,
	}

	state, err := application.LoadState(ctx, repo, client, logger)
	if err != nil {
		return nil, err
	}
	logger.Debug("state loaded", "credentials", repo.Path(), "agents", state.Registry().Len())

	runner := newProgress(cmd.ErrOrStderr())
	return &app{
		settings: settings,
		logger:   logger,
		state:    state,
		dispatcher: dispatch.New(state, client, dispatch.Options{
			Out:      cmd.OutOrStdout(),
			ErrOut:   cmd.ErrOrStderr(),
			Logger:   logger,
			Progress: runner,
			Clock:    ports.SystemClock{},
		}),
		history:  history,
		progress: runner,
	}, nil
}

// newProgress shows a spinner only when w is a terminal.
func newProgress(w io.Writer) progress.Runner {
	if isTerminal(w) {
		return progress.NewSpinner(w)
	}
	return progress.Silent{}
}
