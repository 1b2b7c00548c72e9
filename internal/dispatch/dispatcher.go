package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/CollinDietz/space-traders-cli/internal/adapters/progress"
	"github.com/CollinDietz/space-traders-cli/internal/adapters/render"
	"github.com/CollinDietz/space-traders-cli/internal/application"
	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/grammar"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
	"github.com/CollinDietz/space-traders-cli/internal/version"
)

// Options carries the collaborators of a Dispatcher. Zero values fall
// back to discarding output and logs, no progress display and the system
// clock.
type Options struct {
	Out      io.Writer
	ErrOut   io.Writer
	Logger   *slog.Logger
	Progress progress.Runner
	Clock    ports.Clock
}

// Dispatcher performs exactly one logical operation per parsed command and
// renders its result.
type Dispatcher struct {
	state    *application.State
	client   ports.ServiceClient
	renderer *render.Renderer
	out      io.Writer
	errOut   io.Writer
	logger   *slog.Logger
	progress progress.Runner
	clock    ports.Clock
}

func New(state *application.State, client ports.ServiceClient, opts Options) *Dispatcher {
	d := &Dispatcher{
		state:    state,
		client:   client,
		renderer: render.New(),
		out:      opts.Out,
		errOut:   opts.ErrOut,
		logger:   opts.Logger,
		progress: opts.Progress,
		clock:    opts.Clock,
	}
	if d.out == nil {
		d.out = io.Discard
	}
	if d.errOut == nil {
		d.errOut = io.Discard
	}
	if d.logger == nil {
		d.logger = slog.New(slog.DiscardHandler)
	}
	if d.progress == nil {
		d.progress = progress.Silent{}
	}
	if d.clock == nil {
		d.clock = ports.SystemClock{}
	}
	return d
}

// Dispatch runs command against the application state. Local misses are
// printed as a message and reported as success. Any other failure is
// printed to the error stream and returned; it is never retried.
func (d *Dispatcher) Dispatch(ctx context.Context, command grammar.Command) error {
	logger := d.logger.With("command", command.Path(), "request_id", uuid.NewString())
	logger.Debug("dispatching command")

	err := d.run(ctx, command)
	if err == nil {
		logger.Debug("command completed")
		return nil
	}

	kind := domain.KindOf(err)
	if domain.Recoverable(err) {
		logger.Info("command recovered", "kind", kind, "error", err)
		d.println(d.out, d.renderer.Notice(sentence(err.Error())))
		return nil
	}

	logger.Error("command failed", "kind", kind, "error", err)
	d.println(d.errOut, d.renderer.Error(err))
	return err
}

func (d *Dispatcher) run(ctx context.Context, command grammar.Command) error {
	switch c := command.(type) {
	case grammar.RegisterAgent:
		return d.registerAgent(ctx, c)
	case grammar.Login:
		return d.login(ctx, c)
	case grammar.ListAgents:
		return d.listAgents()
	case grammar.AgentInfo:
		return d.agentInfo(ctx, c)
	case grammar.ListContracts:
		return d.listContracts(ctx, c)
	case grammar.ContractInfo:
		return d.contractInfo(ctx, c)
	case grammar.AcceptContract:
		return d.acceptContract(ctx, c)
	case grammar.ListWaypoints:
		return d.listWaypoints(ctx, c)
	case grammar.WaypointInfo:
		return d.waypointInfo(ctx, c)
	case grammar.ShowVersion:
		d.println(d.out, version.Version)
		return nil
	default:
		return domain.Parse(fmt.Errorf("unsupported command %T", command))
	}
}

func (d *Dispatcher) registerAgent(ctx context.Context, c grammar.RegisterAgent) error {
	var agent domain.Agent
	err := d.progress.Run(ctx, "Registering agent...", func(ctx context.Context) error {
		var err error
		_, agent, err = d.state.Register(ctx, c.Callsign, c.Faction)
		return err
	})
	if err != nil {
		return err
	}

	d.println(d.out, d.renderer.Success(fmt.Sprintf("Successfully registered agent %s", domain.NormalizeCallsign(string(c.Callsign)))))
	d.println(d.out, d.renderer.Agent(agent))
	return nil
}

func (d *Dispatcher) login(ctx context.Context, c grammar.Login) error {
	if err := d.state.Login(ctx, c.Token); err != nil {
		return err
	}
	d.println(d.out, d.renderer.Success("Account token updated"))
	return nil
}

func (d *Dispatcher) listAgents() error {
	sessions := d.state.Registry().Sessions()
	if len(sessions) == 0 {
		d.println(d.out, d.renderer.Notice("No agents registered"))
		return nil
	}

	for _, session := range sessions {
		var cached *domain.Agent
		if agent, ok := session.CachedAgent(); ok {
			cached = &agent
		}
		d.println(d.out, d.renderer.AgentLine(session.Callsign(), cached))
	}
	return nil
}

func (d *Dispatcher) agentInfo(ctx context.Context, c grammar.AgentInfo) error {
	registry := d.state.Registry()

	var agent domain.Agent
	err := d.progress.Run(ctx, "Fetching agent...", func(ctx context.Context) error {
		var err error
		if c.Refresh {
			agent, err = registry.RefreshAgent(ctx, c.Callsign)
		} else {
			agent, err = registry.Agent(ctx, c.Callsign)
		}
		return err
	})
	if err != nil {
		return err
	}

	d.println(d.out, d.renderer.Agent(agent))
	return nil
}

func (d *Dispatcher) listContracts(ctx context.Context, c grammar.ListContracts) error {
	var contracts []domain.Contract
	err := d.progress.Run(ctx, "Fetching contracts...", func(ctx context.Context) error {
		var err error
		contracts, err = d.state.Registry().Contracts(ctx, c.Callsign)
		return err
	})
	if err != nil {
		return err
	}

	if len(contracts) == 0 {
		d.println(d.out, d.renderer.Notice("No contracts"))
		return nil
	}

	now := d.clock.Now()
	for _, contract := range contracts {
		d.println(d.out, d.renderer.ContractLine(contract, now))
	}
	d.println(d.out, d.renderer.Count(len(contracts), "contract"))
	return nil
}

func (d *Dispatcher) contractInfo(ctx context.Context, c grammar.ContractInfo) error {
	var contract domain.Contract
	err := d.progress.Run(ctx, "Fetching contract...", func(ctx context.Context) error {
		cached, err := d.state.Registry().EditContract(ctx, c.Callsign, c.ID)
		if err != nil {
			return err
		}
		contract = *cached
		return nil
	})
	if err != nil {
		return err
	}

	d.println(d.out, d.renderer.Contract(contract, d.clock.Now()))
	return nil
}

func (d *Dispatcher) acceptContract(ctx context.Context, c grammar.AcceptContract) error {
	var contract domain.Contract
	err := d.progress.Run(ctx, "Accepting contract...", func(ctx context.Context) error {
		var err error
		contract, err = d.state.Registry().AcceptContract(ctx, c.Callsign, c.ID)
		return err
	})
	if err != nil {
		return err
	}

	d.println(d.out, d.renderer.Success("Contract accepted: "+contract.ID))
	d.println(d.out, d.renderer.ContractLine(contract, d.clock.Now()))
	return nil
}

func (d *Dispatcher) listWaypoints(ctx context.Context, c grammar.ListWaypoints) error {
	token, err := d.referenceToken()
	if err != nil {
		return domain.RemoteCallFailed("list waypoints", err)
	}

	var waypoints []domain.Waypoint
	err = d.progress.Run(ctx, "Fetching waypoints...", func(ctx context.Context) error {
		var err error
		waypoints, err = d.client.ListWaypoints(ctx, token, c.Query)
		return err
	})
	if err != nil {
		return domain.RemoteCallFailed("list waypoints", err)
	}

	if len(waypoints) == 0 {
		d.println(d.out, d.renderer.Notice("No waypoints match in "+c.Query.System))
		return nil
	}

	for _, waypoint := range waypoints {
		d.println(d.out, d.renderer.WaypointLine(waypoint))
	}
	d.println(d.out, d.renderer.Count(len(waypoints), "waypoint"))
	return nil
}

func (d *Dispatcher) waypointInfo(ctx context.Context, c grammar.WaypointInfo) error {
	token, err := d.referenceToken()
	if err != nil {
		return domain.RemoteCallFailed("get waypoint", err)
	}

	var waypoint domain.Waypoint
	err = d.progress.Run(ctx, "Fetching waypoint...", func(ctx context.Context) error {
		var err error
		waypoint, err = d.client.GetWaypoint(ctx, token, c.Symbol)
		return err
	})
	if err != nil {
		return domain.RemoteCallFailed("get waypoint", err)
	}

	d.println(d.out, d.renderer.Waypoint(waypoint))
	return nil
}

func (d *Dispatcher) referenceToken() (string, error) {
	token, ok := d.state.ReferenceToken()
	if !ok {
		return "", fmt.Errorf("%w: run 'account login' or 'account register' first", domain.ErrMissingAccountToken)
	}
	return token, nil
}

func (d *Dispatcher) println(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, text)
}

// sentence upper-cases the first letter of an error message.
func sentence(message string) string {
	message = strings.TrimSpace(message)
	r, size := utf8.DecodeRuneInString(message)
	if r == utf8.RuneError {
		return message
	}
	return string(unicode.ToUpper(r)) + message[size:]
}
