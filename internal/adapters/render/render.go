package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
)

const deliverableBarWidth = 16

// Renderer formats domain records for the terminal: a long form for
// single records and a one-line form for lists.
type Renderer struct {
	styles styles
}

func New() *Renderer {
	return &Renderer{styles: newStyles()}
}

type field struct {
	label string
	value string
}

func (r *Renderer) fields(fields []field) string {
	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}

	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		label := r.styles.label.Render(fmt.Sprintf("%-*s", width+1, f.label+":"))
		lines = append(lines, label+" "+r.styles.detail.Render(f.value))
	}
	return r.styles.section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (r *Renderer) Agent(agent domain.Agent) string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.title.Render(agent.Symbol),
		r.fields([]field{
			{"account", orDash(agent.AccountID)},
			{"headquarters", orDash(agent.Headquarters)},
			{"faction", displayName(string(agent.StartingFaction))},
			{"credits", credits(agent.Credits)},
			{"ships", fmt.Sprintf("%d", agent.ShipCount)},
		}),
	)
}

// AgentLine lists a known callsign, with details when a record is cached.
func (r *Renderer) AgentLine(callsign domain.Callsign, agent *domain.Agent) string {
	name := r.styles.title.Render(string(callsign))
	if agent == nil {
		return name
	}
	return strings.Join([]string{
		name,
		r.styles.detail.Render(credits(agent.Credits)),
		r.styles.header.Render(agent.Headquarters),
		r.styles.header.Render(displayName(string(agent.StartingFaction))),
	}, "  ")
}

func (r *Renderer) Contract(contract domain.Contract, now time.Time) string {
	deadline := lipgloss.NewStyle().Foreground(deadlineColor(contract.Terms.Deadline, now))

	fields := []field{
		{"status", r.status(contract)},
		{"faction", displayName(string(contract.FactionSymbol))},
	}
	if !contract.Accepted {
		fields = append(fields, field{"accept by", relative(contract.DeadlineToAccept, now)})
	}
	fields = append(fields,
		field{"deadline", deadline.Render(relative(contract.Terms.Deadline, now)) + r.styles.header.Render(" ("+formatTimestamp(contract.Terms.Deadline)+")")},
		field{"payment", fmt.Sprintf("%s on accept, %s on fulfil", credits(contract.Terms.Payment.OnAccepted), credits(contract.Terms.Payment.OnFulfilled))},
	)

	parts := []string{
		r.styles.title.Render(fmt.Sprintf("Contract %s", contract.ID)) + " " + r.styles.header.Render("("+displayName(string(contract.Type))+")"),
		r.fields(fields),
	}

	if len(contract.Terms.Deliver) > 0 {
		lines := []string{r.styles.label.Render("deliver:")}
		for _, item := range contract.Terms.Deliver {
			lines = append(lines, "  "+r.deliverable(item))
		}
		parts = append(parts, r.styles.section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (r *Renderer) ContractLine(contract domain.Contract, now time.Time) string {
	return strings.Join([]string{
		r.styles.title.Render(contract.ID),
		r.styles.detail.Render(displayName(string(contract.Type))),
		r.styles.header.Render(displayName(string(contract.FactionSymbol))),
		r.status(contract),
		r.styles.detail.Render("due " + relative(contract.Terms.Deadline, now)),
		r.styles.detail.Render(credits(contract.Terms.Payment.OnAccepted + contract.Terms.Payment.OnFulfilled)),
	}, "  ")
}

func (r *Renderer) deliverable(item domain.Deliverable) string {
	return fmt.Sprintf("%s -> %s  %s %d/%d",
		item.TradeSymbol,
		item.DestinationSymbol,
		progressBar(item.UnitsFulfilled, item.UnitsRequired, deliverableBarWidth, r.styles),
		item.UnitsFulfilled,
		item.UnitsRequired,
	)
}

func (r *Renderer) status(contract domain.Contract) string {
	switch contract.Status() {
	case "fulfilled", "accepted":
		return r.styles.success.Render(contract.Status())
	default:
		return r.styles.warning.Render(contract.Status())
	}
}

func (r *Renderer) Waypoint(waypoint domain.Waypoint) string {
	charted := "uncharted"
	if waypoint.Charted {
		charted = "by " + orDash(waypoint.ChartedBy)
	}

	faction := "-"
	if waypoint.Faction != "" {
		faction = displayName(string(waypoint.Faction))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		r.styles.title.Render(waypoint.Symbol)+" "+r.styles.header.Render("("+displayName(string(waypoint.Type))+")"),
		r.fields([]field{
			{"system", orDash(waypoint.SystemSymbol)},
			{"position", fmt.Sprintf("(%d, %d)", waypoint.X, waypoint.Y)},
			{"faction", faction},
			{"traits", orDash(traitNames(waypoint.Traits))},
			{"orbitals", orDash(strings.Join(waypoint.Orbitals, ", "))},
			{"charted", charted},
		}),
	)
}

func (r *Renderer) WaypointLine(waypoint domain.Waypoint) string {
	parts := []string{
		r.styles.title.Render(waypoint.Symbol),
		r.styles.detail.Render(displayName(string(waypoint.Type))),
		r.styles.header.Render(fmt.Sprintf("(%d, %d)", waypoint.X, waypoint.Y)),
	}
	if traits := traitNames(waypoint.Traits); traits != "" {
		parts = append(parts, r.styles.detail.Render(traits))
	}
	return strings.Join(parts, "  ")
}

// Count renders a list footer such as "3 contracts".
func (r *Renderer) Count(n int, noun string) string {
	if n != 1 {
		noun += "s"
	}
	return r.styles.header.Render(fmt.Sprintf("%d %s", n, noun))
}

func (r *Renderer) Notice(message string) string {
	return r.styles.muted.Render(message)
}

func (r *Renderer) Success(message string) string {
	return r.styles.success.Render(message)
}

func (r *Renderer) Error(err error) string {
	return r.styles.warning.Render("Error:") + " " + err.Error()
}

func traitNames(traits []domain.WaypointTrait) string {
	names := make([]string, 0, len(traits))
	for _, trait := range traits {
		names = append(names, displayName(string(trait)))
	}
	return strings.Join(names, ", ")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.UTC().Format("2006-01-02 15:04 UTC")
}

func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
