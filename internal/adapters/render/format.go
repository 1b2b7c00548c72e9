package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// displayName turns a service symbol such as "GAS_GIANT" into "Gas Giant".
func displayName(symbol string) string {
	if symbol == "" {
		return "unknown"
	}
	return titleCaser.String(strings.ReplaceAll(strings.ToLower(symbol), "_", " "))
}

func credits(amount int64) string {
	return humanize.Comma(amount) + " cr"
}

// relative renders t against now as "in 3 days" or "2 hours ago".
func relative(t, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return t.UTC().Format(time.RFC3339)
	}
	if t.After(now) {
		delta := strings.TrimSpace(humanize.RelTime(now, t, "", ""))
		if delta == "now" {
			return delta
		}
		return "in " + delta
	}
	return humanize.RelTime(t, now, "ago", "")
}

func deadlineColor(deadline, now time.Time) lipgloss.Color {
	if now.IsZero() || deadline.IsZero() {
		return lipgloss.Color("252")
	}
	if !deadline.After(now) {
		return lipgloss.Color("203")
	}

	remaining := deadline.Sub(now)
	horizon := 7 * 24 * time.Hour
	return interpolateColor(horizon.Seconds()-remaining.Seconds(), 0, horizon.Seconds())
}

// interpolateColor maps value onto the 250..255 greyscale ramp, brighter
// as the value approaches max.
func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	baseColor := 245.0
	targetColor := 255.0
	return lipgloss.Color(fmt.Sprintf("%d", int(baseColor+(targetColor-baseColor)*normalized)))
}

func progressBar(done, total, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(done) / float64(total)))
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}
