package ports

import "context"

// HistoryStore persists shell input lines, oldest first.
type HistoryStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, lines []string) error
}
