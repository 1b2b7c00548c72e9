package file

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/CollinDietz/space-traders-cli/internal/adapters/fsutil"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
)

const (
	PathKey       = "history.path"
	MaxEntriesKey = "history.max_entries"

	DefaultMaxEntries = 500
	tempFilePattern   = ".history-*.tmp"

	// Longer lines are skipped on load.
	maxLineBytes = 64 * 1024
)

// Store keeps shell history as a plain text file, one line per entry,
// oldest first. Only the newest maxEntries lines are written back.
type Store struct {
	path       string
	maxEntries int
}

var _ ports.HistoryStore = (*Store)(nil)

func NewStore(cfg *viper.Viper) (*Store, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(PathKey)
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	path, err := fsutil.AbsPath(path)
	if err != nil {
		return nil, err
	}

	maxEntries := cfg.GetInt(MaxEntriesKey)
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &Store{path: path, maxEntries: maxEntries}, nil
}

func (s *Store) Load(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open history file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	reader := bufio.NewReader(f)
	for {
		raw, err := reader.ReadString('\n')
		line := strings.TrimRight(raw, "\r\n")
		if len(line) <= maxLineBytes && strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read history file: %w", err)
		}
	}

	return s.trim(lines), nil
}

func (s *Store) Save(ctx context.Context, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	for _, line := range s.trim(lines) {
		line = strings.ReplaceAll(line, "\n", " ")
		if strings.TrimSpace(line) == "" {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if err := fsutil.WriteFileAtomic(s.path, []byte(b.String()), tempFilePattern); err != nil {
		return fmt.Errorf("write history file: %w", err)
	}
	return nil
}

func (s *Store) trim(lines []string) []string {
	if len(lines) <= s.maxEntries {
		return lines
	}
	return lines[len(lines)-s.maxEntries:]
}
