// Package tasks owns the todo markdown file: reads, writes with backups,
// and a change watcher that notifies connected clients.
package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/questlog/questlog/internal/markdown"
	"github.com/questlog/questlog/internal/models"
)

const defaultContent = "# today\n\n# ideas\n\n# backlog\n"

// Broadcaster delivers a typed event to all connected clients.
type Broadcaster interface {
	Broadcast(event string, data any)
}

// Event types emitted by the task surface.
const (
	EventUpdate      = "update"
	EventFileChanged = "file_changed"
)

// Service reads and writes the todo file. Writes are serialized; the file on
// disk is the source of truth and may also be edited externally, which the
// watcher picks up.
type Service struct {
	path      string
	backupDir string
	gateway   Broadcaster
	logger    *slog.Logger

	mu sync.Mutex
}

func NewService(path, backupDir string, gateway Broadcaster, logger *slog.Logger) *Service {
	return &Service{
		path:      path,
		backupDir: backupDir,
		gateway:   gateway,
		logger:    logger,
	}
}

// Load parses the todo file, creating a skeleton file on first run.
func (s *Service) Load() (models.TaskFile, error) {
	content, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		if werr := os.WriteFile(s.path, []byte(defaultContent), 0o644); werr != nil {
			return nil, fmt.Errorf("create todo file: %w", werr)
		}
		return models.NewTaskFile(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read todo file: %w", err)
	}
	return markdown.Parse(string(content)), nil
}

// Save backs up the current file, then writes the new sections.
func (s *Service) Save(tf models.TaskFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, err := os.ReadFile(s.path); err == nil {
		if err := s.backup(existing); err != nil {
			return err
		}
	}

	if err := os.WriteFile(s.path, []byte(markdown.Serialize(tf)), 0o644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	return nil
}

func (s *Service) backup(content []byte) error {
	if err := os.MkdirAll(s.backupDir, 0o755); err != nil {
		return fmt.Errorf("create backup directory: %w", err)
	}
	name := fmt.Sprintf("todos_%s_%s.md",
		time.Now().Format("20060102_150405"),
		uuid.New().String()[:8],
	)
	if err := os.WriteFile(filepath.Join(s.backupDir, name), content, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	return nil
}

// Watch polls the file's mtime once a second and broadcasts the reparsed
// sections on any change, so edits made outside the API reach every client.
func (s *Service) Watch(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var lastMtime time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(s.path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMtime) {
				continue
			}
			lastMtime = info.ModTime()

			tf, err := s.Load()
			if err != nil {
				s.logger.Warn("todo file reload failed", "error", err)
				continue
			}
			s.gateway.Broadcast(EventFileChanged, tf)
		}
	}
}
