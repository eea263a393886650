// Package seed performs the one-time initial population of the task
// collection from a remote endpoint. It only runs when no task data
// has ever been stored; a failed fetch leaves the store untouched and
// is retried on the next startup.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// DefaultTimeout bounds the seed fetch so a dead endpoint cannot hang
// startup indefinitely.
const DefaultTimeout = 10 * time.Second

// record is the loose shape the endpoint returns. Fields the endpoint
// omits are defaulted during normalization.
type record struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Column      string   `json:"column"`
	Assignees   []string `json:"assignees"`
}

// Loader fetches and stores the initial task collection.
type Loader struct {
	store   store.Store
	bus     events.Publisher
	client  *http.Client
	url     string
	timeout time.Duration
}

// NewLoader creates a loader for the given endpoint. A zero timeout
// falls back to DefaultTimeout.
func NewLoader(s store.Store, bus events.Publisher, url string, timeout time.Duration) *Loader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Loader{
		store:   s,
		bus:     bus,
		client:  &http.Client{Timeout: timeout},
		url:     url,
		timeout: timeout,
	}
}

// Load populates the task collection from the endpoint if, and only
// if, no task data exists yet. It re-checks before writing so tasks
// created while the fetch was in flight are never overwritten. Fetch
// failures are logged and reported but leave the store empty.
func (l *Loader) Load(ctx context.Context) (int, error) {
	exists, err := store.Has(ctx, l.store, store.KeyTasks)
	if err != nil {
		return 0, fmt.Errorf("failed to check for existing tasks: %w", err)
	}
	if exists {
		slog.Debug("task data already present, skipping seed fetch")
		return 0, nil
	}

	tasks, err := l.fetch(ctx)
	if err != nil {
		slog.Warn("seed fetch failed, starting with an empty board", "url", l.url, "error", err)
		return 0, err
	}

	// A task created during the fetch wins over the seed data
	exists, err = store.Has(ctx, l.store, store.KeyTasks)
	if err != nil {
		return 0, fmt.Errorf("failed to re-check for existing tasks: %w", err)
	}
	if exists {
		slog.Debug("task data appeared during seed fetch, discarding seed")
		return 0, nil
	}

	if err := store.SaveValue(ctx, l.store, store.KeyTasks, tasks); err != nil {
		return 0, err
	}

	l.bus.Emit(events.New(events.EventSeedLoaded, events.SeedPayload{Loaded: len(tasks)}))
	slog.Info("seed tasks loaded", "count", len(tasks))
	return len(tasks), nil
}

func (l *Loader) fetch(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build seed request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("seed request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("error closing seed response", "error", err)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed response: %w", err)
	}

	var records []record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("failed to decode seed response: %w", err)
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		if task, ok := normalize(r); ok {
			tasks = append(tasks, task)
		}
	}
	return tasks, nil
}

// normalize fills defaults for fields the endpoint omitted. Records
// without a usable title are dropped.
func normalize(r record) (models.Task, bool) {
	if r.Title == "" {
		return models.Task{}, false
	}

	id := r.ID
	if id == "" {
		id = models.NewTaskID()
	}

	column := models.Column(r.Column)
	if !column.Valid() {
		column = models.ColumnBacklog
	}

	assignees := r.Assignees
	if assignees == nil {
		assignees = []string{}
	}

	now := time.Now()
	return models.Task{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Column:      column,
		Assignees:   assignees,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, true
}
