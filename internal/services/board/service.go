// Package board implements the task repository: CRUD over the task
// collection, column transitions, and assignment bookkeeping. Every
// operation reads the collection from the store at call time and writes
// the full updated collection back; there is no cached state.
package board

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/thenoetrevino/tablero/internal/events"
	"github.com/thenoetrevino/tablero/internal/models"
	"github.com/thenoetrevino/tablero/internal/store"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	Tasks(ctx context.Context) []models.Task
	Task(ctx context.Context, id string) (*models.Task, error)
	TasksByColumn(ctx context.Context) map[models.Column][]models.Task
	CountByAssignee(ctx context.Context, userID string) int

	// Write operations
	CreateTask(ctx context.Context, title string, column models.Column) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)

	// Column transitions
	MoveTask(ctx context.Context, id string, target models.Column) (*models.Task, error)
	AdvanceTask(ctx context.Context, id string) (*models.Task, error)

	// Assignment
	Assign(ctx context.Context, id, userID string) (*models.Task, error)
	Unassign(ctx context.Context, id, userID string) (*models.Task, error)
	ToggleComplete(ctx context.Context, id string) (*models.Task, error)

	// Bulk operations
	RemoveCompleted(ctx context.Context) (int, error)
}

// UpdateTaskRequest encapsulates a partial task update.
// Nil fields are left unchanged; the task ID itself is immutable.
type UpdateTaskRequest struct {
	ID          string
	Title       *string
	Description *string
	Column      *models.Column
	Assignees   *[]string
}

// service implements Service over the key-value store
type service struct {
	store store.Store
	bus   events.Publisher
}

// NewService creates a new board service
func NewService(s store.Store, bus events.Publisher) Service {
	return &service{store: s, bus: bus}
}

// Tasks returns the current task collection.
func (s *service) Tasks(ctx context.Context) []models.Task {
	return store.Load(ctx, s.store, store.KeyTasks, []models.Task{})
}

// Task returns a single task by ID.
func (s *service) Task(ctx context.Context, id string) (*models.Task, error) {
	tasks := s.Tasks(ctx)
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i], nil
		}
	}
	return nil, ErrTaskNotFound
}

// TasksByColumn groups the collection by board column.
func (s *service) TasksByColumn(ctx context.Context) map[models.Column][]models.Task {
	grouped := make(map[models.Column][]models.Task, len(models.ColumnOrder))
	for _, col := range models.ColumnOrder {
		grouped[col] = []models.Task{}
	}
	for _, task := range s.Tasks(ctx) {
		grouped[task.Column] = append(grouped[task.Column], task)
	}
	return grouped
}

// CountByAssignee returns how many tasks carry userID in their
// assignee set.
func (s *service) CountByAssignee(ctx context.Context, userID string) int {
	count := 0
	for _, task := range s.Tasks(ctx) {
		if task.HasAssignee(userID) {
			count++
		}
	}
	return count
}

// CreateTask adds a task to the given column (backlog when empty).
// Whitespace-only titles are rejected.
func (s *service) CreateTask(ctx context.Context, title string, column models.Column) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if column == "" {
		column = models.ColumnBacklog
	}
	if !column.Valid() {
		return nil, ErrInvalidColumn
	}

	now := time.Now()
	task := models.Task{
		ID:        models.NewTaskID(),
		Title:     title,
		Column:    column,
		Assignees: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.save(ctx, append(s.Tasks(ctx), task)); err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskCreated, events.TaskPayload{Task: &task}))
	return &task, nil
}

// UpdateTask merges the non-nil fields of req into the task.
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.Column != nil && !req.Column.Valid() {
		return nil, ErrInvalidColumn
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	updated, err := s.mutate(ctx, req.ID, func(task *models.Task) error {
		if req.Title != nil {
			task.Title = strings.TrimSpace(*req.Title)
		}
		if req.Description != nil {
			task.Description = *req.Description
		}
		if req.Column != nil {
			task.Column = *req.Column
		}
		if req.Assignees != nil {
			task.Assignees = dedupe(*req.Assignees)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskUpdated, events.TaskPayload{Task: updated}))
	return updated, nil
}

// DeleteTask removes a task, reporting whether one was removed.
func (s *service) DeleteTask(ctx context.Context, id string) (bool, error) {
	tasks := s.Tasks(ctx)
	idx := indexOf(tasks, id)
	if idx < 0 {
		return false, nil
	}

	removed := tasks[idx]
	if err := s.save(ctx, slices.Delete(tasks, idx, idx+1)); err != nil {
		return false, err
	}

	s.bus.Emit(events.New(events.EventTaskDeleted, events.TaskPayload{Task: &removed}))
	return true, nil
}

// MoveTask sets the task's column directly (the drag-drop path).
func (s *service) MoveTask(ctx context.Context, id string, target models.Column) (*models.Task, error) {
	if !target.Valid() {
		return nil, ErrInvalidColumn
	}
	return s.move(ctx, id, func(models.Column) models.Column { return target })
}

// AdvanceTask moves the task to the next column in the board cycle,
// wrapping from done back to backlog.
func (s *service) AdvanceTask(ctx context.Context, id string) (*models.Task, error) {
	return s.move(ctx, id, models.Column.Next)
}

func (s *service) move(ctx context.Context, id string, target func(models.Column) models.Column) (*models.Task, error) {
	var from models.Column
	updated, err := s.mutate(ctx, id, func(task *models.Task) error {
		from = task.Column
		task.Column = target(task.Column)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskMoved, events.MovePayload{
		Task: updated,
		From: from,
		To:   updated.Column,
	}))
	return updated, nil
}

// Assign adds userID to the task's assignee set. Assigning an existing
// member again changes nothing.
func (s *service) Assign(ctx context.Context, id, userID string) (*models.Task, error) {
	if userID == "" {
		return nil, ErrEmptyUserID
	}

	updated, err := s.mutate(ctx, id, func(task *models.Task) error {
		if !task.HasAssignee(userID) {
			task.Assignees = append(task.Assignees, userID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskAssigned, events.AssignmentPayload{
		Task:   updated,
		UserID: userID,
	}))
	return updated, nil
}

// Unassign removes userID from the assignee set. Removing a non-member
// is a no-op.
func (s *service) Unassign(ctx context.Context, id, userID string) (*models.Task, error) {
	updated, err := s.mutate(ctx, id, func(task *models.Task) error {
		task.Assignees = slices.DeleteFunc(task.Assignees, func(a string) bool {
			return a == userID
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskUnassigned, events.AssignmentPayload{
		Task:   updated,
		UserID: userID,
	}))
	return updated, nil
}

// ToggleComplete marks a pending task done or reopens a done task into
// inprogress. Completion requires at least one assignee.
func (s *service) ToggleComplete(ctx context.Context, id string) (*models.Task, error) {
	updated, err := s.mutate(ctx, id, func(task *models.Task) error {
		if task.Done() {
			task.Column = models.ColumnInProgress
			return nil
		}
		if !task.Assigned() {
			return ErrNoAssignees
		}
		task.Column = models.ColumnDone
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Emit(events.New(events.EventTaskCompleted, events.TaskPayload{Task: updated}))
	return updated, nil
}

// RemoveCompleted bulk-deletes every task in the done column and
// returns how many were removed.
func (s *service) RemoveCompleted(ctx context.Context) (int, error) {
	tasks := s.Tasks(ctx)
	total := len(tasks)
	kept := slices.DeleteFunc(tasks, func(t models.Task) bool { return t.Done() })
	removed := total - len(kept)
	if removed == 0 {
		return 0, nil
	}

	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}

	s.bus.Emit(events.New(events.EventTasksPurged, events.PurgePayload{Removed: removed}))
	return removed, nil
}

// mutate applies fn to the task with the given ID and persists the
// whole collection. The returned task is the post-mutation copy.
func (s *service) mutate(ctx context.Context, id string, fn func(*models.Task) error) (*models.Task, error) {
	tasks := s.Tasks(ctx)
	idx := indexOf(tasks, id)
	if idx < 0 {
		return nil, ErrTaskNotFound
	}

	if err := fn(&tasks[idx]); err != nil {
		return nil, err
	}
	tasks[idx].UpdatedAt = time.Now()

	if err := s.save(ctx, tasks); err != nil {
		return nil, err
	}

	task := tasks[idx]
	return &task, nil
}

func (s *service) save(ctx context.Context, tasks []models.Task) error {
	return store.SaveValue(ctx, s.store, store.KeyTasks, tasks)
}

func indexOf(tasks []models.Task, id string) int {
	return slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == id })
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
