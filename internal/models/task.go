package models

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Column represents the workflow stage a task sits in.
// The board has a fixed three-column cycle: backlog -> inprogress -> done.
type Column string

const (
	ColumnBacklog    Column = "backlog"
	ColumnInProgress Column = "inprogress"
	ColumnDone       Column = "done"
)

// ColumnOrder is the fixed board cycle used by the "advance" action.
// Advancing past done wraps back to backlog.
var ColumnOrder = []Column{ColumnBacklog, ColumnInProgress, ColumnDone}

// Valid reports whether c is one of the three board columns.
func (c Column) Valid() bool {
	return c == ColumnBacklog || c == ColumnInProgress || c == ColumnDone
}

// Next returns the column that follows c in the board cycle, wrapping
// from done back to backlog.
func (c Column) Next() Column {
	idx := slices.Index(ColumnOrder, c)
	if idx < 0 {
		return ColumnBacklog
	}
	return ColumnOrder[(idx+1)%len(ColumnOrder)]
}

// Task represents a single task on the board.
// Assignees is a set of user IDs; an empty set means unassigned.
// There is no separate "done" flag: a task is complete exactly when its
// column is done.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Column      Column    `json:"column"`
	Assignees   []string  `json:"assignees"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Done reports whether the task is in the done column.
func (t *Task) Done() bool {
	return t.Column == ColumnDone
}

// Assigned reports whether the task has at least one assignee.
func (t *Task) Assigned() bool {
	return len(t.Assignees) > 0
}

// HasAssignee reports whether userID is in the assignee set.
func (t *Task) HasAssignee(userID string) bool {
	return slices.Contains(t.Assignees, userID)
}

// NewTaskID returns a unique task identifier.
// Random UUIDs avoid the collision risk of timestamp-based IDs when
// several tasks are created in the same batch.
func NewTaskID() string {
	return "task_" + uuid.NewString()
}
