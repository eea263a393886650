// Package stats computes aggregate views over a task collection
// snapshot. All functions are pure: they read the slice they are given
// and touch no shared state.
package stats

import "github.com/thenoetrevino/tablero/internal/models"

// Unassigned is the bucket label for tasks with an empty assignee set.
const Unassigned = "unassigned"

// Split partitions tasks by completion.
type Split struct {
	Completed int
	Pending   int
}

// Breakdown partitions tasks by assignment and completion. The three
// buckets are exhaustive and mutually exclusive.
type Breakdown struct {
	Unassigned      int
	AssignedPending int
	Completed       int
}

// CompletionSplit counts done versus pending tasks.
func CompletionSplit(tasks []models.Task) Split {
	var split Split
	for _, task := range tasks {
		if task.Done() {
			split.Completed++
		} else {
			split.Pending++
		}
	}
	return split
}

// PerAssigneeCounts buckets tasks by assignee ID, with unassigned tasks
// under the Unassigned label. A task with several assignees counts once
// per assignee. The second result is the mean count per distinct label,
// 0 when there are no tasks at all.
func PerAssigneeCounts(tasks []models.Task) (map[string]int, float64) {
	counts := make(map[string]int)
	total := 0
	for _, task := range tasks {
		if !task.Assigned() {
			counts[Unassigned]++
			total++
			continue
		}
		for _, userID := range task.Assignees {
			counts[userID]++
			total++
		}
	}

	if len(counts) == 0 {
		return counts, 0
	}
	return counts, float64(total) / float64(len(counts))
}

// StatusBreakdown partitions every task into exactly one bucket:
// unassigned first, otherwise completed when done, otherwise
// assigned-pending.
func StatusBreakdown(tasks []models.Task) Breakdown {
	var b Breakdown
	for _, task := range tasks {
		switch {
		case !task.Assigned():
			b.Unassigned++
		case task.Done():
			b.Completed++
		default:
			b.AssignedPending++
		}
	}
	return b
}

// Total returns the sum of the three buckets. It always equals the
// size of the collection the breakdown was computed from.
func (b Breakdown) Total() int {
	return b.Unassigned + b.AssignedPending + b.Completed
}
