package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/tablero/internal/models"
)

// ParseColumn converts a --column flag value to a board column.
// Accepts the stored names plus a few human spellings.
func ParseColumn(value string) (models.Column, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "backlog":
		return models.ColumnBacklog, nil
	case "inprogress", "in-progress", "in_progress":
		return models.ColumnInProgress, nil
	case "done":
		return models.ColumnDone, nil
	default:
		return "", fmt.Errorf("unknown column %q (valid: backlog, inprogress, done)", value)
	}
}

// ColumnLabel returns the display name for a column.
func ColumnLabel(column models.Column) string {
	switch column {
	case models.ColumnBacklog:
		return "Backlog"
	case models.ColumnInProgress:
		return "In Progress"
	case models.ColumnDone:
		return "Done"
	default:
		return string(column)
	}
}
