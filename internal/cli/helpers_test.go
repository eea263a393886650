package cli

import (
	"testing"

	"github.com/thenoetrevino/tablero/internal/models"
)

func TestParseColumn_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  models.Column
	}{
		{"backlog", models.ColumnBacklog},
		{"Backlog", models.ColumnBacklog},
		{"inprogress", models.ColumnInProgress},
		{"in-progress", models.ColumnInProgress},
		{"in_progress", models.ColumnInProgress},
		{"  done  ", models.ColumnDone},
		{"DONE", models.ColumnDone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColumn(tt.input)
			if err != nil {
				t.Fatalf("ParseColumn(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColumn(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColumn_Invalid(t *testing.T) {
	for _, input := range []string{"", "icebox", "doing", "finished"} {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseColumn(input); err == nil {
				t.Errorf("expected ParseColumn(%q) to fail", input)
			}
		})
	}
}

func TestColumnLabel(t *testing.T) {
	if got := ColumnLabel(models.ColumnInProgress); got != "In Progress" {
		t.Errorf("ColumnLabel = %q, want 'In Progress'", got)
	}
}
