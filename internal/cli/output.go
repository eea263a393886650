package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputFormatter handles three output modes: JSON, quiet, and
// human-readable.
type OutputFormatter struct {
	JSON  bool
	Quiet bool
}

// NewFormatter builds a formatter from the standard --json and --quiet
// flags.
func NewFormatter(jsonOutput, quiet bool) *OutputFormatter {
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet}
}

// Success outputs a successful operation result. In quiet mode only id
// is printed (skipped when empty); in JSON mode data is wrapped in a
// success envelope; otherwise human prints.
func (f *OutputFormatter) Success(id string, human string, data any) error {
	if f.Quiet {
		if id != "" {
			fmt.Println(id)
		}
		return nil
	}

	if f.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if human != "" {
		fmt.Println(human)
	}
	return nil
}

// Error outputs error information and returns err unchanged so the
// caller can propagate it for exit-code mapping.
func (f *OutputFormatter) Error(code string, err error) error {
	if f.JSON {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": false,
			"error": map[string]any{
				"code":    code,
				"message": err.Error(),
			},
		})
		return err
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return err
}
