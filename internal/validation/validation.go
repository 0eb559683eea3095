// Package validation checks user-supplied command arguments.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// IsValidOutputFormat checks if the given report format is supported.
func IsValidOutputFormat(format string) error {
	switch strings.ToLower(format) {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'text', 'json', 'yaml'", format)
	}
}

// IsValidExportPath checks that path names a .csv file and not a directory.
func IsValidExportPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("export path must not be empty")
	}
	if !strings.EqualFold(filepath.Ext(path), ".csv") {
		return fmt.Errorf("export path must end in .csv: %s", path)
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("export path is a directory: %s", path)
	}
	return nil
}
