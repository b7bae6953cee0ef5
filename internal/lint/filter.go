package lint

import "strings"

// WarningMarker identifies a warning line in the tool's output.
const WarningMarker = ": warning: "

// SplitLines splits raw output on newlines. A trailing \r on each line is
// dropped, and a final empty line left by a trailing newline is not returned.
func SplitLines(raw string) []string {
	if raw == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(raw, "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// FilterWarnings returns the lines of raw that contain WarningMarker, in the
// order they appear. Errors, notes and everything else are dropped.
func FilterWarnings(raw string) []string {
	var warnings []string
	for _, line := range SplitLines(raw) {
		if strings.Contains(line, WarningMarker) {
			warnings = append(warnings, line)
		}
	}
	return warnings
}
