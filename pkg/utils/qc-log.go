package utils

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
)

// LogQCVars logs every entry of vars as a "[key]: value" line between
// begin/end markers. Nothing is logged unless debug is set.
func LogQCVars(debug bool, context string, vars map[string]any) {
	if !debug {
		return
	}
	for _, line := range FormatQCVars(context, vars) {
		slog.Info(line, slog.String("qcContext", context))
	}
}

func FormatQCVars(context string, vars map[string]any) []string {
	lines := []string{fmt.Sprintf("--- QC LOG: %s ---", context)}
	if vars == nil {
		lines = append(lines, "Invalid vars: <nil>")
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		lines = append(lines, formatQCValue(k, vars[k]))
	}
	return append(lines, fmt.Sprintf("--- END QC LOG: %s ---", context))
}

func formatQCValue(key string, value any) string {
	switch v := value.(type) {
	case nil:
		return fmt.Sprintf("[%s]: null", key)
	case string, bool, int, int64, float64, error:
		return fmt.Sprintf("[%s]: %v", key, v)
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("[%s] (Object): %v", key, value)
	}
	return fmt.Sprintf("[%s]: %s", key, encoded)
}
