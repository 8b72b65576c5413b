package pointset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Load reads a Set from a JSON file. The result is not validated; callers
// pass it through Normalize (directly or via the solver).
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("pointset: read %s: %w", path, err)
	}
	var s Set
	if err = json.Unmarshal(data, &s); err != nil {
		return Set{}, fmt.Errorf("pointset: decode %s: %w", path, err)
	}

	return s, nil
}

// Save writes s to path as indented JSON.
func Save(path string, s Set) error {
	return WriteJSON(path, s)
}

// WriteJSON writes any JSON-encodable value (points, solutions) to path.
func WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("pointset: encode %s: %w", path, err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("pointset: write %s: %w", path, err)
	}

	return nil
}

// SolutionPath derives the output file name for a solved problem file:
// "points10.json" + "local" → "points10_local_solution.json".
func SolutionPath(input, kind string) string {
	base := strings.TrimSuffix(input, ".json")

	return base + "_" + kind + "_solution.json"
}

// GeneratedPath is the default file name for a generated problem of n points.
func GeneratedPath(n int) string {
	return fmt.Sprintf("points%d.json", n)
}
