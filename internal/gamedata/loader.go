package gamedata

import (
	"encoding/json"
	"fmt"
)

// validator is implemented by data files that check their own contents after decoding.
type validator interface {
	validate() error
}

// Load reads and unmarshals a JSON file from the embedded filesystem.
// Files whose type implements validate() are checked before returning.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return result, fmt.Errorf("invalid data in %s: %w", filename, err)
		}
	}

	return result, nil
}

// MustLoad reads and unmarshals a JSON file, panicking on error.
// Use this for data that must be present for the game to function.
func MustLoad[T any](filename string) T {
	result, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return result
}
