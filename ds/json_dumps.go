package ds

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DumpJSON renders t on one line, or the marshalling error in its place.
func DumpJSON[T any](t T) string {
	tBytes, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("DumpJSON error %w", err).Error()
	}
	return string(tBytes)
}
