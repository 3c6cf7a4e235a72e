// internal/output/json.go
package output

import (
	"encoding/json"
	"io"
)

// WriteJSON writes a single JSON array of v1 searches, indented two spaces.
func WriteJSON(w io.Writer, list []Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toAPISearches(list))
}
