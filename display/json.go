package display

import (
	"encoding/json"
)

// MarshalJSON marshals CLI reports (version, registry listings, config) with
// two-space indentation. Documents go through the codec instead.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
