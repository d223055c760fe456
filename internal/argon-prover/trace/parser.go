package trace

import (
	"encoding/json"
	"fmt"
)

// Parse decodes a trace from its JSON wire form and validates it.
func Parse(data []byte) (*Trace, error) {
	var t Trace
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse trace JSON: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Encode serializes the trace back to its JSON wire form.
func (t *Trace) Encode() ([]byte, error) {
	return json.Marshal(t)
}
