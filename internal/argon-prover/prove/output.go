package prove

import (
	"encoding/json"
	"fmt"
)

// Metadata summarizes the trace a proof covers.
type Metadata struct {
	OpcodeCount int    `json:"opcode_count"`
	GasUsed     uint64 `json:"gas_used"`
	TxHash      string `json:"tx_hash,omitempty"`
	BlockNumber uint64 `json:"block_number,omitempty"`
}

// ProofOutput is the serialized result of a proving run: the proof
// bytes, the public inputs they are bound to, trace metadata, and the
// fingerprint of the verifying key a verifier must hold. Immutable
// once produced; round-trips through JSON (proof bytes encode as
// base64).
type ProofOutput struct {
	Proof        []byte   `json:"proof"`
	PublicInputs []string `json:"public_inputs"`
	Metadata     Metadata `json:"metadata"`
	VKHash       string   `json:"vk_hash"`
}

// Encode serializes the proof output to its JSON wire form.
func (o *ProofOutput) Encode() ([]byte, error) {
	return json.Marshal(o)
}

// DecodeOutput parses a proof output from its JSON wire form.
func DecodeOutput(data []byte) (*ProofOutput, error) {
	var o ProofOutput
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse proof output JSON: %w", err)
	}
	return &o, nil
}
