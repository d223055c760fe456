package circuit

import (
	"encoding/binary"
	"strconv"

	"golang.org/x/crypto/sha3"
)

// CommitmentWords is the number of 64-bit words the trace commitment
// digest is split into. Each word becomes one public input.
const CommitmentWords = 4

// Commit computes the trace commitment: a Keccak-256 digest over every
// opcode byte followed by every gas value in fixed-width little-endian
// form, split into CommitmentWords 64-bit words. The commitment is the
// circuit's only public input and binds a proof to an exact opcode/gas
// sequence.
func Commit(opcodes []byte, gasValues []uint64) [CommitmentWords]uint64 {
	h := sha3.NewLegacyKeccak256()
	h.Write(opcodes)

	var buf [8]byte
	for _, g := range gasValues {
		binary.LittleEndian.PutUint64(buf[:], g)
		h.Write(buf[:])
	}

	digest := h.Sum(nil)
	var words [CommitmentWords]uint64
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(digest[i*8:])
	}
	return words
}

// CommitmentStrings renders commitment words as decimal strings, the
// form public inputs take in the proof wire format.
func CommitmentStrings(words [CommitmentWords]uint64) []string {
	out := make([]string, CommitmentWords)
	for i, w := range words {
		out[i] = strconv.FormatUint(w, 10)
	}
	return out
}
