// Package argonprover provides zero-knowledge proofs of virtual-machine
// execution traces.
//
// A trace is a claimed sequence of execution steps (opcode, stack
// snapshot, program counter, gas). The prover binds the trace to a
// public commitment and produces a succinct proof that the sequence is
// internally consistent: program counters advance, gas is metered per
// the opcode table, arithmetic results match their operands, and the
// stack depth stays bounded. A third party verifies the proof without
// re-executing anything.
//
// # Quick Start
//
// Generating a proof from a trace:
//
//	config := argonprover.DefaultConfig()
//	prover, err := argonprover.NewProver(config)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	output, err := prover.GenerateProof(ctx, trace)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Verifying it:
//
//	verifier := prover.Verifier()
//	ok, err := verifier.VerifyProof(output)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("Proof is valid!")
//	}
//
// The verifier must hold the proving run's key material: Groth16 setup
// is randomized, so a Verifier built from scratch derives different
// keys and rejects the proof's verifying-key fingerprint. In the same
// process, share the prover's artifact cache (as Verifier() does). To
// verify a stored proof elsewhere, export the key and load it back:
//
//	vkData, err := prover.ExportVerifyingKey()
//	// ... store vkData next to the proof output ...
//	verifier, err := argonprover.NewVerifierWithKey(config, vkData)
//
// # Large Traces
//
// A trace longer than the row budget for the configured k is split
// into chunks proven concurrently. The combined output sums the
// per-chunk metadata but carries only the first chunk's proof bytes;
// chunks are not cryptographically linked to each other. Do not treat
// a chunked output as a single proof of the whole trace.
//
// # Architecture
//
//   - pkg/argon-prover/: public API (this package)
//   - internal/argon-prover/: private implementation (not importable)
//
// The public API is a thin facade; implementation details in internal/
// can be refactored without breaking it.
package argonprover
