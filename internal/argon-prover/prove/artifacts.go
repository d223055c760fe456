package prove

import (
	"bytes"
	"encoding/hex"
	"sync"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"

	"github.com/argon-zk/argon-prover/internal/argon-prover/circuit"
	"github.com/argon-zk/argon-prover/internal/argon-prover/utils"
)

// ReservedRows is the per-circuit overhead subtracted from the 2^k row
// budget before trace steps are admitted.
const ReservedRows = 64

// cacheSize bounds how many circuit shapes a cache retains. Setup
// artifacts are large; a handful of distinct k values is the norm.
const cacheSize = 8

// MaxSteps returns the number of trace steps a circuit of size 2^k can
// hold.
func MaxSteps(k uint32) int {
	return (1 << k) - ReservedRows
}

// DefaultChunkSize returns the chunk length used when a trace exceeds
// the row budget for k.
func DefaultChunkSize(k uint32) int {
	return min(MaxSteps(k), 1<<14)
}

// SuggestK returns the smallest valid k whose row budget covers the
// given step count, or MaxK if no single circuit can.
func SuggestK(steps int) uint32 {
	rows := utils.NextPowerOfTwo(steps + ReservedRows)
	k := uint32(utils.Log2(rows))
	if k < MinK {
		return MinK
	}
	if k > MaxK {
		return MaxK
	}
	return k
}

// Log2Rows returns log2 of the row count for k. Thin wrapper kept so
// callers reporting circuit sizes agree on the arithmetic.
func Log2Rows(k uint32) int {
	return utils.Log2(1 << k)
}

// Artifacts bundles everything derived from a circuit shape: the
// compiled constraint system, the Groth16 key pair, and the verifying
// key fingerprint embedded in proof outputs. Immutable once built.
type Artifacts struct {
	K           uint32
	Rows        int
	CCS         constraint.ConstraintSystem
	PK          groth16.ProvingKey
	VK          groth16.VerifyingKey
	Fingerprint string
}

// StorageArtifacts is the storage-circuit counterpart, keyed by slot
// count instead of k.
type StorageArtifacts struct {
	Slots       int
	CCS         constraint.ConstraintSystem
	PK          groth16.ProvingKey
	VK          groth16.VerifyingKey
	Fingerprint string
}

// Cache holds proving artifacts keyed by circuit shape. Derivation
// runs under the lock so concurrent chunk provers sharing a k never
// run setup twice. Artifact values are immutable; only the maps need
// guarding.
//
// Groth16 setup is randomized, so two caches derive distinct key pairs
// for the same k. Proofs verify only against artifacts from the cache
// that produced them; the fingerprint check catches mismatches early.
type Cache struct {
	mu      sync.Mutex
	traces  *lru.Cache[uint32, *Artifacts]
	storage *lru.Cache[int, *StorageArtifacts]
}

// NewCache creates an empty artifact cache.
func NewCache() *Cache {
	traces, _ := lru.New[uint32, *Artifacts](cacheSize)
	storage, _ := lru.New[int, *StorageArtifacts](cacheSize)
	return &Cache{traces: traces, storage: storage}
}

// Trace returns the artifacts for a trace circuit of size 2^k,
// deriving and caching them on first use.
func (c *Cache) Trace(k uint32) (*Artifacts, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if art, ok := c.traces.Get(k); ok {
		return art, nil
	}

	rows := MaxSteps(k)
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit.NewTraceCircuit(rows))
	if err != nil {
		return nil, wrapErr(ErrCircuit, "failed to compile trace circuit", err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, wrapErr(ErrCircuit, "trusted setup failed", err)
	}

	fp, err := fingerprint(vk)
	if err != nil {
		return nil, err
	}

	art := &Artifacts{K: k, Rows: rows, CCS: ccs, PK: pk, VK: vk, Fingerprint: fp}
	c.traces.Add(k, art)
	return art, nil
}

// Storage returns the artifacts for a storage circuit with the given
// slot count, deriving and caching them on first use.
func (c *Cache) Storage(slots int) (*StorageArtifacts, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if art, ok := c.storage.Get(slots); ok {
		return art, nil
	}

	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, circuit.NewStorageCircuit(slots))
	if err != nil {
		return nil, wrapErr(ErrCircuit, "failed to compile storage circuit", err)
	}

	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, wrapErr(ErrCircuit, "trusted setup failed", err)
	}

	fp, err := fingerprint(vk)
	if err != nil {
		return nil, err
	}

	art := &StorageArtifacts{Slots: slots, CCS: ccs, PK: pk, VK: vk, Fingerprint: fp}
	c.storage.Add(slots, art)
	return art, nil
}

// fingerprint hashes a verifying key's serialized form.
func fingerprint(vk groth16.VerifyingKey) (string, error) {
	var buf bytes.Buffer
	if _, err := vk.WriteTo(&buf); err != nil {
		return "", wrapErr(ErrCircuit, "failed to serialize verifying key", err)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(buf.Bytes())
	return hex.EncodeToString(h.Sum(nil)), nil
}
