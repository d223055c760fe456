package trace

import "github.com/argon-zk/argon-prover/internal/argon-prover/utils"

// memoryWordSize maps a step index to a memory offset window when
// filtering auxiliary memory ops into chunks.
const memoryWordSize = 64

// Chunk partitions the trace into contiguous segments of at most
// chunkSize steps. A trace that already fits is returned unchanged as a
// single-element slice. Every parallel array is sliced identically;
// tx hash, block number, and bytecode are copied into every chunk.
//
// Auxiliary memory ops are assigned to chunks by an approximate offset
// window (offsets are not step-indexed, so boundary attribution is best
// effort). Storage ops are keyed, not positional, and are copied into
// every chunk whole.
func Chunk(t *Trace, chunkSize int) []*Trace {
	if chunkSize <= 0 || t.Len() <= chunkSize {
		return []*Trace{t}
	}

	total := t.Len()
	count := utils.CeilDiv(total, chunkSize)
	chunks := make([]*Trace, 0, count)

	for i := 0; i < count; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > total {
			end = total
		}

		c := &Trace{
			Opcodes:     t.Opcodes[start:end],
			StackStates: t.StackStates[start:end],
			PCs:         t.PCs[start:end],
			GasValues:   t.GasValues[start:end],
			StorageOps:  t.StorageOps,
			TxHash:      t.TxHash,
			BlockNumber: t.BlockNumber,
			Bytecode:    t.Bytecode,
		}

		lo := uint64(start) * memoryWordSize
		hi := uint64(end) * memoryWordSize
		for _, op := range t.MemoryOps {
			if op.Offset >= lo && op.Offset < hi {
				c.MemoryOps = append(c.MemoryOps, op)
			}
		}

		chunks = append(chunks, c)
	}

	return chunks
}
