package prove

import "runtime"

// K bounds. Below MinK the row budget cannot cover the reserved
// overhead; above MaxK setup cost stops being practical on one host.
const (
	MinK uint32 = 7
	MaxK uint32 = 26
)

// Config carries prover and verifier settings.
type Config struct {
	// K sets the circuit capacity: 2^K rows
	K uint32

	// Parallel enables concurrent proving of chunked traces
	Parallel bool

	// NumThreads bounds the proving worker pool; 0 means the
	// available parallelism
	NumThreads int

	// RPCURL is the endpoint for live trace fetching. The proving
	// core never touches it; it belongs to the upstream trace
	// provider.
	RPCURL string
}

// DefaultConfig returns the default prover configuration
func DefaultConfig() *Config {
	return &Config{
		K:          17,
		Parallel:   true,
		NumThreads: 0,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.K < MinK || c.K > MaxK {
		return errf(ErrInvalidConfig, "k must be in [%d, %d], got %d", MinK, MaxK, c.K)
	}
	if c.NumThreads < 0 {
		return errf(ErrInvalidConfig, "num threads must not be negative, got %d", c.NumThreads)
	}
	return nil
}

// Workers returns the effective proving worker count.
func (c *Config) Workers() int {
	if c.NumThreads > 0 {
		return c.NumThreads
	}
	return runtime.GOMAXPROCS(0)
}

// WithK sets the circuit size parameter
func (c *Config) WithK(k uint32) *Config {
	c.K = k
	return c
}

// WithParallel toggles concurrent chunk proving
func (c *Config) WithParallel(parallel bool) *Config {
	c.Parallel = parallel
	return c
}

// WithNumThreads sets the worker pool bound
func (c *Config) WithNumThreads(n int) *Config {
	c.NumThreads = n
	return c
}

// WithRPCURL sets the trace provider endpoint
func (c *Config) WithRPCURL(url string) *Config {
	c.RPCURL = url
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
