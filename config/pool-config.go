package config

const (
	BackendGo   = "go"
	BackendMmap = "mmap"
)

type PoolConfig struct {
	// Capacity in bytes, 0 means unbounded.
	Capacity uintptr
	Verbose  bool
	Backend  string
}

func NewPoolConfig() *PoolConfig {
	return &PoolConfig{
		Capacity: 0,
		Verbose:  false,
		Backend:  BackendGo,
	}
}
