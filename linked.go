package Resources

import (
	_ "runtime"
	_ "unsafe"
)

//go:linkname CheapRandN runtime.cheaprandn
//go:nosplit
func CheapRandN(n uint32) uint32

//go:linkname cheapRand runtime.cheaprand
//go:nosplit
func cheapRand() uint32

// CheapRand64 returns 64 random bits from the runtime's per-M generator. It's
// fast and seeded at startup, not reproducible.
func CheapRand64() uint64 {
	return uint64(cheapRand())<<32 | uint64(cheapRand())
}

// CheapSource is a rand.Source over CheapRand64. The zero value is ready to use
// and safe for concurrent use. Use rand.NewPCG instead when results must be
// reproducible.
type CheapSource struct{}

func (CheapSource) Uint64() uint64 {
	return CheapRand64()
}
