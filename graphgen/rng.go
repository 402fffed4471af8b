package graphgen

import "math/rand"

// streamRNG derives a deterministic, independent *rand.Rand for one
// generation stage (topology, runtime, memory, rate) from a shared parent
// seed and a stream identifier, via a SplitMix64-style avalanche mix.
// Folding the mix and the source construction into one step means a
// zero-value Options.Seed needs no separate fallback: mixing in stream
// already pushes the output away from zero, so every stage still gets a
// distinct, reproducible substream.
func streamRNG(parent int64, stream uint64) *rand.Rand {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return rand.New(rand.NewSource(int64(x)))
}
