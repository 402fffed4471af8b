// Package graphgen builds randomized service graphs for stress-testing the
// partitioning engines. Generation is deterministic: the same seed always
// produces the same graph shape and attribute values, mirroring the
// teacher's SplitMix64 stream-derivation idiom (streamRNG) so each
// generation stage gets its own reproducible substream.
package graphgen
