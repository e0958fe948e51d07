package algo

import "hash/fnv"

// Seed returns the FNV-1a 32-bit checksum of the subject name bytes.
// It is stable across processes, platforms and Go versions.
func Seed(name string) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32()
}

// Pick returns the option at (seed+offset) mod len(options), or "" for no options.
func Pick(options []string, seed uint32, offset int) string {
	if len(options) == 0 {
		return ""
	}
	return options[Index(len(options), seed, offset)]
}

// Index returns (seed+offset) mod n without overflow. n must be positive.
func Index(n int, seed uint32, offset int) int {
	idx := (int64(seed) + int64(offset)) % int64(n)
	if idx < 0 {
		idx += int64(n)
	}
	return int(idx)
}
