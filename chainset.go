package chainset

// --- Function types shared by all packages ---------------------------------

// HashFunc maps a key to a 64-bit hash value. Containers reduce the hash modulo
// their bucket count, so a HashFunc need not spread its values over the full
// 64 bits.
//
// A HashFunc must be consistent with Go's == for the key type: equal keys must
// produce equal hashes.
type HashFunc[K any] func(K) uint64

// Bucketing reduces a hash value to a bucket index for a table of n buckets.
func Bucketing(h uint64, n int) int {
	return int(h % uint64(n))
}
