package dedup

import "math"

// bloomFilter is the probabilistic prefilter in front of the exact id set.
// Sizing follows the standard formulas m = -n ln p / (ln 2)^2 and
// k = round((m/n) ln 2).
type bloomFilter struct {
	bits []uint64
	m    int
	k    int
}

func newBloomFilter(expectedElements int, falsePositiveRate float64) *bloomFilter {
	m := optimalBitCount(expectedElements, falsePositiveRate)
	k := optimalHashCount(expectedElements, m)
	return &bloomFilter{
		bits: make([]uint64, (m+63)/64),
		m:    m,
		k:    k,
	}
}

func optimalBitCount(n int, p float64) int {
	return int(-float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
}

func optimalHashCount(n, m int) int {
	k := int(math.Round(float64(m) / float64(n) * math.Ln2))
	if k < 1 {
		return 1
	}
	return k
}

func (f *bloomFilter) put(element string) {
	for i := 0; i < f.k; i++ {
		idx := f.bitIndex(element, i)
		f.bits[idx/64] |= 1 << (idx % 64)
	}
}

func (f *bloomFilter) mightContain(element string) bool {
	for i := 0; i < f.k; i++ {
		idx := f.bitIndex(element, i)
		if f.bits[idx/64]&(1<<(idx%64)) == 0 {
			return false
		}
	}
	return true
}

func (f *bloomFilter) bitIndex(element string, seed int) int {
	h := int64(mix32(int32(seed) + baseHash(element)))
	if h < 0 {
		h = -h
	}
	return int(h % int64(f.m))
}

// baseHash is the 31-multiplier string hash the derived hashes mix from.
// All arithmetic is 32-bit with wrapping.
func baseHash(s string) int32 {
	var h int32
	for i := 0; i < len(s); i++ {
		h = 31*h + int32(s[i])
	}
	return h
}

// mix32 is the canonical avalanche finaliser.
func mix32(h int32) int32 {
	u := uint32(h)
	u ^= u >> 16
	u *= 0x85ebca6b
	u ^= u >> 13
	u *= 0xc2b2ae35
	u ^= u >> 16
	return int32(u)
}
