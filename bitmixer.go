package automata

// mix scrambles a state id before it enters a set hash, so that the small
// dense ids produced by the arena spread across buckets.
func mix(key int) int {
	return mix32(key)
}

// mix32 is the 32-bit MurmurHash3 finalizer.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}
