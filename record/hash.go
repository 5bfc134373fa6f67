package record

import "math"

// Record hashes follow the protobuf convention: start from a fixed seed and
// fold in only the fields that are present, in declaration order, so records
// that end up in the same presence/value state hash identically no matter in
// which order their fields were set.

// HashSeed is the initial accumulator value for a record's Hash method.
const HashSeed uint64 = 41

// MixHash folds one present field into the accumulator.
func MixHash(h uint64, fieldNumber int32, contribution uint64) uint64 {
	h = 37*h + uint64(uint32(fieldNumber))
	return 53*h + contribution
}

func HashBool(v bool) uint64 {
	if v {
		return 1231
	}
	return 1237
}

func HashInt32(v int32) uint64 {
	return uint64(uint32(v))
}

func HashInt64(v int64) uint64 {
	return uint64(v)
}

func HashUint32(v uint32) uint64 {
	return uint64(v)
}

func HashUint64(v uint64) uint64 {
	return v
}

func HashFloat32(v float32) uint64 {
	return uint64(math.Float32bits(v))
}

func HashFloat64(v float64) uint64 {
	return math.Float64bits(v)
}

// HashString is 64-bit FNV-1a.
func HashString(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

func HashBytes(b []byte) uint64 {
	return HashString(string(b))
}

// HashSlice folds elements in order.
func HashSlice[T any](s []T, elem func(T) uint64) uint64 {
	h := uint64(1)
	for _, v := range s {
		h = 31*h + elem(v)
	}
	return h
}

// HashMap combines entry hashes with addition so the result is independent
// of iteration order.
func HashMap[K comparable, V any](m map[K]V, key func(K) uint64, val func(V) uint64) uint64 {
	var h uint64
	for k, v := range m {
		h += 31*key(k) + val(v)
	}
	return h
}
