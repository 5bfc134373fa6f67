// Package record provides the runtime support types used by code generated
// with protoc-gen-go-record: the single-owner claim discipline for nested
// records, read-only views over list and map fields, hash accumulation and
// the usage-error values raised by generated mutators.
package record

// Record is the contract every generated record type satisfies. Copy must
// return a deep copy whose parent mark is clear, so a copy is always
// re-attachable.
type Record[M any] interface {
	Copy() M
	HasParent() bool
	MarkParent()
}

// Claim attaches a record under a parent. A record may be attached at most
// once, ever: the first claim returns the record itself, any later claim
// returns a fresh deep copy so the original attachment cannot be mutated
// through the new one. Generated setters, list/map inserts and oneof variant
// setters all route message values through Claim.
//
// Claim is a single-owner discipline, not a synchronization mechanism; the
// check-then-copy is not atomic across goroutines.
func Claim[M Record[M]](m M) M {
	if m.HasParent() {
		m = m.Copy()
	}
	m.MarkParent()
	return m
}

// CopySlice deep-copies a slice of records for a copy constructor. Each
// copied element is claimed by the new parent.
func CopySlice[M Record[M]](src []M) []M {
	if src == nil {
		return nil
	}
	out := make([]M, 0, len(src))
	for _, m := range src {
		out = append(out, Claim(m.Copy()))
	}
	return out
}

// CopyMap deep-copies a map with record values for a copy constructor. Each
// copied value is claimed by the new parent.
func CopyMap[K comparable, M Record[M]](src map[K]M) map[K]M {
	if src == nil {
		return nil
	}
	out := make(map[K]M, len(src))
	for k, m := range src {
		out[k] = Claim(m.Copy())
	}
	return out
}
