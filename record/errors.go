package record

import "fmt"

// NilArgError reports a nil message argument passed to a generated mutator.
// Generated code validates arguments before any mutation takes effect, so a
// recovered NilArgError always leaves the record unchanged.
type NilArgError struct {
	// Arg describes the offending argument, e.g. "value" or "values[2]".
	Arg string
}

func (e *NilArgError) Error() string {
	return fmt.Sprintf("record: %s must not be nil", e.Arg)
}

// KeyError reports a key absent from a map field on a MustGet accessor.
type KeyError struct {
	Key any
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("record: key %v not present in map field", e.Key)
}

// IndexError reports a positional access outside [0, Len). It is raised for
// unallocated backing stores too, where Len is 0.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("record: index %d out of range [0, %d)", e.Index, e.Len)
}

// CheckIndex panics with an IndexError unless 0 <= i < n.
func CheckIndex(i, n int) {
	if i < 0 || i >= n {
		panic(&IndexError{Index: i, Len: n})
	}
}

// CheckNotNil panics with a NilArgError when m is nil.
func CheckNotNil[T any](arg string, m *T) {
	if m == nil {
		panic(&NilArgError{Arg: arg})
	}
}

// CheckSliceElems validates every element of vs before an AddAll takes
// effect. A nil element at any position fails the whole call without
// mutating the record.
func CheckSliceElems[T any](arg string, vs []*T) {
	for i, v := range vs {
		if v == nil {
			panic(&NilArgError{Arg: fmt.Sprintf("%s[%d]", arg, i)})
		}
	}
}

// CheckMapValues validates every value of m before a PutAll takes effect.
func CheckMapValues[K comparable, T any](arg string, m map[K]*T) {
	for k, v := range m {
		if v == nil {
			panic(&NilArgError{Arg: fmt.Sprintf("%s[%v]", arg, k)})
		}
	}
}
