package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListViewTracksBackingStorage(t *testing.T) {
	backing := make([]int32, 0, 4)
	backing = append(backing, 1, 2)
	view := NewList(backing)

	assert.Equal(t, 2, view.Len())
	assert.Equal(t, int32(1), view.Get(0))

	// The view reads live storage, not a snapshot.
	backing[1] = 7
	assert.Equal(t, int32(7), view.Get(1))
}

func TestListViewGetOutOfRange(t *testing.T) {
	view := NewList([]string{"a"})
	assert.PanicsWithError(t, "record: index 1 out of range [0, 1)", func() {
		view.Get(1)
	})
	assert.PanicsWithError(t, "record: index -1 out of range [0, 1)", func() {
		view.Get(-1)
	})

	empty := NewList[string](nil)
	assert.PanicsWithError(t, "record: index 0 out of range [0, 0)", func() {
		empty.Get(0)
	})
}

func TestListViewSliceIsACopy(t *testing.T) {
	backing := []int64{1, 2, 3}
	view := NewList(backing)

	out := view.Slice()
	out[0] = 100
	assert.Equal(t, int64(1), backing[0])
}

func TestListViewAll(t *testing.T) {
	view := NewList([]string{"x", "y"})
	var got []string
	for i, v := range view.All() {
		require.Equal(t, len(got), i)
		got = append(got, v)
	}
	assert.Equal(t, []string{"x", "y"}, got)
}

func TestMapViewAccessors(t *testing.T) {
	view := NewMap(map[string]int32{"a": 1})

	assert.Equal(t, 1, view.Len())
	assert.True(t, view.Contains("a"))
	assert.False(t, view.Contains("b"))

	v, ok := view.Get("a")
	assert.True(t, ok)
	assert.Equal(t, int32(1), v)

	assert.Equal(t, int32(1), view.GetOrDefault("a", 9))
	assert.Equal(t, int32(9), view.GetOrDefault("b", 9))
	assert.Equal(t, int32(1), view.MustGet("a"))
}

func TestMapViewMustGetMissingKey(t *testing.T) {
	view := NewMap(map[string]int32{})
	assert.PanicsWithError(t, "record: key missing not present in map field", func() {
		view.MustGet("missing")
	})
}

func TestMapViewCloneIsACopy(t *testing.T) {
	backing := map[string]int32{"a": 1}
	view := NewMap(backing)

	clone := view.Clone()
	clone["a"] = 5
	assert.Equal(t, int32(1), backing["a"])

	assert.Nil(t, NewMap[string, int32](nil).Clone())
}

func TestCheckSliceElems(t *testing.T) {
	ok := []*node{{value: 1}, {value: 2}}
	assert.NotPanics(t, func() { CheckSliceElems("values", ok) })

	bad := []*node{{value: 1}, nil, {value: 3}}
	assert.PanicsWithError(t, "record: values[1] must not be nil", func() {
		CheckSliceElems("values", bad)
	})
}

func TestCheckMapValues(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckMapValues("entries", map[string]*node{"a": {value: 1}})
	})
	assert.PanicsWithError(t, "record: entries[a] must not be nil", func() {
		CheckMapValues("entries", map[string]*node{"a": nil})
	})
}
