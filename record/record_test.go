package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// node is a minimal hand-rolled record, shaped like generated output.
type node struct {
	value     int64
	children  []*node
	bitField0 uint32
}

const nodeParentMask = 0x1

func (n *node) Copy() *node {
	out := &node{value: n.value}
	if n.children != nil {
		out.children = CopySlice(n.children)
	}
	return out
}

func (n *node) HasParent() bool {
	return n.bitField0&nodeParentMask != 0
}

func (n *node) MarkParent() {
	n.bitField0 |= nodeParentMask
}

func TestClaimFirstAttachReturnsSameInstance(t *testing.T) {
	n := &node{value: 7}
	claimed := Claim(n)
	assert.Same(t, n, claimed)
	assert.True(t, n.HasParent())
}

func TestClaimSecondAttachCopies(t *testing.T) {
	n := &node{value: 7}
	first := Claim(n)
	second := Claim(n)

	require.Same(t, n, first)
	require.NotSame(t, n, second)
	assert.True(t, second.HasParent())

	// Mutation through the second attachment must not leak into the first.
	second.value = 99
	assert.Equal(t, int64(7), first.value)
}

func TestCopyIsAlwaysUnattached(t *testing.T) {
	n := &node{value: 1}
	Claim(n)
	require.True(t, n.HasParent())
	assert.False(t, n.Copy().HasParent())
}

func TestCopySliceClaimsElements(t *testing.T) {
	child := &node{value: 3}
	parent := []*node{Claim(child)}

	copied := CopySlice(parent)
	require.Len(t, copied, 1)
	assert.NotSame(t, child, copied[0])
	assert.True(t, copied[0].HasParent())
	assert.Equal(t, int64(3), copied[0].value)

	assert.Nil(t, CopySlice[*node](nil))
}

func TestCopyMapClaimsValues(t *testing.T) {
	child := &node{value: 5}
	src := map[string]*node{"a": Claim(child)}

	copied := CopyMap(src)
	require.Len(t, copied, 1)
	assert.NotSame(t, child, copied["a"])
	assert.True(t, copied["a"].HasParent())

	assert.Nil(t, CopyMap[string, *node](nil))
}

func TestClaimDeepTree(t *testing.T) {
	leaf := &node{value: 10}
	mid := &node{value: 20, children: []*node{Claim(leaf)}}

	// Attach mid twice; the second owner gets a full structural copy.
	Claim(mid)
	other := Claim(mid)
	require.NotSame(t, mid, other)
	require.Len(t, other.children, 1)
	assert.NotSame(t, leaf, other.children[0])

	other.children[0].value = -1
	assert.Equal(t, int64(10), leaf.value)
}
