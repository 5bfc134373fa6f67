package test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFoo() *FooRecord {
	return (&FooRecord{}).
		SetBar(42).
		SetName("sample").
		SetBaz((&BazRecord{}).SetId(7).SetLabel("seven")).
		AddAllNums([]int64{1, 2, 3}).
		AddChildren((&BazRecord{}).SetId(1)).
		AddChildren((&BazRecord{}).SetId(2).SetLabel("two")).
		PutLabels("env", "prod").
		PutLabels("zone", "eu").
		PutBazMap("a", (&BazRecord{}).SetId(10)).
		PutBazMap("b", (&BazRecord{}).SetId(11).SetLabel("b")).
		SetColor(Color_COLOR_RED).
		SetSVal("chosen").
		SetPayload([]byte{0xde, 0xad, 0xbe, 0xef})
}

func TestSetZeroValueMarksPresence(t *testing.T) {
	bar := &BarRecord{}
	assert.False(t, bar.HasBar())
	assert.Zero(t, bar.GetBar())

	bar.SetBar(0)
	assert.True(t, bar.HasBar())
	assert.Zero(t, bar.GetBar())

	bar.ClearBar()
	assert.False(t, bar.HasBar())
}

func TestDeclaredDefaultAppliesOnlyWhenUnset(t *testing.T) {
	foo := &FooRecord{}
	assert.False(t, foo.HasName())
	assert.Equal(t, "unknown", foo.GetName())

	foo.SetName("")
	assert.True(t, foo.HasName())
	assert.Equal(t, "", foo.GetName())

	foo.ClearName()
	assert.False(t, foo.HasName())
	assert.Equal(t, "unknown", foo.GetName())
}

func TestOneOfDisplacement(t *testing.T) {
	bar := (&BarRecord{}).SetBar(0)
	require.True(t, bar.HasBar())
	require.Zero(t, bar.GetBar())
	assert.Equal(t, BarRecord_MyOneOfNotSet, bar.GetMyOneOfCase())

	bar.SetIntVariant(3)
	assert.Equal(t, BarRecord_IntVariantCase, bar.GetMyOneOfCase())
	assert.True(t, bar.HasIntVariant())
	assert.EqualValues(t, 3, bar.GetIntVariant())

	bar.SetStringVariant("x")
	assert.Equal(t, BarRecord_StringVariantCase, bar.GetMyOneOfCase())
	assert.True(t, bar.HasStringVariant())
	assert.False(t, bar.HasIntVariant())
	assert.Zero(t, bar.GetIntVariant())
	assert.Equal(t, "x", bar.GetStringVariant())

	// Clearing the inactive variant must not disturb the active one.
	bar.ClearIntVariant()
	assert.Equal(t, BarRecord_StringVariantCase, bar.GetMyOneOfCase())
	assert.Equal(t, "x", bar.GetStringVariant())

	bar.ClearStringVariant()
	assert.Equal(t, BarRecord_MyOneOfNotSet, bar.GetMyOneOfCase())
	assert.True(t, bar.HasBar())
}

func TestOneOfGetOrCreateSwitchesVariant(t *testing.T) {
	foo := (&FooRecord{}).SetSVal("s")
	mv := foo.GetOrCreateMVal()
	require.NotNil(t, mv)
	assert.Equal(t, FooRecord_MValCase, foo.GetChoiceCase())
	assert.False(t, foo.HasSVal())
	assert.True(t, mv.HasParent())
	assert.Same(t, mv, foo.GetOrCreateMVal())
}

func TestAttachClaimsOnce(t *testing.T) {
	child := (&BazRecord{}).SetId(5)
	first := (&FooRecord{}).SetBaz(child)
	assert.Same(t, child, first.GetBaz())
	assert.True(t, child.HasParent())

	second := (&FooRecord{}).SetBaz(child)
	assert.NotSame(t, child, second.GetBaz())
	assert.True(t, second.GetBaz().Equal(child))

	// Mutating the original no longer leaks into the second parent.
	child.SetId(6)
	assert.EqualValues(t, 5, second.GetBaz().GetId())
}

func TestCopyIsUnattachedAndEqual(t *testing.T) {
	foo := sampleFoo()
	foo.MarkParent()

	cp := foo.Copy()
	assert.True(t, foo.Equal(cp))
	assert.False(t, cp.HasParent())
	assert.NotSame(t, foo.GetBaz(), cp.GetBaz())
	assert.True(t, cp.GetBaz().HasParent())

	cp.GetBaz().SetLabel("changed")
	assert.Equal(t, "seven", foo.GetBaz().GetLabel())
}

func TestClearPreservesParentMark(t *testing.T) {
	foo := sampleFoo()
	foo.MarkParent()

	foo.Clear()
	assert.True(t, foo.HasParent())
	assert.False(t, foo.HasBar())
	assert.False(t, foo.HasName())
	assert.Equal(t, "unknown", foo.GetName())
	assert.False(t, foo.HasBaz())
	assert.Zero(t, foo.GetNumsCount())
	assert.Zero(t, foo.GetLabelsCount())
	assert.Equal(t, FooRecord_ChoiceNotSet, foo.GetChoiceCase())
	assert.True(t, foo.Equal(&FooRecord{}))
}

func TestNilRejectionLeavesRecordUnchanged(t *testing.T) {
	foo := (&FooRecord{}).AddChildren((&BazRecord{}).SetId(1))

	assert.PanicsWithError(t, "record: value must not be nil", func() {
		foo.SetBaz(nil)
	})
	assert.False(t, foo.HasBaz())

	batch := []*BazRecord{(&BazRecord{}).SetId(2), nil, (&BazRecord{}).SetId(3)}
	assert.PanicsWithError(t, "record: values[1] must not be nil", func() {
		foo.AddAllChildren(batch)
	})
	assert.Equal(t, 1, foo.GetChildrenCount())

	assert.PanicsWithError(t, "record: entries[k] must not be nil", func() {
		foo.PutAllBazMap(map[string]*BazRecord{"k": nil})
	})
	assert.Zero(t, foo.GetBazMapCount())
}

func TestIndexAccessPanicsOutOfRange(t *testing.T) {
	foo := (&FooRecord{}).AddNums(1)

	assert.PanicsWithError(t, "record: index 1 out of range [0, 1)", func() {
		foo.GetNums(1)
	})
	assert.PanicsWithError(t, "record: index 0 out of range [0, 0)", func() {
		(&FooRecord{}).RemoveNums(0)
	})
}

func TestMustGetMissingKeyPanics(t *testing.T) {
	foo := (&FooRecord{}).PutLabels("a", "1")
	assert.Equal(t, "1", foo.MustGetLabels("a"))
	assert.PanicsWithError(t, "record: key b not present in map field", func() {
		foo.MustGetLabels("b")
	})
	assert.Equal(t, "fallback", foo.GetLabelsOrDefault("b", "fallback"))
}

func TestGetOnUnsetSubtreeNeverPanics(t *testing.T) {
	foo := &FooRecord{}
	assert.Zero(t, foo.GetBaz().GetId())
	assert.Equal(t, "", foo.GetBaz().GetLabel())
	assert.False(t, foo.GetBaz().HasId())
	assert.Zero(t, foo.GetMVal().GetId())
	assert.Zero(t, foo.GetBazMapOrDefault("k", nil).GetId())
}

func TestNilReceiverReadsReturnDefaults(t *testing.T) {
	var foo *FooRecord
	assert.Zero(t, foo.GetBar())
	assert.False(t, foo.HasBar())
	assert.Equal(t, Default_FooRecord_Name, foo.GetName())
	assert.Nil(t, foo.GetBaz())
	assert.False(t, foo.HasBaz())
	assert.Zero(t, foo.GetNumsCount())
	assert.Zero(t, foo.GetNumsList().Len())
	assert.Zero(t, foo.GetChildrenCount())
	assert.Zero(t, foo.GetLabelsMap().Len())
	assert.False(t, foo.ContainsLabels("env"))
	assert.Equal(t, "fallback", foo.GetLabelsOrDefault("env", "fallback"))
	assert.Equal(t, FooRecord_ChoiceNotSet, foo.GetChoiceCase())
	assert.False(t, foo.HasSVal())
	assert.Nil(t, foo.GetMVal())
	assert.Nil(t, foo.GetPayload())
	assert.False(t, foo.HasParent())

	assert.PanicsWithError(t, "record: index 0 out of range [0, 0)", func() {
		foo.GetNums(0)
	})
	assert.PanicsWithError(t, "record: key env not present in map field", func() {
		foo.MustGetLabels("env")
	})

	var bar *BarRecord
	assert.Equal(t, BarRecord_MyOneOfNotSet, bar.GetMyOneOfCase())
	assert.Zero(t, bar.GetIntVariant())
	assert.False(t, bar.HasStringVariant())
}

func TestSetPayloadCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	foo := (&FooRecord{}).SetPayload(src)
	src[0] = 9
	assert.Equal(t, []byte{1, 2, 3}, foo.GetPayload())
}

func TestRepeatedFieldMutation(t *testing.T) {
	foo := (&FooRecord{}).AddAllNums([]int64{10, 20, 30})
	foo.SetNums(1, 25)
	foo.RemoveNums(0)
	assert.Equal(t, []int64{25, 30}, foo.GetNumsList().Slice())

	got := make([]int64, 0, foo.GetNumsCount())
	for _, v := range foo.GetNumsList().All() {
		got = append(got, v)
	}
	assert.Equal(t, []int64{25, 30}, got)
}

func TestHashEqualityContract(t *testing.T) {
	a := sampleFoo()
	b := sampleFoo()
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())

	b.SetBar(43)
	assert.False(t, a.Equal(b))
	assert.NotEqual(t, a.Hash(), b.Hash())
}

func TestHashMapOrderIndependent(t *testing.T) {
	a := (&FooRecord{}).PutLabels("x", "1").PutLabels("y", "2").PutLabels("z", "3")
	b := (&FooRecord{}).PutLabels("z", "3").PutLabels("x", "1").PutLabels("y", "2")
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashTreatsEmptyListLikeAbsent(t *testing.T) {
	absent := &FooRecord{}
	emptied := (&FooRecord{}).AddNums(1)
	emptied.RemoveNums(0)
	assert.True(t, absent.Equal(emptied))
	assert.Equal(t, absent.Hash(), emptied.Hash())
}

func TestProtoRoundTrip(t *testing.T) {
	foo := sampleFoo()
	back := FooRecordFromProto(foo.ToProto())
	assert.True(t, foo.Equal(back))
	assert.Equal(t, foo.Hash(), back.Hash())
}

func TestToBytesMatchesHandBuiltProto(t *testing.T) {
	id := int64(7)
	label := "seven"
	barVal := int64(42)
	name := "sample"
	color := Color_COLOR_RED
	want := (&Foo{
		Bar:  &barVal,
		Name: &name,
		Baz:  &Baz{Id: &id, Label: &label},
		Nums: []int64{1, 2, 3},
		Children: []*Baz{
			{Id: ptr(int64(1))},
			{Id: ptr(int64(2)), Label: ptr("two")},
		},
		Labels: map[string]string{"env": "prod", "zone": "eu"},
		BazMap: map[string]*Baz{
			"a": {Id: ptr(int64(10))},
			"b": {Id: ptr(int64(11)), Label: ptr("b")},
		},
		Color:   &color,
		Choice:  &Foo_SVal{SVal: "chosen"},
		Payload: []byte{0xde, 0xad, 0xbe, 0xef},
	}).Marshal()

	got, err := sampleFoo().ToBytes()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoundTripLargePayload(t *testing.T) {
	foo := &FooRecord{}
	for range 50 {
		u := uuid.New()
		foo.AddChildren((&BazRecord{}).SetLabel(u.String()))
		foo.PutLabels(u.String(), uuid.NewString())
	}
	foo.SetPayload(uuid.New().NodeID())

	back := FooRecordFromProto(foo.ToProto())
	assert.True(t, foo.Equal(back))
	fooBytes, err := foo.ToBytes()
	require.NoError(t, err)
	backBytes, err := back.ToBytes()
	require.NoError(t, err)
	assert.Equal(t, fooBytes, backBytes)
}

func TestViewsAreLive(t *testing.T) {
	foo := (&FooRecord{}).AddNums(1)
	view := foo.GetNumsList()
	foo.SetNums(0, 9)
	assert.EqualValues(t, 9, view.Get(0))

	m := (&FooRecord{}).PutLabels("k", "v").GetLabelsMap()
	assert.Equal(t, 1, m.Len())
	v, ok := m.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func ptr[T any](v T) *T { return &v }
