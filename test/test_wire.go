// Hand-written stand-in for the protoc-gen-go output of test.proto. It keeps
// the same shape as the real generated structs (pointer fields for explicit
// presence, wrapper types for oneofs) and serializes with protowire so
// byte-level round-trip checks are real. Maps are emitted in sorted key
// order to keep the output deterministic.
package test

import (
	"maps"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"
)

type Color int32

const (
	Color_COLOR_UNSPECIFIED Color = 0
	Color_COLOR_RED         Color = 1
	Color_COLOR_BLUE        Color = 2
)

type Baz struct {
	Id    *int64
	Label *string
}

func (x *Baz) GetId() int64 {
	if x != nil && x.Id != nil {
		return *x.Id
	}
	return 0
}

func (x *Baz) GetLabel() string {
	if x != nil && x.Label != nil {
		return *x.Label
	}
	return ""
}

func (x *Baz) Marshal() []byte {
	var b []byte
	if x == nil {
		return b
	}
	if x.Id != nil {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*x.Id))
	}
	if x.Label != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, *x.Label)
	}
	return b
}

type Bar struct {
	Bar     *int64
	MyOneOf isBar_MyOneOf
}

type isBar_MyOneOf interface {
	isBar_MyOneOf()
}

type Bar_IntVariant struct {
	IntVariant int32
}

type Bar_StringVariant struct {
	StringVariant string
}

func (*Bar_IntVariant) isBar_MyOneOf()    {}
func (*Bar_StringVariant) isBar_MyOneOf() {}

func (x *Bar) GetBar() int64 {
	if x != nil && x.Bar != nil {
		return *x.Bar
	}
	return 0
}

func (x *Bar) GetIntVariant() int32 {
	if x != nil {
		if v, ok := x.MyOneOf.(*Bar_IntVariant); ok {
			return v.IntVariant
		}
	}
	return 0
}

func (x *Bar) GetStringVariant() string {
	if x != nil {
		if v, ok := x.MyOneOf.(*Bar_StringVariant); ok {
			return v.StringVariant
		}
	}
	return ""
}

func (x *Bar) Marshal() []byte {
	var b []byte
	if x == nil {
		return b
	}
	if x.Bar != nil {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*x.Bar))
	}
	switch v := x.MyOneOf.(type) {
	case *Bar_IntVariant:
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(uint32(v.IntVariant)))
	case *Bar_StringVariant:
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendString(b, v.StringVariant)
	}
	return b
}

type Foo struct {
	Bar      *int64
	Name     *string
	Baz      *Baz
	Nums     []int64
	Children []*Baz
	Labels   map[string]string
	BazMap   map[string]*Baz
	Color    *Color
	Choice   isFoo_Choice
	Payload  []byte
}

type isFoo_Choice interface {
	isFoo_Choice()
}

type Foo_SVal struct {
	SVal string
}

type Foo_MVal struct {
	MVal *Baz
}

func (*Foo_SVal) isFoo_Choice() {}
func (*Foo_MVal) isFoo_Choice() {}

func (x *Foo) GetBaz() *Baz {
	if x != nil {
		return x.Baz
	}
	return nil
}

func (x *Foo) GetNumsCount() int {
	if x != nil {
		return len(x.Nums)
	}
	return 0
}

func (x *Foo) GetChildrenCount() int {
	if x != nil {
		return len(x.Children)
	}
	return 0
}

func (x *Foo) Marshal() []byte {
	var b []byte
	if x == nil {
		return b
	}
	if x.Bar != nil {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(*x.Bar))
	}
	if x.Name != nil {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, *x.Name)
	}
	if x.Baz != nil {
		b = protowire.AppendTag(b, 3, protowire.BytesType)
		b = protowire.AppendBytes(b, x.Baz.Marshal())
	}
	for _, v := range x.Nums {
		b = protowire.AppendTag(b, 4, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	for _, c := range x.Children {
		b = protowire.AppendTag(b, 5, protowire.BytesType)
		b = protowire.AppendBytes(b, c.Marshal())
	}
	for _, k := range slices.Sorted(maps.Keys(x.Labels)) {
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendString(entry, x.Labels[k])
		b = protowire.AppendTag(b, 6, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	for _, k := range slices.Sorted(maps.Keys(x.BazMap)) {
		var entry []byte
		entry = protowire.AppendTag(entry, 1, protowire.BytesType)
		entry = protowire.AppendString(entry, k)
		entry = protowire.AppendTag(entry, 2, protowire.BytesType)
		entry = protowire.AppendBytes(entry, x.BazMap[k].Marshal())
		b = protowire.AppendTag(b, 7, protowire.BytesType)
		b = protowire.AppendBytes(b, entry)
	}
	if x.Color != nil {
		b = protowire.AppendTag(b, 8, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(uint32(*x.Color)))
	}
	switch v := x.Choice.(type) {
	case *Foo_SVal:
		b = protowire.AppendTag(b, 9, protowire.BytesType)
		b = protowire.AppendString(b, v.SVal)
	case *Foo_MVal:
		b = protowire.AppendTag(b, 10, protowire.BytesType)
		b = protowire.AppendBytes(b, v.MVal.Marshal())
	}
	if x.Payload != nil {
		b = protowire.AppendTag(b, 11, protowire.BytesType)
		b = protowire.AppendBytes(b, x.Payload)
	}
	return b
}
