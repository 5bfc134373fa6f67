// Mutable records for the messages in test_wire.go, written the way
// protoc-gen-go-record emits them. Kept as a committed fixture so the runtime
// semantics can be exercised without running protoc.
package test

import (
	"bytes"
	"maps"
	"slices"

	"github.com/recordgen/protoc-gen-go-record/record"
)

// Default_FooRecord_Name is the declared default for the name field.
const Default_FooRecord_Name = "unknown"

type BazRecord struct {
	id_        int64
	label_     string
	bitField0_ uint32
}

func (x *BazRecord) GetId() int64 {
	if x != nil {
		return x.id_
	}
	return 0
}

func (x *BazRecord) SetId(v int64) *BazRecord {
	x.bitField0_ |= 0x1
	x.id_ = v
	return x
}

func (x *BazRecord) HasId() bool {
	return x != nil && x.bitField0_&0x1 != 0
}

func (x *BazRecord) ClearId() *BazRecord {
	x.id_ = 0
	x.bitField0_ &^= 0x1
	return x
}

func (x *BazRecord) GetLabel() string {
	if x != nil {
		return x.label_
	}
	return ""
}

func (x *BazRecord) SetLabel(v string) *BazRecord {
	x.bitField0_ |= 0x2
	x.label_ = v
	return x
}

func (x *BazRecord) HasLabel() bool {
	return x != nil && x.bitField0_&0x2 != 0
}

func (x *BazRecord) ClearLabel() *BazRecord {
	x.label_ = ""
	x.bitField0_ &^= 0x2
	return x
}

// HasParent reports whether this record was ever attached under a parent.
func (x *BazRecord) HasParent() bool {
	return x != nil && x.bitField0_&0x4 != 0
}

// MarkParent is for internal use by generated code; use record.Claim.
func (x *BazRecord) MarkParent() {
	x.bitField0_ |= 0x4
}

func (x *BazRecord) Equal(other *BazRecord) bool {
	if x == other {
		return true
	}
	if x == nil || other == nil {
		return false
	}
	if x.HasId() != other.HasId() {
		return false
	}
	if x.HasId() && x.id_ != other.id_ {
		return false
	}
	if x.HasLabel() != other.HasLabel() {
		return false
	}
	if x.HasLabel() && x.label_ != other.label_ {
		return false
	}
	return true
}

func (x *BazRecord) Hash() uint64 {
	h := record.HashSeed
	if x.HasId() {
		h = record.MixHash(h, 1, record.HashInt64(x.id_))
	}
	if x.HasLabel() {
		h = record.MixHash(h, 2, record.HashString(x.label_))
	}
	return h
}

func (x *BazRecord) Copy() *BazRecord {
	if x == nil {
		return nil
	}
	out := &BazRecord{}
	if x.HasId() {
		out.SetId(x.id_)
	}
	if x.HasLabel() {
		out.SetLabel(x.label_)
	}
	return out
}

func (x *BazRecord) Clear() *BazRecord {
	x.bitField0_ &= 0x4
	x.id_ = 0
	x.label_ = ""
	return x
}

func (x *BazRecord) ToProto() *Baz {
	if x == nil {
		return nil
	}
	out := &Baz{}
	if x.HasId() {
		v := x.id_
		out.Id = &v
	}
	if x.HasLabel() {
		v := x.label_
		out.Label = &v
	}
	return out
}

// ToBytes serializes the record deterministically, so equal records
// produce equal bytes.
func (x *BazRecord) ToBytes() ([]byte, error) {
	return x.ToProto().Marshal(), nil
}

func BazRecordFromProto(p *Baz) *BazRecord {
	if p == nil {
		return nil
	}
	rec := &BazRecord{}
	if p.Id != nil {
		rec.SetId(*p.Id)
	}
	if p.Label != nil {
		rec.SetLabel(*p.Label)
	}
	return rec
}

type BarRecord_MyOneOfCase int32

const (
	BarRecord_MyOneOfNotSet     BarRecord_MyOneOfCase = 0
	BarRecord_IntVariantCase    BarRecord_MyOneOfCase = 2
	BarRecord_StringVariantCase BarRecord_MyOneOfCase = 3
)

type BarRecord struct {
	bar_         int64
	myOneOf_     any
	myOneOfCase_ int32
	bitField0_   uint32
}

func (x *BarRecord) GetBar() int64 {
	if x != nil {
		return x.bar_
	}
	return 0
}

func (x *BarRecord) SetBar(v int64) *BarRecord {
	x.bitField0_ |= 0x1
	x.bar_ = v
	return x
}

func (x *BarRecord) HasBar() bool {
	return x != nil && x.bitField0_&0x1 != 0
}

func (x *BarRecord) ClearBar() *BarRecord {
	x.bar_ = 0
	x.bitField0_ &^= 0x1
	return x
}

func (x *BarRecord) GetIntVariant() int32 {
	if x != nil && x.myOneOfCase_ == 2 {
		return x.myOneOf_.(int32)
	}
	return 0
}

func (x *BarRecord) SetIntVariant(v int32) *BarRecord {
	x.myOneOfCase_ = 2
	x.myOneOf_ = v
	return x
}

func (x *BarRecord) HasIntVariant() bool {
	return x != nil && x.myOneOfCase_ == 2
}

func (x *BarRecord) ClearIntVariant() *BarRecord {
	if x.myOneOfCase_ == 2 {
		x.myOneOfCase_ = 0
		x.myOneOf_ = nil
	}
	return x
}

func (x *BarRecord) GetStringVariant() string {
	if x != nil && x.myOneOfCase_ == 3 {
		return x.myOneOf_.(string)
	}
	return ""
}

func (x *BarRecord) SetStringVariant(v string) *BarRecord {
	x.myOneOfCase_ = 3
	x.myOneOf_ = v
	return x
}

func (x *BarRecord) HasStringVariant() bool {
	return x != nil && x.myOneOfCase_ == 3
}

func (x *BarRecord) ClearStringVariant() *BarRecord {
	if x.myOneOfCase_ == 3 {
		x.myOneOfCase_ = 0
		x.myOneOf_ = nil
	}
	return x
}

// GetMyOneOfCase reports which variant of the my_one_of group is active.
func (x *BarRecord) GetMyOneOfCase() BarRecord_MyOneOfCase {
	if x != nil {
		return BarRecord_MyOneOfCase(x.myOneOfCase_)
	}
	return BarRecord_MyOneOfNotSet
}

func (x *BarRecord) HasParent() bool {
	return x != nil && x.bitField0_&0x2 != 0
}

func (x *BarRecord) MarkParent() {
	x.bitField0_ |= 0x2
}

func (x *BarRecord) Equal(other *BarRecord) bool {
	if x == other {
		return true
	}
	if x == nil || other == nil {
		return false
	}
	if x.HasBar() != other.HasBar() {
		return false
	}
	if x.HasBar() && x.bar_ != other.bar_ {
		return false
	}
	if x.myOneOfCase_ != other.myOneOfCase_ {
		return false
	}
	switch x.myOneOfCase_ {
	case 2:
		if x.GetIntVariant() != other.GetIntVariant() {
			return false
		}
	case 3:
		if x.GetStringVariant() != other.GetStringVariant() {
			return false
		}
	}
	return true
}

func (x *BarRecord) Hash() uint64 {
	h := record.HashSeed
	if x.HasBar() {
		h = record.MixHash(h, 1, record.HashInt64(x.bar_))
	}
	switch x.myOneOfCase_ {
	case 2:
		h = record.MixHash(h, 2, record.HashInt32(x.GetIntVariant()))
	case 3:
		h = record.MixHash(h, 3, record.HashString(x.GetStringVariant()))
	}
	return h
}

func (x *BarRecord) Copy() *BarRecord {
	if x == nil {
		return nil
	}
	out := &BarRecord{}
	if x.HasBar() {
		out.SetBar(x.bar_)
	}
	switch x.myOneOfCase_ {
	case 2:
		out.SetIntVariant(x.GetIntVariant())
	case 3:
		out.SetStringVariant(x.GetStringVariant())
	}
	return out
}

func (x *BarRecord) Clear() *BarRecord {
	x.bitField0_ &= 0x2
	x.bar_ = 0
	x.myOneOfCase_ = 0
	x.myOneOf_ = nil
	return x
}

func (x *BarRecord) ToProto() *Bar {
	if x == nil {
		return nil
	}
	out := &Bar{}
	if x.HasBar() {
		v := x.bar_
		out.Bar = &v
	}
	switch x.myOneOfCase_ {
	case 2:
		out.MyOneOf = &Bar_IntVariant{IntVariant: x.GetIntVariant()}
	case 3:
		out.MyOneOf = &Bar_StringVariant{StringVariant: x.GetStringVariant()}
	}
	return out
}

// ToBytes serializes the record deterministically, so equal records
// produce equal bytes.
func (x *BarRecord) ToBytes() ([]byte, error) {
	return x.ToProto().Marshal(), nil
}

func BarRecordFromProto(p *Bar) *BarRecord {
	if p == nil {
		return nil
	}
	rec := &BarRecord{}
	if p.Bar != nil {
		rec.SetBar(*p.Bar)
	}
	switch v := p.MyOneOf.(type) {
	case *Bar_IntVariant:
		rec.SetIntVariant(v.IntVariant)
	case *Bar_StringVariant:
		rec.SetStringVariant(v.StringVariant)
	}
	return rec
}

type FooRecord_ChoiceCase int32

const (
	FooRecord_ChoiceNotSet FooRecord_ChoiceCase = 0
	FooRecord_SValCase     FooRecord_ChoiceCase = 9
	FooRecord_MValCase     FooRecord_ChoiceCase = 10
)

type FooRecord struct {
	bar_        int64
	name_       string
	baz_        *BazRecord
	nums_       []int64
	children_   []*BazRecord
	labels_     map[string]string
	bazMap_     map[string]*BazRecord
	color_      Color
	choice_     any
	choiceCase_ int32
	payload_    []byte
	bitField0_  uint32
}

func (x *FooRecord) GetBar() int64 {
	if x != nil {
		return x.bar_
	}
	return 0
}

func (x *FooRecord) SetBar(v int64) *FooRecord {
	x.bitField0_ |= 0x1
	x.bar_ = v
	return x
}

func (x *FooRecord) HasBar() bool {
	return x != nil && x.bitField0_&0x1 != 0
}

func (x *FooRecord) ClearBar() *FooRecord {
	x.bar_ = 0
	x.bitField0_ &^= 0x1
	return x
}

func (x *FooRecord) GetName() string {
	if x.HasName() {
		return x.name_
	}
	return Default_FooRecord_Name
}

func (x *FooRecord) SetName(v string) *FooRecord {
	x.bitField0_ |= 0x2
	x.name_ = v
	return x
}

func (x *FooRecord) HasName() bool {
	return x != nil && x.bitField0_&0x2 != 0
}

func (x *FooRecord) ClearName() *FooRecord {
	x.name_ = Default_FooRecord_Name
	x.bitField0_ &^= 0x2
	return x
}

func (x *FooRecord) GetBaz() *BazRecord {
	if x != nil {
		return x.baz_
	}
	return nil
}

// GetOrCreateBaz returns the baz record, allocating and attaching a fresh
// one when the field is unset.
func (x *FooRecord) GetOrCreateBaz() *BazRecord {
	if x.baz_ == nil {
		x.SetBaz(&BazRecord{})
	}
	return x.baz_
}

func (x *FooRecord) SetBaz(v *BazRecord) *FooRecord {
	record.CheckNotNil("value", v)
	x.baz_ = record.Claim(v)
	return x
}

func (x *FooRecord) HasBaz() bool {
	return x != nil && x.baz_ != nil
}

func (x *FooRecord) ClearBaz() *FooRecord {
	x.baz_ = nil
	return x
}

func (x *FooRecord) GetNumsList() record.List[int64] {
	if x != nil {
		return record.NewList(x.nums_)
	}
	return record.List[int64]{}
}

func (x *FooRecord) GetNumsCount() int {
	if x != nil {
		return len(x.nums_)
	}
	return 0
}

func (x *FooRecord) GetNums(i int) int64 {
	record.CheckIndex(i, x.GetNumsCount())
	return x.nums_[i]
}

func (x *FooRecord) AddNums(v int64) *FooRecord {
	x.nums_ = append(x.nums_, v)
	return x
}

func (x *FooRecord) AddAllNums(vs []int64) *FooRecord {
	if len(vs) > 0 {
		x.nums_ = append(x.nums_, vs...)
	}
	return x
}

func (x *FooRecord) SetNums(i int, v int64) *FooRecord {
	record.CheckIndex(i, len(x.nums_))
	x.nums_[i] = v
	return x
}

func (x *FooRecord) RemoveNums(i int) *FooRecord {
	record.CheckIndex(i, len(x.nums_))
	x.nums_ = slices.Delete(x.nums_, i, i+1)
	return x
}

func (x *FooRecord) ClearNums() *FooRecord {
	x.nums_ = nil
	return x
}

func (x *FooRecord) GetChildrenList() record.List[*BazRecord] {
	if x != nil {
		return record.NewList(x.children_)
	}
	return record.List[*BazRecord]{}
}

func (x *FooRecord) GetChildrenCount() int {
	if x != nil {
		return len(x.children_)
	}
	return 0
}

func (x *FooRecord) GetChildren(i int) *BazRecord {
	record.CheckIndex(i, x.GetChildrenCount())
	return x.children_[i]
}

func (x *FooRecord) AddChildren(v *BazRecord) *FooRecord {
	record.CheckNotNil("value", v)
	x.children_ = append(x.children_, record.Claim(v))
	return x
}

func (x *FooRecord) AddAllChildren(vs []*BazRecord) *FooRecord {
	record.CheckSliceElems("values", vs)
	for _, v := range vs {
		x.children_ = append(x.children_, record.Claim(v))
	}
	return x
}

func (x *FooRecord) SetChildren(i int, v *BazRecord) *FooRecord {
	record.CheckNotNil("value", v)
	record.CheckIndex(i, len(x.children_))
	x.children_[i] = record.Claim(v)
	return x
}

func (x *FooRecord) RemoveChildren(i int) *FooRecord {
	record.CheckIndex(i, len(x.children_))
	x.children_ = slices.Delete(x.children_, i, i+1)
	return x
}

func (x *FooRecord) ClearChildren() *FooRecord {
	x.children_ = nil
	return x
}

func (x *FooRecord) GetLabelsMap() record.Map[string, string] {
	if x != nil {
		return record.NewMap(x.labels_)
	}
	return record.Map[string, string]{}
}

func (x *FooRecord) GetLabelsCount() int {
	if x != nil {
		return len(x.labels_)
	}
	return 0
}

func (x *FooRecord) ContainsLabels(k string) bool {
	if x != nil {
		_, ok := x.labels_[k]
		return ok
	}
	return false
}

func (x *FooRecord) GetLabelsOrDefault(k string, def string) string {
	if x != nil {
		if v, ok := x.labels_[k]; ok {
			return v
		}
	}
	return def
}

// MustGetLabels panics with a record.KeyError when k is absent.
func (x *FooRecord) MustGetLabels(k string) string {
	if x != nil {
		if v, ok := x.labels_[k]; ok {
			return v
		}
	}
	panic(&record.KeyError{Key: k})
}

func (x *FooRecord) PutLabels(k string, v string) *FooRecord {
	if x.labels_ == nil {
		x.labels_ = make(map[string]string)
	}
	x.labels_[k] = v
	return x
}

func (x *FooRecord) PutAllLabels(m map[string]string) *FooRecord {
	if len(m) == 0 {
		return x
	}
	if x.labels_ == nil {
		x.labels_ = make(map[string]string, len(m))
	}
	maps.Copy(x.labels_, m)
	return x
}

func (x *FooRecord) RemoveLabels(k string) *FooRecord {
	delete(x.labels_, k)
	return x
}

func (x *FooRecord) ClearLabels() *FooRecord {
	x.labels_ = nil
	return x
}

func (x *FooRecord) GetBazMapMap() record.Map[string, *BazRecord] {
	if x != nil {
		return record.NewMap(x.bazMap_)
	}
	return record.Map[string, *BazRecord]{}
}

func (x *FooRecord) GetBazMapCount() int {
	if x != nil {
		return len(x.bazMap_)
	}
	return 0
}

func (x *FooRecord) ContainsBazMap(k string) bool {
	if x != nil {
		_, ok := x.bazMap_[k]
		return ok
	}
	return false
}

func (x *FooRecord) GetBazMapOrDefault(k string, def *BazRecord) *BazRecord {
	if x != nil {
		if v, ok := x.bazMap_[k]; ok {
			return v
		}
	}
	return def
}

// MustGetBazMap panics with a record.KeyError when k is absent.
func (x *FooRecord) MustGetBazMap(k string) *BazRecord {
	if x != nil {
		if v, ok := x.bazMap_[k]; ok {
			return v
		}
	}
	panic(&record.KeyError{Key: k})
}

func (x *FooRecord) PutBazMap(k string, v *BazRecord) *FooRecord {
	record.CheckNotNil("value", v)
	if x.bazMap_ == nil {
		x.bazMap_ = make(map[string]*BazRecord)
	}
	x.bazMap_[k] = record.Claim(v)
	return x
}

func (x *FooRecord) PutAllBazMap(m map[string]*BazRecord) *FooRecord {
	record.CheckMapValues("entries", m)
	if len(m) == 0 {
		return x
	}
	if x.bazMap_ == nil {
		x.bazMap_ = make(map[string]*BazRecord, len(m))
	}
	for k, v := range m {
		x.bazMap_[k] = record.Claim(v)
	}
	return x
}

func (x *FooRecord) RemoveBazMap(k string) *FooRecord {
	delete(x.bazMap_, k)
	return x
}

func (x *FooRecord) ClearBazMap() *FooRecord {
	x.bazMap_ = nil
	return x
}

func (x *FooRecord) GetColor() Color {
	if x != nil {
		return x.color_
	}
	return Color_COLOR_UNSPECIFIED
}

func (x *FooRecord) SetColor(v Color) *FooRecord {
	x.bitField0_ |= 0x4
	x.color_ = v
	return x
}

func (x *FooRecord) HasColor() bool {
	return x != nil && x.bitField0_&0x4 != 0
}

func (x *FooRecord) ClearColor() *FooRecord {
	x.color_ = Color_COLOR_UNSPECIFIED
	x.bitField0_ &^= 0x4
	return x
}

func (x *FooRecord) GetSVal() string {
	if x != nil && x.choiceCase_ == 9 {
		return x.choice_.(string)
	}
	return ""
}

func (x *FooRecord) SetSVal(v string) *FooRecord {
	x.choiceCase_ = 9
	x.choice_ = v
	return x
}

func (x *FooRecord) HasSVal() bool {
	return x != nil && x.choiceCase_ == 9
}

func (x *FooRecord) ClearSVal() *FooRecord {
	if x.choiceCase_ == 9 {
		x.choiceCase_ = 0
		x.choice_ = nil
	}
	return x
}

func (x *FooRecord) GetMVal() *BazRecord {
	if x != nil && x.choiceCase_ == 10 {
		return x.choice_.(*BazRecord)
	}
	return nil
}

// GetOrCreateMVal returns the m_val record, switching the choice group to
// this variant and attaching a fresh record when it is not already active.
func (x *FooRecord) GetOrCreateMVal() *BazRecord {
	if x.choiceCase_ != 10 {
		x.SetMVal(&BazRecord{})
	}
	return x.choice_.(*BazRecord)
}

func (x *FooRecord) SetMVal(v *BazRecord) *FooRecord {
	record.CheckNotNil("value", v)
	x.choiceCase_ = 10
	x.choice_ = record.Claim(v)
	return x
}

func (x *FooRecord) HasMVal() bool {
	return x != nil && x.choiceCase_ == 10
}

func (x *FooRecord) ClearMVal() *FooRecord {
	if x.choiceCase_ == 10 {
		x.choiceCase_ = 0
		x.choice_ = nil
	}
	return x
}

// GetChoiceCase reports which variant of the choice group is active.
func (x *FooRecord) GetChoiceCase() FooRecord_ChoiceCase {
	if x != nil {
		return FooRecord_ChoiceCase(x.choiceCase_)
	}
	return FooRecord_ChoiceNotSet
}

func (x *FooRecord) GetPayload() []byte {
	if x != nil {
		return x.payload_
	}
	return nil
}

func (x *FooRecord) SetPayload(v []byte) *FooRecord {
	x.bitField0_ |= 0x8
	x.payload_ = slices.Clone(v)
	return x
}

func (x *FooRecord) HasPayload() bool {
	return x != nil && x.bitField0_&0x8 != 0
}

func (x *FooRecord) ClearPayload() *FooRecord {
	x.payload_ = nil
	x.bitField0_ &^= 0x8
	return x
}

func (x *FooRecord) HasParent() bool {
	return x != nil && x.bitField0_&0x10 != 0
}

func (x *FooRecord) MarkParent() {
	x.bitField0_ |= 0x10
}

func (x *FooRecord) Equal(other *FooRecord) bool {
	if x == other {
		return true
	}
	if x == nil || other == nil {
		return false
	}
	if x.HasBar() != other.HasBar() {
		return false
	}
	if x.HasBar() && x.bar_ != other.bar_ {
		return false
	}
	if x.HasName() != other.HasName() {
		return false
	}
	if x.HasName() && x.name_ != other.name_ {
		return false
	}
	if x.HasBaz() != other.HasBaz() {
		return false
	}
	if x.HasBaz() && !x.baz_.Equal(other.baz_) {
		return false
	}
	if !slices.Equal(x.nums_, other.nums_) {
		return false
	}
	if !slices.EqualFunc(x.children_, other.children_, (*BazRecord).Equal) {
		return false
	}
	if !maps.Equal(x.labels_, other.labels_) {
		return false
	}
	if !maps.EqualFunc(x.bazMap_, other.bazMap_, (*BazRecord).Equal) {
		return false
	}
	if x.HasColor() != other.HasColor() {
		return false
	}
	if x.HasColor() && x.color_ != other.color_ {
		return false
	}
	if x.HasPayload() != other.HasPayload() {
		return false
	}
	if x.HasPayload() && !bytes.Equal(x.payload_, other.payload_) {
		return false
	}
	if x.choiceCase_ != other.choiceCase_ {
		return false
	}
	switch x.choiceCase_ {
	case 9:
		if x.GetSVal() != other.GetSVal() {
			return false
		}
	case 10:
		if !x.GetMVal().Equal(other.GetMVal()) {
			return false
		}
	}
	return true
}

func (x *FooRecord) Hash() uint64 {
	h := record.HashSeed
	if x.HasBar() {
		h = record.MixHash(h, 1, record.HashInt64(x.bar_))
	}
	if x.HasName() {
		h = record.MixHash(h, 2, record.HashString(x.name_))
	}
	if x.HasBaz() {
		h = record.MixHash(h, 3, x.baz_.Hash())
	}
	if len(x.nums_) > 0 {
		h = record.MixHash(h, 4, record.HashSlice(x.nums_, record.HashInt64))
	}
	if len(x.children_) > 0 {
		h = record.MixHash(h, 5, record.HashSlice(x.children_, (*BazRecord).Hash))
	}
	if len(x.labels_) > 0 {
		h = record.MixHash(h, 6, record.HashMap(x.labels_, record.HashString, record.HashString))
	}
	if len(x.bazMap_) > 0 {
		h = record.MixHash(h, 7, record.HashMap(x.bazMap_, record.HashString, (*BazRecord).Hash))
	}
	if x.HasColor() {
		h = record.MixHash(h, 8, record.HashInt32(int32(x.color_)))
	}
	if x.HasPayload() {
		h = record.MixHash(h, 11, record.HashBytes(x.payload_))
	}
	switch x.choiceCase_ {
	case 9:
		h = record.MixHash(h, 9, record.HashString(x.GetSVal()))
	case 10:
		h = record.MixHash(h, 10, x.GetMVal().Hash())
	}
	return h
}

func (x *FooRecord) Copy() *FooRecord {
	if x == nil {
		return nil
	}
	out := &FooRecord{}
	if x.HasBar() {
		out.SetBar(x.bar_)
	}
	if x.HasName() {
		out.SetName(x.name_)
	}
	if x.HasBaz() {
		out.SetBaz(x.baz_.Copy())
	}
	out.nums_ = slices.Clone(x.nums_)
	out.children_ = record.CopySlice(x.children_)
	out.labels_ = maps.Clone(x.labels_)
	out.bazMap_ = record.CopyMap(x.bazMap_)
	if x.HasColor() {
		out.SetColor(x.color_)
	}
	if x.HasPayload() {
		out.SetPayload(x.payload_)
	}
	switch x.choiceCase_ {
	case 9:
		out.SetSVal(x.GetSVal())
	case 10:
		out.SetMVal(x.GetMVal().Copy())
	}
	return out
}

func (x *FooRecord) Clear() *FooRecord {
	x.bitField0_ &= 0x10
	x.bar_ = 0
	x.name_ = Default_FooRecord_Name
	x.baz_ = nil
	x.nums_ = nil
	x.children_ = nil
	x.labels_ = nil
	x.bazMap_ = nil
	x.color_ = Color_COLOR_UNSPECIFIED
	x.payload_ = nil
	x.choiceCase_ = 0
	x.choice_ = nil
	return x
}

func (x *FooRecord) ToProto() *Foo {
	if x == nil {
		return nil
	}
	out := &Foo{}
	if x.HasBar() {
		v := x.bar_
		out.Bar = &v
	}
	if x.HasName() {
		v := x.name_
		out.Name = &v
	}
	if x.HasBaz() {
		out.Baz = x.baz_.ToProto()
	}
	if len(x.nums_) > 0 {
		out.Nums = slices.Clone(x.nums_)
	}
	if len(x.children_) > 0 {
		out.Children = make([]*Baz, 0, len(x.children_))
		for _, c := range x.children_ {
			out.Children = append(out.Children, c.ToProto())
		}
	}
	if len(x.labels_) > 0 {
		out.Labels = maps.Clone(x.labels_)
	}
	if len(x.bazMap_) > 0 {
		out.BazMap = make(map[string]*Baz, len(x.bazMap_))
		for k, v := range x.bazMap_ {
			out.BazMap[k] = v.ToProto()
		}
	}
	if x.HasColor() {
		v := x.color_
		out.Color = &v
	}
	if x.HasPayload() {
		out.Payload = slices.Clone(x.payload_)
	}
	switch x.choiceCase_ {
	case 9:
		out.Choice = &Foo_SVal{SVal: x.GetSVal()}
	case 10:
		out.Choice = &Foo_MVal{MVal: x.GetMVal().ToProto()}
	}
	return out
}

// ToBytes serializes the record deterministically, so equal records
// produce equal bytes.
func (x *FooRecord) ToBytes() ([]byte, error) {
	return x.ToProto().Marshal(), nil
}

func FooRecordFromProto(p *Foo) *FooRecord {
	if p == nil {
		return nil
	}
	rec := &FooRecord{}
	if p.Bar != nil {
		rec.SetBar(*p.Bar)
	}
	if p.Name != nil {
		rec.SetName(*p.Name)
	}
	if p.Baz != nil {
		rec.SetBaz(BazRecordFromProto(p.Baz))
	}
	if len(p.Nums) > 0 {
		rec.AddAllNums(p.Nums)
	}
	for _, c := range p.Children {
		rec.AddChildren(BazRecordFromProto(c))
	}
	for k, v := range p.Labels {
		rec.PutLabels(k, v)
	}
	for k, v := range p.BazMap {
		rec.PutBazMap(k, BazRecordFromProto(v))
	}
	if p.Color != nil {
		rec.SetColor(*p.Color)
	}
	if p.Payload != nil {
		rec.SetPayload(p.Payload)
	}
	switch v := p.Choice.(type) {
	case *Foo_SVal:
		rec.SetSVal(v.SVal)
	case *Foo_MVal:
		rec.SetMVal(BazRecordFromProto(v.MVal))
	}
	return rec
}
