package generator

import (
	"google.golang.org/protobuf/compiler/protogen"
)

type FieldKind int

const (
	KindScalar FieldKind = iota
	KindMessage
	KindRepeated
	KindMap
	KindOneofVariant
)

func (k FieldKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindMessage:
		return "message"
	case KindRepeated:
		return "repeated"
	case KindMap:
		return "map"
	case KindOneofVariant:
		return "oneof_variant"
	}
	return "unknown"
}

// FieldPlan captures everything the renderer needs to emit the accessors
// for one field.
type FieldPlan struct {
	Source *protogen.Field
	GoName string
	// Slot is the struct field backing this plan, e.g. "bar_".
	Slot   string
	Number int32
	Kind   FieldKind

	// Presence word/mask, meaningful for KindScalar only.
	Word int
	Mask uint32

	// DefaultLit is the Go literal the slot resets to, e.g. `0`,
	// `"unknown"` or `nil`.
	DefaultLit string
	// HasDeclaredDefault marks proto2 fields with an explicit default,
	// which get a Default_<Record>_<Field> constant and a branching getter.
	HasDeclaredDefault bool

	// Oneof is set for KindOneofVariant.
	Oneof *OneofPlan
}

// OneofPlan describes one oneof group: a shared any slot plus an int32
// case discriminator.
type OneofPlan struct {
	Source    *protogen.Oneof
	GoName    string
	SlotField string
	CaseField string
	// CaseType is the generated case enum name, e.g. "BarRecord_MyOneOfCase".
	CaseType string
	Variants []*FieldPlan
}

// MessagePlan is the full generation plan for one message.
type MessagePlan struct {
	Source *protogen.Message
	// GoName is the record type name, message name plus the configured
	// suffix.
	GoName string
	Fields []*FieldPlan
	Oneofs []*OneofPlan

	ParentWord int
	ParentMask uint32
	BitWords   int

	Nested []*MessagePlan
}

// ScalarFields returns the plans that carry presence bits.
func (m *MessagePlan) ScalarFields() []*FieldPlan {
	out := make([]*FieldPlan, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.Kind == KindScalar {
			out = append(out, f)
		}
	}
	return out
}
