package generator

import (
	"github.com/iancoleman/strcase"
	"github.com/samber/lo"
	"google.golang.org/protobuf/compiler/protogen"
)

// planMessage lays out one message: slots, presence bits in declaration
// order, oneof groups, then the parent bit after every scalar bit.
func (g *Generator) planMessage(msg *protogen.Message) *MessagePlan {
	plan := &MessagePlan{
		Source: msg,
		GoName: msg.GoIdent.GoName + g.Settings.Suffix,
	}

	bits := &FieldBits{}
	realOneofs := lo.Filter(msg.Oneofs, func(o *protogen.Oneof, _ int) bool {
		return !o.Desc.IsSynthetic()
	})
	oneofPlans := make(map[*protogen.Oneof]*OneofPlan, len(realOneofs))
	for _, oneof := range realOneofs {
		slot := slotName(oneof.GoName)
		op := &OneofPlan{
			Source:    oneof,
			GoName:    oneof.GoName,
			SlotField: slot,
			CaseField: strcase.ToLowerCamel(oneof.GoName) + "Case_",
			CaseType:  plan.GoName + "_" + oneof.GoName + "Case",
		}
		oneofPlans[oneof] = op
		plan.Oneofs = append(plan.Oneofs, op)
	}

	for _, field := range msg.Fields {
		fp := &FieldPlan{
			Source: field,
			GoName: field.GoName,
			Slot:   slotName(field.GoName),
			Number: int32(field.Desc.Number()),
		}
		switch {
		case field.Desc.IsMap():
			fp.Kind = KindMap
			fp.DefaultLit = "nil"
		case field.Desc.IsList():
			fp.Kind = KindRepeated
			fp.DefaultLit = "nil"
		case field.Oneof != nil && !field.Oneof.Desc.IsSynthetic():
			fp.Kind = KindOneofVariant
			fp.Oneof = oneofPlans[field.Oneof]
			fp.Oneof.Variants = append(fp.Oneof.Variants, fp)
		case field.Message != nil:
			fp.Kind = KindMessage
			fp.DefaultLit = "nil"
		default:
			fp.Kind = KindScalar
			fp.Word, fp.Mask = bits.Allocate()
			fp.DefaultLit = scalarDefault(field)
			fp.HasDeclaredDefault = field.Desc.HasDefault()
		}
		plan.Fields = append(plan.Fields, fp)
	}

	plan.ParentWord, plan.ParentMask = bits.ReserveParentBit()
	plan.BitWords = bits.WordsInUse()

	for _, child := range msg.Messages {
		if child.Desc.IsMapEntry() {
			continue
		}
		plan.Nested = append(plan.Nested, g.planMessage(child))
	}
	return plan
}

func slotName(goName string) string {
	return strcase.ToLowerCamel(goName) + "_"
}
