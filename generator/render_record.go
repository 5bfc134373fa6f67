package generator

import (
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

func (fg *FileGen) genRecord(plan *MessagePlan) {
	fg.genDefaultConsts(plan)
	for _, oneof := range plan.Oneofs {
		fg.genOneofCaseType(plan, oneof)
	}
	fg.genStruct(plan)

	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.genScalarField(plan, fp)
		case KindMessage:
			fg.genMessageField(plan, fp)
		case KindRepeated:
			fg.genRepeatedField(plan, fp)
		case KindMap:
			fg.genMapField(plan, fp)
		case KindOneofVariant:
			fg.genOneofVariant(plan, fp)
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.genOneofCaseGetter(plan, oneof)
	}

	fg.genParenting(plan)
	fg.genEqual(plan)
	fg.genHash(plan)
	fg.genCopy(plan)
	fg.genClear(plan)
	fg.genToProto(plan)
	fg.genToBytes(plan)
	fg.genFromProto(plan)

	for _, nested := range plan.Nested {
		fg.genRecord(nested)
	}
}

func (fg *FileGen) genDefaultConsts(plan *MessagePlan) {
	for _, fp := range plan.Fields {
		if !fp.HasDeclaredDefault {
			continue
		}
		fg.P("// ", defaultConstName(plan, fp), " is the declared default for the ",
			fp.Source.Desc.Name(), " field.")
		decl := "const "
		if fp.Source.Desc.Kind() == protoreflect.BytesKind {
			// Slice literals cannot be constants.
			decl = "var "
		}
		fg.P(decl, defaultConstName(plan, fp), " = ", fg.defaultLitExpr(fp))
		fg.P()
	}
}

func (fg *FileGen) genStruct(plan *MessagePlan) {
	fg.P("type ", plan.GoName, " struct {")
	emittedOneofs := map[*OneofPlan]bool{}
	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.P(fp.Slot, " ", fg.scalarGoType(fp.Source))
		case KindMessage:
			fg.P(fp.Slot, " *", fg.recordTypeOf(fp.Source.Message))
		case KindRepeated:
			fg.P(fp.Slot, " []", fg.listElemType(fp.Source))
		case KindMap:
			fg.P(fp.Slot, " map[", fg.mapKeyType(fp.Source), "]", fg.mapValueType(fp.Source))
		case KindOneofVariant:
			if !emittedOneofs[fp.Oneof] {
				emittedOneofs[fp.Oneof] = true
				fg.P(fp.Oneof.SlotField, " any")
				fg.P(fp.Oneof.CaseField, " int32")
			}
		}
	}
	for word := 0; word < plan.BitWords; word++ {
		fg.P(WordName(word), " uint32")
	}
	fg.P("}")
	fg.P()
}

func (fg *FileGen) listElemType(field *protogen.Field) string {
	if field.Message != nil {
		return "*" + fg.recordTypeOf(field.Message)
	}
	return fg.scalarGoType(field)
}

func (fg *FileGen) mapKeyType(field *protogen.Field) string {
	return fg.scalarGoType(field.Message.Fields[0])
}

func (fg *FileGen) mapValueType(field *protogen.Field) string {
	value := field.Message.Fields[1]
	if value.Message != nil {
		return "*" + fg.recordTypeOf(value.Message)
	}
	return fg.scalarGoType(value)
}

func (fg *FileGen) genParenting(plan *MessagePlan) {
	word := WordName(plan.ParentWord)
	mask := MaskLiteral(plan.ParentMask)

	fg.P("// HasParent reports whether this record was ever attached under a parent.")
	fg.P("func (x *", plan.GoName, ") HasParent() bool {")
	fg.P("return x != nil && x.", word, "&", mask, " != 0")
	fg.P("}")
	fg.P()
	fg.P("// MarkParent is for internal use by generated code; use ",
		fg.recordIdent("Claim"), ".")
	fg.P("func (x *", plan.GoName, ") MarkParent() {")
	fg.P("x.", word, " |= ", mask)
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genEqual(plan *MessagePlan) {
	fg.P("func (x *", plan.GoName, ") Equal(other *", plan.GoName, ") bool {")
	fg.P("if x == other {")
	fg.P("return true")
	fg.P("}")
	fg.P("if x == nil || other == nil {")
	fg.P("return false")
	fg.P("}")
	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.P("if x.Has", fp.GoName, "() != other.Has", fp.GoName, "() {")
			fg.P("return false")
			fg.P("}")
			if fp.Source.Desc.Kind() == protoreflect.BytesKind {
				fg.P("if x.Has", fp.GoName, "() && !", fg.bytesIdent("Equal"),
					"(x.", fp.Slot, ", other.", fp.Slot, ") {")
			} else {
				fg.P("if x.Has", fp.GoName, "() && x.", fp.Slot, " != other.", fp.Slot, " {")
			}
			fg.P("return false")
			fg.P("}")
		case KindMessage:
			fg.P("if x.Has", fp.GoName, "() != other.Has", fp.GoName, "() {")
			fg.P("return false")
			fg.P("}")
			fg.P("if x.Has", fp.GoName, "() && !x.", fp.Slot, ".Equal(other.", fp.Slot, ") {")
			fg.P("return false")
			fg.P("}")
		case KindRepeated:
			if fp.Source.Message != nil {
				fg.P("if !", fg.slicesIdent("EqualFunc"), "(x.", fp.Slot, ", other.", fp.Slot,
					", (*", fg.recordTypeOf(fp.Source.Message), ").Equal) {")
			} else {
				fg.P("if !", fg.slicesIdent("Equal"), "(x.", fp.Slot, ", other.", fp.Slot, ") {")
			}
			fg.P("return false")
			fg.P("}")
		case KindMap:
			value := fp.Source.Message.Fields[1]
			if value.Message != nil {
				fg.P("if !", fg.mapsIdent("EqualFunc"), "(x.", fp.Slot, ", other.", fp.Slot,
					", (*", fg.recordTypeOf(value.Message), ").Equal) {")
			} else {
				fg.P("if !", fg.mapsIdent("Equal"), "(x.", fp.Slot, ", other.", fp.Slot, ") {")
			}
			fg.P("return false")
			fg.P("}")
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("if x.", oneof.CaseField, " != other.", oneof.CaseField, " {")
		fg.P("return false")
		fg.P("}")
		fg.P("switch x.", oneof.CaseField, " {")
		for _, v := range oneof.Variants {
			fg.P("case ", v.Number, ":")
			if v.Source.Message != nil {
				fg.P("if !x.Get", v.GoName, "().Equal(other.Get", v.GoName, "()) {")
			} else if v.Source.Desc.Kind() == protoreflect.BytesKind {
				fg.P("if !", fg.bytesIdent("Equal"), "(x.Get", v.GoName,
					"(), other.Get", v.GoName, "()) {")
			} else {
				fg.P("if x.Get", v.GoName, "() != other.Get", v.GoName, "() {")
			}
			fg.P("return false")
			fg.P("}")
		}
		fg.P("}")
	}
	fg.P("return true")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genHash(plan *MessagePlan) {
	fg.P("func (x *", plan.GoName, ") Hash() uint64 {")
	fg.P("h := ", fg.recordIdent("HashSeed"))
	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.P("if x.Has", fp.GoName, "() {")
			fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", ",
				fg.hashExprOf(fp.Source, "x."+fp.Slot), ")")
			fg.P("}")
		case KindMessage:
			fg.P("if x.Has", fp.GoName, "() {")
			fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", x.", fp.Slot, ".Hash())")
			fg.P("}")
		case KindRepeated:
			fg.P("if len(x.", fp.Slot, ") > 0 {")
			if fp.Source.Message != nil {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", ",
					fg.recordIdent("HashSlice"), "(x.", fp.Slot,
					", (*", fg.recordTypeOf(fp.Source.Message), ").Hash))")
			} else {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", ",
					fg.recordIdent("HashSlice"), "(x.", fp.Slot, ", ",
					fg.hashFuncOf(fp.Source), "))")
			}
			fg.P("}")
		case KindMap:
			key := fp.Source.Message.Fields[0]
			value := fp.Source.Message.Fields[1]
			fg.P("if len(x.", fp.Slot, ") > 0 {")
			if value.Message != nil {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", ",
					fg.recordIdent("HashMap"), "(x.", fp.Slot, ", ", fg.hashFuncOf(key),
					", (*", fg.recordTypeOf(value.Message), ").Hash))")
			} else {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", fp.Number, ", ",
					fg.recordIdent("HashMap"), "(x.", fp.Slot, ", ", fg.hashFuncOf(key),
					", ", fg.hashFuncOf(value), "))")
			}
			fg.P("}")
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("switch x.", oneof.CaseField, " {")
		for _, v := range oneof.Variants {
			fg.P("case ", v.Number, ":")
			if v.Source.Message != nil {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", v.Number,
					", x.Get", v.GoName, "().Hash())")
			} else {
				fg.P("h = ", fg.recordIdent("MixHash"), "(h, ", v.Number, ", ",
					fg.hashExprOf(v.Source, "x.Get"+v.GoName+"()"), ")")
			}
		}
		fg.P("}")
	}
	fg.P("return h")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genCopy(plan *MessagePlan) {
	fg.P("func (x *", plan.GoName, ") Copy() *", plan.GoName, " {")
	fg.P("if x == nil {")
	fg.P("return nil")
	fg.P("}")
	fg.P("out := &", plan.GoName, "{}")
	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.P("if x.Has", fp.GoName, "() {")
			fg.P("out.Set", fp.GoName, "(x.", fp.Slot, ")")
			fg.P("}")
		case KindMessage:
			fg.P("if x.Has", fp.GoName, "() {")
			fg.P("out.Set", fp.GoName, "(x.", fp.Slot, ".Copy())")
			fg.P("}")
		case KindRepeated:
			if fp.Source.Message != nil {
				fg.P("out.", fp.Slot, " = ", fg.recordIdent("CopySlice"), "(x.", fp.Slot, ")")
			} else {
				fg.P("out.", fp.Slot, " = ", fg.slicesIdent("Clone"), "(x.", fp.Slot, ")")
			}
		case KindMap:
			value := fp.Source.Message.Fields[1]
			if value.Message != nil {
				fg.P("out.", fp.Slot, " = ", fg.recordIdent("CopyMap"), "(x.", fp.Slot, ")")
			} else {
				fg.P("out.", fp.Slot, " = ", fg.mapsIdent("Clone"), "(x.", fp.Slot, ")")
			}
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("switch x.", oneof.CaseField, " {")
		for _, v := range oneof.Variants {
			fg.P("case ", v.Number, ":")
			if v.Source.Message != nil {
				fg.P("out.Set", v.GoName, "(x.Get", v.GoName, "().Copy())")
			} else {
				fg.P("out.Set", v.GoName, "(x.Get", v.GoName, "())")
			}
		}
		fg.P("}")
	}
	fg.P("return out")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genClear(plan *MessagePlan) {
	fg.P("func (x *", plan.GoName, ") Clear() *", plan.GoName, " {")
	// The word carrying the parent mark keeps it across Clear.
	for word := 0; word < plan.BitWords; word++ {
		if word == plan.ParentWord {
			fg.P("x.", WordName(word), " &= ", MaskLiteral(plan.ParentMask))
		} else {
			fg.P("x.", WordName(word), " = 0")
		}
	}
	for _, fp := range plan.Fields {
		switch fp.Kind {
		case KindScalar:
			fg.P("x.", fp.Slot, " = ", fg.defaultExpr(plan, fp))
		case KindMessage, KindRepeated, KindMap:
			fg.P("x.", fp.Slot, " = nil")
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("x.", oneof.CaseField, " = 0")
		fg.P("x.", oneof.SlotField, " = nil")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()
}
