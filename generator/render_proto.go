package generator

import (
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// wireIsPointer reports whether protoc-gen-go models the field as a
// pointer: explicit-presence scalars are, bytes never are.
func wireIsPointer(field *protogen.Field) bool {
	return field.Desc.HasPresence() && field.Desc.Kind() != protoreflect.BytesKind
}

// implicitGuard is the non-zero test FromProto uses for fields the wire
// struct stores by value.
func implicitGuard(field *protogen.Field, src string) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return src
	case protoreflect.StringKind:
		return src + ` != ""`
	}
	return src + " != 0"
}

func (fg *FileGen) genToProto(plan *MessagePlan) {
	pb := fg.pbTypeOf(plan.Source)

	fg.P("func (x *", plan.GoName, ") ToProto() *", pb, " {")
	fg.P("if x == nil {")
	fg.P("return nil")
	fg.P("}")
	fg.P("out := &", pb, "{}")
	for _, fp := range plan.Fields {
		goName := fp.GoName
		switch fp.Kind {
		case KindScalar:
			fg.P("if x.Has", goName, "() {")
			switch {
			case wireIsPointer(fp.Source):
				fg.P("v := x.", fp.Slot)
				fg.P("out.", goName, " = &v")
			case fp.Source.Desc.Kind() == protoreflect.BytesKind:
				fg.P("out.", goName, " = ", fg.slicesIdent("Clone"), "(x.", fp.Slot, ")")
			default:
				fg.P("out.", goName, " = x.", fp.Slot)
			}
			fg.P("}")
		case KindMessage:
			fg.P("if x.Has", goName, "() {")
			fg.P("out.", goName, " = x.", fp.Slot, ".ToProto()")
			fg.P("}")
		case KindRepeated:
			fg.P("if len(x.", fp.Slot, ") > 0 {")
			if fp.Source.Message != nil {
				fg.P("out.", goName, " = make([]*", fg.pbTypeOf(fp.Source.Message),
					", 0, len(x.", fp.Slot, "))")
				fg.P("for _, v := range x.", fp.Slot, " {")
				fg.P("out.", goName, " = append(out.", goName, ", v.ToProto())")
				fg.P("}")
			} else {
				fg.P("out.", goName, " = ", fg.slicesIdent("Clone"), "(x.", fp.Slot, ")")
			}
			fg.P("}")
		case KindMap:
			value := fp.Source.Message.Fields[1]
			fg.P("if len(x.", fp.Slot, ") > 0 {")
			if value.Message != nil {
				fg.P("out.", goName, " = make(map[", fg.mapKeyType(fp.Source), "]*",
					fg.pbTypeOf(value.Message), ", len(x.", fp.Slot, "))")
				fg.P("for k, v := range x.", fp.Slot, " {")
				fg.P("out.", goName, "[k] = v.ToProto()")
				fg.P("}")
			} else {
				fg.P("out.", goName, " = ", fg.mapsIdent("Clone"), "(x.", fp.Slot, ")")
			}
			fg.P("}")
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("switch x.", oneof.CaseField, " {")
		for _, v := range oneof.Variants {
			wrapper := fg.out.QualifiedGoIdent(v.Source.GoIdent)
			fg.P("case ", v.Number, ":")
			if v.Source.Message != nil {
				fg.P("out.", oneof.GoName, " = &", wrapper, "{", v.GoName,
					": x.Get", v.GoName, "().ToProto()}")
			} else {
				fg.P("out.", oneof.GoName, " = &", wrapper, "{", v.GoName,
					": x.Get", v.GoName, "()}")
			}
		}
		fg.P("}")
	}
	fg.P("return out")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genToBytes(plan *MessagePlan) {
	fg.P("// ToBytes serializes the record deterministically, so equal records")
	fg.P("// produce equal bytes.")
	fg.P("func (x *", plan.GoName, ") ToBytes() ([]byte, error) {")
	fg.P("return ", fg.protoIdent("MarshalOptions"), "{Deterministic: true}.Marshal(x.ToProto())")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genFromProto(plan *MessagePlan) {
	pb := fg.pbTypeOf(plan.Source)

	fg.P("func ", plan.GoName, "FromProto(p *", pb, ") *", plan.GoName, " {")
	fg.P("if p == nil {")
	fg.P("return nil")
	fg.P("}")
	fg.P("rec := &", plan.GoName, "{}")
	for _, fp := range plan.Fields {
		goName := fp.GoName
		switch fp.Kind {
		case KindScalar:
			switch {
			case wireIsPointer(fp.Source):
				fg.P("if p.", goName, " != nil {")
				fg.P("rec.Set", goName, "(*p.", goName, ")")
			case fp.Source.Desc.Kind() == protoreflect.BytesKind:
				fg.P("if p.", goName, " != nil {")
				fg.P("rec.Set", goName, "(p.", goName, ")")
			default:
				fg.P("if ", implicitGuard(fp.Source, "p."+goName), " {")
				fg.P("rec.Set", goName, "(p.", goName, ")")
			}
			fg.P("}")
		case KindMessage:
			fg.P("if p.", goName, " != nil {")
			fg.P("rec.Set", goName, "(", fg.fromProtoFuncOf(fp.Source.Message),
				"(p.", goName, "))")
			fg.P("}")
		case KindRepeated:
			if fp.Source.Message != nil {
				fg.P("for _, v := range p.", goName, " {")
				fg.P("rec.Add", goName, "(", fg.fromProtoFuncOf(fp.Source.Message), "(v))")
				fg.P("}")
			} else {
				fg.P("if len(p.", goName, ") > 0 {")
				fg.P("rec.AddAll", goName, "(p.", goName, ")")
				fg.P("}")
			}
		case KindMap:
			value := fp.Source.Message.Fields[1]
			fg.P("for k, v := range p.", goName, " {")
			if value.Message != nil {
				fg.P("rec.Put", goName, "(k, ", fg.fromProtoFuncOf(value.Message), "(v))")
			} else {
				fg.P("rec.Put", goName, "(k, v)")
			}
			fg.P("}")
		}
	}
	for _, oneof := range plan.Oneofs {
		fg.P("switch v := p.", oneof.GoName, ".(type) {")
		for _, variant := range oneof.Variants {
			wrapper := fg.out.QualifiedGoIdent(variant.Source.GoIdent)
			fg.P("case *", wrapper, ":")
			if variant.Source.Message != nil {
				fg.P("rec.Set", variant.GoName, "(",
					fg.fromProtoFuncOf(variant.Source.Message), "(v.", variant.GoName, "))")
			} else {
				fg.P("rec.Set", variant.GoName, "(v.", variant.GoName, ")")
			}
		}
		fg.P("}")
	}
	fg.P("return rec")
	fg.P("}")
	fg.P()
}
