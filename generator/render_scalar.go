package generator

import "google.golang.org/protobuf/reflect/protoreflect"

func (fg *FileGen) genScalarField(plan *MessagePlan, fp *FieldPlan) {
	typ := fg.scalarGoType(fp.Source)
	word := WordName(fp.Word)
	mask := MaskLiteral(fp.Mask)
	isBytes := fp.Source.Desc.Kind() == protoreflect.BytesKind

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "() ", typ, " {")
	if fp.HasDeclaredDefault {
		fg.P("if x.Has", fp.GoName, "() {")
		fg.P("return x.", fp.Slot)
		fg.P("}")
		fg.P("return ", defaultConstName(plan, fp))
	} else {
		fg.P("if x != nil {")
		fg.P("return x.", fp.Slot)
		fg.P("}")
		fg.P("return ", fg.zeroExpr(fp.Source))
	}
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Set", fp.GoName, "(v ", typ, ") *", plan.GoName, " {")
	fg.P("x.", word, " |= ", mask)
	if isBytes {
		// The record owns its storage; never alias the caller's slice.
		fg.P("x.", fp.Slot, " = ", fg.slicesIdent("Clone"), "(v)")
	} else {
		fg.P("x.", fp.Slot, " = v")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Has", fp.GoName, "() bool {")
	fg.P("return x != nil && x.", word, "&", mask, " != 0")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Clear", fp.GoName, "() *", plan.GoName, " {")
	fg.P("x.", fp.Slot, " = ", fg.defaultExpr(plan, fp))
	fg.P("x.", word, " &^= ", mask)
	fg.P("return x")
	fg.P("}")
	fg.P()
}
