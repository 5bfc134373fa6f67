package generator

func (fg *FileGen) genMessageField(plan *MessagePlan, fp *FieldPlan) {
	typ := fg.recordTypeOf(fp.Source.Message)
	fieldName := string(fp.Source.Desc.Name())

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "() *", typ, " {")
	fg.P("if x != nil {")
	fg.P("return x.", fp.Slot)
	fg.P("}")
	fg.P("return nil")
	fg.P("}")
	fg.P()

	fg.P("// GetOrCreate", fp.GoName, " returns the ", fieldName,
		" record, allocating and attaching a fresh")
	fg.P("// one when the field is unset.")
	fg.P("func (x *", plan.GoName, ") GetOrCreate", fp.GoName, "() *", typ, " {")
	fg.P("if x.", fp.Slot, " == nil {")
	fg.P("x.Set", fp.GoName, "(&", typ, "{})")
	fg.P("}")
	fg.P("return x.", fp.Slot)
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Set", fp.GoName, "(v *", typ, ") *", plan.GoName, " {")
	fg.P(fg.recordIdent("CheckNotNil"), `("value", v)`)
	fg.P("x.", fp.Slot, " = ", fg.recordIdent("Claim"), "(v)")
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Has", fp.GoName, "() bool {")
	fg.P("return x != nil && x.", fp.Slot, " != nil")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Clear", fp.GoName, "() *", plan.GoName, " {")
	fg.P("x.", fp.Slot, " = nil")
	fg.P("return x")
	fg.P("}")
	fg.P()
}
