package generator

func (fg *FileGen) genRepeatedField(plan *MessagePlan, fp *FieldPlan) {
	elem := fg.listElemType(fp.Source)
	isMessage := fp.Source.Message != nil

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "List() ",
		fg.recordIdent("List"), "[", elem, "] {")
	fg.P("if x != nil {")
	fg.P("return ", fg.recordIdent("NewList"), "(x.", fp.Slot, ")")
	fg.P("}")
	fg.P("return ", fg.recordIdent("List"), "[", elem, "]{}")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "Count() int {")
	fg.P("if x != nil {")
	fg.P("return len(x.", fp.Slot, ")")
	fg.P("}")
	fg.P("return 0")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "(i int) ", elem, " {")
	fg.P(fg.recordIdent("CheckIndex"), "(i, x.Get", fp.GoName, "Count())")
	fg.P("return x.", fp.Slot, "[i]")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Add", fp.GoName, "(v ", elem, ") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckNotNil"), `("value", v)`)
		fg.P("x.", fp.Slot, " = append(x.", fp.Slot, ", ", fg.recordIdent("Claim"), "(v))")
	} else {
		fg.P("x.", fp.Slot, " = append(x.", fp.Slot, ", v)")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") AddAll", fp.GoName, "(vs []", elem, ") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckSliceElems"), `("values", vs)`)
		fg.P("for _, v := range vs {")
		fg.P("x.", fp.Slot, " = append(x.", fp.Slot, ", ", fg.recordIdent("Claim"), "(v))")
		fg.P("}")
	} else {
		fg.P("if len(vs) > 0 {")
		fg.P("x.", fp.Slot, " = append(x.", fp.Slot, ", vs...)")
		fg.P("}")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Set", fp.GoName, "(i int, v ", elem, ") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckNotNil"), `("value", v)`)
	}
	fg.P(fg.recordIdent("CheckIndex"), "(i, len(x.", fp.Slot, "))")
	if isMessage {
		fg.P("x.", fp.Slot, "[i] = ", fg.recordIdent("Claim"), "(v)")
	} else {
		fg.P("x.", fp.Slot, "[i] = v")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Remove", fp.GoName, "(i int) *", plan.GoName, " {")
	fg.P(fg.recordIdent("CheckIndex"), "(i, len(x.", fp.Slot, "))")
	fg.P("x.", fp.Slot, " = ", fg.slicesIdent("Delete"), "(x.", fp.Slot, ", i, i+1)")
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Clear", fp.GoName, "() *", plan.GoName, " {")
	fg.P("x.", fp.Slot, " = nil")
	fg.P("return x")
	fg.P("}")
	fg.P()
}
