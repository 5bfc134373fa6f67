package generator

func (fg *FileGen) genMapField(plan *MessagePlan, fp *FieldPlan) {
	keyType := fg.mapKeyType(fp.Source)
	valType := fg.mapValueType(fp.Source)
	isMessage := fp.Source.Message.Fields[1].Message != nil

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "Map() ",
		fg.recordIdent("Map"), "[", keyType, ", ", valType, "] {")
	fg.P("if x != nil {")
	fg.P("return ", fg.recordIdent("NewMap"), "(x.", fp.Slot, ")")
	fg.P("}")
	fg.P("return ", fg.recordIdent("Map"), "[", keyType, ", ", valType, "]{}")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "Count() int {")
	fg.P("if x != nil {")
	fg.P("return len(x.", fp.Slot, ")")
	fg.P("}")
	fg.P("return 0")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Contains", fp.GoName, "(k ", keyType, ") bool {")
	fg.P("if x != nil {")
	fg.P("_, ok := x.", fp.Slot, "[k]")
	fg.P("return ok")
	fg.P("}")
	fg.P("return false")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "OrDefault(k ", keyType,
		", def ", valType, ") ", valType, " {")
	fg.P("if x != nil {")
	fg.P("if v, ok := x.", fp.Slot, "[k]; ok {")
	fg.P("return v")
	fg.P("}")
	fg.P("}")
	fg.P("return def")
	fg.P("}")
	fg.P()

	fg.P("// MustGet", fp.GoName, " panics with a ", fg.recordIdent("KeyError"),
		" when k is absent.")
	fg.P("func (x *", plan.GoName, ") MustGet", fp.GoName, "(k ", keyType, ") ", valType, " {")
	fg.P("if x != nil {")
	fg.P("if v, ok := x.", fp.Slot, "[k]; ok {")
	fg.P("return v")
	fg.P("}")
	fg.P("}")
	fg.P("panic(&", fg.recordIdent("KeyError"), "{Key: k})")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Put", fp.GoName, "(k ", keyType, ", v ", valType,
		") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckNotNil"), `("value", v)`)
	}
	fg.P("if x.", fp.Slot, " == nil {")
	fg.P("x.", fp.Slot, " = make(map[", keyType, "]", valType, ")")
	fg.P("}")
	if isMessage {
		fg.P("x.", fp.Slot, "[k] = ", fg.recordIdent("Claim"), "(v)")
	} else {
		fg.P("x.", fp.Slot, "[k] = v")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") PutAll", fp.GoName, "(m map[", keyType, "]", valType,
		") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckMapValues"), `("entries", m)`)
	}
	fg.P("if len(m) == 0 {")
	fg.P("return x")
	fg.P("}")
	fg.P("if x.", fp.Slot, " == nil {")
	fg.P("x.", fp.Slot, " = make(map[", keyType, "]", valType, ", len(m))")
	fg.P("}")
	if isMessage {
		fg.P("for k, v := range m {")
		fg.P("x.", fp.Slot, "[k] = ", fg.recordIdent("Claim"), "(v)")
		fg.P("}")
	} else {
		fg.P(fg.mapsIdent("Copy"), "(x.", fp.Slot, ", m)")
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Remove", fp.GoName, "(k ", keyType, ") *", plan.GoName, " {")
	fg.P("delete(x.", fp.Slot, ", k)")
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Clear", fp.GoName, "() *", plan.GoName, " {")
	fg.P("x.", fp.Slot, " = nil")
	fg.P("return x")
	fg.P("}")
	fg.P()
}
