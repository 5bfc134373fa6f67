package generator

import "google.golang.org/protobuf/reflect/protoreflect"

func (fg *FileGen) genOneofCaseType(plan *MessagePlan, oneof *OneofPlan) {
	fg.P("type ", oneof.CaseType, " int32")
	fg.P()
	fg.P("const (")
	fg.P(plan.GoName, "_", oneof.GoName, "NotSet ", oneof.CaseType, " = 0")
	for _, v := range oneof.Variants {
		fg.P(plan.GoName, "_", v.GoName, "Case ", oneof.CaseType, " = ", v.Number)
	}
	fg.P(")")
	fg.P()
}

func (fg *FileGen) genOneofCaseGetter(plan *MessagePlan, oneof *OneofPlan) {
	fg.P("// Get", oneof.GoName, "Case reports which variant of the ",
		oneof.Source.Desc.Name(), " group is active.")
	fg.P("func (x *", plan.GoName, ") Get", oneof.GoName, "Case() ", oneof.CaseType, " {")
	fg.P("if x != nil {")
	fg.P("return ", oneof.CaseType, "(x.", oneof.CaseField, ")")
	fg.P("}")
	fg.P("return ", plan.GoName, "_", oneof.GoName, "NotSet")
	fg.P("}")
	fg.P()
}

func (fg *FileGen) genOneofVariant(plan *MessagePlan, fp *FieldPlan) {
	oneof := fp.Oneof
	isMessage := fp.Source.Message != nil
	var typ string
	if isMessage {
		typ = "*" + fg.recordTypeOf(fp.Source.Message)
	} else {
		typ = fg.scalarGoType(fp.Source)
	}

	fg.P("func (x *", plan.GoName, ") Get", fp.GoName, "() ", typ, " {")
	fg.P("if x != nil && x.", oneof.CaseField, " == ", fp.Number, " {")
	fg.P("return x.", oneof.SlotField, ".(", typ, ")")
	fg.P("}")
	if isMessage {
		fg.P("return nil")
	} else {
		fg.P("return ", fg.zeroExpr(fp.Source))
	}
	fg.P("}")
	fg.P()

	if isMessage {
		fieldName := string(fp.Source.Desc.Name())
		groupName := string(oneof.Source.Desc.Name())
		fg.P("// GetOrCreate", fp.GoName, " returns the ", fieldName,
			" record, switching the ", groupName, " group to")
		fg.P("// this variant and attaching a fresh record when it is not already active.")
		fg.P("func (x *", plan.GoName, ") GetOrCreate", fp.GoName, "() ", typ, " {")
		fg.P("if x.", oneof.CaseField, " != ", fp.Number, " {")
		fg.P("x.Set", fp.GoName, "(&", fg.recordTypeOf(fp.Source.Message), "{})")
		fg.P("}")
		fg.P("return x.", oneof.SlotField, ".(", typ, ")")
		fg.P("}")
		fg.P()
	}

	fg.P("func (x *", plan.GoName, ") Set", fp.GoName, "(v ", typ, ") *", plan.GoName, " {")
	if isMessage {
		fg.P(fg.recordIdent("CheckNotNil"), `("value", v)`)
		fg.P("x.", oneof.CaseField, " = ", fp.Number)
		fg.P("x.", oneof.SlotField, " = ", fg.recordIdent("Claim"), "(v)")
	} else {
		fg.P("x.", oneof.CaseField, " = ", fp.Number)
		if fp.Source.Desc.Kind() == protoreflect.BytesKind {
			fg.P("x.", oneof.SlotField, " = ", fg.slicesIdent("Clone"), "(v)")
		} else {
			fg.P("x.", oneof.SlotField, " = v")
		}
	}
	fg.P("return x")
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Has", fp.GoName, "() bool {")
	fg.P("return x != nil && x.", oneof.CaseField, " == ", fp.Number)
	fg.P("}")
	fg.P()

	fg.P("func (x *", plan.GoName, ") Clear", fp.GoName, "() *", plan.GoName, " {")
	fg.P("if x.", oneof.CaseField, " == ", fp.Number, " {")
	fg.P("x.", oneof.CaseField, " = 0")
	fg.P("x.", oneof.SlotField, " = nil")
	fg.P("}")
	fg.P("return x")
	fg.P("}")
	fg.P()
}
