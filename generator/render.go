package generator

import (
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

const recordPkg = "github.com/recordgen/protoc-gen-go-record/record"

type FileGen struct {
	g     *Generator
	file  *protogen.File
	out   *protogen.GeneratedFile
	plans []*MessagePlan
}

func (g *Generator) NewFileGen(f *protogen.File) *FileGen {
	out := g.Plugin.NewGeneratedFile(f.GeneratedFilenamePrefix+".record.go", f.GoImportPath)
	fg := &FileGen{g: g, file: f, out: out}
	for _, msg := range f.Messages {
		if msg.Desc.IsMapEntry() {
			continue
		}
		fg.plans = append(fg.plans, g.planMessage(msg))
	}
	return fg
}

func (fg *FileGen) P(v ...any) {
	fg.out.P(v...)
}

func (fg *FileGen) recordIdent(name string) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{
		GoImportPath: recordPkg,
		GoName:       name,
	})
}

func (fg *FileGen) slicesIdent(name string) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{GoImportPath: "slices", GoName: name})
}

func (fg *FileGen) mapsIdent(name string) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{GoImportPath: "maps", GoName: name})
}

func (fg *FileGen) bytesIdent(name string) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{GoImportPath: "bytes", GoName: name})
}

func (fg *FileGen) protoIdent(name string) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{
		GoImportPath: "google.golang.org/protobuf/proto",
		GoName:       name,
	})
}

// recordTypeOf names the record type generated for msg, qualified when the
// message lives in another file's package.
func (fg *FileGen) recordTypeOf(msg *protogen.Message) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{
		GoImportPath: msg.GoIdent.GoImportPath,
		GoName:       msg.GoIdent.GoName + fg.g.Settings.Suffix,
	})
}

func (fg *FileGen) fromProtoFuncOf(msg *protogen.Message) string {
	return fg.out.QualifiedGoIdent(protogen.GoIdent{
		GoImportPath: msg.GoIdent.GoImportPath,
		GoName:       msg.GoIdent.GoName + fg.g.Settings.Suffix + "FromProto",
	})
}

func (fg *FileGen) pbTypeOf(msg *protogen.Message) string {
	return fg.out.QualifiedGoIdent(msg.GoIdent)
}

// scalarGoType maps a plain field to the Go type of its slot. Enums reuse
// the wire-layer enum type.
func (fg *FileGen) scalarGoType(field *protogen.Field) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return "bool"
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return "int32"
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return "int64"
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return "uint32"
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return "uint64"
	case protoreflect.FloatKind:
		return "float32"
	case protoreflect.DoubleKind:
		return "float64"
	case protoreflect.StringKind:
		return "string"
	case protoreflect.BytesKind:
		return "[]byte"
	case protoreflect.EnumKind:
		return fg.out.QualifiedGoIdent(field.Enum.GoIdent)
	}
	return "int64"
}

// zeroExpr is the language zero for a plain field, ignoring any declared
// default.
func (fg *FileGen) zeroExpr(field *protogen.Field) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return "false"
	case protoreflect.StringKind:
		return `""`
	case protoreflect.BytesKind:
		return "nil"
	case protoreflect.EnumKind:
		return fg.out.QualifiedGoIdent(field.Enum.Values[0].GoIdent)
	}
	return "0"
}

// defaultExpr is the value a cleared slot resets to, honoring declared
// proto2 defaults.
func (fg *FileGen) defaultExpr(plan *MessagePlan, fp *FieldPlan) string {
	if fp.HasDeclaredDefault {
		return defaultConstName(plan, fp)
	}
	if fp.Kind == KindScalar && fp.Source.Desc.Kind() == protoreflect.EnumKind {
		value := fp.Source.Enum.Values[fp.Source.Desc.DefaultEnumValue().Index()]
		return fg.out.QualifiedGoIdent(value.GoIdent)
	}
	if fp.DefaultLit != "" {
		return fp.DefaultLit
	}
	return fg.zeroExpr(fp.Source)
}

// defaultLitExpr renders the literal behind a Default_ constant.
func (fg *FileGen) defaultLitExpr(fp *FieldPlan) string {
	if fp.Source.Desc.Kind() == protoreflect.EnumKind {
		value := fp.Source.Enum.Values[fp.Source.Desc.DefaultEnumValue().Index()]
		return fg.out.QualifiedGoIdent(value.GoIdent)
	}
	return fp.DefaultLit
}

func defaultConstName(plan *MessagePlan, fp *FieldPlan) string {
	return "Default_" + plan.GoName + "_" + fp.GoName
}

// hashFuncOf names the record package helper hashing one scalar value.
func (fg *FileGen) hashFuncOf(field *protogen.Field) string {
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return fg.recordIdent("HashBool")
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind:
		return fg.recordIdent("HashInt32")
	case protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return fg.recordIdent("HashInt64")
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind:
		return fg.recordIdent("HashUint32")
	case protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return fg.recordIdent("HashUint64")
	case protoreflect.FloatKind:
		return fg.recordIdent("HashFloat32")
	case protoreflect.DoubleKind:
		return fg.recordIdent("HashFloat64")
	case protoreflect.StringKind:
		return fg.recordIdent("HashString")
	case protoreflect.BytesKind:
		return fg.recordIdent("HashBytes")
	}
	return fg.recordIdent("HashInt64")
}

// hashExprOf renders the contribution expression for one scalar value.
func (fg *FileGen) hashExprOf(field *protogen.Field, src string) string {
	if field.Desc.Kind() == protoreflect.EnumKind {
		return fg.recordIdent("HashInt32") + "(int32(" + src + "))"
	}
	return fg.hashFuncOf(field) + "(" + src + ")"
}

func (fg *FileGen) GenFile() {
	if len(fg.plans) == 0 {
		fg.out.Skip()
		return
	}

	fg.P("// Code generated by protoc-gen-go-record. DO NOT EDIT.")
	fg.P()
	fg.P("package ", fg.file.GoPackageName)
	fg.P()

	for _, plan := range fg.plans {
		fg.genRecord(plan)
	}
}
