package generator

import (
	"github.com/go-faster/jx"
	"github.com/iancoleman/strcase"
	"google.golang.org/protobuf/compiler/protogen"
)

// writePlans dumps the generation plans next to the generated sources so
// bit layouts and slot names can be inspected without reading the output.
func (g *Generator) writePlans(file *protogen.File, plans []*MessagePlan) {
	e := &jx.Encoder{}
	e.SetIdent(2)
	e.ObjStart()
	e.FieldStart("file")
	e.Str(file.Desc.Path())
	e.FieldStart("messages")
	e.ArrStart()
	for _, plan := range plans {
		plan.marshalJX(e)
	}
	e.ArrEnd()
	e.ObjEnd()

	out := g.Plugin.NewGeneratedFile(file.GeneratedFilenamePrefix+".record.plans.json", file.GoImportPath)
	out.Write(e.Bytes())
}

func (m *MessagePlan) marshalJX(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("record")
	e.Str(m.GoName)
	e.FieldStart("parent_word")
	e.Int(m.ParentWord)
	e.FieldStart("parent_mask")
	e.Str(MaskLiteral(m.ParentMask))
	e.FieldStart("bit_words")
	e.Int(m.BitWords)
	e.FieldStart("fields")
	e.ArrStart()
	for _, f := range m.Fields {
		f.marshalJX(e)
	}
	e.ArrEnd()
	if len(m.Oneofs) > 0 {
		e.FieldStart("oneofs")
		e.ArrStart()
		for _, o := range m.Oneofs {
			o.marshalJX(e)
		}
		e.ArrEnd()
	}
	if len(m.Nested) > 0 {
		e.FieldStart("nested")
		e.ArrStart()
		for _, n := range m.Nested {
			n.marshalJX(e)
		}
		e.ArrEnd()
	}
	e.ObjEnd()
}

func (f *FieldPlan) marshalJX(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(strcase.ToSnake(f.GoName))
	e.FieldStart("slot")
	e.Str(f.Slot)
	e.FieldStart("number")
	e.Int(int(f.Number))
	e.FieldStart("kind")
	e.Str(f.Kind.String())
	if f.Kind == KindScalar {
		e.FieldStart("word")
		e.Int(f.Word)
		e.FieldStart("mask")
		e.Str(MaskLiteral(f.Mask))
	}
	e.ObjEnd()
}

func (o *OneofPlan) marshalJX(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("name")
	e.Str(strcase.ToSnake(o.GoName))
	e.FieldStart("slot")
	e.Str(o.SlotField)
	e.FieldStart("case_field")
	e.Str(o.CaseField)
	e.FieldStart("case_type")
	e.Str(o.CaseType)
	e.ObjEnd()
}
