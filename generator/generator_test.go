package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

func plainField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func oneofField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type, oneofIndex int32) *descriptorpb.FieldDescriptorProto {
	f := plainField(name, number, typ)
	f.OneofIndex = proto.Int32(oneofIndex)
	return f
}

// pluginFor assembles an in-memory CodeGeneratorRequest with the fixture
// schema so rendering can be checked without invoking protoc.
func pluginFor(t *testing.T, param string) *protogen.Plugin {
	t.Helper()

	label := plainField("label", 2, descriptorpb.FieldDescriptorProto_TYPE_STRING)
	label.DefaultValue = proto.String("n/a")

	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("fixture.proto"),
		Package: proto.String("fixture"),
		Syntax:  proto.String("proto2"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("example.com/gen/fixture"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Baz"),
				Field: []*descriptorpb.FieldDescriptorProto{
					plainField("id", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
					label,
				},
			},
			{
				Name: proto.String("Bar"),
				Field: []*descriptorpb.FieldDescriptorProto{
					plainField("bar", 1, descriptorpb.FieldDescriptorProto_TYPE_INT64),
					oneofField("int_variant", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32, 0),
					oneofField("string_variant", 3, descriptorpb.FieldDescriptorProto_TYPE_STRING, 0),
				},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{
					{Name: proto.String("my_one_of")},
				},
			},
		},
	}

	req := &pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{"fixture.proto"},
		Parameter:      proto.String(param),
		ProtoFile:      []*descriptorpb.FileDescriptorProto{fd},
	}
	p, err := protogen.Options{}.New(req)
	require.NoError(t, err)
	return p
}

func generateFixture(t *testing.T, param string) map[string]string {
	t.Helper()

	p := pluginFor(t, param)
	settings, err := NewPluginSettingsFromPlugin(p)
	require.NoError(t, err)
	g, err := NewGenerator(p, settings)
	require.NoError(t, err)
	require.NoError(t, g.Generate())

	resp := p.Response()
	require.Empty(t, resp.GetError())
	out := make(map[string]string, len(resp.File))
	for _, f := range resp.File {
		out[f.GetName()] = f.GetContent()
	}
	return out
}

func TestSettingsDefaults(t *testing.T) {
	p := pluginFor(t, "")
	settings, err := NewPluginSettingsFromPlugin(p)
	require.NoError(t, err)
	assert.Equal(t, "Record", settings.Suffix)
	assert.False(t, settings.DebugPlans)
}

func TestSettingsSuffixNormalized(t *testing.T) {
	p := pluginFor(t, "suffix=plain_data,debug_plans=true")
	settings, err := NewPluginSettingsFromPlugin(p)
	require.NoError(t, err)
	assert.Equal(t, "PlainData", settings.Suffix)
	assert.True(t, settings.DebugPlans)
}

func TestPlannerLayout(t *testing.T) {
	p := pluginFor(t, "")
	g := &Generator{Settings: &PluginSettings{Suffix: "Record"}, Plugin: p}

	file := p.Files[0]
	require.Equal(t, "fixture.proto", file.Desc.Path())

	baz := g.planMessage(file.Messages[0])
	assert.Equal(t, "BazRecord", baz.GoName)
	require.Len(t, baz.Fields, 2)
	assert.Equal(t, KindScalar, baz.Fields[0].Kind)
	assert.Equal(t, "id_", baz.Fields[0].Slot)
	assert.EqualValues(t, 0x1, baz.Fields[0].Mask)
	assert.EqualValues(t, 0x2, baz.Fields[1].Mask)
	assert.True(t, baz.Fields[1].HasDeclaredDefault)
	assert.EqualValues(t, 0x4, baz.ParentMask)
	assert.Equal(t, 1, baz.BitWords)

	bar := g.planMessage(file.Messages[1])
	assert.Equal(t, "BarRecord", bar.GoName)
	require.Len(t, bar.Oneofs, 1)
	oneof := bar.Oneofs[0]
	assert.Equal(t, "myOneOf_", oneof.SlotField)
	assert.Equal(t, "myOneOfCase_", oneof.CaseField)
	assert.Equal(t, "BarRecord_MyOneOfCase", oneof.CaseType)
	require.Len(t, oneof.Variants, 2)
	assert.Equal(t, KindOneofVariant, oneof.Variants[0].Kind)
	// Only the plain scalar takes a presence bit, so the parent mark lands
	// right after it.
	assert.EqualValues(t, 0x1, bar.Fields[0].Mask)
	assert.EqualValues(t, 0x2, bar.ParentMask)
}

func TestGenerateRecordFile(t *testing.T) {
	files := generateFixture(t, "")
	content, ok := files["fixture.record.go"]
	require.True(t, ok, "expected fixture.record.go, got %v", keys(files))

	assert.Contains(t, content, "// Code generated by protoc-gen-go-record. DO NOT EDIT.")
	assert.Contains(t, content, "package fixture")

	assert.Contains(t, content, "type BazRecord struct {")
	assert.Contains(t, content, "bitField0_ uint32")
	assert.Contains(t, content, `const Default_BazRecord_Label = "n/a"`)
	assert.Contains(t, content, "func (x *BazRecord) SetId(v int64) *BazRecord {")
	assert.Contains(t, content, "x.bitField0_ |= 0x1")
	assert.Contains(t, content, "func (x *BazRecord) HasLabel() bool {")
	assert.Contains(t, content, "return x != nil && x.bitField0_&0x2 != 0")
	assert.Contains(t, content, "return Default_BazRecord_Label")

	// Reads stay safe on a nil receiver.
	assert.Contains(t, content, "func (x *BazRecord) GetId() int64 {")
	assert.Contains(t, content, "if x != nil {")
	assert.Contains(t, content, "return x != nil && x.myOneOfCase_ == 2")

	assert.Contains(t, content, "type BarRecord_MyOneOfCase int32")
	// Alignment inside the const block depends on gofmt, so check the
	// name and the value separately.
	assert.Contains(t, content, "BarRecord_MyOneOfNotSet")
	assert.Contains(t, content, "BarRecord_MyOneOfCase = 0")
	assert.Contains(t, content, "BarRecord_IntVariantCase")
	assert.Contains(t, content, "BarRecord_MyOneOfCase = 2")
	assert.Contains(t, content, "func (x *BarRecord) SetIntVariant(v int32) *BarRecord {")
	assert.Contains(t, content, "x.myOneOfCase_ = 2")
	assert.Contains(t, content, "func (x *BarRecord) GetMyOneOfCase() BarRecord_MyOneOfCase {")

	// Clear keeps only the parent mark of the shared word.
	assert.Contains(t, content, "x.bitField0_ &= 0x4")
	assert.Contains(t, content, "x.bitField0_ &= 0x2")

	assert.Contains(t, content, "func (x *BarRecord) ToProto() *Bar {")
	assert.Contains(t, content, "func BarRecordFromProto(p *Bar) *BarRecord {")
	assert.Contains(t, content, "case *Bar_IntVariant:")
	assert.Contains(t, content, "Deterministic: true")
}

func TestGenerateCustomSuffix(t *testing.T) {
	files := generateFixture(t, "suffix=plain")
	content := files["fixture.record.go"]
	assert.Contains(t, content, "type BazPlain struct {")
	assert.Contains(t, content, "func BazPlainFromProto(p *Baz) *BazPlain {")
	assert.NotContains(t, content, "BazRecord")
}

func TestDebugPlansDump(t *testing.T) {
	files := generateFixture(t, "debug_plans=true")
	dump, ok := files["fixture.record.plans.json"]
	require.True(t, ok, "expected fixture.record.plans.json, got %v", keys(files))

	assert.Contains(t, dump, `"record"`)
	assert.Contains(t, dump, `"BazRecord"`)
	assert.Contains(t, dump, `"parent_mask"`)
	assert.Contains(t, dump, `"int_variant"`)
	assert.Contains(t, dump, `"oneof_variant"`)
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
