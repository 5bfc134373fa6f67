package generator

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// scalarDefault renders the reset literal for a plain scalar slot. Enum
// defaults need a qualified identifier, so they resolve at render time and
// come back empty here.
func scalarDefault(field *protogen.Field) string {
	def := field.Desc.Default()
	switch field.Desc.Kind() {
	case protoreflect.BoolKind:
		return strconv.FormatBool(def.Bool())
	case protoreflect.StringKind:
		return strconv.Quote(def.String())
	case protoreflect.BytesKind:
		if b := def.Bytes(); len(b) > 0 {
			return fmt.Sprintf("[]byte(%q)", b)
		}
		return "nil"
	case protoreflect.FloatKind:
		return formatFloat(def.Float(), 32)
	case protoreflect.DoubleKind:
		return formatFloat(def.Float(), 64)
	case protoreflect.Int32Kind, protoreflect.Sint32Kind, protoreflect.Sfixed32Kind,
		protoreflect.Int64Kind, protoreflect.Sint64Kind, protoreflect.Sfixed64Kind:
		return strconv.FormatInt(def.Int(), 10)
	case protoreflect.Uint32Kind, protoreflect.Fixed32Kind,
		protoreflect.Uint64Kind, protoreflect.Fixed64Kind:
		return strconv.FormatUint(def.Uint(), 10)
	case protoreflect.EnumKind:
		return ""
	}
	return "0"
}

func formatFloat(f float64, bits int) string {
	s := strconv.FormatFloat(f, 'g', -1, bits)
	// Keep it a float literal even for whole values.
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		s += ".0"
	}
	return s
}
