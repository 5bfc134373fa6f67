package generator

import (
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/recordgen/protoc-gen-go-record/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type PluginSettings struct {
	// Suffix is appended to every message name to form the record type
	// name, e.g. "Record" turns Foo into FooRecord.
	Suffix string
	// DebugPlans dumps the per-file generation plans as JSON next to the
	// generated sources.
	DebugPlans bool
}

func mapGetOrDefault(paramsMap map[string]string, key string, defaultValue string) string {
	if val, ok := paramsMap[key]; ok {
		return val
	}
	return defaultValue
}

func NewPluginSettingsFromPlugin(p *protogen.Plugin) (*PluginSettings, error) {
	paramsMap := make(map[string]string)
	logger.Debug("parameter", zap.String("raw", p.Request.GetParameter()))
	params := strings.Split(p.Request.GetParameter(), ",")
	for _, param := range params {
		paramSplit := strings.Split(param, "=")
		if len(paramSplit) != 2 {
			continue
		}
		paramsMap[paramSplit[0]] = paramSplit[1]
	}

	settings := &PluginSettings{
		Suffix:     strcase.ToCamel(mapGetOrDefault(paramsMap, "suffix", "Record")),
		DebugPlans: mapGetOrDefault(paramsMap, "debug_plans", "false") == "true",
	}
	if settings.Suffix == "" {
		return nil, fmt.Errorf("suffix cannot be empty")
	}
	return settings, nil
}
