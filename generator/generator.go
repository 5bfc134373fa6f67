package generator

import (
	"fmt"

	"github.com/recordgen/protoc-gen-go-record/logger"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
)

type Generator struct {
	Settings *PluginSettings
	Plugin   *protogen.Plugin
}

func NewGenerator(p *protogen.Plugin, settings *PluginSettings) (*Generator, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	return &Generator{Settings: settings, Plugin: p}, nil
}

func (g *Generator) Generate() error {
	l := logger.Logger.Named("Generate")
	for _, file := range g.Plugin.Files {
		if !file.Generate {
			continue
		}
		l.Debug("file", zap.String("path", file.Desc.Path()),
			zap.String("go_package", string(file.GoPackageName)))

		fg := g.NewFileGen(file)
		for _, plan := range fg.plans {
			l.Debug("message",
				zap.String("record", plan.GoName),
				zap.Int("fields", len(plan.Fields)),
				zap.Int("oneofs", len(plan.Oneofs)),
				zap.Int("bit_words", plan.BitWords))
		}
		fg.GenFile()

		if g.Settings.DebugPlans {
			g.writePlans(file, fg.plans)
		}
	}
	return nil
}
