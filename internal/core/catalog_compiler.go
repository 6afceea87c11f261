package core

import (
	"context"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"wsdlkit/internal/shared"
	"wsdlkit/internal/types"
	"wsdlkit/internal/wsdl"
)

// CatalogCompiler turns a message catalog into a definition the port-type
// builder can run against.
type CatalogCompiler struct{}

func NewCatalogCompiler() CatalogCompiler {
	return CatalogCompiler{}
}

func (c CatalogCompiler) Compile(ctx context.Context, catalog types.CatalogFile) (*wsdl.Definition, error) {
	if !shared.HasText(catalog.TargetNamespace) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("target_namespace must be set")
	}
	def := wsdl.NewDefinition(catalog.TargetNamespace)
	for _, declared := range catalog.Messages {
		if !shared.HasText(declared.Name) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("message name must be set")
		}
		message := &types.Message{
			Name: types.NewQName(catalog.TargetNamespace, declared.Name),
		}
		for _, part := range declared.Parts {
			assert.NotEmpty(ctx, part.Name, "part name must be set")
			element := types.ParseQName(part.Element)
			if element.Local != "" && element.Namespace == "" {
				element.Namespace = catalog.TargetNamespace
			}
			message.Parts = append(message.Parts, types.Part{
				Name:    part.Name,
				Element: element,
			})
		}
		if err := def.AddMessage(message); err != nil {
			return nil, err
		}
	}
	log.Ctx(ctx).Debug().
		Str("target_namespace", catalog.TargetNamespace).
		Int("messages", len(catalog.Messages)).
		Msg("catalog compiled")
	return def, nil
}
