package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wsdlkit/internal/core"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	catalogPath := strings.TrimSpace(req.CatalogPath)
	if catalogPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	catalog, err := s.Catalog.Load(catalogPath)
	if err != nil {
		return ValidateResult{}, err
	}
	def, err := core.NewCatalogCompiler().Compile(ctx, catalog)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		TargetNamespace: def.TargetNamespace(),
		MessageCount:    len(def.Messages()),
	}, nil
}
