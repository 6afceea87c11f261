package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"wsdlkit/internal/adapters"
	"wsdlkit/internal/core"
	"wsdlkit/internal/types"
)

func (s Service) BuildPortType(ctx context.Context, req BuildPortTypeRequest) (BuildPortTypeResult, error) {
	catalogPath := strings.TrimSpace(req.CatalogPath)
	if catalogPath == "" {
		return BuildPortTypeResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("catalog path is required")
	}
	catalog, err := s.Catalog.Load(catalogPath)
	if err != nil {
		return BuildPortTypeResult{}, err
	}
	def, err := core.NewCatalogCompiler().Compile(ctx, catalog)
	if err != nil {
		return BuildPortTypeResult{}, err
	}

	classifier := classifierFor(req)
	builder := core.NewPortTypeBuilder(req.PortTypeName, classifier)
	portType, err := builder.Build(ctx, def)
	if err != nil {
		return BuildPortTypeResult{}, err
	}
	if err := def.AddPortType(portType); err != nil {
		return BuildPortTypeResult{}, err
	}

	var operations []OperationSummary
	for _, operation := range portType.Operations {
		operations = append(operations, summarizeOperation(operation))
	}
	return BuildPortTypeResult{
		PortTypeName:    portType.Name.String(),
		TargetNamespace: def.TargetNamespace(),
		MessageCount:    len(def.Messages()),
		Operations:      operations,
	}, nil
}

func classifierFor(req BuildPortTypeRequest) adapters.SuffixClassifierAdapter {
	classifier := adapters.NewSuffixClassifierAdapter()
	if strings.TrimSpace(req.RequestSuffix) != "" {
		classifier.RequestSuffix = req.RequestSuffix
	}
	if strings.TrimSpace(req.ResponseSuffix) != "" {
		classifier.ResponseSuffix = req.ResponseSuffix
	}
	if strings.TrimSpace(req.FaultSuffix) != "" {
		classifier.FaultSuffix = req.FaultSuffix
	}
	return classifier
}

func summarizeOperation(operation *types.Operation) OperationSummary {
	summary := OperationSummary{
		Name:  operation.Name,
		Style: operation.Style,
	}
	if operation.Input != nil {
		summary.InputName = operation.Input.Name
	}
	if operation.Output != nil {
		summary.OutputName = operation.Output.Name
	}
	for _, fault := range operation.Faults {
		summary.FaultNames = append(summary.FaultNames, fault.Name)
	}
	return summary
}
