package app

import "wsdlkit/internal/types"

type ValidateRequest struct {
	CatalogPath string
}

type ValidateResult struct {
	TargetNamespace string
	MessageCount    int
}

type BuildPortTypeRequest struct {
	CatalogPath    string
	PortTypeName   string
	RequestSuffix  string
	ResponseSuffix string
	FaultSuffix    string
}

type OperationSummary struct {
	Name       string
	Style      types.OperationType
	InputName  string
	OutputName string
	FaultNames []string
}

type BuildPortTypeResult struct {
	PortTypeName    string
	TargetNamespace string
	MessageCount    int
	Operations      []OperationSummary
}
