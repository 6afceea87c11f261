package ports

import "wsdlkit/internal/types"

// MessageClassifierPort supplies the decisions that couple message
// declarations to operations.  OperationName returning an empty string
// excludes the message from all operations; the three predicates are
// evaluated in input, output, fault priority order, and a message
// matching none of them is silently dropped.
type MessageClassifierPort interface {
	OperationName(message *types.Message) string
	IsInput(message *types.Message) bool
	IsOutput(message *types.Message) bool
	IsFault(message *types.Message) bool
}

// RoleNamerPort overrides the names given to input/output/fault roles.
// When absent, roles are named after the local part of their message name.
type RoleNamerPort interface {
	NameInput(message *types.Message) string
	NameOutput(message *types.Message) string
	NameFault(message *types.Message) string
}

// PortTypeNamerPort overrides how the port type's qualified name is
// derived from the document's target namespace and the configured name.
type PortTypeNamerPort interface {
	NamePortType(targetNamespace string, configuredName string) types.QName
}
