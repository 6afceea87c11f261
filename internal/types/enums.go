package types

type OperationType string

const (
	// OperationTypeUndefined marks an operation with neither input nor
	// output; it has no valid WSDL operation type and cannot be bound.
	OperationTypeUndefined       OperationType = ""
	OperationTypeRequestResponse OperationType = "request-response"
	OperationTypeOneWay          OperationType = "one-way"
	OperationTypeNotification    OperationType = "notification"
)
