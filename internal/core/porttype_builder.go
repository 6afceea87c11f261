package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"wsdlkit/internal/ports"
	"wsdlkit/internal/shared"
	"wsdlkit/internal/types"
	"wsdlkit/internal/wsdl"
)

// PortTypeBuilder groups the messages declared on a definition into the
// operations of a single port type, inferring each operation's style from
// which roles end up present.  Classification decisions are delegated to
// the injected classifier; naming defaults can be overridden per role.
//
// Builders are immutable after construction, so one builder may serve
// concurrent Build calls against different definitions.  A definition and
// the port type under construction must not be shared between callers.
type PortTypeBuilder struct {
	portTypeName  string
	classifier    ports.MessageClassifierPort
	roleNamer     ports.RoleNamerPort
	portTypeNamer ports.PortTypeNamerPort
}

type BuilderOption func(*PortTypeBuilder)

// WithRoleNamer overrides the default input/output/fault role naming.
func WithRoleNamer(namer ports.RoleNamerPort) BuilderOption {
	return func(b *PortTypeBuilder) {
		b.roleNamer = namer
	}
}

// WithPortTypeNamer overrides how the port type's qualified name is set.
func WithPortTypeNamer(namer ports.PortTypeNamerPort) BuilderOption {
	return func(b *PortTypeBuilder) {
		b.portTypeNamer = namer
	}
}

func NewPortTypeBuilder(portTypeName string, classifier ports.MessageClassifierPort, opts ...BuilderOption) PortTypeBuilder {
	builder := PortTypeBuilder{
		portTypeName: strings.TrimSpace(portTypeName),
		classifier:   classifier,
	}
	for _, opt := range opts {
		opt(&builder)
	}
	return builder
}

// Build creates one port type from the definition's message set and
// returns it marked defined.  The caller is responsible for attaching it
// via Definition.AddPortType.  The message set itself is never mutated.
func (b PortTypeBuilder) Build(ctx context.Context, def *wsdl.Definition) (*types.PortType, error) {
	if !shared.HasText(b.portTypeName) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("'portTypeName' is required")
	}
	if b.classifier == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("message classifier is required")
	}
	portType := def.CreatePortType()
	b.populatePortType(def, portType)
	b.createOperations(ctx, def, portType)
	portType.Defined = true
	return portType, nil
}

func (b PortTypeBuilder) populatePortType(def *wsdl.Definition, portType *types.PortType) {
	if b.portTypeNamer != nil {
		portType.Name = b.portTypeNamer.NamePortType(def.TargetNamespace(), b.portTypeName)
		return
	}
	portType.Name = types.NewQName(def.TargetNamespace(), b.portTypeName)
}

func (b PortTypeBuilder) createOperations(ctx context.Context, def *wsdl.Definition, portType *types.PortType) {
	messages := def.Messages()

	// Bucket messages by operation name, keeping first-seen key order so
	// operation order follows message declaration order.
	buckets := map[string][]*types.Message{}
	var order []string
	for _, message := range messages {
		operationName := strings.TrimSpace(b.classifier.OperationName(message))
		if operationName == "" {
			continue
		}
		if _, ok := buckets[operationName]; !ok {
			order = append(order, operationName)
		}
		buckets[operationName] = append(buckets[operationName], message)
	}

	for _, operationName := range order {
		operation := def.CreateOperation()
		operation.Name = operationName
		for _, message := range buckets[operationName] {
			if b.classifier.IsInput(message) {
				input := def.CreateInput()
				input.Message = message
				input.Name = b.nameInput(message)
				operation.Input = input
			} else if b.classifier.IsOutput(message) {
				output := def.CreateOutput()
				output.Message = message
				output.Name = b.nameOutput(message)
				operation.Output = output
			} else if b.classifier.IsFault(message) {
				fault := def.CreateFault()
				fault.Message = message
				fault.Name = b.nameFault(message)
				operation.AddFault(fault)
			}
		}
		operation.Style = operationStyle(operation)
		operation.Defined = true
		portType.AddOperation(operation)
	}

	log.Ctx(ctx).Debug().
		Str("port_type", b.portTypeName).
		Int("messages", len(messages)).
		Int("operations", len(order)).
		Msg("messages grouped into operations")
}

func (b PortTypeBuilder) nameInput(message *types.Message) string {
	if b.roleNamer != nil {
		return b.roleNamer.NameInput(message)
	}
	return message.Name.Local
}

func (b PortTypeBuilder) nameOutput(message *types.Message) string {
	if b.roleNamer != nil {
		return b.roleNamer.NameOutput(message)
	}
	return message.Name.Local
}

func (b PortTypeBuilder) nameFault(message *types.Message) string {
	if b.roleNamer != nil {
		return b.roleNamer.NameFault(message)
	}
	return message.Name.Local
}

// operationStyle derives the WSDL operation type from role presence.
// Faults never influence the style.
func operationStyle(operation *types.Operation) types.OperationType {
	switch {
	case operation.Input != nil && operation.Output != nil:
		return types.OperationTypeRequestResponse
	case operation.Input != nil:
		return types.OperationTypeOneWay
	case operation.Output != nil:
		return types.OperationTypeNotification
	default:
		return types.OperationTypeUndefined
	}
}
