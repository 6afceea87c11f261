// Package wsdl holds the mutable in-memory WSDL document context that the
// port-type machinery reads messages from and registers port types on.
package wsdl

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"wsdlkit/internal/types"
)

// Definition is a single WSDL document under construction.  Messages keep
// first-seen registration order so repeated builds over the same document
// produce identical output.  Not safe for concurrent mutation.
type Definition struct {
	targetNamespace string
	messages        []*types.Message
	messageIndex    map[types.QName]*types.Message
	portTypes       []*types.PortType
}

func NewDefinition(targetNamespace string) *Definition {
	return &Definition{
		targetNamespace: targetNamespace,
		messageIndex:    map[types.QName]*types.Message{},
	}
}

func (d *Definition) TargetNamespace() string {
	return d.targetNamespace
}

// AddMessage registers a message declaration. Message names are unique
// within a definition.
func (d *Definition) AddMessage(message *types.Message) error {
	if message == nil || message.Name.Local == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("message name is required")
	}
	if _, ok := d.messageIndex[message.Name]; ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeAlreadyExists).
			WithMsg("duplicate message " + message.Name.String())
	}
	d.messageIndex[message.Name] = message
	d.messages = append(d.messages, message)
	return nil
}

// Messages returns the declared messages in registration order.  The
// returned slice is a copy; the messages themselves are shared.
func (d *Definition) Messages() []*types.Message {
	out := make([]*types.Message, len(d.messages))
	copy(out, d.messages)
	return out
}

// Message returns the message with the given qualified name, or nil.
func (d *Definition) Message(name types.QName) *types.Message {
	return d.messageIndex[name]
}

func (d *Definition) CreatePortType() *types.PortType {
	return &types.PortType{}
}

func (d *Definition) CreateOperation() *types.Operation {
	return &types.Operation{}
}

func (d *Definition) CreateInput() *types.Input {
	return &types.Input{}
}

func (d *Definition) CreateOutput() *types.Output {
	return &types.Output{}
}

func (d *Definition) CreateFault() *types.Fault {
	return &types.Fault{}
}

// AddPortType attaches a finished port type to the document. Port-type
// names are unique within a definition.
func (d *Definition) AddPortType(portType *types.PortType) error {
	if portType == nil || portType.Name.IsZero() {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("port type name is required")
	}
	for _, existing := range d.portTypes {
		if existing.Name == portType.Name {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("duplicate port type " + portType.Name.String())
		}
	}
	d.portTypes = append(d.portTypes, portType)
	return nil
}

func (d *Definition) PortTypes() []*types.PortType {
	out := make([]*types.PortType, len(d.portTypes))
	copy(out, d.portTypes)
	return out
}

// PortType returns the registered port type with the given name, or nil.
func (d *Definition) PortType(name types.QName) *types.PortType {
	for _, portType := range d.portTypes {
		if portType.Name == name {
			return portType
		}
	}
	return nil
}
