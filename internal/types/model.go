package types

// Part is a named constituent of a message, referring to a schema element.
type Part struct {
	Name    string
	Element QName
}

// Message is a named unit of data exchanged by operations.  Messages are
// read-only once registered on a definition; the port-type machinery only
// ever inspects them.
type Message struct {
	Name  QName
	Parts []Part
}

type Input struct {
	Name    string
	Message *Message
}

type Output struct {
	Name    string
	Message *Message
}

type Fault struct {
	Name    string
	Message *Message
}

// Operation is one named unit of interaction within a port type.  Defined
// is false while the operation is under construction and true once its
// roles and style are final.
type Operation struct {
	Name    string
	Input   *Input
	Output  *Output
	Faults  []*Fault
	Style   OperationType
	Defined bool
}

func (o *Operation) AddFault(fault *Fault) {
	o.Faults = append(o.Faults, fault)
}

// PortType is the abstract interface section of a WSDL document: a named
// collection of operations keyed by unique operation name.
type PortType struct {
	Name       QName
	Operations []*Operation
	Defined    bool
}

func (p *PortType) AddOperation(operation *Operation) {
	p.Operations = append(p.Operations, operation)
}

// Operation returns the operation with the given name, or nil.
func (p *PortType) Operation(name string) *Operation {
	for _, operation := range p.Operations {
		if operation.Name == name {
			return operation
		}
	}
	return nil
}
