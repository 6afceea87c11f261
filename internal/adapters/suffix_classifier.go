package adapters

import (
	"strings"

	"wsdlkit/internal/types"
)

const (
	DefaultRequestSuffix  = "Request"
	DefaultResponseSuffix = "Response"
	DefaultFaultSuffix    = "Fault"
)

// SuffixClassifierAdapter couples messages to operations by naming
// convention: a message whose local name ends in the request suffix is the
// input of the operation named by the remainder, and so on for response
// and fault.  Messages matching no suffix, or whose name is nothing but
// the suffix, belong to no operation.
type SuffixClassifierAdapter struct {
	RequestSuffix  string
	ResponseSuffix string
	FaultSuffix    string
}

func NewSuffixClassifierAdapter() SuffixClassifierAdapter {
	return SuffixClassifierAdapter{
		RequestSuffix:  DefaultRequestSuffix,
		ResponseSuffix: DefaultResponseSuffix,
		FaultSuffix:    DefaultFaultSuffix,
	}
}

func (a SuffixClassifierAdapter) OperationName(message *types.Message) string {
	local := message.Name.Local
	for _, suffix := range []string{a.RequestSuffix, a.ResponseSuffix, a.FaultSuffix} {
		if hasProperSuffix(local, suffix) {
			return strings.TrimSuffix(local, suffix)
		}
	}
	return ""
}

func (a SuffixClassifierAdapter) IsInput(message *types.Message) bool {
	return hasProperSuffix(message.Name.Local, a.RequestSuffix)
}

func (a SuffixClassifierAdapter) IsOutput(message *types.Message) bool {
	return hasProperSuffix(message.Name.Local, a.ResponseSuffix)
}

func (a SuffixClassifierAdapter) IsFault(message *types.Message) bool {
	return hasProperSuffix(message.Name.Local, a.FaultSuffix)
}

// hasProperSuffix requires a non-empty remainder: a message named exactly
// after a suffix carries no operation name.
func hasProperSuffix(local string, suffix string) bool {
	return suffix != "" && len(local) > len(suffix) && strings.HasSuffix(local, suffix)
}
