package types

import "strings"

// QName is a namespace-qualified name as used throughout a WSDL document.
type QName struct {
	Namespace string
	Local     string
}

func NewQName(namespace string, local string) QName {
	return QName{Namespace: namespace, Local: local}
}

// String renders the qualified name in the `{namespace}local` form.
func (q QName) String() string {
	if q.Namespace == "" {
		return q.Local
	}
	return "{" + q.Namespace + "}" + q.Local
}

func (q QName) IsZero() bool {
	return q.Namespace == "" && q.Local == ""
}

// ParseQName parses the `{namespace}local` form produced by String.
// A value without a namespace brace is treated as a bare local name.
func ParseQName(value string) QName {
	value = strings.TrimSpace(value)
	if strings.HasPrefix(value, "{") {
		if end := strings.Index(value, "}"); end > 0 {
			return QName{Namespace: value[1:end], Local: value[end+1:]}
		}
	}
	return QName{Local: value}
}
