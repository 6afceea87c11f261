package types

// CatalogFile is the YAML surface for declaring the messages of a service.
// It stands in for whatever upstream producer normally populates a
// definition before port types are generated.
type CatalogFile struct {
	TargetNamespace string           `yaml:"target_namespace"`
	Messages        []CatalogMessage `yaml:"messages"`
}

type CatalogMessage struct {
	Name  string        `yaml:"name"`
	Parts []CatalogPart `yaml:"parts,omitempty"`
}

type CatalogPart struct {
	Name    string `yaml:"name"`
	Element string `yaml:"element,omitempty"`
}
