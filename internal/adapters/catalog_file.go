package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"wsdlkit/internal/types"
)

type CatalogFileAdapter struct{}

func NewCatalogFileAdapter() CatalogFileAdapter {
	return CatalogFileAdapter{}
}

func (a CatalogFileAdapter) Load(path string) (types.CatalogFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CatalogFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("catalog file not found").
			WithCause(err)
	}
	var catalog types.CatalogFile
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return types.CatalogFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse catalog yaml").
			WithCause(err)
	}
	return catalog, nil
}
