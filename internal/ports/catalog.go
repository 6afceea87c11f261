package ports

import "wsdlkit/internal/types"

type CatalogLoaderPort interface {
	Load(path string) (types.CatalogFile, error)
}
