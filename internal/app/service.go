package app

import (
	"wsdlkit/internal/adapters"
	"wsdlkit/internal/ports"
)

type Service struct {
	Catalog ports.CatalogLoaderPort
}

func NewService() Service {
	return Service{
		Catalog: adapters.NewCatalogFileAdapter(),
	}
}
