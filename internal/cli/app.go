package cli

import "wsdlkit/internal/app"

func newAppService() app.Service {
	return app.NewService()
}
