package invoice

import (
	"github.com/acmelabs/facture/internal/invoice/repository"
	"github.com/acmelabs/facture/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
