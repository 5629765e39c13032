package customer

import (
	"github.com/acmelabs/facture/internal/customer/repository"
	"github.com/acmelabs/facture/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
