package auth

import (
	"github.com/acmelabs/facture/internal/auth/repository"
	"github.com/acmelabs/facture/internal/auth/service"
	"go.uber.org/fx"
)

var Module = fx.Module("auth.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
