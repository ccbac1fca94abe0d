package inventory

import (
	"github.com/fairstand/tillpoint/internal/inventory/repository"
	"github.com/fairstand/tillpoint/internal/inventory/service"
	"go.uber.org/fx"
)

var Module = fx.Module("inventory.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
