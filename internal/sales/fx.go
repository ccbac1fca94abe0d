package sales

import (
	"github.com/fairstand/tillpoint/internal/sales/repository"
	"github.com/fairstand/tillpoint/internal/sales/service"
	"go.uber.org/fx"
)

var Module = fx.Module("sales.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
