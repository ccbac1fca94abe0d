package counter

import (
	"github.com/fairstand/tillpoint/internal/counter/repository"
	"github.com/fairstand/tillpoint/internal/counter/service"
	"go.uber.org/fx"
)

var Module = fx.Module("counter.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
