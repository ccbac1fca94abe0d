package main

import (
	"github.com/fairstand/tillpoint/internal/config"
	"github.com/fairstand/tillpoint/internal/counter"
	counterdomain "github.com/fairstand/tillpoint/internal/counter/domain"
	"github.com/fairstand/tillpoint/internal/inventory"
	inventorydomain "github.com/fairstand/tillpoint/internal/inventory/domain"
	"github.com/fairstand/tillpoint/internal/observability"
	"github.com/fairstand/tillpoint/internal/sales"
	salesdomain "github.com/fairstand/tillpoint/internal/sales/domain"
	"github.com/fairstand/tillpoint/internal/store"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		store.Module,

		// Functional Domains
		counter.Module,
		inventory.Module,
		sales.Module,

		fx.Invoke(ensureRepositories),
	)
	app.Run()
}

// ensureRepositories forces construction of the domain services so the
// embedding presentation layer finds them ready.
func ensureRepositories(_ counterdomain.Service, _ inventorydomain.Service, _ salesdomain.Service) {}
