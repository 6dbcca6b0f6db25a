package orderservice

import (
	"log/slog"

	httpadapter "classbay/contexts/commerce/order-service/adapters/http"
	"classbay/contexts/commerce/order-service/adapters/memory"
	"classbay/contexts/commerce/order-service/application/commands"
	"classbay/contexts/commerce/order-service/application/queries"
	"classbay/contexts/commerce/order-service/domain/entities"
	"classbay/contexts/commerce/order-service/ports"
)

// Module is the composition surface for the order ledger.
// Runtime wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Orders      ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the ledger use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		CreateOrder: commands.CreateOrderUseCase{
			Orders:      deps.Orders,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			Logger:      deps.Logger,
		},
		UpdateOrderStatus: commands.UpdateOrderStatusUseCase{
			Orders: deps.Orders,
			Clock:  deps.Clock,
			Logger: deps.Logger,
		},
		GetOrder: queries.GetOrderUseCase{
			Orders: deps.Orders,
			Logger: deps.Logger,
		},
		ListOrders: queries.ListOrdersUseCase{
			Orders: deps.Orders,
			Logger: deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires the ledger against the in-memory store.
func NewInMemoryModule(seedOrders []entities.Order, logger *slog.Logger) Module {
	store := memory.NewStore(seedOrders)
	module := NewModule(Dependencies{
		Orders:      store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
