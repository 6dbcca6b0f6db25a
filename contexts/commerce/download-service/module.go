package downloadservice

import (
	"log/slog"
	"time"

	httpadapter "classbay/contexts/commerce/download-service/adapters/http"
	"classbay/contexts/commerce/download-service/adapters/memory"
	"classbay/contexts/commerce/download-service/application/commands"
	"classbay/contexts/commerce/download-service/ports"
)

// Module is the composition surface for entitlement-gated downloads.
// Runtime wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Orders  ports.OrderReader
	Catalog ports.Catalog
	Objects ports.ObjectStore
	History ports.History
	Clock   ports.Clock
	URLTTL  time.Duration
	Logger  *slog.Logger
}

// NewModule wires the download use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	if deps.URLTTL <= 0 {
		deps.URLTTL = time.Hour
	}
	handler := httpadapter.Handler{
		IssueDownload: commands.IssueDownloadUseCase{
			Orders:  deps.Orders,
			Catalog: deps.Catalog,
			Store:   deps.Objects,
			History: deps.History,
			Clock:   deps.Clock,
			TTL:     deps.URLTTL,
			Logger:  deps.Logger,
		},
		AdminIssueDownload: commands.AdminIssueDownloadUseCase{
			Catalog: deps.Catalog,
			Store:   deps.Objects,
			History: deps.History,
			Clock:   deps.Clock,
			TTL:     deps.URLTTL,
			Logger:  deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires downloads against the in-memory store.
func NewInMemoryModule(now time.Time, urlTTL time.Duration, logger *slog.Logger) Module {
	store := memory.NewStore(now)
	module := NewModule(Dependencies{
		Orders:  store,
		Catalog: store,
		Objects: store,
		History: store,
		Clock:   store,
		URLTTL:  urlTTL,
		Logger:  logger,
	})
	module.Store = store
	return module
}
