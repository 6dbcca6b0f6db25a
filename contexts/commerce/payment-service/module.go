package paymentservice

import (
	"log/slog"
	"time"

	httpadapter "classbay/contexts/commerce/payment-service/adapters/http"
	"classbay/contexts/commerce/payment-service/adapters/memory"
	"classbay/contexts/commerce/payment-service/application/commands"
	"classbay/contexts/commerce/payment-service/application/queries"
	"classbay/contexts/commerce/payment-service/domain/entities"
	"classbay/contexts/commerce/payment-service/ports"
)

// Module is the composition surface for payment verification.
// Runtime wiring should consume Handler; Gateway, Ledger and Clock are
// exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Gateway *memory.Gateway
	Ledger  *memory.Ledger
	Clock   *memory.Clock
}

type Dependencies struct {
	Gateway ports.PaymentGateway
	Ledger  ports.OrderLedger
	Clock   ports.Clock
	Logger  *slog.Logger
}

// NewModule wires the verification use cases against explicit ports.
func NewModule(deps Dependencies) Module {
	handler := httpadapter.Handler{
		VerifyPayment: commands.VerifyPaymentUseCase{
			Gateway: deps.Gateway,
			Ledger:  deps.Ledger,
			Clock:   deps.Clock,
			Logger:  deps.Logger,
		},
		GetPayment: queries.GetPaymentUseCase{
			Gateway: deps.Gateway,
			Logger:  deps.Logger,
		},
		Logger: deps.Logger,
	}
	return Module{Handler: handler}
}

// NewInMemoryModule wires verification against a seeded fake gateway and an
// in-memory order ledger.
func NewInMemoryModule(seedPayments []entities.Payment, logger *slog.Logger) Module {
	gateway := memory.NewGateway()
	for _, payment := range seedPayments {
		gateway.Register(payment)
	}
	ledger := memory.NewLedger()
	clock := memory.NewClock(time.Now())

	module := NewModule(Dependencies{
		Gateway: gateway,
		Ledger:  ledger,
		Clock:   clock,
		Logger:  logger,
	})
	module.Gateway = gateway
	module.Ledger = ledger
	module.Clock = clock
	return module
}
