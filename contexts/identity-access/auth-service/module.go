package authservice

import (
	"log/slog"

	"classbay/contexts/identity-access/auth-service/adapters/memory"
	"classbay/contexts/identity-access/auth-service/application/queries"
	"classbay/contexts/identity-access/auth-service/domain/entities"
	"classbay/contexts/identity-access/auth-service/domain/services"
	"classbay/contexts/identity-access/auth-service/ports"
)

// Module is the composition surface for identity verification and
// authorization policy. Runtime wiring should consume Authenticate and Policy;
// Verifier is exposed for tests/inspection.
type Module struct {
	Authenticate queries.AuthenticateUseCase
	Policy       services.Policy
	Verifier     *memory.Verifier
}

type Dependencies struct {
	Verifier        ports.TokenVerifier
	AdminIdentities []string
	Logger          *slog.Logger
}

// NewModule wires the auth use case against an explicit verifier port.
func NewModule(deps Dependencies) Module {
	return Module{
		Authenticate: queries.AuthenticateUseCase{
			Verifier: deps.Verifier,
			Logger:   deps.Logger,
		},
		Policy: services.NewPolicy(deps.AdminIdentities),
	}
}

// NewInMemoryModule wires the auth module against an in-memory verifier.
func NewInMemoryModule(seed map[string]entities.Principal, adminIdentities []string, logger *slog.Logger) Module {
	verifier := memory.NewVerifier(seed)
	module := NewModule(Dependencies{
		Verifier:        verifier,
		AdminIdentities: adminIdentities,
		Logger:          logger,
	})
	module.Verifier = verifier
	return module
}
