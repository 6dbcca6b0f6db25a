package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates order identifiers for checkouts without a caller id.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
