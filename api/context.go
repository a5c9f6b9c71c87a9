package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/scifanor/scifanor-backend/errs"
)

type keyType string

const identityKey keyType = "identity"

// identity is the authenticated caller as carried in the request context.
type identity struct {
	ID      uuid.UUID
	Email   string
	IsAdmin bool
}

// ctxWithIdentity adds the authenticated identity to the context
func ctxWithIdentity(ctx context.Context, id identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// ctxGetIdentity retrieves the authenticated identity from the context
func ctxGetIdentity(ctx context.Context) (identity, error) {
	value := ctx.Value(identityKey)
	if value == nil {
		return identity{}, errs.NewUnauthorizedError("no authenticated identity")
	}
	id, ok := value.(identity)
	if !ok {
		return identity{}, errs.NewUnauthorizedError("no authenticated identity")
	}
	return id, nil
}
