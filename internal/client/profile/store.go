// Package profile contains the client-side capability for the REST profile
// store: a transport-agnostic contract (Store) and a concrete HTTP
// implementation (RESTStore).
package profile

import (
	"context"

	"github.com/ykarpenko/sessionkeeper/internal/client/models"
)

// Store defines the profile-store operations used by the session coordinator.
//
// Contract:
//   - Create: persist a new record; the response carries store-assigned
//     fields and is the authoritative version of the record.
//   - GetByID: fetch one record; absence is common.ErrorNotFound.
//   - FindByEmail: list records matching an email, in store-returned order.
type Store interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]*models.User, error)
}
