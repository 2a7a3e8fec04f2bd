package usecases

import "context"

// IdentityProvider is the port to the external identity service that
// owns credentials. FindByEmail returns the external user id, or the
// empty string when no such user exists.
type IdentityProvider interface {
	FindByEmail(ctx context.Context, email string) (string, error)
	CreateUser(ctx context.Context, email, password string) (string, error)
}
