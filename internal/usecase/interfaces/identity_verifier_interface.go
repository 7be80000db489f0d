package interfaces

import "context"

// IIdentityVerifier validates a third-party identity token and returns the
// verified e-mail address.
type IIdentityVerifier interface {
	VerifyIDToken(ctx context.Context, token string) (email string, err error)
}
