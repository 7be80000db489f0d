package interfaces

import "time"

// ITokenService issues and verifies the API's bearer tokens.
type ITokenService interface {
	Issue(subject string, method string) (token string, expiresAt time.Time, err error)
	Parse(token string) (subject string, err error)
}
