package auth

import (
	"context"
	"errors"
	"strings"

	"paulocell_pdv/internal/usecase/interfaces"

	"google.golang.org/api/idtoken"
)

var (
	ErrMissingGoogleClientID = errors.New("google client id not set")
	ErrEmailNotVerified      = errors.New("google account e-mail not verified")
)

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// GoogleVerifier validates Google Sign-In ID tokens for one OAuth client.
type GoogleVerifier struct {
	clientID string
	validate validateFunc
}

var _ interfaces.IIdentityVerifier = (*GoogleVerifier)(nil)

func NewGoogleVerifier(clientID string) (*GoogleVerifier, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrMissingGoogleClientID
	}
	return &GoogleVerifier{clientID: clientID, validate: idtoken.Validate}, nil
}

func (g *GoogleVerifier) VerifyIDToken(ctx context.Context, token string) (string, error) {
	payload, err := g.validate(ctx, token, g.clientID)
	if err != nil {
		return "", err
	}
	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", errors.New("token without email claim")
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return "", ErrEmailNotVerified
	}
	return email, nil
}
