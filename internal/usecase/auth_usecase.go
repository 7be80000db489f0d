package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrIdentityProviderDisabled = errors.New("identity provider not configured")
	ErrIdentityNotAllowed       = errors.New("identity not allowed")
	ErrInvalidToken             = errors.New("invalid token")
)

// Login methods recorded in the token.
const (
	AuthMethodPassword = "password"
	AuthMethodGoogle   = "google"
)

type AuthToken struct {
	AccessToken string
	ExpiresAt   time.Time
	Subject     string
	Method      string
}

type IAuthUseCase interface {
	Login(ctx context.Context, username string, password string) (AuthToken, error)
	LoginWithGoogle(ctx context.Context, idToken string) (AuthToken, error)
	Authenticate(ctx context.Context, token string) (string, error)
}

// AuthUseCase checks the single admin account or an allow-listed identity
// provider e-mail. identity may be nil.
type AuthUseCase struct {
	tokens            interfaces.ITokenService
	identity          interfaces.IIdentityVerifier
	adminUsername     string
	adminPasswordHash []byte
	allowedEmails     map[string]bool
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	tokens interfaces.ITokenService,
	identity interfaces.IIdentityVerifier,
	adminUsername string,
	adminPasswordHash string,
	allowedEmails []string,
) *AuthUseCase {
	allowed := make(map[string]bool, len(allowedEmails))
	for _, e := range allowedEmails {
		allowed[strings.ToLower(strings.TrimSpace(e))] = true
	}
	return &AuthUseCase{
		tokens:            tokens,
		identity:          identity,
		adminUsername:     adminUsername,
		adminPasswordHash: []byte(adminPasswordHash),
		allowedEmails:     allowed,
	}
}

func (u *AuthUseCase) Login(_ context.Context, username, password string) (AuthToken, error) {
	log := logger.For("auth", "usecase")
	if len(u.adminPasswordHash) == 0 {
		log.Warn("[auth][usecase] password login attempted without ADMIN_PASSWORD(_HASH)")
		return AuthToken{}, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(strings.TrimSpace(username)), []byte(u.adminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword(u.adminPasswordHash, []byte(password))
	if !userOK || passErr != nil {
		log.WithField("username", username).Info("[auth][usecase] invalid credentials")
		return AuthToken{}, ErrInvalidCredentials
	}
	return u.issue(u.adminUsername, AuthMethodPassword)
}

func (u *AuthUseCase) LoginWithGoogle(ctx context.Context, idToken string) (AuthToken, error) {
	if u.identity == nil {
		return AuthToken{}, ErrIdentityProviderDisabled
	}
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return AuthToken{}, ErrInvalidToken
	}
	email, err := u.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		logger.For("auth", "usecase").WithError(err).Info("[auth][usecase] id token rejected")
		return AuthToken{}, ErrInvalidToken
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !u.allowedEmails[email] {
		logger.For("auth", "usecase").WithField("email", email).Warn("[auth][usecase] identity not allowed")
		return AuthToken{}, ErrIdentityNotAllowed
	}
	return u.issue(email, AuthMethodGoogle)
}

// Authenticate returns the subject of a valid bearer token.
func (u *AuthUseCase) Authenticate(_ context.Context, token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidToken
	}
	subject, err := u.tokens.Parse(token)
	if err != nil || subject == "" {
		return "", ErrInvalidToken
	}
	return subject, nil
}

func (u *AuthUseCase) issue(subject, method string) (AuthToken, error) {
	token, exp, err := u.tokens.Issue(subject, method)
	if err != nil {
		return AuthToken{}, err
	}
	return AuthToken{AccessToken: token, ExpiresAt: exp, Subject: subject, Method: method}, nil
}
