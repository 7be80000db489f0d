package auth

import (
	"errors"
	"strings"
	"time"

	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingJWTSecret    = errors.New("jwt secret not set")
	ErrUnexpectedSigning   = errors.New("unexpected signing method")
	ErrTokenMissingSubject = errors.New("token without subject")
)

// JWTService signs HS256 tokens carrying the subject and login method.
type JWTService struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTService)(nil)

func NewJWTService(secret string, expiry time.Duration) (*JWTService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingJWTSecret
	}
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &JWTService{secret: []byte(secret), expiry: expiry, now: time.Now}, nil
}

func (s *JWTService) Issue(subject string, method string) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.expiry)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":    subject,
		"method": method,
		"iat":    now.Unix(),
		"exp":    exp.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

func (s *JWTService) Parse(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if len(tokenString) > 7 && strings.EqualFold(tokenString[:7], "bearer ") {
		tokenString = strings.TrimSpace(tokenString[7:])
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnexpectedSigning
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrTokenMissingSubject
	}
	return sub, nil
}
