package response

import (
	"time"

	"paulocell_pdv/internal/usecase"
)

type TokenResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresAt   time.Time `json:"expiresAt"`
	Subject     string    `json:"subject"`
	Method      string    `json:"method"`
}

func FromAuthToken(t usecase.AuthToken) TokenResponse {
	return TokenResponse{
		AccessToken: t.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   t.ExpiresAt,
		Subject:     t.Subject,
		Method:      t.Method,
	}
}

type RestoreResponse struct {
	RestoredKeys []string `json:"restoredKeys"`
}

type TrashEmptiedResponse struct {
	Purged int `json:"purged"`
}
