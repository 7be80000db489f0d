package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashForTest(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestAuthUseCase_Login(t *testing.T) {
	exp := time.Now().Add(time.Hour)

	t.Run("valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		tokens.EXPECT().Issue("admin", AuthMethodPassword).Return("tok", exp, nil)

		uc := NewAuthUseCase(tokens, nil, "admin", hashForTest(t, "s3nha"), nil)
		tok, err := uc.Login(context.Background(), " admin ", "s3nha")
		if err != nil || tok.AccessToken != "tok" || tok.Subject != "admin" || tok.Method != AuthMethodPassword {
			t.Fatalf("unexpected result err=%v tok=%+v", err, tok)
		}
	})

	cases := []struct {
		name     string
		hash     string
		user     string
		password string
	}{
		{name: "wrong password", hash: "set", user: "admin", password: "x"},
		{name: "wrong user", hash: "set", user: "root", password: "s3nha"},
		{name: "no password configured", hash: "", user: "admin", password: "s3nha"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hash := tc.hash
			if hash == "set" {
				hash = hashForTest(t, "s3nha")
			}
			uc := NewAuthUseCase(nil, nil, "admin", hash, nil)
			if _, err := uc.Login(context.Background(), tc.user, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
		})
	}
}

func TestAuthUseCase_LoginWithGoogle(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil, "admin", "", nil)
		if _, err := uc.LoginWithGoogle(context.Background(), "id"); !errors.Is(err, ErrIdentityProviderDisabled) {
			t.Fatalf("expected ErrIdentityProviderDisabled, got %v", err)
		}
	})

	t.Run("allow-listed email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tokens := mock_interfaces.NewMockITokenService(ctrl)
		identity := mock_interfaces.NewMockIIdentityVerifier(ctrl)
		identity.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return("Paulo@Example.com", nil)
		tokens.EXPECT().Issue("paulo@example.com", AuthMethodGoogle).Return("tok", time.Now(), nil)

		uc := NewAuthUseCase(tokens, identity, "admin", "", []string{" paulo@example.com "})
		tok, err := uc.LoginWithGoogle(context.Background(), "id-token")
		if err != nil || tok.Subject != "paulo@example.com" {
			t.Fatalf("unexpected result err=%v tok=%+v", err, tok)
		}
	})

	t.Run("email not allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityVerifier(ctrl)
		identity.EXPECT().VerifyIDToken(gomock.Any(), "id-token").Return("other@example.com", nil)

		uc := NewAuthUseCase(nil, identity, "admin", "", []string{"paulo@example.com"})
		if _, err := uc.LoginWithGoogle(context.Background(), "id-token"); !errors.Is(err, ErrIdentityNotAllowed) {
			t.Fatalf("expected ErrIdentityNotAllowed, got %v", err)
		}
	})

	t.Run("token rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		identity := mock_interfaces.NewMockIIdentityVerifier(ctrl)
		identity.EXPECT().VerifyIDToken(gomock.Any(), "bad").Return("", errors.New("audience mismatch"))

		uc := NewAuthUseCase(nil, identity, "admin", "", nil)
		if _, err := uc.LoginWithGoogle(context.Background(), "bad"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}

func TestAuthUseCase_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tokens := mock_interfaces.NewMockITokenService(ctrl)
	uc := NewAuthUseCase(tokens, nil, "admin", "", nil)

	if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}

	tokens.EXPECT().Parse("good").Return("admin", nil)
	if sub, err := uc.Authenticate(context.Background(), "good"); err != nil || sub != "admin" {
		t.Fatalf("unexpected result err=%v sub=%s", err, sub)
	}

	tokens.EXPECT().Parse("expired").Return("", errors.New("token is expired"))
	if _, err := uc.Authenticate(context.Background(), "expired"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
