package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword is used at startup when only ADMIN_PASSWORD is configured,
// and by the CLI to print a value for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(b), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
