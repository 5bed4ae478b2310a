package user

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = 72 * time.Hour

var signingSecret []byte

// SetSigningSecret installs the HMAC secret used to mint and verify
// tokens. main wires it from config at startup.
func SetSigningSecret(secret string) {
	signingSecret = []byte(secret)
}

// SigningSecret returns the installed secret for token verification.
func SigningSecret() []byte {
	return signingSecret
}

// AuthClaims identifies a signed-up player.
type AuthClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

var GenerateJWT = func(id uint) (string, error) {
	claims := AuthClaims{
		UserID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "guessdle",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingSecret)
}
