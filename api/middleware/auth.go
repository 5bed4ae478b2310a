package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/guessdle/guessdle/internal/user"
)

const identityKey = "identity"

func SetupJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(user.AuthClaims)
		},
		SigningKey: user.SigningSecret(),
	})
}

// UserID returns the authenticated user's id from the verified token.
func UserID(c echo.Context) uint {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return 0
	}
	claims, ok := token.Claims.(*user.AuthClaims)
	if !ok {
		return 0
	}
	return claims.UserID
}

// OptionalIdentity resolves the caller for play routes: a valid bearer token
// yields an authenticated identity, otherwise the device id header yields an
// anonymous one. Requests with neither are rejected, since sessions need a
// stable key.
func OptionalIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.HasPrefix(auth, "Bearer ") {
				userID, err := validateToken(strings.TrimPrefix(auth, "Bearer "))
				if err != nil {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				c.Set(identityKey, user.AuthenticatedIdentity(userID))
				return next(c)
			}

			deviceID := c.Request().Header.Get("X-Device-ID")
			if deviceID == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing credentials or X-Device-ID header")
			}
			c.Set(identityKey, user.AnonymousIdentity("device:"+deviceID))
			return next(c)
		}
	}
}

// Identity returns the identity resolved by OptionalIdentity.
func Identity(c echo.Context) user.Identity {
	identity, _ := c.Get(identityKey).(user.Identity)
	return identity
}

func validateToken(tokenString string) (string, error) {
	claims := &user.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return user.SigningSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return strconv.Itoa(int(claims.UserID)), nil
}
