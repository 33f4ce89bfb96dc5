package domain

import (
	"github.com/golang-jwt/jwt"

	"github.com/rafflehouse/goapi/base/ctx"
)

type JwtCustomClaims struct {
	Address string `json:"address"`
	jwt.StandardClaims
}

type AuthUsecase interface {
	// SignToken verifies that signature was produced by address over the
	// configured signing message and mints a session token for it.
	SignToken(c ctx.Ctx, address Address, signature string) (string, error)
	ParseToken(c ctx.Ctx, token string) (string, error)
}
