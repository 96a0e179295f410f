package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims are the claims carried by an owner access token.
type CustomClaims struct {
	jwt.RegisteredClaims
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
}
