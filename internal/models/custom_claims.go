package models

import "github.com/golang-jwt/jwt/v5"

const TokenTypeAccess = "access"

// CustomClaims are the claims carried by session access tokens
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
}
