package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as informações carregadas no token de acesso ao dashboard
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
