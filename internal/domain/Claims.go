package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos no token
const (
	RoleViewer   = "viewer"
	RoleOperator = "operator"
)

// Claims do token de acesso. O operador pode carregar datasets e disparar jobs.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsOperator() bool {
	return c.Role == RoleOperator
}
