package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims is the token payload for the pool API. Subject carries the user ID.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}

type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)
