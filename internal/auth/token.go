// internal/auth/token.go
package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

func secret() ([]byte, error) {
	if jwtSecret == nil {
		s := os.Getenv("JWT_SECRET")
		if s == "" {
			return nil, fmt.Errorf("JWT_SECRET não definida")
		}
		jwtSecret = []byte(s)
	}
	return jwtSecret, nil
}

// Claims do token (RBAC simples: IsAdmin) mais o tenant do utilizador.
type Claims struct {
	UserID     uint `json:"userId"`
	ParceiroID uint `json:"parceiroId"`
	IsAdmin    bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// GerarToken gera um JWT HS256 com validade de 24h.
func GerarToken(userID, parceiroID uint, isAdmin bool) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}
	claims := &Claims{
		UserID:     userID,
		ParceiroID: parceiroID,
		IsAdmin:    isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ValidarToken valida o token e devolve as claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	key, err := secret()
	if err != nil {
		return nil, err
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido ou expirado: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, fmt.Errorf("não foi possível extrair claims")
	}
	return claims, nil
}
