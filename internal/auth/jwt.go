package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	UsuarioID uint `json:"userId"`
	jwt.RegisteredClaims
}

// Tiempo de vida del token de acceso
const TokenTTL = 24 * time.Hour

func secreto() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET no definida")
	}
	return []byte(s), nil
}

// GenerarToken emite un JWT HS256 con validez de 24h.
func GenerarToken(usuarioID uint) (string, error) {
	clave, err := secreto()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := &Claims{
		UsuarioID: usuarioID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(usuarioID),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(clave)
}

// ValidarToken valida firma y expiración y devuelve las claims.
func ValidarToken(tokenStr string) (*Claims, error) {
	clave, err := secreto()
	if err != nil {
		return nil, err
	}

	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return clave, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("token inválido o expirado: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("no se pudieron extraer las claims")
	}
	return claims, nil
}
