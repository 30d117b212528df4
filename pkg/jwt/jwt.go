package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims access token del servicio de autenticación alojado (Supabase):
// sub = id del usuario, más email y role.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"` // "authenticated" | "service_role" | ...
}

// Verifier valida tokens HS256 firmados con el secreto compartido.
type Verifier struct {
	secret   []byte
	audience string
	issuer   string
}

// NewVerifier construye el validador. audience e issuer vacíos no se verifican.
func NewVerifier(secret, audience, issuer string) (*Verifier, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	return &Verifier{secret: []byte(secret), audience: audience, issuer: issuer}, nil
}

// Parse valida el token y devuelve userID, email y role.
// Retorna error si el token es inválido, expirado, de otra audiencia o tiene firma incorrecta.
func (v *Verifier) Parse(tokenString string) (userID, email, role string, err error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", "", "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", "", "", fmt.Errorf("claims inválidos")
	}
	if claims.Subject == "" {
		return "", "", "", fmt.Errorf("token sin subject")
	}
	return claims.Subject, claims.Email, claims.Role, nil
}

// Generate firma un token con la misma forma que el proveedor. Solo lo usan
// las pruebas y herramientas locales: en producción los tokens llegan emitidos.
func Generate(secret, userID, email, role, audience string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
		Role:  role,
	}
	if audience != "" {
		claims.Audience = jwt.ClaimStrings{audience}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
