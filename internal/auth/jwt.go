package auth

import (
	"errors"
	"time"

	"lru-cache-api/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	jwtSecret   = []byte("development-insecure-secret-change-me")
	jwtIssuer   = "lru-cache-api"
	jwtAudience = "lru-cache-clients"
	tokenTTL    = 24 * time.Hour
)

// Configure installs signing and credential settings. Call it once at startup,
// before serving requests.
func Configure(cfg config.AuthConfig) error {
	if cfg.JWTSecret == "" {
		return errors.New("jwt secret is required")
	}
	jwtSecret = []byte(cfg.JWTSecret)
	if cfg.Issuer != "" {
		jwtIssuer = cfg.Issuer
	}
	if cfg.Audience != "" {
		jwtAudience = cfg.Audience
	}
	if cfg.TokenTTL > 0 {
		tokenTTL = cfg.TokenTTL
	}
	return setAdmin(cfg.AdminUsername, cfg.AdminPassword)
}

// Claims represents the JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken generates a JWT token for the given user
func GenerateToken(userID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    jwtIssuer,
			Audience:  jwt.ClaimStrings{jwtAudience},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return jwtSecret, nil
	}, jwt.WithIssuer(jwtIssuer), jwt.WithAudience(jwtAudience))
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
