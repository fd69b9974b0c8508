// Package auth verifies the bearer tokens issued by the account service.
// Tokens are HS256 JWTs carrying the caller's user_id.
package auth

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const AccessTokenDuration = 15 * time.Minute

type JwtCustomClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// GenerateAccessToken signs a token for userID valid for ttl.
func GenerateAccessToken(secret []byte, userID, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &JwtCustomClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// JwtAuthMiddleware accepts a token from the Authorization header or the
// access-token cookie and stores the user id under "user_id".
func JwtAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var tokenString string

			authHeader := c.Request().Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenString = strings.TrimPrefix(authHeader, "Bearer ")
			} else if cookie, err := c.Cookie("access-token"); err == nil {
				tokenString = cookie.Value
			}
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Missing access token"})
			}

			token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
				// Verify signing method
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				log.Warn().Err(err).Msg("Token validation error")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
			}

			claims, ok := token.Claims.(*JwtCustomClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
			}
			userID, err := parseUserID(claims.UserID)
			if err != nil {
				log.Warn().Err(err).Msg("Invalid user ID in token")
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid user ID"})
			}

			c.Set("user_id", userID)
			return next(c)
		}
	}
}

// parseUserID handles both UUID and VARCHAR user IDs
func parseUserID(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("user ID cannot be empty")
	}
	return s, nil
}
