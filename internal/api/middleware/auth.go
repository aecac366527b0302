package middleware

import (
	"crypto/rsa"
	"crypto/subtle"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/coinfolio/coinfolio-sync/internal/api/shared/errors"
	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	AUTH_SUBJECT_KEY contextKey = "auth_subject"
	AUTH_EMAIL_KEY   contextKey = "auth_email"
	JWT_CLAIMS_KEY   contextKey = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
}

// UserClaims are the claims of a user token issued by the authentication system
type UserClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Auth returns a gin middleware that requires a valid RS256 user token.
// The token subject is the user id.
func Auth(cfg AuthConfig) gin.HandlerFunc {
	publicKey, keyErr := parseRSAPublicKey(cfg.JWTPublicKey)

	return func(c *gin.Context) {
		claims, err := func() (*UserClaims, error) {
			if keyErr != nil {
				return nil, fmt.Errorf("JWT public key not usable: %w", keyErr)
			}
			token, err := bearerToken(c.GetHeader("Authorization"))
			if err != nil {
				return nil, err
			}
			return validateJWT(token, publicKey)
		}()
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierrors.NewUnauthorizedError("Authentication failed", err.Error()))
			return
		}

		c.Set(string(JWT_CLAIMS_KEY), claims)
		c.Set(string(AUTH_SUBJECT_KEY), claims.Subject)
		c.Set(string(AUTH_EMAIL_KEY), claims.Email)

		c.Next()
	}
}

// CronAuth returns a gin middleware that requires the shared job secret as a bearer token.
// Failures answer 401 {"error": "Unauthorized"}.
func CronAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := bearerToken(c.GetHeader("Authorization"))
		if err != nil || secret == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			logger.WarnCtx(c.Request.Context(), "Job endpoint rejected",
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id set by Auth
func UserID(c *gin.Context) string {
	return c.GetString(string(AUTH_SUBJECT_KEY))
}

// UserEmail returns the authenticated user email set by Auth
func UserEmail(c *gin.Context) string {
	return c.GetString(string(AUTH_EMAIL_KEY))
}

// bearerToken extracts the credentials of a "Bearer <token>" header
func bearerToken(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("missing Authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid Authorization header format")
	}

	return parts[1], nil
}

// validateJWT validates a JWT token with RSA signature and returns claims.
// jwt/v5 checks exp and nbf while parsing.
func validateJWT(tokenString string, publicKey *rsa.PublicKey) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key from PEM format
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	// Try parsing as PKIX (most common format)
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		// Try parsing as PKCS1 format
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
