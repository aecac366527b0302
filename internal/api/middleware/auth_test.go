package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coinfolio/coinfolio-sync/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

func newTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, method jwt.SigningMethod, claims UserClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func newAuthRouter(cfg AuthConfig) *gin.Engine {
	router := gin.New()
	router.GET("/me", Auth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c), "email": UserEmail(c)})
	})
	return router
}

func TestAuth(t *testing.T) {
	key, publicPEM := newTestKey(t)
	otherKey, _ := newTestKey(t)

	validClaims := UserClaims{
		Email: "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{
			name:         "valid token",
			header:       "Bearer " + signToken(t, key, jwt.SigningMethodRS256, validClaims),
			expectedCode: http.StatusOK,
		},
		{
			name:         "missing header",
			header:       "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "wrong scheme",
			header:       "Basic " + signToken(t, key, jwt.SigningMethodRS256, validClaims),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "signed by another key",
			header:       "Bearer " + signToken(t, otherKey, jwt.SigningMethodRS256, validClaims),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unexpected algorithm",
			header:       "Bearer " + signToken(t, key, jwt.SigningMethodRS512, validClaims),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			header: "Bearer " + signToken(t, key, jwt.SigningMethodRS256, UserClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					Subject:   "user-1",
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				},
			}),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name: "no subject",
			header: "Bearer " + signToken(t, key, jwt.SigningMethodRS256, UserClaims{
				RegisteredClaims: jwt.RegisteredClaims{
					ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				},
			}),
			expectedCode: http.StatusUnauthorized,
		},
	}

	router := newAuthRouter(AuthConfig{JWTPublicKey: publicPEM})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.JSONEq(t, `{"user_id":"user-1","email":"alice@example.com"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
			}
		})
	}
}

func TestAuth_MissingPublicKeyRejectsEveryRequest(t *testing.T) {
	key, _ := newTestKey(t)
	router := newAuthRouter(AuthConfig{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, key, jwt.SigningMethodRS256, UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"},
	}))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCronAuth(t *testing.T) {
	tests := []struct {
		name         string
		secret       string
		header       string
		expectedCode int
	}{
		{name: "matching secret", secret: "s3cret", header: "Bearer s3cret", expectedCode: http.StatusOK},
		{name: "lowercase scheme", secret: "s3cret", header: "bearer s3cret", expectedCode: http.StatusOK},
		{name: "wrong secret", secret: "s3cret", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "secret prefix", secret: "s3cret", header: "Bearer s3c", expectedCode: http.StatusUnauthorized},
		{name: "missing header", secret: "s3cret", header: "", expectedCode: http.StatusUnauthorized},
		{name: "unconfigured secret", secret: "", header: "Bearer ", expectedCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			router := gin.New()
			router.GET("/api/cron/trending", CronAuth(tt.secret), func(c *gin.Context) {
				called = true
				c.JSON(http.StatusOK, gin.H{"success": true})
			})

			req := httptest.NewRequest(http.MethodGet, "/api/cron/trending", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusUnauthorized {
				assert.False(t, called)
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
			} else {
				assert.True(t, called)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	router := gin.New()
	router.Use(Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
}
