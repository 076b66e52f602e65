package identity

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jaalakam-backend/internal/config"
)

func newKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func sign(t *testing.T, key *rsa.PrivateKey, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(sub, azp string) *sessionClaims {
	return &sessionClaims{
		AuthorizedParty: azp,
		SessionID:       "sess_1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
}

func TestClerkClient_VerifyToken(t *testing.T) {
	key, pub := newKey(t)
	client, err := NewClerkClient(config.IdentityConfig{
		JWTPublicKey:      pub,
		APIURL:            "http://unused",
		AuthorizedParties: []string{"https://jaalakam.example"},
		Timeout:           time.Second,
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Should accept a valid token", func(t *testing.T) {
		claims, err := client.VerifyToken(ctx, sign(t, key, validClaims("user_1", "https://jaalakam.example")))
		require.NoError(t, err)
		assert.Equal(t, "user_1", claims.Subject)
		assert.Equal(t, "sess_1", claims.SessionID)
	})

	t.Run("Should reject an expired token", func(t *testing.T) {
		c := validClaims("user_1", "https://jaalakam.example")
		c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
		_, err := client.VerifyToken(ctx, sign(t, key, c))
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Should reject a token signed by another key", func(t *testing.T) {
		other, _ := newKey(t)
		_, err := client.VerifyToken(ctx, sign(t, other, validClaims("user_1", "https://jaalakam.example")))
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Should reject HMAC tokens", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims("user_1", "https://jaalakam.example")).
			SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = client.VerifyToken(ctx, raw)
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown authorized party", func(t *testing.T) {
		_, err := client.VerifyToken(ctx, sign(t, key, validClaims("user_1", "https://evil.example")))
		assert.ErrorIs(t, err, ErrUnauthorizedParty)
	})

	t.Run("Should require a subject", func(t *testing.T) {
		_, err := client.VerifyToken(ctx, sign(t, key, validClaims("", "https://jaalakam.example")))
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("Should reject garbage", func(t *testing.T) {
		_, err := client.VerifyToken(ctx, "not.a.jwt")
		assert.Error(t, err)
	})
}

func TestClerkClient_VerifyTokenWithoutKey(t *testing.T) {
	client, err := NewClerkClient(config.IdentityConfig{APIURL: "http://unused"})
	require.NoError(t, err)

	_, err = client.VerifyToken(context.Background(), "anything")
	assert.ErrorIs(t, err, ErrVerificationDisabled)
}

func TestNewClerkClient_BadKey(t *testing.T) {
	_, err := NewClerkClient(config.IdentityConfig{JWTPublicKey: "-----BEGIN PUBLIC KEY-----\nnope\n-----END PUBLIC KEY-----"})
	assert.ErrorContains(t, err, "parsing CLERK_JWT_KEY")
}

func TestClerkClient_GetProfile(t *testing.T) {
	t.Run("Should map the first email and fall back to first name", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/users/user_42", r.URL.Path)
			assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "user_42",
				"username": null,
				"first_name": "Madhavi",
				"image_url": "https://img.example/42.png",
				"email_addresses": [
					{"email_address": "madhavi@example.com", "verification": {"status": "verified"}},
					{"email_address": "alt@example.com", "verification": {"status": "unverified"}}
				]
			}`))
		}))
		defer srv.Close()

		client, err := NewClerkClient(config.IdentityConfig{APIURL: srv.URL, SecretKey: "sk_test", Timeout: time.Second})
		require.NoError(t, err)

		p, err := client.GetProfile(context.Background(), "user_42")
		require.NoError(t, err)
		assert.Equal(t, "madhavi@example.com", *p.Email)
		assert.True(t, p.EmailVerified)
		assert.Equal(t, "Madhavi", *p.Name)
		assert.Equal(t, "Madhavi", *p.DisplayName)
		assert.Equal(t, "https://img.example/42.png", *p.AvatarURL)
	})

	t.Run("Should prefer the username for display name", func(t *testing.T) {
		p := toProfile(&clerkUser{Username: ptr("kavi"), FirstName: ptr("Kavitha")})
		assert.Equal(t, "kavi", *p.DisplayName)
		assert.Nil(t, p.Email)
		assert.False(t, p.EmailVerified)
	})

	t.Run("Should return an error for non-2xx responses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[{"code":"resource_not_found","message":"not found"}]}`))
		}))
		defer srv.Close()

		client, err := NewClerkClient(config.IdentityConfig{APIURL: srv.URL, Timeout: time.Second})
		require.NoError(t, err)

		_, err = client.GetProfile(context.Background(), "user_missing")
		assert.ErrorContains(t, err, "identity provider returned 404: not found")
	})
}

func ptr(s string) *string { return &s }
