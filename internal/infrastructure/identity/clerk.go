// Package identity adapts the Clerk session tokens and backend API to auth.IdentityProvider.
package identity

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"jaalakam-backend/internal/config"
	"jaalakam-backend/internal/domains/auth"
)

var (
	ErrVerificationDisabled = errors.New("no session token public key configured")
	ErrMissingSubject       = errors.New("token has no subject")
	ErrUnauthorizedParty    = errors.New("token azp is not an authorized party")
)

const clockSkew = 5 * time.Second

type ClerkClient struct {
	publicKey         *rsa.PublicKey
	authorizedParties []string
	http              *resty.Client
}

// sessionClaims are the claims Clerk puts on a session token.
type sessionClaims struct {
	AuthorizedParty string `json:"azp,omitempty"`
	SessionID       string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

// NewClerkClient parses the PEM public key when one is configured. Without a key every
// token fails verification and all requests resolve as guests.
func NewClerkClient(cfg config.IdentityConfig) (*ClerkClient, error) {
	c := &ClerkClient{
		authorizedParties: cfg.AuthorizedParties,
		http: resty.New().
			SetBaseURL(strings.TrimRight(cfg.APIURL, "/")).
			SetTimeout(cfg.Timeout).
			SetHeader("Accept", "application/json").
			SetAuthToken(cfg.SecretKey).
			SetRetryCount(2).
			SetRetryWaitTime(100 * time.Millisecond).
			SetRetryMaxWaitTime(time.Second).
			AddRetryCondition(retryCondition),
	}

	if cfg.JWTPublicKey != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.JWTPublicKey))
		if err != nil {
			return nil, fmt.Errorf("parsing CLERK_JWT_KEY: %w", err)
		}
		c.publicKey = key
	}

	return c, nil
}

func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429
}

// VerifyToken checks the RS256 signature, expiry and, when configured, the azp claim.
func (c *ClerkClient) VerifyToken(_ context.Context, rawToken string) (*auth.Claims, error) {
	if c.publicKey == nil {
		return nil, ErrVerificationDisabled
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
	)

	claims := &sessionClaims{}
	if _, err := parser.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return c.publicKey, nil
	}); err != nil {
		return nil, fmt.Errorf("verifying session token: %w", err)
	}

	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	if len(c.authorizedParties) > 0 && !slices.Contains(c.authorizedParties, claims.AuthorizedParty) {
		return nil, fmt.Errorf("%w: %q", ErrUnauthorizedParty, claims.AuthorizedParty)
	}

	return &auth.Claims{
		Subject:         claims.Subject,
		AuthorizedParty: claims.AuthorizedParty,
		SessionID:       claims.SessionID,
	}, nil
}

type clerkEmail struct {
	EmailAddress string `json:"email_address"`
	Verification *struct {
		Status string `json:"status"`
	} `json:"verification"`
}

type clerkUser struct {
	ID             string       `json:"id"`
	Username       *string      `json:"username"`
	FirstName      *string      `json:"first_name"`
	ImageURL       *string      `json:"image_url"`
	EmailAddresses []clerkEmail `json:"email_addresses"`
}

type clerkErrors struct {
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// GetProfile fetches GET /v1/users/{id} from the backend API.
func (c *ClerkClient) GetProfile(ctx context.Context, subjectID string) (*auth.Profile, error) {
	var user clerkUser
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&user).
		SetError(&clerkErrors{}).
		Get("/v1/users/" + url.PathEscape(subjectID))
	if err != nil {
		return nil, fmt.Errorf("fetching identity profile: %w", err)
	}
	if resp.IsError() {
		if e, ok := resp.Error().(*clerkErrors); ok && len(e.Errors) > 0 {
			return nil, fmt.Errorf("identity provider returned %d: %s", resp.StatusCode(), e.Errors[0].Message)
		}
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode())
	}

	return toProfile(&user), nil
}

func toProfile(u *clerkUser) *auth.Profile {
	p := &auth.Profile{
		Name:      nonEmpty(u.FirstName),
		AvatarURL: nonEmpty(u.ImageURL),
	}

	p.DisplayName = nonEmpty(u.Username)
	if p.DisplayName == nil {
		p.DisplayName = p.Name
	}

	if len(u.EmailAddresses) > 0 {
		primary := u.EmailAddresses[0]
		p.Email = nonEmpty(&primary.EmailAddress)
		p.EmailVerified = primary.Verification != nil && primary.Verification.Status == "verified"
	}

	return p
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
