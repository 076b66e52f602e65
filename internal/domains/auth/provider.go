package auth

import "context"

// Claims are the verified facts taken from a session token.
type Claims struct {
	Subject         string
	AuthorizedParty string
	SessionID       string
}

// Profile is the identity provider's view of a user, used to provision a local record.
type Profile struct {
	Email         *string
	Name          *string
	DisplayName   *string
	AvatarURL     *string
	EmailVerified bool
}

type IdentityProvider interface {
	// VerifyToken fails on malformed, expired or badly signed tokens.
	VerifyToken(ctx context.Context, rawToken string) (*Claims, error)
	GetProfile(ctx context.Context, subjectID string) (*Profile, error)
}
