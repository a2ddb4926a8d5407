package service

import "context"

// FederatedIdentity represents user information asserted by an external
// identity provider after token verification.
type FederatedIdentity struct {
	Subject       string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthVerifier defines the interface for verifying ID tokens issued by an
// external identity provider. The client obtains the token and sends it
// directly; the server only validates it and extracts the identity.
type OAuthVerifier interface {
	// VerifyIDToken verifies an ID token string and returns the asserted identity.
	VerifyIDToken(ctx context.Context, idToken string) (*FederatedIdentity, error)
}
