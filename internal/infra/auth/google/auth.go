// Package google verifies Google ID tokens for the federated login flow.
package google

import (
	"context"
	"log/slog"

	"gaspass/config"
	"gaspass/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// idTokenClaims represents the claims in a Google ID token.
type idTokenClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// Verifier implements service.OAuthVerifier for Google-issued ID tokens.
// Signatures are checked against Google's published JWKS before any claim
// is trusted.
type Verifier struct {
	clientID string
	keyfunc  jwt.Keyfunc
	logger   *slog.Logger
}

// NewVerifier creates a new Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) service.OAuthVerifier {
	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		keyfunc:  newJWKSKeyfunc(googleJWKSURL),
		logger:   logger,
	}
}

// VerifyIDToken implements service.OAuthVerifier.
func (s *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*service.FederatedIdentity, error) {
	claims := &idTokenClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, s.keyfunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(s.clientID),
		jwt.WithExpirationRequired())
	if err != nil {
		s.logger.Error("ID token rejected", "error", err)

		return nil, errors.Wrap(err, "invalid ID token")
	}
	if !token.Valid {
		return nil, errors.New("invalid ID token")
	}

	if err := s.verifyTokenClaims(claims); err != nil {
		s.logger.Error("Token verification failed", "error", err)

		return nil, errors.Wrap(err, "token verification failed")
	}

	identity := &service.FederatedIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		Name:          claims.Name,
		EmailVerified: claims.EmailVerified,
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("subject", identity.Subject),
		slog.String("email", identity.Email))

	return identity, nil
}

// verifyTokenClaims checks the Google-specific claims. Signature, audience
// and expiry were already validated by the parser.
func (s *Verifier) verifyTokenClaims(claims *idTokenClaims) error {
	if claims.Issuer != "https://accounts.google.com" && claims.Issuer != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Issuer)
	}

	if !claims.EmailVerified {
		return errors.New("email not verified")
	}

	return nil
}
