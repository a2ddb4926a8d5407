// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"gaspass/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Name     string
	Phone    string
	Password string
}

// LoginInput defines the data required to log in. Identifier is either a
// username or a phone number; the service classifies it by shape.
type LoginInput struct {
	Identifier string
	Password   string
}

// FederatedLoginInput carries an ID token obtained from the identity provider.
type FederatedLoginInput struct {
	IDToken string
}

// --- Output DTOs ---

// SignupOutput returns the newly created account's public view.
type SignupOutput struct {
	User *entity.PublicUser
}

// LoginOutput returns the session token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.PublicUser
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Signup registers a new, unvalidated account.
	Signup(ctx context.Context, input SignupInput) (*SignupOutput, error)

	// Login authenticates by username or phone plus password.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// FederatedLogin authenticates via a verified provider ID token,
	// creating a validated account on first sight of the email.
	FederatedLogin(ctx context.Context, input FederatedLoginInput) (*LoginOutput, error)
}
