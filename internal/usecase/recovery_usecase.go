package usecase

import "context"

// RequestResetInput identifies the account asking for a password reset
// by its linked telegram channel.
type RequestResetInput struct {
	TelegramID string
}

// ConsumeResetInput carries a previously issued reset token and the new password.
type ConsumeResetInput struct {
	Token       string
	NewPassword string
}

// RecoveryUsecase defines the interface for the password reset flow.
type RecoveryUsecase interface {
	// RequestReset mints a single-use reset token for the account and
	// dispatches a reset link over the account's notification channel.
	RequestReset(ctx context.Context, input RequestResetInput) error

	// ConsumeReset exchanges a valid, unexpired token for a new password.
	// The token is cleared and outstanding session tokens are invalidated.
	ConsumeReset(ctx context.Context, input ConsumeResetInput) error
}
